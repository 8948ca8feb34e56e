package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrice_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Price
		wantErr  bool
	}{
		{name: "number", input: `42.5`, expected: 42.5},
		{name: "integer number", input: `15`, expected: 15},
		{name: "numeric string", input: `"15"`, expected: 15},
		{name: "decimal string", input: `"12.75"`, expected: 12.75},
		{name: "non-numeric string", input: `"abc"`, wantErr: true},
		{name: "empty string", input: `""`, wantErr: true},
		{name: "boolean", input: `true`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p Price
			err := json.Unmarshal([]byte(tt.input), &p)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, p)
		})
	}
}

func TestPrice_MarshalsAsNumber(t *testing.T) {
	item := MenuItem{ID: 1, Name: "Çay", Price: 15}

	raw, err := json.Marshal(item)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"price":15`)
}

func TestItemInput_AbsenceVsExplicitZero(t *testing.T) {
	var omitted ItemInput
	require.NoError(t, json.Unmarshal([]byte(`{"name":"Çay"}`), &omitted))
	assert.Nil(t, omitted.Image)
	assert.Nil(t, omitted.Featured)

	var explicit ItemInput
	require.NoError(t, json.Unmarshal([]byte(`{"image":"","featured":false}`), &explicit))
	require.NotNil(t, explicit.Image)
	assert.Equal(t, "", *explicit.Image)
	require.NotNil(t, explicit.Featured)
	assert.False(t, *explicit.Featured)
}

func TestItemInput_PriceAcceptsStringOrNumber(t *testing.T) {
	var fromString ItemInput
	require.NoError(t, json.Unmarshal([]byte(`{"price":"15"}`), &fromString))
	require.NotNil(t, fromString.Price)
	assert.EqualValues(t, 15, *fromString.Price)

	var fromNumber ItemInput
	require.NoError(t, json.Unmarshal([]byte(`{"price":15.5}`), &fromNumber))
	require.NotNil(t, fromNumber.Price)
	assert.EqualValues(t, 15.5, *fromNumber.Price)
}
