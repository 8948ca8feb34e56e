package domain

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// PlaceholderImage is used for items created without an image.
const PlaceholderImage = "/images/placeholder.jpg"

// Price is a menu item price in the restaurant's currency. It accepts
// both JSON numbers and numeric strings on input (the admin form submits
// strings) and always serializes back as a number.
type Price float64

// UnmarshalJSON decodes a price from a JSON number or a numeric string.
func (p *Price) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if strings.HasPrefix(s, `"`) {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		v, err := strconv.ParseFloat(str, 64)
		if err != nil {
			return fmt.Errorf("invalid price %q", str)
		}
		*p = Price(v)
		return nil
	}

	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*p = Price(v)
	return nil
}

// MenuItem represents a single dish or drink on the menu
type MenuItem struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       Price  `json:"price"`
	Category    string `json:"category"`
	Image       string `json:"image"`
	Featured    bool   `json:"featured"`
}

// Category is read-only reference data used to group and label menu items
type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// MenuDocument is the aggregate persisted as a single JSON file. Writes
// always replace the whole document; category data must survive menu-item
// writes untouched.
type MenuDocument struct {
	MenuItems  []MenuItem `json:"menuItems"`
	Categories []Category `json:"categories"`
}

// NewMenuDocument creates an empty menu document
func NewMenuDocument() *MenuDocument {
	return &MenuDocument{
		MenuItems:  []MenuItem{},
		Categories: []Category{},
	}
}

// ItemInput carries the client-supplied fields for create and update
// operations. Pointer fields distinguish "not supplied" from an explicit
// empty string or false, so optional fields can fall back to prior values
// on update without conflating absence with zero values.
type ItemInput struct {
	Name        *string `json:"name" validate:"required,min=1"`
	Description *string `json:"description" validate:"required,min=1"`
	Price       *Price  `json:"price" validate:"required,gte=0"`
	Category    *string `json:"category" validate:"required,min=1"`
	Image       *string `json:"image"`
	Featured    *bool   `json:"featured"`
}
