package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/lezzet-duragi/menud/pkg/domain"
)

// Response is the uniform envelope for every API payload: success plus
// either data or an error message.
type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Total   *int        `json:"total,omitempty"`
	Message string      `json:"message,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// writeJSON writes an envelope with the given status code
func writeJSON(w http.ResponseWriter, statusCode int, resp Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(resp)
}

// writeError writes a failure envelope with the given status code and message
func writeError(w http.ResponseWriter, statusCode int, message string) {
	writeJSON(w, statusCode, Response{Success: false, Error: message})
}

// writeRepoError maps repository errors onto the envelope: validation
// failures are 400 with the offending fields, unknown ids are 404, and
// anything else is a storage fault reported with the given message.
func writeRepoError(w http.ResponseWriter, err error, storageMessage string) {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		writeError(w, http.StatusBadRequest, verr.Error())
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "menu item not found")
	default:
		writeError(w, http.StatusInternalServerError, storageMessage)
	}
}
