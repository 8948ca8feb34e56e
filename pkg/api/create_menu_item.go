package api

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/lezzet-duragi/menud/pkg/domain"
)

// HandleCreateMenuItem handles POST requests to add a menu item
func (h *Handler) HandleCreateMenuItem(w http.ResponseWriter, r *http.Request) {
	log.Printf("INFO: handleCreateMenuItem called")

	var in domain.ItemInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		log.Printf("ERROR: Decoding body failed: %v", err)
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	item, err := h.repo.Create(in)
	if err != nil {
		log.Printf("ERROR: Create failed: %v", err)
		writeRepoError(w, err, "menu item could not be saved")
		return
	}

	log.Printf("INFO: Created menu item %d (%s)", item.ID, item.Name)
	writeJSON(w, http.StatusOK, Response{Success: true, Data: item, Message: "menu item created"})
}
