package api

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/lezzet-duragi/menud/pkg/domain"
)

// HandleUpdateMenuItem handles PUT requests to replace a menu item's fields
func (h *Handler) HandleUpdateMenuItem(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	log.Printf("INFO: handleUpdateMenuItem called for id '%s'", vars["id"])

	id, err := strconv.Atoi(vars["id"])
	if err != nil {
		writeError(w, http.StatusNotFound, "menu item not found")
		return
	}

	var in domain.ItemInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		log.Printf("ERROR: Decoding body failed: %v", err)
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	item, err := h.repo.Update(id, in)
	if err != nil {
		log.Printf("ERROR: Update failed for menu item %d: %v", id, err)
		writeRepoError(w, err, "menu item could not be updated")
		return
	}

	log.Printf("INFO: Updated menu item %d (%s)", item.ID, item.Name)
	writeJSON(w, http.StatusOK, Response{Success: true, Data: item, Message: "menu item updated"})
}
