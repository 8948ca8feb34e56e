package api

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
)

// HandleGetMenuItem handles GET requests to retrieve a menu item by id
func (h *Handler) HandleGetMenuItem(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	log.Printf("INFO: handleGetMenuItem called for id '%s'", vars["id"])

	id, err := strconv.Atoi(vars["id"])
	if err != nil {
		writeError(w, http.StatusNotFound, "menu item not found")
		return
	}

	item, err := h.repo.Get(id)
	if err != nil {
		log.Printf("ERROR: Menu item %d not found: %v", id, err)
		writeError(w, http.StatusNotFound, "menu item not found")
		return
	}

	writeJSON(w, http.StatusOK, Response{Success: true, Data: item})
}
