package api

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
)

// HandleDeleteMenuItem handles DELETE requests to remove a menu item
func (h *Handler) HandleDeleteMenuItem(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	log.Printf("INFO: handleDeleteMenuItem called for id '%s'", vars["id"])

	id, err := strconv.Atoi(vars["id"])
	if err != nil {
		writeError(w, http.StatusNotFound, "menu item not found")
		return
	}

	item, err := h.repo.Delete(id)
	if err != nil {
		log.Printf("ERROR: Delete failed for menu item %d: %v", id, err)
		writeRepoError(w, err, "menu item could not be deleted")
		return
	}

	log.Printf("INFO: Deleted menu item %d (%s)", item.ID, item.Name)
	writeJSON(w, http.StatusOK, Response{Success: true, Data: item, Message: "menu item deleted"})
}
