package api

import (
	"log"
	"net/http"
)

// HandleListCategories handles GET requests for the category reference list
func (h *Handler) HandleListCategories(w http.ResponseWriter, r *http.Request) {
	log.Printf("INFO: handleListCategories called")

	categories := h.repo.Categories()

	total := len(categories)
	writeJSON(w, http.StatusOK, Response{Success: true, Data: categories, Total: &total})
}
