package api

import (
	"log"
	"net/http"

	"github.com/lezzet-duragi/menud/pkg/menu"
)

// HandleListMenu handles GET requests to list menu items, with optional
// category and featured query filters
func (h *Handler) HandleListMenu(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	category := query.Get("category")
	featured := query.Get("featured")

	log.Printf("INFO: handleListMenu called (category=%q, featured=%q)", category, featured)

	items := h.repo.List()
	items = menu.FilterByCategory(items, category)
	if featured == "true" {
		items = menu.FilterFeatured(items)
	}

	log.Printf("INFO: Listing %d menu items", len(items))
	total := len(items)
	writeJSON(w, http.StatusOK, Response{Success: true, Data: items, Total: &total})
}
