package api

import (
	"github.com/gorilla/mux"
)

// RegisterRoutes registers all API routes with the given router
func (h *Handler) RegisterRoutes(router *mux.Router) {
	// Menu item operations
	router.HandleFunc("/menu", h.HandleListMenu).Methods("GET")
	router.HandleFunc("/menu", h.HandleCreateMenuItem).Methods("POST")
	router.HandleFunc("/menu/{id}", h.HandleGetMenuItem).Methods("GET")
	router.HandleFunc("/menu/{id}", h.HandleUpdateMenuItem).Methods("PUT")
	router.HandleFunc("/menu/{id}", h.HandleDeleteMenuItem).Methods("DELETE")

	// Reference data
	router.HandleFunc("/categories", h.HandleListCategories).Methods("GET")

	// Health check
	router.HandleFunc("/health", h.HandleHealth).Methods("GET")
}
