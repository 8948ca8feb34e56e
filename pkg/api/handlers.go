package api

import (
	"github.com/lezzet-duragi/menud/pkg/domain"
)

// Handler provides HTTP handlers for the menu API
type Handler struct {
	repo domain.MenuRepository
}

// NewHandler creates a new API handler with dependency injection
func NewHandler(repo domain.MenuRepository) *Handler {
	return &Handler{
		repo: repo,
	}
}
