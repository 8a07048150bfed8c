package persona

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/kitround/director/internal/model/persona"
	"github.com/kitround/director/pkg/utils"
)

// Handler serves specialist metadata for the mode selector.
type Handler struct {
	personas persona.Store
}

// New creates the persona handler.
func New(personas persona.Store) *Handler {
	return &Handler{
		personas: personas,
	}
}

// RegisterRoutes registers persona routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/personas", h.handleListPersonas)
}

func (h *Handler) handleListPersonas(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, h.personas.List())
}
