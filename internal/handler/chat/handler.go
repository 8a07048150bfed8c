package chat

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/kitround/director/internal/model/persona"
	"github.com/kitround/director/internal/service/director"
	"github.com/kitround/director/pkg/utils"
)

// ErrMissingMessage is the fixed validation message for a blank or
// non-string message field.
const ErrMissingMessage = `Missing "message"`

// Handler answers the chat endpoint: validate, tag, run, normalize.
type Handler struct {
	runner   director.Runner
	personas persona.Store
}

// New creates the chat handler.
func New(runner director.Runner, personas persona.Store) *Handler {
	return &Handler{
		runner:   runner,
		personas: personas,
	}
}

// RegisterRoutes registers chat routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/chat", h.handleChat)
}

func (h *Handler) handleChat(w http.ResponseWriter, r *http.Request) {
	// Fields are decoded loosely; the message must turn out to be a
	// non-empty string, while a non-string mode is ignored outright.
	var payload struct {
		Message any `json:"message"`
		Mode    any `json:"mode"`
	}

	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, ErrMissingMessage)
		return
	}

	message, ok := payload.Message.(string)
	if !ok || strings.TrimSpace(message) == "" {
		utils.RespondError(w, http.StatusBadRequest, ErrMissingMessage)
		return
	}

	mode, _ := payload.Mode.(string)
	input := director.TagMode(h.personas, message, mode)

	result, err := h.runner.Run(r.Context(), input)
	if err != nil {
		log.Printf("[chat] director run failed: %v", err)
		msg := err.Error()
		if msg == "" {
			msg = "Server error"
		}
		utils.RespondError(w, http.StatusInternalServerError, msg)
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]any{
		"ok":   true,
		"text": result.Text(),
	})
}
