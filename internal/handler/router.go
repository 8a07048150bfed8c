package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	chatHandler "github.com/kitround/director/internal/handler/chat"
	personaHandler "github.com/kitround/director/internal/handler/persona"
	personaModel "github.com/kitround/director/internal/model/persona"
	"github.com/kitround/director/internal/service/director"
	"github.com/kitround/director/pkg/utils"
	"github.com/kitround/director/web"
)

// NewRouter wires HTTP routes to core services and mounts the embedded UI.
func NewRouter(personas personaModel.Store, runner director.Runner) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	r.Route("/api", func(api chi.Router) {
		personaHandler.New(personas).RegisterRoutes(api)
		chatHandler.New(runner, personas).RegisterRoutes(api)

		api.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
			utils.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
		})
	})

	r.Handle("/*", web.Handler())

	return r
}
