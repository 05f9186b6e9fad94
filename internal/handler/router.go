// Package handler wires the GUI HTTP surface: the static front page and the
// JSON API a richer front end would use. Every API request goes through the
// same load-mutate-save cycle as a CLI command.
package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/akarin/userbook/internal/handler/users"
)

// NewRouter wires HTTP routes against the registry at dataFile.
func NewRouter(dataFile string, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(RequestLogger(logger))
	r.Use(middleware.Recoverer)

	r.Get("/", handleIndex)

	usersHandler := users.New(dataFile, logger)
	r.Route("/api", func(api chi.Router) {
		usersHandler.RegisterRoutes(api)
	})

	return r
}
