package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/garden/internal/httpserver/deps"
	"github.com/MrSnakeDoc/garden/internal/httpserver/handlers"
)

func init() { RegisterAPI(registerIndex) }

func registerIndex(r chi.Router, d deps.Deps) {
	r.Get("/routes", handlers.Routes(d))
	r.Get("/resolve", handlers.Resolve(d))
}
