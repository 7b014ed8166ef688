package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/garden/internal/httpserver/deps"
	"github.com/MrSnakeDoc/garden/internal/httpserver/handlers"
)

func init() { RegisterAPI(registerContent) }

func registerContent(r chi.Router, d deps.Deps) {
	r.Get("/collections/{collection}", handlers.Collection(d))
	r.Get("/collections/{collection}/*", handlers.Entry(d))
	r.Get("/tree/{collection}", handlers.Tree(d))
	r.Get("/tags", handlers.Tags(d))
	r.Get("/tags/{tag}", handlers.Tag(d))
	r.Get("/archive", handlers.Archive(d))
	r.Get("/latest", handlers.Latest(d))
	r.Get("/navigation", handlers.Navigation(d))
}
