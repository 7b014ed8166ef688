package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/garden/internal/httpserver/deps"
	"github.com/MrSnakeDoc/garden/internal/httpserver/handlers"
)

func init() { RegisterAPI(registerBookmarks) }

func registerBookmarks(r chi.Router, d deps.Deps) {
	r.Get("/bookmarks", handlers.BookmarkCollections(d))
	r.Get("/bookmarks/{collection}", handlers.Bookmarks(d))
	r.Get("/reading", handlers.Reading(d))
}
