package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/garden/internal/httpserver/deps"
	"github.com/MrSnakeDoc/garden/internal/httpserver/handlers"
)

func init() { RegisterAPI(registerMusic) }

func registerMusic(r chi.Router, d deps.Deps) {
	r.Get("/music", handlers.Music(d))
	r.Get("/music/now", handlers.NowPlaying(d))
}
