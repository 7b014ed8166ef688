package handlers

import (
	"net/http"
	"time"

	"github.com/MrSnakeDoc/garden/internal/httpserver/deps"
)

type componentStatus struct {
	OK         bool   `json:"ok"`
	Configured bool   `json:"configured"`
	Count      *int   `json:"count,omitempty"`
	LastLoad   string `json:"last_load,omitempty"`
	Impact     string `json:"impact,omitempty"`
}

type infraResponse struct {
	Site       string                     `json:"site"`
	Components map[string]componentStatus `json:"components"`
}

// Infra reports which sources are loaded. It never triggers a fetch.
func Infra(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "no-store")

		routeCount := d.Routes.Count()
		components := map[string]componentStatus{
			"routes": {
				OK:         d.Routes.Ready(),
				Configured: true,
				Count:      &routeCount,
				LastLoad:   formatLoad(d.Routes.BuiltAt()),
				Impact:     "readyz stays false, pages cannot be resolved",
			},
			"content": {
				OK:         d.Content.Loaded(),
				Configured: true,
				Impact:     "collections, tags and archive are empty",
			},
			"bookmarks": {
				OK:         d.Bookmarks.Loaded(),
				Configured: true,
				Impact:     "bookmark and reading pages are empty",
			},
			"music": {
				OK:         d.Music != nil && d.Music.Loaded(),
				Configured: d.Music != nil,
				Impact:     "music page is unavailable",
			},
		}

		writeJSON(w, http.StatusOK, infraResponse{
			Site:       d.Site.Name,
			Components: components,
		})
	}
}

func formatLoad(t time.Time) string {
	if t.IsZero() {
		return "never"
	}
	return t.Format("2006-01-02 15:04:05")
}
