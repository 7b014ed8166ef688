package handlers

import (
	"net/http"
	"time"

	"github.com/MrSnakeDoc/garden/internal/httpserver/deps"
)

type readyzResponse struct {
	Ready   bool       `json:"ready"`
	Routes  int        `json:"routes"`
	BuiltAt *time.Time `json:"built_at,omitempty"`
}

// Readyz answers 503 until the warmer has built the route index.
func Readyz(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "no-store")

		if !d.Routes.Ready() {
			writeJSON(w, http.StatusServiceUnavailable, readyzResponse{Ready: false})
			return
		}

		builtAt := d.Routes.BuiltAt()
		writeJSON(w, http.StatusOK, readyzResponse{
			Ready:   true,
			Routes:  d.Routes.Count(),
			BuiltAt: &builtAt,
		})
	}
}
