package handlers

import (
	"net/http"

	"github.com/MrSnakeDoc/garden/internal/domain"
	"github.com/MrSnakeDoc/garden/internal/httpserver/deps"
	"github.com/MrSnakeDoc/garden/internal/logger"
)

// Music serves the cached listening snapshot. Upstream failures are 502.
func Music(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if d.Music == nil {
			writeError(w, http.StatusServiceUnavailable, "music is not configured")
			return
		}

		music, err := d.Music.Data(r.Context())
		if err != nil {
			d.Logger.Warn("music unavailable", logger.Error(err))
			writeError(w, http.StatusBadGateway, "music is unavailable")
			return
		}
		writeJSON(w, http.StatusOK, music)
	}
}

type nowPlayingResponse struct {
	Playing bool          `json:"playing"`
	Track   *domain.Track `json:"track,omitempty"`
}

// NowPlaying serves the most recent scrobble. It is never cached.
func NowPlaying(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if d.Music == nil {
			writeError(w, http.StatusServiceUnavailable, "music is not configured")
			return
		}

		w.Header().Set("Cache-Control", "no-store")

		track, ok, err := d.Music.CurrentTrack(r.Context())
		if err != nil {
			d.Logger.Warn("current track unavailable", logger.Error(err))
			writeError(w, http.StatusBadGateway, "music is unavailable")
			return
		}
		if !ok {
			writeJSON(w, http.StatusOK, nowPlayingResponse{})
			return
		}
		writeJSON(w, http.StatusOK, nowPlayingResponse{Playing: track.NowPlaying, Track: &track})
	}
}
