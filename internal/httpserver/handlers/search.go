package handlers

import (
	"net/http"
	"strconv"

	"github.com/MrSnakeDoc/garden/internal/domain"
	"github.com/MrSnakeDoc/garden/internal/httpserver/deps"
	"github.com/MrSnakeDoc/garden/internal/logger"
	"github.com/MrSnakeDoc/garden/internal/search"
)

const (
	defaultSearchLimit = 20
	maxSearchLimit     = 50
)

type searchResponse struct {
	Query string       `json:"query"`
	Hits  []search.Hit `json:"hits"`
}

// Search ranks published entries and bookmarks against ?q=. Bookmarks are
// left out when they cannot be fetched.
func Search(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query().Get("q")
		if search.ParseQuery(q).Empty() {
			writeError(w, http.StatusBadRequest, "missing query")
			return
		}

		limit := defaultSearchLimit
		if v := r.URL.Query().Get("limit"); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil || n < 1 {
				writeError(w, http.StatusBadRequest, "limit must be a positive integer")
				return
			}
			limit = min(n, maxSearchLimit)
		}

		entries, err := d.Content.Published(r.Context())
		if err != nil {
			internalError(w, r, d, "failed to load content", err)
			return
		}

		var bookmarks []domain.Bookmark
		if data, err := d.Bookmarks.Data(r.Context()); err != nil {
			d.Logger.Warn("search without bookmarks", logger.Error(err))
		} else {
			bookmarks = data.Bookmarks
		}

		writeJSON(w, http.StatusOK, searchResponse{
			Query: q,
			Hits:  search.Rank(q, entries, bookmarks, limit),
		})
	}
}
