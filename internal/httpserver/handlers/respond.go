package handlers

import (
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/garden/internal/domain"
	"github.com/MrSnakeDoc/garden/internal/httpserver/deps"
	"github.com/MrSnakeDoc/garden/internal/logger"
	"github.com/MrSnakeDoc/garden/internal/pagination"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// internalError logs err with the request path and answers 500. The error
// text is not sent to the client.
func internalError(w http.ResponseWriter, r *http.Request, d deps.Deps, what string, err error) {
	d.Logger.Error(what,
		logger.String("path", r.URL.Path),
		logger.Error(err))
	writeError(w, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
}

// paginate applies the page query parameter to items. A missing parameter
// means the first page.
func paginate[T any](r *http.Request, items []T, size int) pagination.Page[T] {
	q := r.URL.Query()
	return pagination.Paginate(items, q.Get("page"), size, !q.Has("page"))
}

// pathParam returns the unescaped value of a route parameter.
func pathParam(r *http.Request, name string) string {
	raw := chi.URLParam(r, name)
	if v, err := url.PathUnescape(raw); err == nil {
		return v
	}
	return raw
}

// summaries drops the markdown source and the rendered HTML of entries.
// Listings only need the front matter.
func summaries(entries []domain.Entry) []domain.Entry {
	out := make([]domain.Entry, len(entries))
	for i, e := range entries {
		e.Body = ""
		e.Rendered = ""
		out[i] = e
	}
	return out
}
