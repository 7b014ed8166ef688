package handlers

import (
	"net/http"

	"github.com/MrSnakeDoc/garden/internal/config"
	"github.com/MrSnakeDoc/garden/internal/domain"
	"github.com/MrSnakeDoc/garden/internal/httpserver/deps"
	"github.com/MrSnakeDoc/garden/internal/pagination"
	"github.com/MrSnakeDoc/garden/internal/sources/raindrop"
)

type bookmarkCollectionsResponse struct {
	Collections []domain.BookmarkCollection `json:"collections"`
}

// BookmarkCollections lists the bookmark collections except the reading
// list.
func BookmarkCollections(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cols, err := d.Bookmarks.CollectionsExcluding(r.Context(), raindrop.ReadingCollection)
		if err != nil {
			internalError(w, r, d, "failed to list bookmark collections", err)
			return
		}
		writeJSON(w, http.StatusOK, bookmarkCollectionsResponse{Collections: cols})
	}
}

type bookmarksResponse struct {
	Collection domain.BookmarkCollection        `json:"collection"`
	Page       pagination.Page[domain.Bookmark] `json:"page"`
}

// Bookmarks serves one page of a bookmark collection.
func Bookmarks(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		title := pathParam(r, "collection")

		col, ok, err := d.Bookmarks.Collection(r.Context(), title)
		if err != nil {
			internalError(w, r, d, "failed to load bookmarks", err)
			return
		}
		if !ok {
			writeError(w, http.StatusNotFound, "unknown bookmark collection")
			return
		}

		items, err := d.Bookmarks.BookmarksByCollection(r.Context(), title)
		if err != nil {
			internalError(w, r, d, "failed to load bookmarks", err)
			return
		}

		page := paginate(r, items, d.Site.PageSize(config.PageBookmarks))
		if !page.Found() {
			writeError(w, http.StatusNotFound, "page not found")
			return
		}
		writeJSON(w, http.StatusOK, bookmarksResponse{Collection: col, Page: page})
	}
}

// Reading serves one page of the reading list.
func Reading(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := d.Bookmarks.BookmarksByCollection(r.Context(), raindrop.ReadingCollection)
		if err != nil {
			internalError(w, r, d, "failed to load reading list", err)
			return
		}

		page := paginate(r, items, d.Site.PageSize(config.PageReading))
		if !page.Found() {
			writeError(w, http.StatusNotFound, "page not found")
			return
		}
		writeJSON(w, http.StatusOK, page)
	}
}
