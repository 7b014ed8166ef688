package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/MrSnakeDoc/garden/internal/collections"
	"github.com/MrSnakeDoc/garden/internal/config"
	"github.com/MrSnakeDoc/garden/internal/domain"
	"github.com/MrSnakeDoc/garden/internal/format"
	"github.com/MrSnakeDoc/garden/internal/httpserver/deps"
	"github.com/MrSnakeDoc/garden/internal/pagination"
)

// ─────────────────────────────
// Collections
// ─────────────────────────────

type collectionResponse struct {
	Collection string                        `json:"collection"`
	Meta       domain.Meta                   `json:"meta"`
	Simple     bool                          `json:"simple"`
	Page       pagination.Page[domain.Entry] `json:"page"`
}

// Collection serves one listing page of a collection.
func Collection(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := pathParam(r, "collection")
		if _, ok := d.Site.Collection(name); !ok {
			writeError(w, http.StatusNotFound, "unknown collection")
			return
		}

		entries, err := d.Content.Collection(r.Context(), name)
		if err != nil {
			internalError(w, r, d, "failed to load collection", err)
			return
		}

		page := paginate(r, summaries(entries), d.Site.PageSize(name))
		if !page.Found() {
			writeError(w, http.StatusNotFound, "page not found")
			return
		}

		writeJSON(w, http.StatusOK, collectionResponse{
			Collection: name,
			Meta:       d.Site.Page(name),
			Simple:     collections.IsSimpleCollection(entries),
			Page:       page,
		})
	}
}

type entryResponse struct {
	Entry       domain.Entry `json:"entry"`
	ReadingTime int          `json:"readingTime"`
	DisplayDate string       `json:"displayDate,omitempty"`
}

func siteLocale(lang string) format.Locale {
	if strings.HasPrefix(strings.ToLower(lang), "en") {
		return format.LocaleEN
	}
	return format.LocaleES
}

// Entry serves a single entry with its rendered body.
func Entry(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := pathParam(r, "collection")
		id := pathParam(r, "*")

		entries, err := d.Content.Collection(r.Context(), name)
		if err != nil {
			internalError(w, r, d, "failed to load collection", err)
			return
		}
		for _, e := range entries {
			if e.ID != id {
				continue
			}
			resp := entryResponse{Entry: e, ReadingTime: format.ReadingTime(e.Rendered)}
			if e.Data.Date != nil {
				resp.DisplayDate = format.FormatDate(*e.Data.Date, siteLocale(d.Site.Lang))
			}
			writeJSON(w, http.StatusOK, resp)
			return
		}
		writeError(w, http.StatusNotFound, "entry not found")
	}
}

// ─────────────────────────────
// Tags
// ─────────────────────────────

type tagsResponse struct {
	Tags     []string                  `json:"tags"`
	ByLetter []collections.LetterGroup `json:"byLetter"`
}

// Tags lists every tag. With ?perLetter=N the flat list keeps at most N
// tags per leading letter.
func Tags(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tags, err := d.Content.UniqueTags(r.Context())
		if err != nil {
			internalError(w, r, d, "failed to list tags", err)
			return
		}

		flat := tags
		if v := r.URL.Query().Get("perLetter"); v != "" {
			n, convErr := strconv.Atoi(v)
			if convErr != nil || n < 0 {
				writeError(w, http.StatusBadRequest, "perLetter must be a non-negative integer")
				return
			}
			flat, err = d.Content.TagsByLetter(r.Context(), n)
		}
		if err != nil {
			internalError(w, r, d, "failed to list tags", err)
			return
		}
		writeJSON(w, http.StatusOK, tagsResponse{
			Tags:     flat,
			ByLetter: collections.GroupTagsByLetter(tags),
		})
	}
}

type tagResponse struct {
	Tag  string                        `json:"tag"`
	Page pagination.Page[domain.Entry] `json:"page"`
}

// Tag serves one page of the entries carrying a tag. Unknown tags are 404.
func Tag(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tag := pathParam(r, "tag")

		entries, err := d.Content.ByTag(r.Context(), tag)
		if err != nil {
			internalError(w, r, d, "failed to load tag", err)
			return
		}
		if len(entries) == 0 {
			writeError(w, http.StatusNotFound, "unknown tag")
			return
		}

		page := paginate(r, summaries(entries), d.Site.PageSize(config.PageTags))
		if !page.Found() {
			writeError(w, http.StatusNotFound, "page not found")
			return
		}
		writeJSON(w, http.StatusOK, tagResponse{Tag: tag, Page: page})
	}
}

// ─────────────────────────────
// Archive
// ─────────────────────────────

type archiveResponse struct {
	TotalPages  int                     `json:"totalPages"`
	CurrentPage int                     `json:"currentPage"`
	Years       []collections.YearGroup `json:"years"`
}

// Archive paginates the entries sorted by year, then groups the page by
// year.
func Archive(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sorted, err := d.Content.SortedByYear(r.Context())
		if err != nil {
			internalError(w, r, d, "failed to load archive", err)
			return
		}

		page := paginate(r, summaries(sorted), d.Site.PageSize(config.PageArchive))
		if !page.Found() {
			writeError(w, http.StatusNotFound, "page not found")
			return
		}

		years := collections.GroupByYear(page.Entries)
		if years == nil {
			years = []collections.YearGroup{}
		}
		writeJSON(w, http.StatusOK, archiveResponse{
			TotalPages:  page.TotalPages,
			CurrentPage: page.CurrentPage,
			Years:       years,
		})
	}
}

// ─────────────────────────────
// Latest
// ─────────────────────────────

type latestResponse struct {
	Entries []domain.Entry        `json:"entries"`
	Reading []domain.ReadingEntry `json:"reading"`
}

// Latest serves the home page feed. A bookmark failure leaves the reading
// list empty rather than failing the feed.
func Latest(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entries, err := d.Content.Latest(r.Context(), d.LatestSize)
		if err != nil {
			internalError(w, r, d, "failed to load latest entries", err)
			return
		}

		reading, err := d.Bookmarks.LatestReadingEntries(r.Context(), d.LatestSize)
		if err != nil {
			d.Logger.Warnf("latest reading unavailable: %v", err)
			reading = []domain.ReadingEntry{}
		}

		writeJSON(w, http.StatusOK, latestResponse{
			Entries: summaries(entries),
			Reading: reading,
		})
	}
}

// Navigation serves the published navigation links of the site.
func Navigation(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, d.Site.NavigationTree())
	}
}
