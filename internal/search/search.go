// Package search ranks published entries and bookmarks against a free text
// query. Matching is accent and case insensitive.
package search

import (
	"sort"
	"strings"

	"github.com/MrSnakeDoc/garden/internal/domain"
	"github.com/MrSnakeDoc/garden/internal/format"
)

// Scoring constants
const (
	ScoreExactMatch     = 100.0
	ScorePrefixMatch    = 75.0
	ScoreSubstringMatch = 50.0
	ScoreFuzzyMatch     = 25.0

	// Bonus for earlier substring matches
	ScorePositionBonus = 10.0

	// Query equals one of the entry tags
	ScoreTagMatch = 40.0

	// Every query word appears in the description or excerpt
	ScoreDescriptionMatch = 15.0

	// Bookmarks rank below entries with the same text score
	BookmarkWeight = 0.8
)

type Kind string

const (
	KindEntry    Kind = "entry"
	KindBookmark Kind = "bookmark"
)

// Hit is a ranked search result. Path is the site path of an entry or the
// external link of a bookmark.
type Hit struct {
	Kind       Kind    `json:"kind"`
	Title      string  `json:"title"`
	Path       string  `json:"path"`
	Collection string  `json:"collection,omitempty"`
	Score      float64 `json:"score"`
}

// Query is a folded user input.
type Query struct {
	Raw   string   // folded input
	Words []string // space separated words of Raw
	Tag   string   // Raw as a tag slug
}

// ParseQuery folds input.
// Examples:
//   - "  Docker  Compose" -> Raw "docker compose", Words ["docker", "compose"]
//   - "Árbol" -> Raw "arbol"
func ParseQuery(input string) Query {
	raw := format.Fold(input)
	return Query{
		Raw:   raw,
		Words: strings.Fields(raw),
		Tag:   format.Slugify(input),
	}
}

func (q Query) Empty() bool { return q.Raw == "" }

// ScoreText scores text against q, from an exact match down to every query
// word prefixing some word of text. No match scores 0.
func ScoreText(q Query, text string) float64 {
	if q.Empty() {
		return 0
	}
	t := format.Fold(text)
	if t == "" {
		return 0
	}

	switch {
	case t == q.Raw:
		return ScoreExactMatch
	case strings.HasPrefix(t, q.Raw):
		return ScorePrefixMatch
	}

	if i := strings.Index(t, q.Raw); i >= 0 {
		return ScoreSubstringMatch + ScorePositionBonus*(1.0-float64(i)/float64(len(t)))
	}

	if len(q.Words) > 0 && allWordsPrefix(q.Words, strings.Fields(t)) {
		return ScoreFuzzyMatch
	}
	return 0
}

// allWordsPrefix reports whether every query word is the prefix of at least
// one word of the text.
func allWordsPrefix(query, words []string) bool {
	for _, q := range query {
		found := false
		for _, w := range words {
			if strings.HasPrefix(w, q) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func containsAll(text string, words []string) bool {
	t := format.Fold(text)
	if t == "" {
		return false
	}
	for _, w := range words {
		if !strings.Contains(t, w) {
			return false
		}
	}
	return true
}

// ScoreEntry scores an entry by title, then tags, then description.
func ScoreEntry(q Query, e domain.Entry) float64 {
	if s := ScoreText(q, e.Data.Title); s > 0 {
		return s
	}
	if q.Tag != "" {
		for _, tag := range e.Data.Tags {
			if format.Slugify(tag) == q.Tag {
				return ScoreTagMatch
			}
		}
	}
	if containsAll(e.Data.Description, q.Words) {
		return ScoreDescriptionMatch
	}
	return 0
}

// ScoreBookmark scores a bookmark by title, then excerpt, weighted down by
// BookmarkWeight.
func ScoreBookmark(q Query, b domain.Bookmark) float64 {
	if s := ScoreText(q, b.Title); s > 0 {
		return s * BookmarkWeight
	}
	if containsAll(b.Excerpt, q.Words) {
		return ScoreDescriptionMatch * BookmarkWeight
	}
	return 0
}

// Rank scores entries and bookmarks against input and returns at most limit
// hits, best first. Equal scores keep entries before bookmarks, each in
// input order. limit <= 0 means no limit.
func Rank(input string, entries []domain.Entry, bookmarks []domain.Bookmark, limit int) []Hit {
	q := ParseQuery(input)
	hits := []Hit{}
	if q.Empty() {
		return hits
	}

	for _, e := range entries {
		if score := ScoreEntry(q, e); score > 0 {
			hits = append(hits, Hit{
				Kind:       KindEntry,
				Title:      e.Data.Title,
				Path:       e.Path(),
				Collection: e.Collection,
				Score:      score,
			})
		}
	}
	for _, b := range bookmarks {
		if score := ScoreBookmark(q, b); score > 0 {
			hits = append(hits, Hit{
				Kind:  KindBookmark,
				Title: b.Title,
				Path:  b.Link,
				Score: score,
			})
		}
	}

	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].Score > hits[j].Score
	})
	if limit > 0 && len(hits) > limit {
		hits = hits[:limit]
	}
	return hits
}
