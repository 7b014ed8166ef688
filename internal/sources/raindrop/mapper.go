package raindrop

import (
	"regexp"
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/MrSnakeDoc/garden/internal/domain"
)

const maxTags = 3

var insecureCover = regexp.MustCompile(`^http?://`)

// Mapper converts API payloads into domain values. Collections are scoped to
// the site through a title marker: "<marker>.books" belongs to the site and
// is exposed as "books".
type Mapper struct {
	marker string
	lang   language.Tag
}

func NewMapper(marker string, lang language.Tag) *Mapper {
	return &Mapper{marker: marker, lang: lang}
}

func (m *Mapper) Bookmarks(items []Raindrop) []domain.Bookmark {
	out := make([]domain.Bookmark, 0, len(items))
	for _, r := range items {
		out = append(out, m.bookmark(r))
	}
	return out
}

func (m *Mapper) bookmark(r Raindrop) domain.Bookmark {
	collectionID := r.CollectionID
	if collectionID == 0 {
		collectionID = r.Collection.ID
	}

	var cover *string
	if r.Cover != "" {
		secure := insecureCover.ReplaceAllString(r.Cover, "https://")
		cover = &secure
	}

	tags := make([]string, 0, maxTags)
	for _, t := range r.Tags {
		if len(tags) == maxTags {
			break
		}
		tags = append(tags, t)
	}

	return domain.Bookmark{
		ID:           r.ID,
		CollectionID: collectionID,
		Title:        r.Title,
		Excerpt:      r.Excerpt,
		Link:         r.Link,
		Cover:        cover,
		Tags:         tags,
		Favorite:     r.Important,
		Created:      r.Created,
	}
}

// Collections keeps the collections carrying the marker, strips it from the
// titles and sorts them by title.
func (m *Mapper) Collections(items []Collection) []domain.BookmarkCollection {
	prefix := m.marker + "."

	out := make([]domain.BookmarkCollection, 0, len(items))
	for _, c := range items {
		if !strings.Contains(c.Title, m.marker) {
			continue
		}
		out = append(out, domain.BookmarkCollection{
			ID:          c.ID,
			Title:       strings.Replace(c.Title, prefix, "", 1),
			Description: c.Description,
			Count:       c.Count,
			Created:     c.Created,
		})
	}

	col := collate.New(m.lang)
	sort.SliceStable(out, func(i, j int) bool {
		return col.CompareString(out[i].Title, out[j].Title) < 0
	})
	return out
}
