package collections

import (
	"sort"

	"github.com/MrSnakeDoc/garden/internal/domain"
	"github.com/MrSnakeDoc/garden/internal/format"
	"github.com/MrSnakeDoc/garden/internal/pagination"
)

// CategoryGroup holds the published entries of one collection.
type CategoryGroup struct {
	Collection string         `json:"collection"`
	Entries    []domain.Entry `json:"entries"`
}

// YearGroup holds the entries of one year. Year 0 groups undated entries.
type YearGroup struct {
	Year    int            `json:"year"`
	Entries []domain.Entry `json:"entries"`
}

// NumberPath is one listing page of a collection.
type NumberPath struct {
	Collection string `json:"collection"`
	Page       int    `json:"page"`
}

// Published keeps entries with published set, slugifies their tags and
// sorts them by date, newest first. A missing date counts as the epoch so
// undated entries sort last. The input is left untouched.
func Published(entries []domain.Entry) []domain.Entry {
	out := make([]domain.Entry, 0, len(entries))
	for _, e := range entries {
		if !e.Data.Published {
			continue
		}
		c := e.Clone()
		c.Data.Tags = slugifyTags(e.Data.Tags)
		out = append(out, c)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Data.Timestamp() > out[j].Data.Timestamp()
	})
	return out
}

func slugifyTags(tags []string) []string {
	out := make([]string, len(tags))
	for i, t := range tags {
		out[i] = format.Slugify(t)
	}
	return out
}

// GroupByCategory groups entries by collection. Groups are sorted by
// collection name; entries keep their relative order.
func GroupByCategory(entries []domain.Entry) []CategoryGroup {
	index := make(map[string]int)
	var groups []CategoryGroup
	for _, e := range entries {
		i, ok := index[e.Collection]
		if !ok {
			i = len(groups)
			index[e.Collection] = i
			groups = append(groups, CategoryGroup{Collection: e.Collection})
		}
		groups[i].Entries = append(groups[i].Entries, e)
	}

	sort.Slice(groups, func(i, j int) bool {
		return groups[i].Collection < groups[j].Collection
	})
	return groups
}

// FilterByCollection keeps the entries of one collection.
func FilterByCollection(entries []domain.Entry, collection string) []domain.Entry {
	out := []domain.Entry{}
	for _, e := range entries {
		if e.Collection == collection {
			out = append(out, e)
		}
	}
	return out
}

// ByYear returns a copy of entries sorted by year, most recent first.
// Undated entries come first, which is the opposite of Published.
// Entries of the same year keep their relative order.
func ByYear(entries []domain.Entry) []domain.Entry {
	out := append([]domain.Entry(nil), entries...)
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i].Data.Date, out[j].Data.Date
		switch {
		case a == nil:
			return b != nil
		case b == nil:
			return false
		default:
			return a.UTC().Year() > b.UTC().Year()
		}
	})
	return out
}

// GroupByYear sorts entries with ByYear and groups consecutive years.
func GroupByYear(entries []domain.Entry) []YearGroup {
	var groups []YearGroup
	for _, e := range ByYear(entries) {
		year := 0
		if e.Data.Date != nil {
			year = e.Data.Date.UTC().Year()
		}
		if n := len(groups); n == 0 || groups[n-1].Year != year {
			groups = append(groups, YearGroup{Year: year})
		}
		last := &groups[len(groups)-1]
		last.Entries = append(last.Entries, e)
	}
	return groups
}

// FilterByTag keeps the entries whose tags contain tag.
func FilterByTag(entries []domain.Entry, tag string) []domain.Entry {
	out := []domain.Entry{}
	for _, e := range entries {
		if e.HasTag(tag) {
			out = append(out, e)
		}
	}
	return out
}

// IsSimpleCollection reports whether a collection is rendered as a single
// page: true when at least one of its entries is an index entry.
func IsSimpleCollection(entries []domain.Entry) bool {
	for _, e := range entries {
		if e.Data.Index {
			return true
		}
	}
	return false
}

// CollectionNumberPaths expands groups into their listing pages.
func CollectionNumberPaths(groups []CategoryGroup, pageSize func(collection string) int) []NumberPath {
	var paths []NumberPath
	for _, g := range groups {
		for _, page := range pagination.PageNumbers(len(g.Entries), pageSize(g.Collection)) {
			paths = append(paths, NumberPath{Collection: g.Collection, Page: page})
		}
	}
	return paths
}
