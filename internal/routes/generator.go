// Package routes enumerates every route the site renders, each with the
// params and props the renderer needs.
package routes

import (
	"context"
	"net/url"
	"sort"
	"strconv"
	"strings"

	"github.com/MrSnakeDoc/garden/internal/collections"
	"github.com/MrSnakeDoc/garden/internal/config"
	"github.com/MrSnakeDoc/garden/internal/domain"
	"github.com/MrSnakeDoc/garden/internal/pagination"
	"github.com/MrSnakeDoc/garden/internal/sources/raindrop"
)

// Route group names, in the order All returns them.
const (
	GroupPages         = "pages"
	GroupCollections   = "collections"
	GroupEntries       = "entries"
	GroupArchive       = "archive"
	GroupTags          = "tags"
	GroupTagPages      = "tag-pages"
	GroupReading       = "reading"
	GroupBookmarks     = "bookmarks"
	GroupBookmarkPages = "bookmark-pages"
)

// Props carries what a route renders besides its params. Entry is nil for
// listing pages that have no single backing entry.
type Props struct {
	Entry *domain.Entry `json:"entry"`
	Tag   string        `json:"tag,omitempty"`
}

type Route struct {
	Group  string            `json:"group"`
	Path   string            `json:"path"`
	Params map[string]string `json:"params"`
	Props  Props             `json:"props"`
}

type Group struct {
	Name   string  `json:"name"`
	Routes []Route `json:"routes"`
}

// Content is the part of the collection aggregator the generator uses.
type Content interface {
	Names() []string
	Published(ctx context.Context) ([]domain.Entry, error)
	SortedByYear(ctx context.Context) ([]domain.Entry, error)
	UniqueTags(ctx context.Context) ([]string, error)
	NumberPaths(ctx context.Context, pageSize func(collection string) int) ([]collections.NumberPath, error)
}

// Bookmarks is the part of the bookmark service the generator uses.
type Bookmarks interface {
	Data(ctx context.Context) (*raindrop.Data, error)
	CollectionsExcluding(ctx context.Context, title string) ([]domain.BookmarkCollection, error)
	BookmarksByCollection(ctx context.Context, title string) ([]domain.Bookmark, error)
}

// Generator enumerates routes. Paginated listings never list their first
// page: the unpaginated route of the listing already serves it.
type Generator struct {
	site      *config.Site
	content   Content
	bookmarks Bookmarks
}

func NewGenerator(site *config.Site, content Content, bookmarks Bookmarks) *Generator {
	return &Generator{site: site, content: content, bookmarks: bookmarks}
}

// Pages returns the published standalone pages of the site (home, tags,
// archive...). Pages backed by a collection are left to Collections and
// pages linking off site are skipped.
func (g *Generator) Pages() []Route {
	isCollection := make(map[string]bool)
	for _, name := range g.content.Names() {
		isCollection[name] = true
	}

	keys := make([]string, 0, len(g.site.Pages))
	for key := range g.site.Pages {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	routes := []Route{}
	for _, key := range keys {
		meta := g.site.Pages[key]
		if !meta.Published || isCollection[key] || !strings.HasPrefix(meta.URL, "/") {
			continue
		}
		routes = append(routes, Route{
			Group:  GroupPages,
			Path:   meta.URL,
			Params: map[string]string{"page": key},
		})
	}
	return routes
}

// Collections returns one route per configured collection.
func (g *Generator) Collections() []Route {
	names := g.content.Names()
	routes := make([]Route, 0, len(names))
	for _, name := range names {
		routes = append(routes, Route{
			Group:  GroupCollections,
			Path:   "/" + name,
			Params: map[string]string{"collection": name},
		})
	}
	return routes
}

// CollectionSlugs returns a route per published, non index entry followed
// by a route per listing page past the first of every collection.
func (g *Generator) CollectionSlugs(ctx context.Context) ([]Route, error) {
	published, err := g.content.Published(ctx)
	if err != nil {
		return nil, err
	}

	routes := []Route{}
	for i := range published {
		e := published[i]
		if e.Data.Index {
			continue
		}
		routes = append(routes, Route{
			Group:  GroupEntries,
			Path:   "/" + e.Collection + "/" + escapeSegments(e.ID),
			Params: map[string]string{"collection": e.Collection, "slug": escapeSegments(e.ID)},
			Props:  Props{Entry: &e},
		})
	}

	pages, err := g.content.NumberPaths(ctx, g.site.PageSize)
	if err != nil {
		return nil, err
	}
	for _, p := range pages {
		if p.Page == 1 {
			continue
		}
		slug := strconv.Itoa(p.Page)
		routes = append(routes, Route{
			Group:  GroupEntries,
			Path:   "/" + p.Collection + "/" + slug,
			Params: map[string]string{"collection": p.Collection, "slug": slug},
		})
	}
	return routes, nil
}

// ArchivePages returns the archive listing pages past the first.
func (g *Generator) ArchivePages(ctx context.Context) ([]Route, error) {
	sorted, err := g.content.SortedByYear(ctx)
	if err != nil {
		return nil, err
	}
	return pageRoutes(GroupArchive, "/archive", nil, len(sorted), g.site.PageSize(config.PageArchive)), nil
}

// Tags returns one route per tag of the published entries.
func (g *Generator) Tags(ctx context.Context) ([]Route, error) {
	tags, err := g.content.UniqueTags(ctx)
	if err != nil {
		return nil, err
	}

	routes := make([]Route, 0, len(tags))
	for _, tag := range tags {
		escaped := url.PathEscape(tag)
		routes = append(routes, Route{
			Group:  GroupTags,
			Path:   "/tags/" + escaped,
			Params: map[string]string{"tag": escaped},
			Props:  Props{Tag: tag},
		})
	}
	return routes, nil
}

// TagPages returns, for every tag, its listing pages past the first.
func (g *Generator) TagPages(ctx context.Context) ([]Route, error) {
	published, err := g.content.Published(ctx)
	if err != nil {
		return nil, err
	}
	tags := collections.UniqueTags(published)
	size := g.site.PageSize(config.PageTags)

	routes := []Route{}
	for _, tag := range tags {
		escaped := url.PathEscape(tag)
		count := len(collections.FilterByTag(published, tag))
		routes = append(routes, pageRoutes(GroupTagPages, "/tags/"+escaped, map[string]string{"tag": escaped}, count, size)...)
	}
	return routes, nil
}

// ReadingPages returns the reading list pages past the first.
func (g *Generator) ReadingPages(ctx context.Context) ([]Route, error) {
	reading, err := g.bookmarks.BookmarksByCollection(ctx, raindrop.ReadingCollection)
	if err != nil {
		return nil, err
	}
	return pageRoutes(GroupReading, "/reading", nil, len(reading), g.site.PageSize(config.PageReading)), nil
}

// BookmarkCollections returns one route per bookmark collection except the
// reading list, which has a page of its own.
func (g *Generator) BookmarkCollections(ctx context.Context) ([]Route, error) {
	cols, err := g.bookmarks.CollectionsExcluding(ctx, raindrop.ReadingCollection)
	if err != nil {
		return nil, err
	}

	routes := make([]Route, 0, len(cols))
	for _, c := range cols {
		escaped := url.PathEscape(c.Title)
		routes = append(routes, Route{
			Group:  GroupBookmarks,
			Path:   "/bookmarks/" + escaped,
			Params: map[string]string{"collection": escaped},
		})
	}
	return routes, nil
}

// BookmarkCollectionPages returns the listing pages past the first of every
// bookmark collection.
func (g *Generator) BookmarkCollectionPages(ctx context.Context) ([]Route, error) {
	data, err := g.bookmarks.Data(ctx)
	if err != nil {
		return nil, err
	}

	counts := make(map[int64]int)
	for _, b := range data.Bookmarks {
		counts[b.CollectionID]++
	}

	size := g.site.PageSize(config.PageBookmarks)
	routes := []Route{}
	for _, c := range data.Collections {
		escaped := url.PathEscape(c.Title)
		routes = append(routes, pageRoutes(GroupBookmarkPages, "/bookmarks/"+escaped, map[string]string{"collection": escaped}, counts[c.ID], size)...)
	}
	return routes, nil
}

// All runs every generator and returns the groups in a fixed order.
func (g *Generator) All(ctx context.Context) ([]Group, error) {
	groups := []Group{
		{Name: GroupPages, Routes: g.Pages()},
		{Name: GroupCollections, Routes: g.Collections()},
	}

	steps := []struct {
		name string
		run  func(context.Context) ([]Route, error)
	}{
		{GroupEntries, g.CollectionSlugs},
		{GroupArchive, g.ArchivePages},
		{GroupTags, g.Tags},
		{GroupTagPages, g.TagPages},
		{GroupReading, g.ReadingPages},
		{GroupBookmarks, g.BookmarkCollections},
		{GroupBookmarkPages, g.BookmarkCollectionPages},
	}
	for _, s := range steps {
		routes, err := s.run(ctx)
		if err != nil {
			return nil, err
		}
		groups = append(groups, Group{Name: s.name, Routes: routes})
	}
	return groups, nil
}

// Flatten concatenates the routes of groups.
func Flatten(groups []Group) []Route {
	var n int
	for _, g := range groups {
		n += len(g.Routes)
	}
	out := make([]Route, 0, n)
	for _, g := range groups {
		out = append(out, g.Routes...)
	}
	return out
}

// pageRoutes lists pages 2..n of a listing of total items under base. Every
// route gets params plus the page number.
func pageRoutes(group, base string, params map[string]string, total, size int) []Route {
	routes := []Route{}
	for _, page := range pagination.PageNumbers(total, size) {
		if page == 1 {
			continue
		}
		p := make(map[string]string, len(params)+1)
		for k, v := range params {
			p[k] = v
		}
		p["page"] = strconv.Itoa(page)
		routes = append(routes, Route{
			Group:  group,
			Path:   base + "/" + p["page"],
			Params: p,
		})
	}
	return routes
}

func escapeSegments(id string) string {
	parts := strings.Split(id, "/")
	for i, p := range parts {
		parts[i] = url.PathEscape(p)
	}
	return strings.Join(parts, "/")
}
