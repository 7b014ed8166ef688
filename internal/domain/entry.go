package domain

import "time"

// Entry is a content item of a collection (a blog post, a wiki page, the
// about page...).
//
// Entries are produced by the content loader and never mutated afterwards.
// Views derived from them (published list, tag pages, trees) work on copies.
type Entry struct {
	// ─────────────────────────────
	// Identity (immutable)
	// ─────────────────────────────

	// ID is unique within its collection. It may encode a hierarchy with
	// slash separated segments.
	// Example: guides/docker
	ID string `json:"id"`

	// Collection is the name of the collection the entry belongs to.
	// Example: blog, wiki
	Collection string `json:"collection"`

	// ─────────────────────────────
	// Front matter
	// ─────────────────────────────

	Data EntryData `json:"data"`

	// ─────────────────────────────
	// Content
	// ─────────────────────────────

	// Body is the raw markdown source.
	Body string `json:"body,omitempty"`

	// Rendered is the HTML produced by the markdown renderer.
	// Opaque to the pipeline.
	Rendered string `json:"rendered,omitempty"`
}

// EntryData is the validated front matter of an entry.
type EntryData struct {
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Tags        []string   `json:"tags"`
	Date        *time.Time `json:"date,omitempty"`
	Mod         *time.Time `json:"mod,omitempty"`

	// Index marks a singleton page that is rendered on its own and never
	// listed (about, now, uses...).
	Index bool `json:"index"`

	// Published gates visibility. Unpublished entries never leave the
	// aggregator.
	Published bool `json:"published"`
}

// Path is the canonical URL path of the entry.
func (e Entry) Path() string {
	return "/" + e.Collection + "/" + e.ID
}

// HasTag reports whether the entry carries tag verbatim.
func (e Entry) HasTag(tag string) bool {
	for _, t := range e.Data.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Timestamp returns the entry date in milliseconds since the epoch, 0 when
// the entry is undated.
func (d EntryData) Timestamp() int64 {
	if d.Date == nil {
		return 0
	}
	return d.Date.UnixMilli()
}

// Clone returns a copy that shares nothing mutable with e.
func (e Entry) Clone() Entry {
	c := e
	if e.Data.Tags != nil {
		c.Data.Tags = append([]string(nil), e.Data.Tags...)
	}
	return c
}
