package domain

import "time"

// Bookmark is a link saved in the bookmarking service, normalized for the
// site.
type Bookmark struct {
	// ─────────────────────────────
	// Identity (immutable)
	// ─────────────────────────────

	// ID is the numeric identifier assigned by the bookmarking service.
	ID int64 `json:"_id"`

	// CollectionID references BookmarkCollection.ID.
	CollectionID int64 `json:"collectionId"`

	// ─────────────────────────────
	// Display
	// ─────────────────────────────

	Title   string `json:"title"`
	Excerpt string `json:"excerpt"`
	Link    string `json:"link"`

	// Cover is nil when the bookmark has no cover image. Always https.
	Cover *string `json:"cover,omitempty"`

	// Tags holds at most three tags.
	Tags []string `json:"tags"`

	Favorite bool `json:"favorite"`

	// ─────────────────────────────
	// Metadata
	// ─────────────────────────────

	// Created is the creation timestamp as sent by the service (ISO 8601).
	Created string `json:"created"`
}

// CreatedAt parses Created. Unparseable values map to the zero time.
func (b Bookmark) CreatedAt() time.Time {
	t, err := time.Parse(time.RFC3339, b.Created)
	if err != nil {
		return time.Time{}
	}
	return t
}

// BookmarkCollection is a bookmark folder scoped to the site. Title has the
// site marker already stripped.
type BookmarkCollection struct {
	ID          int64  `json:"_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Count       int    `json:"count"`
	Created     string `json:"created"`
}

// ReadingEntry is a bookmark shaped like a content entry so it can be listed
// next to posts.
type ReadingEntry struct {
	Collection string           `json:"collection"`
	Link       string           `json:"link"`
	External   bool             `json:"external"`
	Data       ReadingEntryData `json:"data"`
}

type ReadingEntryData struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Date        string `json:"date"`
}
