package domain

// DefaultPageSize is used wherever a page meta declares no entries per page.
const DefaultPageSize = 10

// Meta describes a page of the site: its SEO fields and how many entries
// one listing page shows. Defined once in the site configuration and read
// only for the life of the process.
type Meta struct {
	Title       string `yaml:"title" json:"title"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`

	// EntriesPerPage is 0 for pages that are never paginated.
	EntriesPerPage int `yaml:"entriesPerPage" json:"entriesPerPage"`

	URL       string `yaml:"url,omitempty" json:"url,omitempty"`
	Blank     bool   `yaml:"blank,omitempty" json:"blank,omitempty"`
	Published bool   `yaml:"published,omitempty" json:"published"`
}

// PageSize returns EntriesPerPage, falling back to DefaultPageSize for
// pages declared without one.
func (m Meta) PageSize() int {
	if m.EntriesPerPage > 0 {
		return m.EntriesPerPage
	}
	return DefaultPageSize
}
