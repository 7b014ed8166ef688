package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/MrSnakeDoc/garden/internal/domain"
)

// Page keys of the site that are not content collections.
const (
	PageHome      = "home"
	PageTags      = "tags"
	PageArchive   = "archive"
	PageReading   = "reading"
	PageBookmarks = "bookmarks"
	PageMusic     = "music"
)

// MaxEntriesPerPage bounds Meta.EntriesPerPage.
const MaxEntriesPerPage = 50

// Site is the static description of the website, read from site.yaml.
type Site struct {
	// Name is the site marker used to scope bookmark collections.
	// Example: "ansango" keeps the bookmark collection "ansango.reading".
	Name        string `yaml:"name"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	URL         string `yaml:"url"`
	Lang        string `yaml:"lang"`
	Author      string `yaml:"author"`

	Pages       map[string]domain.Meta `yaml:"pages"`
	Collections []CollectionDef        `yaml:"collections"`
	Navigation  []NavGroup             `yaml:"navigation"`
}

// CollectionDef declares a content collection: where its markdown lives and
// the defaults applied to its front matter.
type CollectionDef struct {
	Name    string `yaml:"name"`
	Base    string `yaml:"base"`    // directory relative to the content root
	Pattern string `yaml:"pattern"` // "**/*.md" or a file name
	Index   bool   `yaml:"index"`   // default of the index front matter field
}

// NavGroup is a titled group of links of the site navigation.
type NavGroup struct {
	Name  string    `yaml:"name"`
	Items []NavItem `yaml:"items"`
}

// NavItem references a page by key, or carries its own link.
type NavItem struct {
	Page string       `yaml:"page,omitempty"`
	Link *domain.Meta `yaml:"link,omitempty"`
}

// NavLink is a resolved, published navigation entry.
type NavLink struct {
	Key  string      `json:"key"`
	Meta domain.Meta `json:"meta"`
}

// NavSection is a navigation group with only published links.
type NavSection struct {
	Name  string    `json:"name"`
	Links []NavLink `json:"links"`
}

// LoadSite reads and validates a site.yaml file.
func LoadSite(path string) (*Site, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read site file: %w", err)
	}
	return ParseSite(data)
}

// ParseSite decodes a site descriptor. Unknown fields are rejected.
func ParseSite(data []byte) (*Site, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var site Site
	if err := dec.Decode(&site); err != nil {
		return nil, fmt.Errorf("failed to parse site yaml: %w", err)
	}

	site.applyDefaults()
	if err := site.Validate(); err != nil {
		return nil, err
	}
	return &site, nil
}

func (s *Site) applyDefaults() {
	if s.Lang == "" {
		s.Lang = "es-ES"
	}
	for i := range s.Collections {
		c := &s.Collections[i]
		if c.Base == "" {
			c.Base = c.Name
		}
		if c.Pattern == "" {
			c.Pattern = "**/*.md"
		}
	}
}

// Validate checks the invariants the pipeline relies on. Every failure is a
// startup error.
func (s *Site) Validate() error {
	var errs []error

	if s.Name == "" {
		errs = append(errs, errors.New("site name is required"))
	}
	for key, meta := range s.Pages {
		if meta.EntriesPerPage < 0 || meta.EntriesPerPage > MaxEntriesPerPage {
			errs = append(errs, fmt.Errorf("page %q: entriesPerPage must be between 0 and %d, got %d",
				key, MaxEntriesPerPage, meta.EntriesPerPage))
		}
	}
	for _, key := range []string{PageHome, PageTags, PageArchive, PageReading, PageBookmarks} {
		if _, ok := s.Pages[key]; !ok {
			errs = append(errs, fmt.Errorf("page %q is not declared", key))
		}
	}

	if len(s.Collections) == 0 {
		errs = append(errs, errors.New("at least one collection is required"))
	}
	seen := make(map[string]bool, len(s.Collections))
	for _, c := range s.Collections {
		switch {
		case c.Name == "":
			errs = append(errs, errors.New("collection name is required"))
			continue
		case seen[c.Name]:
			errs = append(errs, fmt.Errorf("collection %q declared twice", c.Name))
		}
		seen[c.Name] = true

		if _, ok := s.Pages[c.Name]; !ok {
			errs = append(errs, fmt.Errorf("collection %q has no page meta", c.Name))
		}
	}

	for _, g := range s.Navigation {
		for _, item := range g.Items {
			if item.Page == "" && item.Link == nil {
				errs = append(errs, fmt.Errorf("navigation %q: item needs a page or a link", g.Name))
				continue
			}
			if item.Page != "" {
				if _, ok := s.Pages[item.Page]; !ok {
					errs = append(errs, fmt.Errorf("navigation %q: unknown page %q", g.Name, item.Page))
				}
			}
		}
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid site configuration: %w", err)
	}
	return nil
}

// Page returns the meta of a page. Unknown keys yield a zero Meta, whose
// PageSize is the default.
func (s *Site) Page(key string) domain.Meta {
	return s.Pages[key]
}

// PageSize is Page(key).PageSize().
func (s *Site) PageSize(key string) int {
	return s.Page(key).PageSize()
}

// CollectionNames lists the collections in declaration order.
func (s *Site) CollectionNames() []string {
	names := make([]string, len(s.Collections))
	for i, c := range s.Collections {
		names[i] = c.Name
	}
	return names
}

// Collection returns the declaration of a collection.
func (s *Site) Collection(name string) (CollectionDef, bool) {
	for _, c := range s.Collections {
		if c.Name == name {
			return c, true
		}
	}
	return CollectionDef{}, false
}

// NavigationTree resolves the navigation groups, keeping published links
// only. Groups left empty are dropped.
func (s *Site) NavigationTree() []NavSection {
	sections := make([]NavSection, 0, len(s.Navigation))
	for _, g := range s.Navigation {
		section := NavSection{Name: g.Name, Links: []NavLink{}}
		for _, item := range g.Items {
			link := NavLink{Key: item.Page}
			if item.Link != nil {
				link.Meta = *item.Link
				if link.Key == "" {
					link.Key = item.Link.Title
				}
			} else {
				link.Meta = s.Pages[item.Page]
			}
			if link.Meta.Published {
				section.Links = append(section.Links, link)
			}
		}
		if len(section.Links) > 0 {
			sections = append(sections, section)
		}
	}
	return sections
}
