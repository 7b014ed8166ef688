package content

import (
	"bytes"
	"errors"
	"fmt"
	"path"
	"strings"
	"unicode/utf8"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
	"gopkg.in/yaml.v3"

	"github.com/MrSnakeDoc/garden/internal/domain"
	"github.com/MrSnakeDoc/garden/internal/format"
)

const minDescription = 10

var (
	ErrNoFrontMatter      = errors.New("missing front matter")
	ErrInvalidFrontMatter = errors.New("invalid front matter")
)

// Mapper turns markdown files into domain entries.
type Mapper struct {
	md goldmark.Markdown
}

func NewMapper() *Mapper {
	return &Mapper{
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithParserOptions(parser.WithAutoHeadingID()),
			goldmark.WithRendererOptions(html.WithUnsafe()),
		),
	}
}

// MapEntry builds the entry of collection stored at rel, a slash separated
// path relative to the collection directory. defaultIndex is used when the
// front matter does not set index.
func (m *Mapper) MapEntry(collection, rel string, defaultIndex bool, raw []byte) (domain.Entry, error) {
	header, body, err := splitFrontMatter(raw)
	if err != nil {
		return domain.Entry{}, err
	}

	var fm FrontMatter
	if err := yaml.Unmarshal(header, &fm); err != nil {
		return domain.Entry{}, fmt.Errorf("%w: %w", ErrInvalidFrontMatter, err)
	}
	if err := fm.validate(); err != nil {
		return domain.Entry{}, err
	}

	var rendered bytes.Buffer
	if err := m.md.Convert(body, &rendered); err != nil {
		return domain.Entry{}, fmt.Errorf("failed to render markdown: %w", err)
	}

	index := defaultIndex
	if fm.Index != nil {
		index = *fm.Index
	}
	published := false
	if fm.Published != nil {
		published = *fm.Published
	}
	tags := fm.Tags
	if tags == nil {
		tags = []string{}
	}

	return domain.Entry{
		ID:         EntryID(rel),
		Collection: collection,
		Data: domain.EntryData{
			Title:       fm.Title,
			Description: fm.Description,
			Tags:        tags,
			Date:        fm.Date.ptr(),
			Mod:         fm.Mod.ptr(),
			Index:       index,
			Published:   published,
		},
		Body:     string(body),
		Rendered: rendered.String(),
	}, nil
}

func (fm FrontMatter) validate() error {
	var errs []error
	if strings.TrimSpace(fm.Title) == "" {
		errs = append(errs, errors.New("title is required"))
	}
	if fm.Description != "" && utf8.RuneCountInString(fm.Description) < minDescription {
		errs = append(errs, fmt.Errorf("description must be at least %d characters", minDescription))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidFrontMatter, errors.Join(errs...))
	}
	return nil
}

// EntryID derives the entry id from its relative path: the extension is
// dropped and every segment slugified.
// Example: "Guides/Docker Compose.md" -> "guides/docker-compose"
func EntryID(rel string) string {
	rel = strings.TrimSuffix(rel, path.Ext(rel))
	parts := strings.Split(rel, "/")
	segments := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := format.Slugify(p); s != "" {
			segments = append(segments, s)
		}
	}
	return strings.Join(segments, "/")
}

// splitFrontMatter separates the YAML header fenced by "---" lines from the
// markdown body.
func splitFrontMatter(raw []byte) (header, body []byte, err error) {
	raw = bytes.TrimPrefix(raw, []byte("\xef\xbb\xbf"))
	raw = bytes.ReplaceAll(raw, []byte("\r\n"), []byte("\n"))

	if !bytes.HasPrefix(raw, []byte("---\n")) {
		return nil, nil, ErrNoFrontMatter
	}
	rest := raw[len("---\n"):]

	if bytes.HasPrefix(rest, []byte("---")) {
		return nil, trimFenceLine(rest), nil
	}

	end := bytes.Index(rest, []byte("\n---"))
	if end < 0 {
		return nil, nil, fmt.Errorf("%w: unterminated front matter", ErrInvalidFrontMatter)
	}
	return rest[:end+1], trimFenceLine(rest[end+1:]), nil
}

// trimFenceLine drops the closing fence line at the start of b.
func trimFenceLine(b []byte) []byte {
	if i := bytes.IndexByte(b, '\n'); i >= 0 {
		return b[i+1:]
	}
	return nil
}
