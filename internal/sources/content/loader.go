// Package content loads the markdown collections of the site from disk.
package content

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/MrSnakeDoc/garden/internal/config"
	"github.com/MrSnakeDoc/garden/internal/domain"
	"github.com/MrSnakeDoc/garden/internal/logger"
)

const recursivePrefix = "**/"

// Loader reads collections from a content root. It implements
// collections.Source.
type Loader struct {
	root   string
	defs   map[string]config.CollectionDef
	mapper *Mapper
	logger logger.Logger
}

// NewLoader creates a loader for the collections declared in defs, rooted
// at root.
func NewLoader(root string, defs []config.CollectionDef, log logger.Logger) *Loader {
	byName := make(map[string]config.CollectionDef, len(defs))
	for _, d := range defs {
		byName[d.Name] = d
	}
	return &Loader{
		root:   root,
		defs:   byName,
		mapper: NewMapper(),
		logger: log.Named("content"),
	}
}

// Load returns every entry of collection, in file path order. A missing
// collection directory yields no entries; any unreadable or invalid file
// fails the whole load.
func (l *Loader) Load(ctx context.Context, collection string) ([]domain.Entry, error) {
	def, ok := l.defs[collection]
	if !ok {
		return nil, fmt.Errorf("unknown collection %q", collection)
	}

	dir := filepath.Join(l.root, filepath.FromSlash(def.Base))
	files, err := l.match(dir, def.Pattern)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			l.logger.Warn("collection directory not found", logger.String("collection", collection), logger.String("dir", dir))
			return []domain.Entry{}, nil
		}
		return nil, fmt.Errorf("failed to list %s: %w", dir, err)
	}

	entries := make([]domain.Entry, 0, len(files))
	for _, rel := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		raw, err := os.ReadFile(filepath.Join(dir, filepath.FromSlash(rel)))
		if err != nil {
			return nil, fmt.Errorf("failed to read %s/%s: %w", def.Base, rel, err)
		}

		entry, err := l.mapper.MapEntry(collection, rel, def.Index, raw)
		if err != nil {
			return nil, fmt.Errorf("%s/%s: %w", def.Base, rel, err)
		}
		entries = append(entries, entry)
	}

	l.logger.Debug("collection loaded", logger.String("collection", collection), logger.Int("entries", len(entries)))
	return entries, nil
}

// match lists the files of dir matching pattern as sorted, slash separated
// relative paths. "**/<glob>" matches <glob> against file names at any
// depth; any other pattern is matched against paths relative to dir.
func (l *Loader) match(dir, pattern string) ([]string, error) {
	if _, err := os.Stat(dir); err != nil {
		return nil, err
	}

	recursive := strings.HasPrefix(pattern, recursivePrefix)
	glob := strings.TrimPrefix(pattern, recursivePrefix)
	if _, err := path.Match(glob, ""); err != nil {
		return nil, fmt.Errorf("invalid pattern %q: %w", pattern, err)
	}

	var files []string
	err := filepath.WalkDir(dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(dir, p)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)

		if d.IsDir() {
			if rel != "." && (!recursive || strings.HasPrefix(d.Name(), ".")) {
				return filepath.SkipDir
			}
			return nil
		}

		target := rel
		if recursive {
			target = d.Name()
		}
		if ok, _ := path.Match(glob, target); ok {
			files = append(files, rel)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(files)
	return files, nil
}
