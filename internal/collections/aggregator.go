// Package collections aggregates the content collections into the views the
// site renders: the published feed, per collection groups, per year
// archives and tag indexes.
package collections

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/MrSnakeDoc/garden/internal/cache"
	"github.com/MrSnakeDoc/garden/internal/domain"
	"github.com/MrSnakeDoc/garden/internal/logger"
)

// Source loads the raw entries of one collection.
type Source interface {
	Load(ctx context.Context, collection string) ([]domain.Entry, error)
}

// Aggregator derives every content view from a Source. Loaded entries are
// kept in the injected slot for the life of the process.
type Aggregator struct {
	source Source
	names  []string
	loaded *cache.Slot[[]domain.Entry]
	logger logger.Logger
}

// New returns an aggregator over the collections named in names, in that
// order. slot may be nil to reload on every call.
func New(source Source, names []string, slot *cache.Slot[[]domain.Entry], log logger.Logger) *Aggregator {
	return &Aggregator{
		source: source,
		names:  append([]string(nil), names...),
		loaded: slot,
		logger: log,
	}
}

// Names returns the configured collection names in declaration order.
func (a *Aggregator) Names() []string {
	return append([]string(nil), a.names...)
}

// Loaded reports whether entries are cached. Without a slot nothing ever
// is.
func (a *Aggregator) Loaded() bool {
	return a.loaded != nil && a.loaded.Loaded()
}

// LoadAll loads every collection concurrently and concatenates them in
// declaration order. Entries keep the order their collection returned them
// in.
func (a *Aggregator) LoadAll(ctx context.Context) ([]domain.Entry, error) {
	if a.loaded == nil {
		return a.load(ctx)
	}
	return a.loaded.Get(ctx, a.load)
}

func (a *Aggregator) load(ctx context.Context) ([]domain.Entry, error) {
	start := time.Now()
	results := make([][]domain.Entry, len(a.names))

	g, gctx := errgroup.WithContext(ctx)
	for i, name := range a.names {
		i, name := i, name
		g.Go(func() error {
			entries, err := a.source.Load(gctx, name)
			if err != nil {
				return fmt.Errorf("failed to load collection %q: %w", name, err)
			}
			results[i] = entries
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	total := 0
	for _, r := range results {
		total += len(r)
	}
	all := make([]domain.Entry, 0, total)
	for _, r := range results {
		all = append(all, r...)
	}

	a.logger.Debug("collections loaded",
		logger.Int("collections", len(a.names)),
		logger.Int("entries", total),
		logger.Duration("took", time.Since(start)))

	return all, nil
}

// Published returns the published entries, tags slugified, newest first.
// Undated entries come last.
func (a *Aggregator) Published(ctx context.Context) ([]domain.Entry, error) {
	all, err := a.LoadAll(ctx)
	if err != nil {
		return nil, err
	}
	return Published(all), nil
}

// ByCategory groups Published by collection, collections sorted by name.
func (a *Aggregator) ByCategory(ctx context.Context) ([]CategoryGroup, error) {
	published, err := a.Published(ctx)
	if err != nil {
		return nil, err
	}
	return GroupByCategory(published), nil
}

// Collection returns the published entries of a single collection.
func (a *Aggregator) Collection(ctx context.Context, name string) ([]domain.Entry, error) {
	published, err := a.Published(ctx)
	if err != nil {
		return nil, err
	}
	return FilterByCollection(published, name), nil
}

// SortedByYear is ByYear applied to Published.
func (a *Aggregator) SortedByYear(ctx context.Context) ([]domain.Entry, error) {
	published, err := a.Published(ctx)
	if err != nil {
		return nil, err
	}
	return ByYear(published), nil
}

// Archive groups Published by year for the archive page.
func (a *Aggregator) Archive(ctx context.Context) ([]YearGroup, error) {
	published, err := a.Published(ctx)
	if err != nil {
		return nil, err
	}
	return GroupByYear(published), nil
}

// UniqueTags returns the sorted set of tags of published entries.
func (a *Aggregator) UniqueTags(ctx context.Context) ([]string, error) {
	published, err := a.Published(ctx)
	if err != nil {
		return nil, err
	}
	return UniqueTags(published), nil
}

// TagsByLetter returns at most limit tags per leading letter.
func (a *Aggregator) TagsByLetter(ctx context.Context, limit int) ([]string, error) {
	tags, err := a.UniqueTags(ctx)
	if err != nil {
		return nil, err
	}
	return LimitTagsByLetter(tags, limit), nil
}

// TagsGroupedByLetter returns one group per letter a..z.
func (a *Aggregator) TagsGroupedByLetter(ctx context.Context) ([]LetterGroup, error) {
	tags, err := a.UniqueTags(ctx)
	if err != nil {
		return nil, err
	}
	return GroupTagsByLetter(tags), nil
}

// ByTag returns the published entries carrying tag.
func (a *Aggregator) ByTag(ctx context.Context, tag string) ([]domain.Entry, error) {
	published, err := a.Published(ctx)
	if err != nil {
		return nil, err
	}
	return FilterByTag(published, tag), nil
}

// Latest returns the n most recent published entries.
func (a *Aggregator) Latest(ctx context.Context, n int) ([]domain.Entry, error) {
	published, err := a.Published(ctx)
	if err != nil {
		return nil, err
	}
	if n < 0 {
		n = 0
	}
	return published[:min(n, len(published))], nil
}

// NumberPaths lists every listing page of every collection with published
// entries. pageSize returns the page size of a collection.
func (a *Aggregator) NumberPaths(ctx context.Context, pageSize func(collection string) int) ([]NumberPath, error) {
	groups, err := a.ByCategory(ctx)
	if err != nil {
		return nil, err
	}
	return CollectionNumberPaths(groups, pageSize), nil
}
