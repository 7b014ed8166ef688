// Package scheduler runs the one-shot warm-up that fills the process caches
// and builds the route index.
package scheduler

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/MrSnakeDoc/garden/internal/domain"
	"github.com/MrSnakeDoc/garden/internal/index"
	"github.com/MrSnakeDoc/garden/internal/logger"
	"github.com/MrSnakeDoc/garden/internal/routes"
	"github.com/MrSnakeDoc/garden/internal/sources/raindrop"
)

type ContentLoader interface {
	LoadAll(ctx context.Context) ([]domain.Entry, error)
}

type BookmarkSource interface {
	Data(ctx context.Context) (*raindrop.Data, error)
}

type MusicSource interface {
	Data(ctx context.Context) (*domain.Music, error)
}

type RouteGenerator interface {
	All(ctx context.Context) ([]routes.Group, error)
}

// Warmer fills the caches once and builds the route index from them. There
// is no periodic refresh: cached data lives as long as the process.
type Warmer struct {
	content   ContentLoader
	bookmarks BookmarkSource
	music     MusicSource // nil when music is not configured
	generator RouteGenerator
	index     *index.RouteIndex
	logger    logger.Logger
}

// NewWarmer creates a warmer. music may be nil.
func NewWarmer(
	content ContentLoader,
	bookmarks BookmarkSource,
	music MusicSource,
	generator RouteGenerator,
	idx *index.RouteIndex,
	log logger.Logger,
) *Warmer {
	return &Warmer{
		content:   content,
		bookmarks: bookmarks,
		music:     music,
		generator: generator,
		index:     idx,
		logger:    log,
	}
}

// Warm loads content, bookmarks and music concurrently, then builds the
// route index. Content errors fail the warm-up. Music is optional: a failure
// is logged and the music cache stays empty for the next caller to retry.
func (w *Warmer) Warm(ctx context.Context) error {
	start := time.Now()
	w.logger.Info("warming caches")

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		entries, err := w.content.LoadAll(gctx)
		if err != nil {
			return fmt.Errorf("failed to load content: %w", err)
		}
		w.logger.Info("content loaded", logger.Int("entries", len(entries)))
		return nil
	})
	g.Go(func() error {
		if _, err := w.bookmarks.Data(gctx); err != nil {
			return fmt.Errorf("failed to load bookmarks: %w", err)
		}
		return nil
	})
	if w.music != nil {
		g.Go(func() error {
			if _, err := w.music.Data(gctx); err != nil {
				w.logger.Warn("music not available, will retry on first request", logger.Error(err))
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	groups, err := w.generator.All(ctx)
	if err != nil {
		return fmt.Errorf("failed to generate routes: %w", err)
	}

	if dups := w.index.Replace(groups); dups > 0 {
		w.logger.Warn("duplicate route paths dropped", logger.Int("count", dups))
	}

	w.logger.Info("route index built",
		logger.Int("routes", w.index.Count()),
		logger.Duration("took", time.Since(start)),
	)
	return nil
}
