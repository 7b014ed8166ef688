package raindrop

import (
	"context"
	"sort"

	"github.com/MrSnakeDoc/garden/internal/cache"
	"github.com/MrSnakeDoc/garden/internal/domain"
	"github.com/MrSnakeDoc/garden/internal/logger"
)

// ReadingCollection is the collection listed on the reading page instead
// of the bookmarks section.
const ReadingCollection = "reading"

// Fetcher is the part of Client the service depends on.
type Fetcher interface {
	FetchAll(ctx context.Context, collectionID int64) ([]Raindrop, error)
	FetchRootCollections(ctx context.Context) (*CollectionsResponse, error)
}

// Data is the cached bookmark snapshot.
type Data struct {
	Bookmarks   []domain.Bookmark           `json:"bookmarks"`
	Collections []domain.BookmarkCollection `json:"collections"`
}

type Service struct {
	fetcher Fetcher
	mapper  *Mapper
	slot    *cache.Slot[*Data]
	logger  logger.Logger
}

// NewService wires the bookmark service. A nil slot gets a fresh one.
func NewService(f Fetcher, m *Mapper, slot *cache.Slot[*Data], log logger.Logger) *Service {
	if slot == nil {
		slot = cache.NewSlot[*Data]()
	}
	return &Service{
		fetcher: f,
		mapper:  m,
		slot:    slot,
		logger:  log.Named("raindrop"),
	}
}

// Data returns every bookmark and the site collections. The first call hits
// the API, later calls return the same *Data.
//
// A failed request degrades its half of the snapshot to what could be
// fetched (possibly nothing). Only a cancelled context is reported as an
// error, and then nothing is cached.
func (s *Service) Data(ctx context.Context) (*Data, error) {
	return s.slot.Get(ctx, s.fetch)
}

func (s *Service) fetch(ctx context.Context) (*Data, error) {
	items, err := s.fetcher.FetchAll(ctx, AllCollections)
	if err != nil {
		s.logger.Warn("bookmarks are incomplete", logger.Int("kept", len(items)), logger.Error(err))
	}

	collections := []domain.BookmarkCollection{}
	root, err := s.fetcher.FetchRootCollections(ctx)
	if err != nil {
		s.logger.Error("failed to fetch bookmark collections", logger.Error(err))
	} else {
		collections = s.mapper.Collections(root.Items)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data := &Data{
		Bookmarks:   s.mapper.Bookmarks(items),
		Collections: collections,
	}
	s.logger.Info("bookmarks loaded",
		logger.Int("bookmarks", len(data.Bookmarks)),
		logger.Int("collections", len(data.Collections)),
	)
	return data, nil
}

// CollectionsExcluding returns the site collections without the one titled
// title.
func (s *Service) CollectionsExcluding(ctx context.Context, title string) ([]domain.BookmarkCollection, error) {
	data, err := s.Data(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]domain.BookmarkCollection, 0, len(data.Collections))
	for _, c := range data.Collections {
		if c.Title != title {
			out = append(out, c)
		}
	}
	return out, nil
}

// Collection looks a site collection up by its (marker-less) title.
func (s *Service) Collection(ctx context.Context, title string) (domain.BookmarkCollection, bool, error) {
	data, err := s.Data(ctx)
	if err != nil {
		return domain.BookmarkCollection{}, false, err
	}
	for _, c := range data.Collections {
		if c.Title == title {
			return c, true, nil
		}
	}
	return domain.BookmarkCollection{}, false, nil
}

// BookmarksByCollection returns the bookmarks of the collection titled
// title. An unknown title yields an empty list.
func (s *Service) BookmarksByCollection(ctx context.Context, title string) ([]domain.Bookmark, error) {
	c, ok, err := s.Collection(ctx, title)
	if err != nil {
		return nil, err
	}
	if !ok {
		s.logger.Warn("bookmark collection not found", logger.String("collection", title))
		return []domain.Bookmark{}, nil
	}

	data, err := s.Data(ctx)
	if err != nil {
		return nil, err
	}

	out := []domain.Bookmark{}
	for _, b := range data.Bookmarks {
		if b.CollectionID == c.ID {
			out = append(out, b)
		}
	}
	return out, nil
}

// LatestReading returns the newest limit bookmarks of the reading
// collection.
func (s *Service) LatestReading(ctx context.Context, limit int) ([]domain.Bookmark, error) {
	reading, err := s.BookmarksByCollection(ctx, ReadingCollection)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(reading, func(i, j int) bool {
		return reading[i].CreatedAt().After(reading[j].CreatedAt())
	})

	if limit < 0 {
		limit = 0
	}
	if limit < len(reading) {
		reading = reading[:limit]
	}
	return reading, nil
}

// LatestReadingEntries is LatestReading shaped like content entries.
func (s *Service) LatestReadingEntries(ctx context.Context, limit int) ([]domain.ReadingEntry, error) {
	latest, err := s.LatestReading(ctx, limit)
	if err != nil {
		return nil, err
	}

	out := make([]domain.ReadingEntry, 0, len(latest))
	for _, b := range latest {
		out = append(out, domain.ReadingEntry{
			Collection: ReadingCollection,
			Link:       b.Link,
			External:   true,
			Data: domain.ReadingEntryData{
				Title:       b.Title,
				Description: b.Excerpt,
				Date:        b.Created,
			},
		})
	}
	return out, nil
}

// Loaded reports whether the snapshot has been fetched.
func (s *Service) Loaded() bool {
	return s.slot.Loaded()
}
