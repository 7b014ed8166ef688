package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/text/language"

	"github.com/MrSnakeDoc/garden/internal/cache"
	"github.com/MrSnakeDoc/garden/internal/collections"
	"github.com/MrSnakeDoc/garden/internal/config"
	"github.com/MrSnakeDoc/garden/internal/domain"
	"github.com/MrSnakeDoc/garden/internal/httpserver"
	"github.com/MrSnakeDoc/garden/internal/httpserver/deps"
	"github.com/MrSnakeDoc/garden/internal/index"
	"github.com/MrSnakeDoc/garden/internal/logger"
	"github.com/MrSnakeDoc/garden/internal/routes"
	"github.com/MrSnakeDoc/garden/internal/scheduler"
	"github.com/MrSnakeDoc/garden/internal/sources/content"
	"github.com/MrSnakeDoc/garden/internal/sources/lastfm"
	"github.com/MrSnakeDoc/garden/internal/sources/raindrop"
	"github.com/MrSnakeDoc/garden/internal/tree"
	"github.com/MrSnakeDoc/garden/internal/version"
)

// ErrMusicDisabled is returned by music operations when no Last.fm API key
// or user is configured.
var ErrMusicDisabled = errors.New("music is not configured (set GARDEN_LASTFM_API_KEY and GARDEN_LASTFM_USER)")

type App struct {
	cfg       *config.Config
	logger    logger.Logger
	content   *collections.Aggregator
	trees     *tree.Builder
	bookmarks *raindrop.Service
	music     *lastfm.Service // nil when Last.fm is not configured
	generator *routes.Generator
	index     *index.RouteIndex
	warmer    *scheduler.Warmer
	server    *httpserver.Server
}

// New loads the configuration and wires every component. Nothing is
// fetched until Run or one of the query methods is called.
func New() *App {
	cfg := config.Load()
	return NewWithConfig(cfg, logger.New(cfg.LogLevel, cfg.PrettyLog))
}

// NewWithConfig wires the application from an already loaded configuration.
func NewWithConfig(cfg *config.Config, loggerClient logger.Logger) *App {
	site := cfg.Site
	lang := siteLanguage(site.Lang, loggerClient)

	// Content
	loader := content.NewLoader(cfg.ContentDir, site.Collections, loggerClient)
	aggregator := collections.New(loader, site.CollectionNames(), cache.NewSlot[[]domain.Entry](), loggerClient)

	// Bookmarks
	if cfg.RaindropToken == "" {
		loggerClient.Warn("raindrop token not set, bookmark pages will be empty")
	}
	raindropClient := raindrop.NewClient(raindrop.ClientOptions{
		BaseURL: cfg.RaindropAPIURL,
		Token:   cfg.RaindropToken,
		Timeout: cfg.HTTPTimeout,
		RPS:     cfg.RaindropRPS,
	}, loggerClient)
	bookmarks := raindrop.NewService(raindropClient, raindrop.NewMapper(site.Name, lang), nil, loggerClient)

	// Music (optional)
	var music *lastfm.Service
	var musicSource scheduler.MusicSource
	if cfg.LastfmAPIKey != "" && cfg.LastfmUser != "" {
		lastfmClient := lastfm.NewClient(lastfm.ClientOptions{
			BaseURL: cfg.LastfmAPIURL,
			APIKey:  cfg.LastfmAPIKey,
			Timeout: cfg.HTTPTimeout,
			RPS:     cfg.LastfmRPS,
		}, loggerClient)
		music = lastfm.NewService(lastfmClient, cfg.LastfmUser, nil, loggerClient)
		musicSource = music
	} else {
		loggerClient.Info("last.fm not configured, music disabled")
	}

	generator := routes.NewGenerator(site, aggregator, bookmarks)
	routeIndex := index.NewRouteIndex()
	warmer := scheduler.NewWarmer(aggregator, bookmarks, musicSource, generator, routeIndex, loggerClient)

	d := deps.Deps{
		Logger:       loggerClient,
		StartTime:    time.Now(),
		Version:      version.Version,
		Commit:       version.Commit,
		BuildDate:    version.BuildDate,
		GoVersion:    version.GoVersion,
		TimeNow:      time.Now,
		AllowedCIDRS: cfg.AllowedCIDRS,
		TrustProxy:   cfg.TrustProxy,
		RateLimit:    deps.RateLimit{Burst: cfg.RateBurst, PerMinute: cfg.RatePerMin},
		LatestSize:   cfg.LatestSize,
		Site:         site,
		Content:      aggregator,
		Trees:        tree.NewBuilder(lang),
		Bookmarks:    bookmarks,
		Music:        music,
		Routes:       routeIndex,
	}

	return &App{
		cfg:       cfg,
		logger:    loggerClient,
		content:   aggregator,
		trees:     d.Trees,
		bookmarks: bookmarks,
		music:     music,
		generator: generator,
		index:     routeIndex,
		warmer:    warmer,
		server:    httpserver.New(cfg, loggerClient, d),
	}
}

func siteLanguage(tag string, log logger.Logger) language.Tag {
	if tag == "" {
		return language.English
	}
	lang, err := language.Parse(tag)
	if err != nil {
		log.Warn("invalid site language, using en", logger.String("lang", tag), logger.Error(err))
		return language.English
	}
	return lang
}

func (a *App) Logger() logger.Logger { return a.logger }

// Run serves the API until SIGINT/SIGTERM. With warm-up enabled the caches
// and the route index are built before the listener starts; otherwise the
// warm-up runs in the background and /readyz reports 503 until it is done.
func (a *App) Run() error {
	a.logger.Infof("🚀 Starting Garden %s on %s", version.Version, a.cfg.ListenPort)
	a.logger.Info(version.String())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if a.cfg.Warmup {
		if err := a.warmer.Warm(ctx); err != nil {
			return fmt.Errorf("warm-up failed: %w", err)
		}
	}

	errCh := make(chan error, 2)
	go func() {
		if err := a.server.Start(); err != nil {
			errCh <- fmt.Errorf("http server error: %w", err)
		}
	}()

	if !a.cfg.Warmup {
		go func() {
			if err := a.warmer.Warm(ctx); err != nil && ctx.Err() == nil {
				a.logger.Error("background warm-up failed", logger.Error(err))
			}
		}()
	}

	select {
	case <-ctx.Done():
		a.logger.Info("⏳ Shutting down gracefully...")
	case err := <-errCh:
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()
	if err := a.server.Stop(shutdownCtx); err != nil {
		return fmt.Errorf("failed to stop server: %w", err)
	}

	a.logger.Info("✅ Garden stopped cleanly")
	_ = a.logger.Sync()
	return nil
}

// Routes runs every route generator.
func (a *App) Routes(ctx context.Context) ([]routes.Group, error) {
	return a.generator.All(ctx)
}

// Tree builds the navigation tree of a collection.
func (a *App) Tree(ctx context.Context, collection string, filesFirst bool) ([]domain.NodeItem, error) {
	if _, ok := a.cfg.Site.Collection(collection); !ok {
		return nil, fmt.Errorf("unknown collection %q", collection)
	}
	entries, err := a.content.Collection(ctx, collection)
	if err != nil {
		return nil, err
	}
	nodes := a.trees.Build(entries, collection)
	if filesFirst {
		nodes = a.trees.SortFilesFirst(nodes)
	}
	return nodes, nil
}

// Music fetches the listening snapshot.
func (a *App) Music(ctx context.Context) (*domain.Music, error) {
	if a.music == nil {
		return nil, ErrMusicDisabled
	}
	return a.music.Data(ctx)
}

// Bookmarks fetches every bookmark and the site collections.
func (a *App) Bookmarks(ctx context.Context) (*raindrop.Data, error) {
	return a.bookmarks.Data(ctx)
}
