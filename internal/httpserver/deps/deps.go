package deps

import (
	"time"

	"github.com/MrSnakeDoc/garden/internal/collections"
	"github.com/MrSnakeDoc/garden/internal/config"
	"github.com/MrSnakeDoc/garden/internal/index"
	"github.com/MrSnakeDoc/garden/internal/logger"
	"github.com/MrSnakeDoc/garden/internal/sources/lastfm"
	"github.com/MrSnakeDoc/garden/internal/sources/raindrop"
	"github.com/MrSnakeDoc/garden/internal/tree"
)

type Deps struct {
	Logger       logger.Logger
	StartTime    time.Time
	Version      string
	Commit       string
	BuildDate    string
	GoVersion    string
	TimeNow      func() time.Time        // for testing, defaults to time.Now
	AllowedCIDRS []string                // IPs allowed to access healthz/readyz endpoints
	TrustProxy   bool                    // true if running behind a trusted reverse proxy (e.g., cloudflared)
	RateLimit    RateLimit               // per-IP limits of the /api routes
	LatestSize   int                     // entries and readings returned by /api/latest
	Site         *config.Site            // static site description
	Content      *collections.Aggregator // markdown collections
	Trees        *tree.Builder           // navigation trees of hierarchical collections
	Bookmarks    *raindrop.Service       // Raindrop bookmarks and reading list
	Music        *lastfm.Service         // Last.fm listening data (nil if not configured)
	Routes       *index.RouteIndex       // routes built by the warmer
}

type RateLimit struct {
	Burst     int // 0 disables limiting
	PerMinute int
}
