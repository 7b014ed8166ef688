package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	ListenPort      string        // ex: ":8080"
	ShutdownTimeout time.Duration // ex: 5s
	RequestTimeout  time.Duration // per-request deadline of the JSON API

	LogLevel  string // "debug" | "info" | "warn" | "error"
	PrettyLog bool   // true => zap dev (color), false => zap prod (JSON)

	SiteFile   string // path to site.yaml (empty = built-in site)
	ContentDir string // root of the markdown collections
	Warmup     bool   // fill caches and build the route index before serving
	LatestSize int    // entries and readings shown by the "latest" feed

	// Access
	AllowedCIDRS []string // optional, restrict healthz/readyz to these IPs/CIDRs (e.g. "10.0.0.0/8, 127.0.0.1")
	TrustProxy   bool     // true => trust CF-Connecting-IP / X-Forwarded-For headers
	RateBurst    int      // per-IP burst of the JSON API (0 = no limit)
	RatePerMin   int      // per-IP sustained requests per minute

	// Outbound HTTP
	HTTPTimeout time.Duration // timeout of every outbound API request

	// Raindrop (bookmarks)
	RaindropAPIURL string  // ex: https://api.raindrop.io/rest/v1
	RaindropToken  string  // bearer token, sensitive
	RaindropRPS    float64 // outbound requests per second (0 = unlimited)

	// Last.fm (music)
	LastfmAPIURL string  // ex: https://ws.audioscrobbler.com/2.0/
	LastfmAPIKey string  // sensitive
	LastfmUser   string  // account whose scrobbles are shown
	LastfmRPS    float64 // outbound requests per second (0 = unlimited)

	Site *Site
}

// Load reads the environment and the site file. Invalid site configuration
// is fatal: the process must not start with a page size it cannot paginate.
func Load() *Config {
	cfg := &Config{
		// Server settings
		ListenPort:      getenv("GARDEN_LISTEN_PORT", ":8080"),
		ShutdownTimeout: mustDuration("GARDEN_SHUTDOWN_TIMEOUT", 5*time.Second),
		RequestTimeout:  mustDuration("GARDEN_REQUEST_TIMEOUT", 30*time.Second),

		// Logging
		LogLevel:  getenv("GARDEN_LOG_LEVEL", "info"),
		PrettyLog: mustBool("GARDEN_PRETTY_LOG", true),

		// Content
		SiteFile:   getenv("GARDEN_SITE_FILE", ""),
		ContentDir: getenv("GARDEN_CONTENT_DIR", "./content"),
		Warmup:     mustBool("GARDEN_WARMUP", true),
		LatestSize: getenvInt("GARDEN_LATEST_SIZE", 5),

		// Access
		AllowedCIDRS: splitAndTrim(getenv("GARDEN_ALLOWED_CIDRS", "")),
		TrustProxy:   mustBool("GARDEN_TRUST_PROXY", false),
		RateBurst:    getenvInt("GARDEN_RATE_BURST", 60),
		RatePerMin:   getenvInt("GARDEN_RATE_PER_MIN", 120),

		HTTPTimeout: mustDuration("GARDEN_HTTP_TIMEOUT", 15*time.Second),

		// Raindrop
		RaindropAPIURL: getenv("GARDEN_RAINDROP_API_URL", "https://api.raindrop.io/rest/v1"),
		RaindropToken:  getenv("GARDEN_RAINDROP_TOKEN", ""),
		RaindropRPS:    getenvFloat("GARDEN_RAINDROP_RPS", 2),

		// Last.fm
		LastfmAPIURL: getenv("GARDEN_LASTFM_API_URL", "https://ws.audioscrobbler.com/2.0/"),
		LastfmAPIKey: getenv("GARDEN_LASTFM_API_KEY", ""),
		LastfmUser:   getenv("GARDEN_LASTFM_USER", "ansango"),
		LastfmRPS:    getenvFloat("GARDEN_LASTFM_RPS", 5),
	}

	site, err := loadSiteOrDefault(cfg.SiteFile)
	if err != nil {
		panic(fmt.Sprintf("❌ FATAL: %v", err))
	}
	cfg.Site = site

	// Log config only in debug mode with redacted sensitive fields
	if cfg.LogLevel == "debug" {
		cfgCopy := *cfg
		cfgCopy.RaindropToken = redact(cfg.RaindropToken)
		cfgCopy.LastfmAPIKey = redact(cfg.LastfmAPIKey)
		cfgCopy.Site = nil
		log.Printf("[DEBUG] cfg: %+v\n", cfgCopy)
	}

	return cfg
}

func loadSiteOrDefault(path string) (*Site, error) {
	if path == "" {
		site := DefaultSite()
		if err := site.Validate(); err != nil {
			return nil, fmt.Errorf("invalid built-in site: %w", err)
		}
		return site, nil
	}
	return LoadSite(path)
}

func redact(secret string) string {
	if secret == "" {
		return ""
	}
	return "***REDACTED***"
}

// helpers
func splitAndTrim(s string) []string {
	if s == "" {
		return nil
	}
	raw := strings.Split(s, ",")
	parts := make([]string, 0, len(raw))
	for _, part := range raw {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	return parts
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func getenvFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f >= 0 {
			return f
		}
	}
	return def
}

func mustBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func mustDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
