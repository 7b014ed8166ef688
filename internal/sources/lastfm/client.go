package lastfm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/time/rate"

	"github.com/MrSnakeDoc/garden/internal/logger"
	"github.com/MrSnakeDoc/garden/internal/utils"
)

const (
	Period7Day   = "7day"
	Period1Month = "1month"
)

const maxBody = 4 << 20

var ErrFetch = errors.New("last.fm request failed")

type ClientOptions struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
	// RPS caps outgoing requests per second. Zero or less disables the limit.
	RPS        float64
	HTTPClient *http.Client
}

type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
	limiter *rate.Limiter
	logger  logger.Logger
}

func NewClient(opts ClientOptions, log logger.Logger) *Client {
	hc := opts.HTTPClient
	if hc == nil {
		hc = &http.Client{Timeout: opts.Timeout}
	}

	limiter := rate.NewLimiter(rate.Inf, 1)
	if opts.RPS > 0 {
		limiter = rate.NewLimiter(rate.Limit(opts.RPS), 3)
	}

	return &Client{
		baseURL: opts.BaseURL,
		apiKey:  opts.APIKey,
		http:    hc,
		limiter: limiter,
		logger:  log.Named("lastfm"),
	}
}

func (c *Client) RecentTracks(ctx context.Context, user string, limit int) ([]RecentTrack, error) {
	var out RecentTracksResponse
	if err := c.call(ctx, "user.getrecenttracks", user, "", limit, &out); err != nil {
		return nil, err
	}
	return out.RecentTracks.Track, nil
}

func (c *Client) TopArtists(ctx context.Context, user, period string, limit int) ([]TopArtist, error) {
	var out TopArtistsResponse
	if err := c.call(ctx, "user.gettopartists", user, period, limit, &out); err != nil {
		return nil, err
	}
	return out.TopArtists.Artist, nil
}

func (c *Client) TopAlbums(ctx context.Context, user, period string, limit int) ([]TopAlbum, error) {
	var out TopAlbumsResponse
	if err := c.call(ctx, "user.gettopalbums", user, period, limit, &out); err != nil {
		return nil, err
	}
	return out.TopAlbums.Album, nil
}

func (c *Client) call(ctx context.Context, method, user, period string, limit int, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("%w: %w", ErrFetch, err)
	}

	q := url.Values{}
	q.Set("method", method)
	q.Set("user", user)
	q.Set("api_key", c.apiKey)
	q.Set("format", "json")
	q.Set("limit", strconv.Itoa(limit))
	if period != "" {
		q.Set("period", period)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrFetch, err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrFetch, method, err)
	}
	defer utils.DrainAndClose(resp.Body)

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrFetch, method, err)
	}

	var apiErr apiError
	if json.Unmarshal(body, &apiErr) == nil && apiErr.Code != 0 {
		return fmt.Errorf("%w: %s: error %d: %s", ErrFetch, method, apiErr.Code, apiErr.Message)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%w: %s returned HTTP %d", ErrFetch, method, resp.StatusCode)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("%w: decode %s: %w", ErrFetch, method, err)
	}

	c.logger.Debug("last.fm call",
		logger.String("method", method),
		logger.Duration("took", time.Since(start)),
	)
	return nil
}
