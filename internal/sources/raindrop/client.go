package raindrop

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/MrSnakeDoc/garden/internal/logger"
	"github.com/MrSnakeDoc/garden/internal/utils"
)

// PageSize is the number of raindrops requested per page, the API maximum.
const PageSize = 50

// AllCollections is the pseudo collection id holding every raindrop.
const AllCollections int64 = 0

var (
	ErrInvalidPageIndex = errors.New("page index must be a non-negative integer")
	ErrFetch            = errors.New("raindrop request failed")
)

type ClientOptions struct {
	BaseURL string
	Token   string
	Timeout time.Duration
	// RPS caps outgoing requests per second. Zero or less disables the limit.
	RPS float64
	// HTTPClient overrides the default client, mostly for tests.
	HTTPClient *http.Client
}

type Client struct {
	baseURL string
	token   string
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
		limiter = rate.NewLimiter(rate.Limit(opts.RPS), 1)
	}

	return &Client{
		baseURL: strings.TrimRight(opts.BaseURL, "/"),
		token:   opts.Token,
		http:    hc,
		limiter: limiter,
		logger:  log.Named("raindrop"),
	}
}

// FetchPage returns one page of the raindrops of a collection.
func (c *Client) FetchPage(ctx context.Context, collectionID int64, pageIndex int) (*RaindropsResponse, error) {
	if pageIndex < 0 {
		return nil, ErrInvalidPageIndex
	}

	q := url.Values{}
	q.Set("page", strconv.Itoa(pageIndex))
	q.Set("perpage", strconv.Itoa(PageSize))

	var out RaindropsResponse
	if err := c.get(ctx, "/raindrops/"+strconv.FormatInt(collectionID, 10), q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// FetchAll pages through a collection until the reported count is reached
// or an empty page comes back. Items are sorted newest first.
//
// When a page fails, paging stops and the items gathered so far are returned
// together with the error.
func (c *Client) FetchAll(ctx context.Context, collectionID int64) ([]Raindrop, error) {
	var (
		all     []Raindrop
		pageErr error
	)

	for page := 0; ; page++ {
		resp, err := c.FetchPage(ctx, collectionID, page)
		if err != nil {
			c.logger.Warn("stopped paging raindrops",
				logger.Int("page", page),
				logger.Int("kept", len(all)),
				logger.Error(err),
			)
			pageErr = err
			break
		}
		if len(resp.Items) == 0 {
			break
		}

		all = append(all, resp.Items...)
		c.logger.Debug("fetched raindrop page",
			logger.Int("page", page),
			logger.Int("items", len(resp.Items)),
			logger.Int("count", resp.Count),
		)
		if len(all) >= resp.Count {
			break
		}
	}

	sortByCreatedDesc(all)
	return all, pageErr
}

// FetchRootCollections returns the top level collections of the account.
func (c *Client) FetchRootCollections(ctx context.Context) (*CollectionsResponse, error) {
	var out CollectionsResponse
	if err := c.get(ctx, "/collections", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) get(ctx context.Context, path string, q url.Values, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("%w: %w", ErrFetch, err)
	}

	u := c.baseURL + path
	if len(q) > 0 {
		u += "?" + q.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrFetch, err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrFetch, err)
	}
	defer utils.DrainAndClose(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%w: %s returned HTTP %d", ErrFetch, path, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decode %s: %w", ErrFetch, path, err)
	}
	return nil
}

func sortByCreatedDesc(items []Raindrop) {
	sort.SliceStable(items, func(i, j int) bool {
		return parseCreated(items[i].Created).After(parseCreated(items[j].Created))
	})
}

func parseCreated(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
