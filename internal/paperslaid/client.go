package paperslaid

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/Veraticus/papers-index/internal/common"
	"github.com/Veraticus/papers-index/internal/model"
	"github.com/Veraticus/papers-index/internal/service"
	"golang.org/x/sync/errgroup"
)

const dayLayout = "2006-01-02"

// Client downloads the daily papers feed.
type Client struct {
	httpClient *http.Client
	onDay      func()
	baseURL    string
	retry      service.RetryOptions
	workers    int
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithRetryOptions replaces the default retry policy.
func WithRetryOptions(opts service.RetryOptions) Option {
	return func(c *Client) { c.retry = opts }
}

// WithWorkers sets how many days are fetched at once.
func WithWorkers(n int) Option {
	return func(c *Client) {
		if n > 0 {
			c.workers = n
		}
	}
}

// WithProgress registers a callback run after each day is fetched.
// It may be called from several goroutines.
func WithProgress(fn func()) Option {
	return func(c *Client) { c.onDay = fn }
}

// NewClient creates a client for the daily.xml endpoint at baseURL.
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		retry:      common.DefaultRetryOptions(),
		workers:    4,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// FetchRange fetches every day in dates and returns the Commons papers
// oldest day first. The first failure cancels the remaining requests.
func (c *Client) FetchRange(ctx context.Context, dates service.DateRange) ([]model.RawRecord, error) {
	days := dates.Days()
	results := make([][]model.RawRecord, len(days))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(c.workers)

	for i, day := range days {
		g.Go(func() error {
			records, err := c.fetchDay(ctx, day)
			if err != nil {
				return err
			}
			results[i] = records
			if c.onDay != nil {
				c.onDay()
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	var all []model.RawRecord
	for _, records := range results {
		all = append(all, records...)
	}

	slog.Info("Downloaded papers",
		"from", dates.Start.Format(dayLayout),
		"to", dates.End.Format(dayLayout),
		"days", len(days),
		"papers", len(all))

	return all, nil
}

func (c *Client) fetchDay(ctx context.Context, day time.Time) ([]model.RawRecord, error) {
	params := url.Values{}
	params.Set("fromDate", day.Format(dayLayout))
	params.Set("toDate", day.Format(dayLayout))
	params.Set("house", "commons")
	u := c.baseURL + "?" + params.Encode()

	var records []model.RawRecord
	err := common.WithRetry(ctx, "papers "+day.Format(dayLayout), func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
		if err != nil {
			return common.Permanent(fmt.Errorf("failed to create request: %w", err))
		}
		req.Header.Set("Accept", "application/xml")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return fmt.Errorf("request failed: %w", err)
		}
		defer func() { _ = resp.Body.Close() }()

		if err := common.CheckStatus(resp); err != nil {
			return err
		}

		records, err = ParseDailyPapers(resp.Body)
		if err != nil {
			return common.Permanent(err)
		}
		return nil
	}, c.retry)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch papers for %s: %w", day.Format(dayLayout), err)
	}

	slog.Debug("Fetched day", "day", day.Format(dayLayout), "papers", len(records))
	return records, nil
}
