// Package calendar talks to the parliamentary calendar API for session dates
// and Commons sitting days.
package calendar

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Veraticus/papers-index/internal/common"
	"github.com/Veraticus/papers-index/internal/service"
)

const (
	dayLayout       = "2006-01-02"
	timestampLayout = "2006-01-02T15:04:05"
)

// Client queries the calendar API.
type Client struct {
	httpClient *http.Client
	now        func() time.Time
	baseURL    string
	retry      service.RetryOptions
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

// NewClient creates a client rooted at baseURL, e.g.
// https://whatson-api.parliament.uk/calendar.
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
		retry:      common.DefaultRetryOptions(),
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type session struct {
	EndDate            *string `json:"EndDate"`
	CommonsDescription string  `json:"CommonsDescription"`
	StartDate          string  `json:"StartDate"`
	SessionID          int     `json:"SessionId"`
}

// SessionDates returns the range to request papers for in the session with
// the given code. The range starts the day after the previous session ended,
// or on the session's own start date when there is no previous session.
// A session that has not ended runs to today.
func (c *Client) SessionDates(ctx context.Context, code string) (service.DateRange, error) {
	var sessions []session
	if err := c.getJSON(ctx, "sessions/list.json", nil, &sessions); err != nil {
		return service.DateRange{}, fmt.Errorf("failed to list sessions: %w", err)
	}

	byID := make(map[int]session, len(sessions))
	target := -1
	for _, s := range sessions {
		byID[s.SessionID] = s
		if s.CommonsDescription == code {
			target = s.SessionID
		}
	}
	if target == -1 {
		return service.DateRange{}, fmt.Errorf("%w: %q", common.ErrSessionNotFound, code)
	}

	current := byID[target]

	var start time.Time
	var err error
	if prev, ok := byID[target-1]; ok && prev.EndDate != nil {
		start, err = parseDay(*prev.EndDate)
		start = start.AddDate(0, 0, 1)
	} else {
		start, err = parseDay(current.StartDate)
	}
	if err != nil {
		return service.DateRange{}, err
	}

	end := c.now().UTC().Truncate(24 * time.Hour)
	if current.EndDate != nil {
		if end, err = parseDay(*current.EndDate); err != nil {
			return service.DateRange{}, err
		}
	}

	slog.Debug("Resolved session dates",
		"session", code,
		"start", start.Format(dayLayout),
		"end", end.Format(dayLayout))

	return service.DateRange{Start: start, End: end}, nil
}

// SittingDate returns day if the Commons sits on it, otherwise the next
// sitting day.
func (c *Client) SittingDate(ctx context.Context, day time.Time) (time.Time, error) {
	params := url.Values{}
	params.Set("dateToCheck", day.AddDate(0, 0, -1).Format(dayLayout))

	var next string
	if err := c.getJSON(ctx, "proceduraldates/Commons/nextsittingdate.json", params, &next); err != nil {
		return time.Time{}, fmt.Errorf("failed to get next sitting date after %s: %w", day.Format(dayLayout), err)
	}

	sitting, err := time.Parse(timestampLayout, next)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: sitting date %q", common.ErrInvalidResponse, next)
	}
	return sitting, nil
}

func (c *Client) getJSON(ctx context.Context, path string, params url.Values, out any) error {
	u := c.baseURL + "/" + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	return common.WithRetry(ctx, "calendar "+path, func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
		if err != nil {
			return common.Permanent(fmt.Errorf("failed to create request: %w", err))
		}
		req.Header.Set("Accept", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return fmt.Errorf("request failed: %w", err)
		}
		defer func() { _ = resp.Body.Close() }()

		if err := common.CheckStatus(resp); err != nil {
			return err
		}

		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return common.Permanent(fmt.Errorf("%w: %w", common.ErrInvalidResponse, err))
		}
		return nil
	}, c.retry)
}

func parseDay(s string) (time.Time, error) {
	if len(s) < len(dayLayout) {
		return time.Time{}, fmt.Errorf("%w: date %q", common.ErrInvalidResponse, s)
	}
	d, err := time.Parse(dayLayout, s[:len(dayLayout)])
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: date %q", common.ErrInvalidResponse, s)
	}
	return d, nil
}
