package paperslaid

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/Veraticus/papers-index/internal/common"
	"github.com/Veraticus/papers-index/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dayFeed(day string, ids ...string) string {
	papers := ""
	for _, id := range ids {
		papers += fmt.Sprintf("<Paper><Id>%s</Id><Title>Paper %s</Title><DateLaidCommons>%sT00:00:00</DateLaidCommons></Paper>", id, id, day)
	}
	return "<ArrayOfDailyPapers><DailyPapers><Papers>" + papers + "</Papers></DailyPapers></ArrayOfDailyPapers>"
}

func fastRetry() service.RetryOptions {
	return service.RetryOptions{MaxAttempts: 2, InitialDelay: time.Millisecond, MaxDelay: time.Millisecond, Multiplier: 1}
}

func dateRange(from, to string) service.DateRange {
	start, _ := time.Parse(dayLayout, from)
	end, _ := time.Parse(dayLayout, to)
	return service.DateRange{Start: start, End: end}
}

func TestClient_FetchRange_OldestFirst(t *testing.T) {
	byDay := map[string][]string{
		"2016-05-19": {"1", "2"},
		"2016-05-20": {},
		"2016-05-21": {"3"},
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, q.Get("fromDate"), q.Get("toDate"))
		assert.Equal(t, "commons", q.Get("house"))

		day := q.Get("fromDate")
		if day == "2016-05-19" {
			// finish last
			time.Sleep(20 * time.Millisecond)
		}
		_, _ = fmt.Fprint(w, dayFeed(day, byDay[day]...))
	}))
	defer srv.Close()

	var progress atomic.Int32
	c := NewClient(srv.URL,
		WithHTTPClient(srv.Client()),
		WithRetryOptions(fastRetry()),
		WithWorkers(3),
		WithProgress(func() { progress.Add(1) }))

	records, err := c.FetchRange(context.Background(), dateRange("2016-05-19", "2016-05-21"))
	require.NoError(t, err)

	ids := make([]string, len(records))
	for i, r := range records {
		ids[i] = r.ID
	}
	assert.Equal(t, []string{"1", "2", "3"}, ids)
	assert.Equal(t, int32(3), progress.Load())
}

func TestClient_FetchRange_FailureStopsFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("fromDate") == "2016-05-20" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		_, _ = fmt.Fprint(w, dayFeed(r.URL.Query().Get("fromDate"), "1"))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, WithHTTPClient(srv.Client()), WithRetryOptions(fastRetry()), WithWorkers(1))

	records, err := c.FetchRange(context.Background(), dateRange("2016-05-19", "2016-05-25"))
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrUnexpectedStatus)
	assert.Contains(t, err.Error(), "2016-05-20")
	assert.Nil(t, records)
}

func TestClient_FetchRange_EmptyRange(t *testing.T) {
	c := NewClient("http://unused.invalid")

	records, err := c.FetchRange(context.Background(), dateRange("2016-05-21", "2016-05-19"))
	require.NoError(t, err)
	assert.Empty(t, records)
}
