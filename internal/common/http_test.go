package common

import (
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func response(status int, body string) *http.Response {
	return &http.Response{StatusCode: status, Body: io.NopCloser(strings.NewReader(body))}
}

func TestCheckStatus(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		wantErr   bool
		retryable bool
		rateLimit bool
	}{
		{name: "ok", status: http.StatusOK},
		{name: "not found is permanent", status: http.StatusNotFound, wantErr: true},
		{name: "server error is retryable", status: http.StatusBadGateway, wantErr: true, retryable: true},
		{name: "rate limited", status: http.StatusTooManyRequests, wantErr: true, retryable: true, rateLimit: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckStatus(response(tt.status, "details"))
			if !tt.wantErr {
				require.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.ErrorIs(t, err, ErrUnexpectedStatus)
			assert.Contains(t, err.Error(), "details")
			assert.Equal(t, tt.rateLimit, errors.Is(err, ErrRateLimit))

			var re *RetryableError
			permanent := errors.As(err, &re) && !re.Retryable
			assert.Equal(t, tt.retryable, !permanent)
		})
	}
}
