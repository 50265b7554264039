package common

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Veraticus/papers-index/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fastRetry = service.RetryOptions{
	MaxAttempts:  3,
	InitialDelay: time.Millisecond,
	MaxDelay:     2 * time.Millisecond,
	Multiplier:   2,
}

func TestWithRetry(t *testing.T) {
	errBoom := errors.New("boom")

	tests := []struct {
		name      string
		failures  int
		err       error
		wantCalls int
		wantErrIs error
	}{
		{name: "succeeds first time", failures: 0, wantCalls: 1},
		{name: "succeeds after transient failures", failures: 2, err: errBoom, wantCalls: 3},
		{name: "gives up after max attempts", failures: 5, err: errBoom, wantCalls: 3, wantErrIs: ErrMaxRetries},
		{name: "permanent errors are not retried", failures: 5, err: Permanent(errBoom), wantCalls: 1, wantErrIs: errBoom},
		{name: "cancellation is not retried", failures: 5, err: context.Canceled, wantCalls: 1, wantErrIs: context.Canceled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calls := 0
			err := WithRetry(context.Background(), "test", func() error {
				calls++
				if calls <= tt.failures {
					return tt.err
				}
				return nil
			}, fastRetry)

			assert.Equal(t, tt.wantCalls, calls)
			if tt.wantErrIs == nil {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErrIs)
		})
	}
}

func TestWithRetry_ContextCancelledDuringBackoff(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	err := WithRetry(ctx, "test", func() error {
		cancel()
		return errors.New("transient")
	}, service.RetryOptions{MaxAttempts: 3, InitialDelay: time.Minute})

	assert.ErrorIs(t, err, context.Canceled)
}

func TestUserError(t *testing.T) {
	err := NewUserError("could not read papers", ErrInvalidInput)

	assert.Equal(t, "could not read papers: invalid papers input", err.Error())
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Equal(t, "just a message", NewUserError("just a message", nil).Error())
}
