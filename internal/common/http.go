package common

import (
	"fmt"
	"io"
	"net/http"
	"strings"
)

// CheckStatus turns a non-200 response into an error. 429 and 5xx are left
// retryable; other client errors are marked permanent.
func CheckStatus(resp *http.Response) error {
	if resp.StatusCode == http.StatusOK {
		return nil
	}

	body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
	err := fmt.Errorf("%w: %d %s", ErrUnexpectedStatus, resp.StatusCode, strings.TrimSpace(string(body)))

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return fmt.Errorf("%w: %w", ErrRateLimit, err)
	case resp.StatusCode >= 500:
		return err
	default:
		return Permanent(err)
	}
}
