package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
)

// Validation errors.
var (
	ErrNilContext  = errors.New("context cannot be nil")
	ErrEmptyString = errors.New("string parameter cannot be empty")
	ErrInvalidDate = errors.New("invalid date")
)

// validateContext ensures the context is not nil.
func validateContext(ctx context.Context) error {
	if ctx == nil {
		return ErrNilContext
	}
	return nil
}

// validateString ensures a string parameter is not empty.
func validateString(s string, paramName string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: %s", ErrEmptyString, paramName)
	}
	return nil
}

// validateDates rejects zero dates and a sitting date before the day it answers for.
func validateDates(day, sitting time.Time) error {
	if day.IsZero() || sitting.IsZero() {
		return fmt.Errorf("%w: zero date", ErrInvalidDate)
	}
	if sitting.Format(dayLayout) < day.Format(dayLayout) {
		return fmt.Errorf("%w: sitting date %s is before %s", ErrInvalidDate, sitting.Format(dayLayout), day.Format(dayLayout))
	}
	return nil
}
