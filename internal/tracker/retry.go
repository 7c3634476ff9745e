package tracker

import (
	"errors"
	"log/slog"
)

const retryAttempts = 3

// Retry invokes op up to three times with no backoff, logging every failed
// attempt. After the last failure the final error is returned to the caller.
// Validation failures are not retried: the input won't get better.
func Retry(op func() error) error {
	var err error
	for attempt := 1; attempt <= retryAttempts; attempt++ {
		if err = op(); err == nil {
			return nil
		}
		if errors.Is(err, ErrValidation) {
			return err
		}
		slog.Error("attempt failed", "attempt", attempt, "error", err)
		if attempt < retryAttempts {
			slog.Info("retrying")
		}
	}
	slog.Error("all attempts failed", "error", err)
	return err
}
