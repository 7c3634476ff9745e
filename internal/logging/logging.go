package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

// Setup points the default slog logger at the append-only log file, mirrored
// to stderr. The returned file stays open for the process lifetime; the
// caller closes it on shutdown.
func Setup(logFile string) (*os.File, error) {
	f, err := os.OpenFile(logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}

	handler := slog.NewTextHandler(io.MultiWriter(f, os.Stderr), nil)
	slog.SetDefault(slog.New(handler))

	return f, nil
}
