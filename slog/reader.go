package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/websearch"
)

// Ensure Reader implements websearch.Reader at compile time.
var _ websearch.Reader = (*Reader)(nil)

// Reader wraps a content reader with retrieval logging.
type Reader struct {
	next   websearch.Reader
	logger *slog.Logger
}

// NewReader creates a new logging Reader.
func NewReader(next websearch.Reader, logger *slog.Logger) *Reader {
	return &Reader{next: next, logger: logger}
}

// Read delegates to the wrapped reader, logging content size and duration.
func (r *Reader) Read(ctx context.Context, url string) (string, error) {
	begin := time.Now()
	content, err := r.next.Read(ctx, url)
	if err != nil {
		r.logger.Warn("content retrieval failed",
			"url", url,
			"duration", time.Since(begin),
			"error", err,
		)
		return "", err
	}
	r.logger.Info("content retrieved",
		"url", url,
		"chars", len(content),
		"duration", time.Since(begin),
	)
	return content, nil
}
