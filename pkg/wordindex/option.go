package wordindex

import (
	"io"
	"log/slog"
)

type Option func(*WordIndex) *WordIndex

func DefaultOptions() *WordIndex {
	return &WordIndex{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithLogger sets the logger used to trace bulk loads and removals.
func WithLogger(logger *slog.Logger) Option {
	return func(w *WordIndex) *WordIndex {
		if logger != nil {
			w.logger = logger
		}
		return w
	}
}
