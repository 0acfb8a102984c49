package rdf

import (
	"context"
	"log/slog"
)

const (
	DefaultMaxDepth      = 1000
	DefaultMaxInputBytes = 256 << 20

	SafeMaxDepth      = 64
	SafeMaxInputBytes = 16 << 20
)

// normalizeOptions fills zero values with defaults.
// Negative limits disable the limit.
func normalizeOptions(opts Options) Options {
	if opts.Context == nil {
		opts.Context = context.Background()
	}
	if opts.MaxDepth == 0 {
		opts.MaxDepth = DefaultMaxDepth
	}
	if opts.MaxInputBytes == 0 {
		opts.MaxInputBytes = DefaultMaxInputBytes
	}
	if opts.Namespaces == nil {
		opts.Namespaces = DefaultNamespaces()
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}
	return opts
}
