package rdf

import (
	"context"
	"io"
	"log/slog"
)

// Cursor iterates over the rows of a result document.
//
// A cursor is single-threaded: it must not be used from more than one
// goroutine at a time. Values returned by StringValue are valid until the
// next call to Next or Close.
type Cursor interface {
	// NColumns returns the number of columns of each row.
	NColumns() int
	// Next advances to the next row. It returns false with a nil error
	// when the document is exhausted. A context that is done stops the
	// cursor before any further input is read.
	Next(ctx context.Context) (bool, error)
	// ValueType returns the type of a column of the current row.
	ValueType(column int) ValueType
	// VariableName returns the name of a column, if it has one.
	VariableName(column int) (string, bool)
	// StringValue returns the lexical form and language tag of a column.
	// ok is false for unbound or out-of-range columns.
	StringValue(column int) (value, lang string, ok bool)
	// Close releases the input. It is safe to call more than once.
	Close() error
}

// NextAsync advances c and reports the outcome to done.
// done is always invoked exactly once, from the calling goroutine.
func NextAsync(ctx context.Context, c Cursor, done func(more bool, err error)) {
	more, err := c.Next(ctx)
	done(more, err)
}

// NewCursor creates a cursor for the specified format.
// If format is FormatAuto, the format is detected from the input.
// The cursor owns r: Close closes it when it implements io.Closer.
func NewCursor(r io.Reader, format Format, opts ...Option) (Cursor, error) {
	if format == FormatAuto {
		detected, reader, ok := DetectFormat(r)
		if !ok {
			return nil, ErrUnsupportedFormat
		}
		format = detected
		r = readCloser(reader, r)
	}

	switch format {
	case FormatJSONLD:
		return NewJSONLDCursor(r, opts...), nil
	case FormatXMLResults:
		return NewXMLCursor(r, opts...), nil
	default:
		return nil, ErrUnsupportedFormat
	}
}

// Option configures cursor behavior.
type Option func(*Options)

// Options configures cursor behavior.
type Options struct {
	// Context cancels input reads made while the cursor is constructed.
	Context context.Context

	// Namespaces expands compact IRIs. JSON-LD @context prefixes are added
	// to it. Nil uses a fresh DefaultNamespaces per cursor.
	Namespaces NamespaceManager

	// Logger receives cursor diagnostics. Nil discards them.
	Logger *slog.Logger

	// Security limits for untrusted input
	MaxDepth      int
	MaxInputBytes int64

	// ExpandJSONLD runs JSON-LD expansion before reading rows.
	ExpandJSONLD bool
	// BaseIRI resolves relative IRIs during expansion.
	BaseIRI string
	// DocumentLoader resolves remote contexts during expansion.
	DocumentLoader DocumentLoader
}

// Option helpers

// OptContext sets the context for reads made during construction.
func OptContext(ctx context.Context) Option {
	return func(opts *Options) {
		opts.Context = ctx
	}
}

// OptNamespaces sets the namespace manager.
func OptNamespaces(ns NamespaceManager) Option {
	return func(opts *Options) {
		opts.Namespaces = ns
	}
}

// OptLogger sets the logger.
func OptLogger(logger *slog.Logger) Option {
	return func(opts *Options) {
		opts.Logger = logger
	}
}

// OptMaxDepth sets the maximum nesting depth limit.
func OptMaxDepth(maxDepth int) Option {
	return func(opts *Options) {
		opts.MaxDepth = maxDepth
	}
}

// OptMaxInputBytes sets the maximum input size.
func OptMaxInputBytes(maxBytes int64) Option {
	return func(opts *Options) {
		opts.MaxInputBytes = maxBytes
	}
}

// OptSafeLimits applies safe limits suitable for untrusted input.
func OptSafeLimits() Option {
	return func(opts *Options) {
		safe := safeOptions()
		opts.MaxDepth = safe.MaxDepth
		opts.MaxInputBytes = safe.MaxInputBytes
	}
}

// OptExpandJSONLD enables JSON-LD expansion before reading.
// Expanded documents support the full context model (@vocab, term
// definitions, remote contexts) at the cost of document member order.
func OptExpandJSONLD() Option {
	return func(opts *Options) {
		opts.ExpandJSONLD = true
	}
}

// OptBaseIRI sets the base IRI used by JSON-LD expansion.
func OptBaseIRI(base string) Option {
	return func(opts *Options) {
		opts.BaseIRI = base
	}
}

// OptDocumentLoader sets the loader for remote JSON-LD contexts.
func OptDocumentLoader(loader DocumentLoader) Option {
	return func(opts *Options) {
		opts.DocumentLoader = loader
	}
}

// Internal helpers

func defaultOptions() Options {
	return Options{
		MaxDepth:      DefaultMaxDepth,
		MaxInputBytes: DefaultMaxInputBytes,
	}
}

func safeOptions() Options {
	return Options{
		MaxDepth:      SafeMaxDepth,
		MaxInputBytes: SafeMaxInputBytes,
	}
}

func buildOptions(opts []Option) Options {
	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}
	return normalizeOptions(options)
}

type replayCloser struct {
	io.Reader
	io.Closer
}

// readCloser keeps the Close of the original input reachable from a
// wrapping reader.
func readCloser(wrapped, original io.Reader) io.Reader {
	if c, ok := original.(io.Closer); ok {
		return replayCloser{Reader: wrapped, Closer: c}
	}
	return wrapped
}
