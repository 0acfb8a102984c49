package rdf

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrorCode represents a programmatic error code for error handling.
type ErrorCode string

const (
	// ErrCodeUnsupportedFormat indicates an unsupported format.
	ErrCodeUnsupportedFormat ErrorCode = "UNSUPPORTED_FORMAT"
	// ErrCodeParseError indicates malformed input structure.
	ErrCodeParseError ErrorCode = "PARSE_ERROR"
	// ErrCodeReaderError indicates a failure of the underlying JSON/XML reader.
	ErrCodeReaderError ErrorCode = "READER_ERROR"
	// ErrCodeCancelled indicates the context was cancelled before a read.
	ErrCodeCancelled ErrorCode = "CANCELLED"
	// ErrCodeInternal indicates a broken cursor invariant.
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
	// ErrCodeDepthExceeded indicates that nesting depth exceeded the configured limit.
	ErrCodeDepthExceeded ErrorCode = "DEPTH_EXCEEDED"
	// ErrCodeInputTooLarge indicates the input exceeded the configured size limit.
	ErrCodeInputTooLarge ErrorCode = "INPUT_TOO_LARGE"
	// ErrCodeUnbound indicates a typed accessor was used on an unbound column.
	ErrCodeUnbound ErrorCode = "UNBOUND"
)

var (
	// ErrUnsupportedFormat indicates an unsupported format.
	ErrUnsupportedFormat = errors.New("rdf: unsupported result format")
	// ErrCancelled is wrapped by errors returned when the context is done.
	ErrCancelled = errors.New("rdf: operation was cancelled")
	// ErrInternal indicates a cursor invariant violation (a bug).
	ErrInternal = errors.New("rdf: internal error")
	// ErrDepthExceeded indicates that nesting depth exceeded the configured limit.
	ErrDepthExceeded = errors.New("rdf: nesting depth exceeded configured limit")
	// ErrInputTooLarge indicates the input exceeded the configured size limit.
	ErrInputTooLarge = errors.New("rdf: input exceeds configured limit")
	// ErrUnexpectedBindings indicates a result bound variables missing from the head.
	ErrUnexpectedBindings = errors.New("unexpected additional bindings")
	// ErrUnexpectedTermination indicates the document ended mid-structure.
	ErrUnexpectedTermination = errors.New("unexpected termination of XML document")
	// ErrUnbound is returned by typed accessors on unbound columns.
	ErrUnbound = errors.New("rdf: column is unbound")
)

// Code returns the error code for an error, or ErrCodeParseError if unknown.
// Returns empty string for nil errors or io.EOF (which is not an error condition).
func Code(err error) ErrorCode {
	if err == nil || err == io.EOF {
		return ""
	}

	switch {
	case errors.Is(err, ErrCancelled), errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return ErrCodeCancelled
	case errors.Is(err, ErrUnsupportedFormat):
		return ErrCodeUnsupportedFormat
	case errors.Is(err, ErrInternal):
		return ErrCodeInternal
	case errors.Is(err, ErrDepthExceeded):
		return ErrCodeDepthExceeded
	case errors.Is(err, ErrInputTooLarge):
		return ErrCodeInputTooLarge
	case errors.Is(err, ErrUnbound):
		return ErrCodeUnbound
	}

	var readerErr *ReaderError
	if errors.As(err, &readerErr) {
		return ErrCodeReaderError
	}

	return ErrCodeParseError
}

// ParseError reports input that does not follow the expected document grammar.
type ParseError struct {
	Format  string // Format name ("jsonld", "xml")
	Element string // Offending element or member name, if any
	Line    int    // 1-based line number (0 if unknown)
	Column  int    // 1-based column number (0 if unknown)
	Err     error  // Underlying error
}

func (e *ParseError) Error() string {
	var msg strings.Builder
	msg.WriteString(e.Format)
	if e.Line > 0 {
		if e.Column > 0 {
			fmt.Fprintf(&msg, ":%d:%d", e.Line, e.Column)
		} else {
			fmt.Fprintf(&msg, ":%d", e.Line)
		}
	}
	msg.WriteString(": ")
	msg.WriteString(e.Err.Error())
	return msg.String()
}

func (e *ParseError) Unwrap() error { return e.Err }

// ReaderError wraps a failure reported by the underlying JSON or XML reader
// (I/O, encoding or syntax errors).
type ReaderError struct {
	Format string
	Err    error
}

func (e *ReaderError) Error() string {
	return e.Format + ": reader error: " + e.Err.Error()
}

func (e *ReaderError) Unwrap() error { return e.Err }

func parseErrorf(format, element string, msg string, args ...any) error {
	return &ParseError{Format: format, Element: element, Err: fmt.Errorf(msg, args...)}
}

// cancelledError wraps ErrCancelled together with the context error.
func cancelledError(ctx context.Context) error {
	return fmt.Errorf("%w: %w", ErrCancelled, context.Cause(ctx))
}

func checkCancelled(ctx context.Context) error {
	if ctx == nil {
		return nil
	}
	select {
	case <-ctx.Done():
		return cancelledError(ctx)
	default:
		return nil
	}
}
