package rdf

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"
)

func TestErrorCode_UnsupportedFormat(t *testing.T) {
	_, err := NewCursor(strings.NewReader(""), Format("unknown"))
	if err == nil {
		t.Fatal("expected error")
	}
	if code := Code(err); code != ErrCodeUnsupportedFormat {
		t.Errorf("expected ErrCodeUnsupportedFormat, got %v", code)
	}
}

func TestErrorCode_UndetectableInput(t *testing.T) {
	_, err := NewCursor(strings.NewReader("@prefix ex: <http://example.org/> ."), FormatAuto)
	if Code(err) != ErrCodeUnsupportedFormat {
		t.Fatalf("expected ErrCodeUnsupportedFormat, got %v", err)
	}
}

func TestErrorCode_ContextCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c, err := NewCursor(strings.NewReader(`[]`), FormatJSONLD)
	if err != nil {
		t.Fatal(err)
	}
	defer c.Close()
	_, err = c.Next(ctx)
	if code := Code(err); code != ErrCodeCancelled {
		t.Errorf("expected ErrCodeCancelled, got %v", code)
	}
	if !errors.Is(err, ErrCancelled) {
		t.Errorf("expected ErrCancelled in chain, got %v", err)
	}
}

func TestErrorCode_CancelledDuringConstruction(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	c := NewJSONLDCursor(strings.NewReader(`{"http://example.org/p":"v"}`), OptContext(ctx))
	defer c.Close()
	_, err := c.Next(context.Background())
	if Code(err) != ErrCodeCancelled {
		t.Fatalf("expected ErrCodeCancelled, got %v", err)
	}
}

func TestErrorCode_Mapping(t *testing.T) {
	tests := []struct {
		err  error
		want ErrorCode
	}{
		{nil, ""},
		{io.EOF, ""},
		{fmt.Errorf("wrap: %w", ErrDepthExceeded), ErrCodeDepthExceeded},
		{ErrInputTooLarge, ErrCodeInputTooLarge},
		{fmt.Errorf("%w: bad", ErrInternal), ErrCodeInternal},
		{&ReaderError{Format: "xml", Err: errors.New("boom")}, ErrCodeReaderError},
		{&ParseError{Format: "xml", Err: errors.New("bad")}, ErrCodeParseError},
		{context.DeadlineExceeded, ErrCodeCancelled},
		{errors.New("other"), ErrCodeParseError},
	}
	for _, tt := range tests {
		if got := Code(tt.err); got != tt.want {
			t.Errorf("Code(%v) = %q, want %q", tt.err, got, tt.want)
		}
	}
}

func TestParseError_Message(t *testing.T) {
	err := &ParseError{Format: "xml", Line: 3, Column: 7, Err: errors.New("unexpected node 'foo'")}
	if got := err.Error(); got != "xml:3:7: unexpected node 'foo'" {
		t.Fatalf("unexpected message %q", got)
	}
	err = &ParseError{Format: "jsonld", Err: errors.New("expected resource list")}
	if got := err.Error(); got != "jsonld: expected resource list" {
		t.Fatalf("unexpected message %q", got)
	}
	inner := errors.New("io failure")
	rerr := &ReaderError{Format: "jsonld", Err: inner}
	if !errors.Is(rerr, inner) || rerr.Error() != "jsonld: reader error: io failure" {
		t.Fatalf("unexpected reader error %q", rerr.Error())
	}
}
