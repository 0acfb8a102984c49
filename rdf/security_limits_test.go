package rdf

import (
	"context"
	"strings"
	"testing"
)

func TestSecurityLimits_JSONLDDepth(t *testing.T) {
	input := strings.Repeat(`{"http://example.org/p":`, 10) + `1` + strings.Repeat(`}`, 10)
	c := NewJSONLDCursor(strings.NewReader(input), OptMaxDepth(5))
	defer c.Close()
	_, err := c.Next(context.Background())
	if Code(err) != ErrCodeDepthExceeded {
		t.Fatalf("expected DEPTH_EXCEEDED, got %v", err)
	}
}

func TestSecurityLimits_JSONLDInputSize(t *testing.T) {
	input := `{"http://example.org/p":"` + strings.Repeat("x", 1024) + `"}`
	c := NewJSONLDCursor(strings.NewReader(input), OptMaxInputBytes(100))
	defer c.Close()
	_, err := c.Next(context.Background())
	if Code(err) != ErrCodeInputTooLarge {
		t.Fatalf("expected INPUT_TOO_LARGE, got %v", err)
	}
}

func TestSecurityLimits_XMLInputSize(t *testing.T) {
	input := `<sparql><head><variable name="x"/></head><results>` +
		strings.Repeat(`<result><binding name="x"><literal>v</literal></binding></result>`, 100) +
		`</results></sparql>`
	c := NewXMLCursor(strings.NewReader(input), OptMaxInputBytes(512))
	defer c.Close()
	var err error
	for {
		var ok bool
		ok, err = c.Next(context.Background())
		if err != nil || !ok {
			break
		}
	}
	if Code(err) != ErrCodeInputTooLarge {
		t.Fatalf("expected INPUT_TOO_LARGE, got %v", err)
	}
}

func TestSecurityLimits_DisabledWithNegativeValue(t *testing.T) {
	input := `{"http://example.org/p":"` + strings.Repeat("x", 1024) + `"}`
	quads := readJSONLDRows(t, input, OptMaxInputBytes(-1))
	if len(quads) != 1 {
		t.Fatalf("expected 1 row, got %d", len(quads))
	}
}

func TestSecurityLimits_SafeLimits(t *testing.T) {
	opts := buildOptions([]Option{OptSafeLimits()})
	if opts.MaxDepth != SafeMaxDepth || opts.MaxInputBytes != SafeMaxInputBytes {
		t.Fatalf("expected safe limits, got depth=%d bytes=%d", opts.MaxDepth, opts.MaxInputBytes)
	}
	defaults := buildOptions(nil)
	if defaults.MaxDepth != DefaultMaxDepth || defaults.MaxInputBytes != DefaultMaxInputBytes {
		t.Fatalf("expected defaults, got depth=%d bytes=%d", defaults.MaxDepth, defaults.MaxInputBytes)
	}
}
