package rdf

import (
	"context"
	"fmt"
	"io"
	"mime"
	"path/filepath"
	"strings"
)

// FormatFromContentType infers the format from a MIME content type.
func FormatFromContentType(contentType string) (Format, error) {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		mediaType = strings.TrimSpace(strings.Split(contentType, ";")[0])
	}
	switch strings.ToLower(mediaType) {
	case "application/ld+json", "application/json":
		return FormatJSONLD, nil
	case "application/sparql-results+xml", "application/xml", "text/xml":
		return FormatXMLResults, nil
	default:
		return FormatAuto, fmt.Errorf("%w: content type %q", ErrUnsupportedFormat, contentType)
	}
}

// FormatFromPath infers the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jsonld", ".json":
		return FormatJSONLD, nil
	case ".srx", ".xml":
		return FormatXMLResults, nil
	default:
		return FormatAuto, fmt.Errorf("%w: file %q", ErrUnsupportedFormat, path)
	}
}

// NewCursorAuto opens a cursor using the format implied by path, then by
// contentType, falling back to content sniffing.
func NewCursorAuto(r io.Reader, path, contentType string, opts ...Option) (Cursor, error) {
	if path != "" {
		if format, err := FormatFromPath(path); err == nil {
			return NewCursor(r, format, opts...)
		}
	}
	if contentType != "" {
		format, err := FormatFromContentType(contentType)
		if err != nil {
			return nil, err
		}
		return NewCursor(r, format, opts...)
	}
	return NewCursor(r, FormatAuto, opts...)
}

// ForEachRow calls fn for each remaining row of c and closes it.
func ForEachRow(ctx context.Context, c Cursor, fn func(row []Term) error) error {
	defer c.Close()
	for {
		ok, err := c.Next(ctx)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		if err := fn(ReadRow(c)); err != nil {
			return err
		}
	}
}

// ReadQuads collects every row of a JSON-LD document.
func ReadQuads(ctx context.Context, r io.Reader, opts ...Option) ([]Quad, error) {
	c := NewJSONLDCursor(r, opts...)
	defer c.Close()
	var quads []Quad
	for {
		ok, err := c.Next(ctx)
		if err != nil {
			return quads, err
		}
		if !ok {
			return quads, nil
		}
		quads = append(quads, ReadQuad(c))
	}
}
