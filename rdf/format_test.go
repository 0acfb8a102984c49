package rdf

import (
	"errors"
	"testing"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want Format
	}{
		{"jsonld", FormatJSONLD},
		{"JSON-LD", FormatJSONLD},
		{" json ", FormatJSONLD},
		{"xml", FormatXMLResults},
		{"srx", FormatXMLResults},
		{"auto", FormatAuto},
		{"", FormatAuto},
	}
	for _, tt := range tests {
		got, ok := ParseFormat(tt.in)
		if !ok || got != tt.want {
			t.Errorf("ParseFormat(%q) = %q %v, want %q", tt.in, got, ok, tt.want)
		}
	}
	if _, ok := ParseFormat("turtle"); ok {
		t.Fatal("expected turtle to be rejected")
	}
}

func TestFormatFromContentType(t *testing.T) {
	tests := []struct {
		in   string
		want Format
	}{
		{"application/ld+json", FormatJSONLD},
		{`application/ld+json; profile="http://www.w3.org/ns/json-ld#expanded"`, FormatJSONLD},
		{"application/sparql-results+xml; charset=utf-8", FormatXMLResults},
		{"text/xml", FormatXMLResults},
	}
	for _, tt := range tests {
		got, err := FormatFromContentType(tt.in)
		if err != nil || got != tt.want {
			t.Errorf("FormatFromContentType(%q) = %q %v, want %q", tt.in, got, err, tt.want)
		}
	}
	_, err := FormatFromContentType("text/turtle")
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
	}
}

func TestFormatFromPath(t *testing.T) {
	if f, err := FormatFromPath("data/results.SRX"); err != nil || f != FormatXMLResults {
		t.Fatalf("unexpected %q %v", f, err)
	}
	if f, err := FormatFromPath("doc.jsonld"); err != nil || f != FormatJSONLD {
		t.Fatalf("unexpected %q %v", f, err)
	}
	if _, err := FormatFromPath("doc.ttl"); err == nil {
		t.Fatal("expected error for .ttl")
	}
}
