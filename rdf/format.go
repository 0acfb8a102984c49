package rdf

import "strings"

// Format identifies a result serialization a cursor can read.
type Format string

const (
	// FormatAuto detects the format from the first bytes of input.
	FormatAuto Format = ""
	// FormatJSONLD is a JSON-LD document read as subject/predicate/object/graph rows.
	FormatJSONLD Format = "jsonld"
	// FormatXMLResults is a SPARQL 1.1 Query Results XML document.
	FormatXMLResults Format = "xml"
)

// ParseFormat normalizes a format string.
func ParseFormat(value string) (Format, bool) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "auto":
		return FormatAuto, true
	case "jsonld", "json-ld", "json":
		return FormatJSONLD, true
	case "xml", "srx", "sparql-xml", "sparql-results+xml":
		return FormatXMLResults, true
	default:
		return "", false
	}
}

// String returns the format name, "auto" for FormatAuto.
func (f Format) String() string {
	if f == FormatAuto {
		return "auto"
	}
	return string(f)
}
