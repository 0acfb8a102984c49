package rdf

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/transform"
)

const xmlNamespaceURI = "http://www.w3.org/XML/1998/namespace"

// XMLNodeType is the kind of node an XMLReader is positioned on.
type XMLNodeType uint8

const (
	XMLNodeNone XMLNodeType = iota
	XMLNodeElement
	XMLNodeEndElement
	XMLNodeText
)

func (t XMLNodeType) String() string {
	switch t {
	case XMLNodeElement:
		return "element"
	case XMLNodeEndElement:
		return "end-element"
	case XMLNodeText:
		return "text"
	default:
		return "none"
	}
}

// XMLReader is a forward-only pull reader over an XML document.
// Every element produces an XMLNodeElement and a matching
// XMLNodeEndElement, including empty elements. Comments, processing
// instructions and directives are skipped.
type XMLReader interface {
	// Read moves to the next node. It returns false at the end of the
	// document or on error.
	Read() (bool, error)
	NodeType() XMLNodeType
	// Name returns the local name of the current element.
	Name() string
	// Depth returns the nesting depth of the current node; the document
	// element is at depth 0.
	Depth() int
	// Attribute returns an attribute of the current element by local
	// name, or "xml:lang" for the language attribute.
	Attribute(name string) (string, bool)
	// Value returns the content of a text node.
	Value() string
	// Location returns the 1-based position of the reader in the input.
	Location() (line, column int)
	Close() error
}

type xmlTokenReader struct {
	dec    *xml.Decoder
	closer *onceCloser

	open  []string
	kind  XMLNodeType
	name  string
	depth int
	attrs []xml.Attr
	text  string
}

// NewXMLReader returns a pull reader over r. Documents declaring a
// non-UTF-8 encoding are transcoded.
func NewXMLReader(r io.Reader) XMLReader {
	dec := xml.NewDecoder(r)
	dec.Strict = true
	dec.CharsetReader = charsetReader
	return &xmlTokenReader{dec: dec, closer: newOnceCloser(r)}
}

func charsetReader(label string, input io.Reader) (io.Reader, error) {
	enc, err := ianaindex.IANA.Encoding(label)
	if err != nil {
		return nil, err
	}
	if enc == nil {
		return nil, fmt.Errorf("unsupported XML encoding %q", label)
	}
	return transform.NewReader(input, enc.NewDecoder()), nil
}

func (x *xmlTokenReader) Read() (bool, error) {
	for {
		tok, err := x.dec.Token()
		if err == io.EOF {
			x.kind = XMLNodeNone
			return false, nil
		}
		if err != nil {
			x.kind = XMLNodeNone
			return false, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			x.kind = XMLNodeElement
			x.name = t.Name.Local
			x.depth = len(x.open)
			x.attrs = t.Attr
			x.text = ""
			x.open = append(x.open, t.Name.Local)
			return true, nil
		case xml.EndElement:
			x.open = x.open[:len(x.open)-1]
			x.kind = XMLNodeEndElement
			x.name = t.Name.Local
			x.depth = len(x.open)
			x.attrs = nil
			x.text = ""
			return true, nil
		case xml.CharData:
			x.kind = XMLNodeText
			x.name = "#text"
			x.depth = len(x.open)
			x.attrs = nil
			x.text = string(t)
			return true, nil
		}
	}
}

func (x *xmlTokenReader) NodeType() XMLNodeType { return x.kind }

func (x *xmlTokenReader) Name() string { return x.name }

func (x *xmlTokenReader) Depth() int { return x.depth }

func (x *xmlTokenReader) Value() string { return x.text }

func (x *xmlTokenReader) Attribute(name string) (string, bool) {
	space, local, qualified := strings.Cut(name, ":")
	if !qualified {
		local, space = space, ""
	}
	for _, attr := range x.attrs {
		if attr.Name.Local != local {
			continue
		}
		switch {
		case space == "" && attr.Name.Space == "":
			return attr.Value, true
		case space == "xml" && (attr.Name.Space == "xml" || attr.Name.Space == xmlNamespaceURI):
			return attr.Value, true
		case space != "" && attr.Name.Space == space:
			return attr.Value, true
		}
	}
	return "", false
}

func (x *xmlTokenReader) Location() (int, int) {
	return x.dec.InputPos()
}

func (x *xmlTokenReader) Close() error {
	return x.closer.Close()
}
