package rdf

import (
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

const formatXML = "xml"

// Element names of the SPARQL Query Results XML Format.
const (
	xmlSparql   = "sparql"
	xmlHead     = "head"
	xmlVariable = "variable"
	xmlLink     = "link"
	xmlResults  = "results"
	xmlBoolean  = "boolean"
	xmlResult   = "result"
	xmlBinding  = "binding"
	xmlURI      = "uri"
	xmlBnode    = "bnode"
	xmlLiteral  = "literal"
)

// XMLCursor reads a SPARQL Query Results XML document. Each <result>
// is one row; columns follow the order of the <variable> declarations in
// the head. ASK documents yield a single row with one boolean column.
type XMLCursor struct {
	logger *slog.Logger
	reader XMLReader

	columnNames []string
	links       []string
	columns     []Term
	ask         bool

	started  bool
	finished bool
	rows     int
	err      error
	closed   bool
}

// NewXMLCursor reads a results document from r. The document head is
// parsed immediately; errors in it are reported by the first Next.
func NewXMLCursor(r io.Reader, opts ...Option) *XMLCursor {
	options := buildOptions(opts)
	in := readCloser(inputReader(r, options), r)
	return newXMLCursor(NewXMLReader(in), options)
}

// NewXMLCursorFromReader reads a results document from an XMLReader
// positioned before the document element.
func NewXMLCursorFromReader(reader XMLReader, opts ...Option) *XMLCursor {
	return newXMLCursor(reader, buildOptions(opts))
}

func newXMLCursor(reader XMLReader, options Options) *XMLCursor {
	c := &XMLCursor{logger: cursorLogger(options.Logger, FormatXMLResults), reader: reader}
	if err := c.parseHead(); err != nil {
		c.err = err
		c.logger.Debug("xml results head rejected", slog.Any("error", err))
	}
	return c
}

func (c *XMLCursor) parseHead() error {
	if err := c.expectElement(xmlSparql, 0); err != nil {
		return err
	}
	if err := c.expectElement(xmlHead, 1); err != nil {
		return err
	}
	seenLink := false
	for {
		if err := c.readNode(); err != nil {
			return err
		}
		if c.reader.NodeType() == XMLNodeEndElement && c.reader.Depth() == 1 {
			return nil
		}
		if c.reader.NodeType() != XMLNodeElement || c.reader.Depth() != 2 {
			return c.unexpectedNode()
		}
		switch c.reader.Name() {
		case xmlVariable:
			if seenLink {
				return c.parseErrorf(xmlVariable, "variable node found after link")
			}
			name, _ := c.reader.Attribute("name")
			c.columnNames = append(c.columnNames, name)
		case xmlLink:
			seenLink = true
			if href, ok := c.reader.Attribute("href"); ok {
				c.links = append(c.links, href)
			}
		default:
			return c.unexpectedNode()
		}
		if err := c.skipToEnd(); err != nil {
			return err
		}
	}
}

// readNode reads the next node that is not whitespace-only text.
func (c *XMLCursor) readNode() error {
	for {
		ok, err := c.reader.Read()
		if err != nil {
			return c.readerError(err)
		}
		if !ok {
			return c.parseErrorf("", "%w", ErrUnexpectedTermination)
		}
		if c.reader.NodeType() == XMLNodeText && strings.TrimSpace(c.reader.Value()) == "" {
			continue
		}
		return nil
	}
}

func (c *XMLCursor) expectElement(name string, depth int) error {
	if err := c.readNode(); err != nil {
		return err
	}
	if c.reader.NodeType() != XMLNodeElement || c.reader.Name() != name || c.reader.Depth() != depth {
		return c.unexpectedNode()
	}
	return nil
}

// skipToEnd consumes the end of an element that has no child elements.
func (c *XMLCursor) skipToEnd() error {
	depth := c.reader.Depth()
	if err := c.readNode(); err != nil {
		return err
	}
	if c.reader.NodeType() != XMLNodeEndElement || c.reader.Depth() != depth {
		return c.unexpectedNode()
	}
	return nil
}

// readText collects the text content of the current element up to its end.
func (c *XMLCursor) readText() (string, error) {
	depth := c.reader.Depth()
	var text strings.Builder
	for {
		ok, err := c.reader.Read()
		if err != nil {
			return "", c.readerError(err)
		}
		if !ok {
			return "", c.parseErrorf("", "%w", ErrUnexpectedTermination)
		}
		switch c.reader.NodeType() {
		case XMLNodeText:
			text.WriteString(c.reader.Value())
		case XMLNodeEndElement:
			if c.reader.Depth() == depth {
				return text.String(), nil
			}
			return "", c.unexpectedNode()
		default:
			return "", c.unexpectedNode()
		}
	}
}

func (c *XMLCursor) unexpectedNode() error {
	return c.parseErrorf(c.reader.Name(), "wrong XML format, unexpected node '%s'", c.reader.Name())
}

func (c *XMLCursor) parseErrorf(element, msg string, args ...any) error {
	line, col := c.reader.Location()
	return &ParseError{Format: formatXML, Element: element, Line: line, Column: col, Err: fmt.Errorf(msg, args...)}
}

func (c *XMLCursor) readerError(err error) error {
	var syntaxErr *xml.SyntaxError
	switch {
	case errors.Is(err, ErrCancelled), errors.Is(err, ErrInputTooLarge):
		return err
	case errors.As(err, &syntaxErr) && strings.Contains(syntaxErr.Msg, "unexpected EOF"):
		return c.parseErrorf("", "%w: %w", ErrUnexpectedTermination, err)
	}
	return &ReaderError{Format: formatXML, Err: err}
}

// NColumns returns the number of declared variables, or 1 for ASK results.
func (c *XMLCursor) NColumns() int {
	if c.ask {
		return 1
	}
	return len(c.columnNames)
}

// Next advances to the next <result>.
func (c *XMLCursor) Next(ctx context.Context) (bool, error) {
	if c.closed {
		return false, nil
	}
	if c.err != nil {
		return false, c.err
	}
	if err := checkCancelled(ctx); err != nil {
		return false, err
	}
	c.columns = c.columns[:0]
	if c.finished {
		return false, nil
	}

	if !c.started {
		if err := c.readNode(); err != nil {
			return false, c.fail(err)
		}
		if c.reader.NodeType() != XMLNodeElement || c.reader.Depth() != 1 {
			return false, c.fail(c.unexpectedNode())
		}
		switch c.reader.Name() {
		case xmlResults:
			c.started = true
		case xmlBoolean:
			return c.readBoolean()
		default:
			return false, c.fail(c.unexpectedNode())
		}
	}

	if err := c.readNode(); err != nil {
		return false, c.fail(err)
	}
	if c.reader.NodeType() == XMLNodeEndElement {
		c.finish()
		return false, nil
	}
	if c.reader.NodeType() != XMLNodeElement || c.reader.Name() != xmlResult || c.reader.Depth() != 2 {
		return false, c.fail(c.unexpectedNode())
	}
	if err := c.parseResult(); err != nil {
		return false, c.fail(err)
	}
	c.rows++
	return true, nil
}

func (c *XMLCursor) readBoolean() (bool, error) {
	value, err := c.readText()
	if err != nil {
		return false, c.fail(err)
	}
	c.ask = true
	c.started = true
	c.finished = true
	c.columns = append(c.columns[:0], NewTerm(ValueTypeBoolean, strings.TrimSpace(value), ""))
	c.rows++
	c.logger.Debug("xml results boolean", slog.String("value", c.columns[0].Lexical))
	return true, nil
}

func (c *XMLCursor) parseResult() error {
	bindings := make(map[string]Term, len(c.columnNames))
	for {
		if err := c.readNode(); err != nil {
			return err
		}
		if c.reader.NodeType() == XMLNodeEndElement && c.reader.Depth() == 2 {
			break
		}
		name, term, err := c.parseBinding()
		if err != nil {
			return err
		}
		bindings[name] = term
	}

	for _, name := range c.columnNames {
		term, ok := bindings[name]
		if ok {
			delete(bindings, name)
		}
		c.columns = append(c.columns, term)
	}
	if len(bindings) > 0 {
		return c.parseErrorf(xmlResult, "wrong XML format: %w", ErrUnexpectedBindings)
	}
	return nil
}

func (c *XMLCursor) parseBinding() (string, Term, error) {
	if c.reader.NodeType() != XMLNodeElement || c.reader.Name() != xmlBinding || c.reader.Depth() != 3 {
		return "", Unbound, c.unexpectedNode()
	}
	name, _ := c.reader.Attribute("name")

	if err := c.readNode(); err != nil {
		return "", Unbound, err
	}
	if c.reader.NodeType() != XMLNodeElement || c.reader.Depth() != 4 {
		return "", Unbound, c.unexpectedNode()
	}
	var (
		typ  ValueType
		lang string
	)
	switch kind := c.reader.Name(); kind {
	case xmlURI:
		typ = ValueTypeURI
	case xmlBnode:
		typ = ValueTypeBlankNode
	case xmlLiteral:
		datatype, _ := c.reader.Attribute("datatype")
		lang, _ = c.reader.Attribute("xml:lang")
		typ = TypeForXSDDatatype(datatype)
	default:
		return "", Unbound, c.parseErrorf(kind, "unknown binding type '%s'", kind)
	}

	value, err := c.readText()
	if err != nil {
		return "", Unbound, err
	}
	if typ == ValueTypeBlankNode && !strings.HasPrefix(value, "_:") {
		value = "_:" + value
	}

	if err := c.readNode(); err != nil {
		return "", Unbound, err
	}
	if c.reader.NodeType() != XMLNodeEndElement || c.reader.Depth() != 3 {
		return "", Unbound, c.unexpectedNode()
	}
	return name, NewTerm(typ, value, lang), nil
}

func (c *XMLCursor) fail(err error) error {
	if errors.Is(err, ErrCancelled) {
		return err
	}
	c.err = err
	c.columns = c.columns[:0]
	c.logger.Debug("xml results cursor failed", slog.Int("rows", c.rows), slog.Any("error", err))
	return err
}

func (c *XMLCursor) finish() {
	c.finished = true
	c.columns = c.columns[:0]
	c.logger.Debug("xml results cursor exhausted", slog.Int("rows", c.rows))
}

func (c *XMLCursor) column(i int) (Term, bool) {
	if c.closed || i < 0 || i >= len(c.columns) {
		return Unbound, false
	}
	return c.columns[i], true
}

// ValueType returns the type of a column of the current row.
func (c *XMLCursor) ValueType(column int) ValueType {
	term, _ := c.column(column)
	return term.Type
}

// VariableName returns the declared name of a column.
func (c *XMLCursor) VariableName(column int) (string, bool) {
	if c.closed || c.ask || column < 0 || column >= len(c.columnNames) {
		return "", false
	}
	return c.columnNames[column], true
}

// StringValue returns the lexical form and language tag of a column.
func (c *XMLCursor) StringValue(column int) (string, string, bool) {
	term, ok := c.column(column)
	if !ok || !term.IsBound() {
		return "", "", false
	}
	return term.Lexical, term.Lang, true
}

// Links returns the href of each <link> in the head, in document order.
func (c *XMLCursor) Links() []string {
	return append([]string(nil), c.links...)
}

// Location returns the position of the reader in the input.
func (c *XMLCursor) Location() (line, column int, ok bool) {
	if c.closed {
		return 0, 0, false
	}
	line, column = c.reader.Location()
	return line, column, line > 0
}

// Close releases the reader. It is safe to call more than once.
func (c *XMLCursor) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true
	c.columns = nil
	return c.reader.Close()
}
