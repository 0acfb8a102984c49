package rdf

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
)

const formatJSONLD = "jsonld"

// JSONLDCursor reads a JSON-LD document as rows of four columns:
// subject, predicate, object and graph. Rows follow document order.
//
// Only the inline subset of JSON-LD is interpreted: @id, @type, @graph,
// @value, @language and the prefix and @language entries of an object
// @context. Use OptExpandJSONLD for full context processing.
type JSONLDCursor struct {
	logger *slog.Logger
	reader JSONReader
	closer *onceCloser
	ns     NamespaceManager
	base   string

	stack *stateStack
	state parseState

	graph     string
	subject   string
	predicate string
	object    Term
	hasRow    bool

	blankNodes blankNodeGenerator
	rows       int
	err        error
	closed     bool
}

// NewJSONLDCursor reads a JSON-LD document from r.
// Errors found while loading the document are reported by the first Next.
func NewJSONLDCursor(r io.Reader, opts ...Option) *JSONLDCursor {
	options := buildOptions(opts)
	c := newJSONLDCursor(options)
	c.closer = newOnceCloser(r)

	in := inputReader(r, options)
	var (
		root *jsonNode
		err  error
	)
	if options.ExpandJSONLD {
		root, err = expandJSONLD(options.Context, in, options)
	} else {
		root, err = parseJSONTree(in, options.MaxDepth)
	}
	if err != nil {
		c.err = c.loadError(err)
		c.logger.Debug("jsonld document rejected", slog.Any("error", err))
		return c
	}
	c.reader = newJSONTreeReader(root)
	return c
}

// NewJSONLDCursorFromReader reads rows from an already positioned JSONReader.
func NewJSONLDCursorFromReader(reader JSONReader, opts ...Option) *JSONLDCursor {
	c := newJSONLDCursor(buildOptions(opts))
	c.reader = reader
	c.closer = newOnceCloser(reader)
	return c
}

func newJSONLDCursor(options Options) *JSONLDCursor {
	return &JSONLDCursor{
		logger: cursorLogger(options.Logger, FormatJSONLD),
		ns:     options.Namespaces,
		base:   options.BaseIRI,
		stack:  newStateStack(),
		state:  stateInitial,
	}
}

func (c *JSONLDCursor) loadError(err error) error {
	switch {
	case errors.Is(err, ErrCancelled), errors.Is(err, ErrDepthExceeded), errors.Is(err, ErrInputTooLarge):
		return err
	}
	return &ReaderError{Format: formatJSONLD, Err: err}
}

// NColumns returns 4.
func (c *JSONLDCursor) NColumns() int { return quadColumns }

// Next advances to the next row.
func (c *JSONLDCursor) Next(ctx context.Context) (bool, error) {
	if c.closed {
		return false, nil
	}
	if c.err != nil {
		return false, c.err
	}
	if err := checkCancelled(ctx); err != nil {
		return false, err
	}
	if c.state == stateFinal {
		return false, nil
	}

	c.hasRow = false
	c.object = Unbound
	for !c.hasRow {
		more, err := c.forward()
		if err != nil {
			return false, c.fail(err)
		}
		if !more {
			if err := c.reader.Err(); err != nil {
				return false, c.fail(&ReaderError{Format: formatJSONLD, Err: err})
			}
			c.finish()
			return false, nil
		}
	}

	if c.subject == "" {
		c.subject = c.blankNodes.next()
		if f := c.stack.subjectFrame(); f != nil && f.id == "" {
			f.id = c.subject
		}
	}
	if c.object.Type == ValueTypeString && c.object.Lang == "" {
		c.object.Lang = c.stack.nearestLanguage()
	}
	c.rows++
	return true, nil
}

func (c *JSONLDCursor) fail(err error) error {
	c.err = err
	c.state = stateFinal
	c.clearRow()
	c.logger.Debug("jsonld cursor failed", slog.Int("rows", c.rows), slog.Any("error", err))
	return err
}

func (c *JSONLDCursor) finish() {
	c.state = stateFinal
	c.clearRow()
	c.logger.Debug("jsonld cursor exhausted", slog.Int("rows", c.rows))
}

func (c *JSONLDCursor) clearRow() {
	c.subject, c.predicate, c.graph = "", "", ""
	c.object = Unbound
	c.hasRow = false
}

// forward performs one state transition and reports whether the
// document has more content.
func (c *JSONLDCursor) forward() (bool, error) {
	var err error
	switch c.state {
	case stateInitial:
		switch {
		case c.reader.IsArray():
			c.push(stateRootList)
		case c.reader.IsObject():
			c.push(stateProperties)
			c.state = stateMaybeGraph
		default:
			return false, parseErrorf(formatJSONLD, "", "expected graph or resource object at document root")
		}

	case stateRootList:
		more, err := c.advanceStack()
		if err != nil {
			return false, err
		}
		if !more {
			if c.state, err = c.stack.pop(); err != nil {
				return false, err
			}
			break
		}
		if !c.reader.IsObject() {
			return false, parseErrorf(formatJSONLD, "", "expected graph or resource object")
		}
		c.push(stateProperties)
		c.state = stateMaybeGraph

	case stateMaybeGraph:
		top, err := c.stack.top()
		if err != nil {
			return false, err
		}
		c.loadContext(top)
		if top.id != "" {
			top.id = resolveIRI(c.base, c.ns.ExpandURI(top.id))
		}
		if c.reader.ReadMember("@graph") {
			c.graph, _ = c.stack.nearestGraphID()
			if !c.reader.IsArray() {
				return false, parseErrorf(formatJSONLD, "@graph", "expected resource list")
			}
			c.push(stateObjectList)
			break
		}
		c.reader.EndMember()
		c.subject = top.id
		c.state = stateProperties

	case stateObjectList:
		more, err := c.advanceStack()
		if err != nil {
			return false, err
		}
		if !more {
			if _, err = c.stack.pop(); err != nil {
				return false, err
			}
			c.reader.EndMember()
			if c.state, err = c.stack.pop(); err != nil {
				return false, err
			}
			c.graph, _ = c.stack.nearestGraphID()
			c.subject, _ = c.stack.nearestSubjectID()
			break
		}
		if !c.reader.IsObject() {
			return false, parseErrorf(formatJSONLD, "@graph", "expected resource object")
		}
		c.push(stateProperties)
		c.state = stateMaybeGraph

	case stateProperties:
		more, err := c.advanceStack()
		if err != nil {
			return false, err
		}
		if !more {
			return c.closeResource()
		}
		member, _ := c.stack.currentMember()
		switch {
		case member == "@type":
			c.predicate = rdfTypeIRI
		case strings.HasPrefix(member, "@"):
			return true, nil
		default:
			c.predicate = c.ns.ExpandURI(member)
		}
		if c.reader.IsArray() {
			c.push(stateValueList)
		} else if err := c.forwardValue(); err != nil {
			return false, err
		}

	case stateValueList:
		more, err := c.advanceStack()
		if err != nil {
			return false, err
		}
		if !more {
			if c.state, err = c.stack.pop(); err != nil {
				return false, err
			}
			break
		}
		if err := c.forwardValue(); err != nil {
			return false, err
		}

	case stateValueAsObject:
		c.object = c.valueObject()
		c.hasRow = true
		if c.state, err = c.topState(); err != nil {
			return false, err
		}

	case stateValue:
		lexical, typ := nativeValue(c.reader.Scalar(), c.ns)
		c.object = NewTerm(typ, lexical, "")
		c.hasRow = true
		if c.state, err = c.topState(); err != nil {
			return false, err
		}

	case stateFinal:
	}

	return c.stack.size() > 0, nil
}

// closeResource pops a finished resource object. A resource nested in a
// property value yields one row linking the enclosing subject to it.
func (c *JSONLDCursor) closeResource() (bool, error) {
	top, err := c.stack.top()
	if err != nil {
		return false, err
	}
	nested := top.id
	if c.state, err = c.stack.pop(); err != nil {
		return false, err
	}
	if c.state != stateProperties && c.state != stateValueList {
		return c.stack.size() > 0, nil
	}
	if nested == "" {
		nested = c.blankNodes.next()
	}
	c.subject, _ = c.stack.nearestSubjectID()
	member, _ := c.stack.currentMember()
	if member == "@type" {
		c.predicate = rdfTypeIRI
	} else {
		c.predicate = c.ns.ExpandURI(member)
	}
	c.object = NewTerm(ValueTypeString, nested, "")
	c.hasRow = true
	return true, nil
}

func (c *JSONLDCursor) topState() (parseState, error) {
	top, err := c.stack.top()
	if err != nil {
		return stateFinal, err
	}
	return top.state, nil
}

// push opens a frame for the container at the reader position. Object ids
// are expanded once the object's own @context has been loaded.
func (c *JSONLDCursor) push(state parseState) {
	if c.reader.IsArray() {
		c.stack.pushArray(c.reader.CountElements(), state)
		c.state = state
		return
	}
	members := c.reader.ListMembers()
	isGraph := c.reader.ReadMember("@graph")
	c.reader.EndMember()
	var id string
	if c.reader.ReadMember("@id") {
		id, _ = c.reader.StringValue()
	}
	c.reader.EndMember()
	c.stack.pushObject(members, isGraph, id, state)
	c.state = state
}

// advanceStack leaves the current child of the top frame and enters the
// next one.
func (c *JSONLDCursor) advanceStack() (bool, error) {
	top, err := c.stack.top()
	if err != nil {
		return false, err
	}
	array := top.array
	if top.index >= 0 {
		if array {
			c.reader.EndElement()
		} else {
			c.reader.EndMember()
		}
	}
	index, more, err := c.stack.advance()
	if err != nil || !more {
		return false, err
	}
	if array {
		c.reader.ReadElement(index)
	} else {
		c.reader.ReadMember(top.members[index])
	}
	return true, nil
}

// forwardValue picks the state for the property value at the reader position.
// Lists nested directly in a value list are rejected.
func (c *JSONLDCursor) forwardValue() error {
	if c.reader.IsArray() {
		member, _ := c.stack.currentMember()
		return parseErrorf(formatJSONLD, member, "expected value or resource object")
	}
	if !c.reader.IsObject() {
		c.state = stateValue
		return nil
	}
	isValue := c.reader.ReadMember("@value")
	c.reader.EndMember()
	if isValue {
		c.state = stateValueAsObject
		return nil
	}
	c.push(stateProperties)
	c.state = stateMaybeGraph
	return nil
}

// valueObject reads a {"@value", "@language", "@type"} object.
func (c *JSONLDCursor) valueObject() Term {
	var (
		scalar JSONScalar
		lang   string
		typ    string
		hasTyp bool
	)
	if c.reader.ReadMember("@value") {
		scalar = c.reader.Scalar()
	}
	c.reader.EndMember()
	if c.reader.ReadMember("@language") {
		lang, _ = c.reader.StringValue()
	}
	c.reader.EndMember()
	if c.reader.ReadMember("@type") {
		typ, hasTyp = c.reader.StringValue()
	}
	c.reader.EndMember()

	lexical, native := nativeValue(scalar, nil)
	if native == ValueTypeUnbound {
		return Unbound
	}
	if hasTyp {
		return NewTerm(TypeForDatatype(c.ns.ExpandURI(typ)), lexical, lang)
	}
	return NewTerm(native, lexical, lang)
}

// loadContext applies the prefixes of an inline @context and records its
// default language on the object's frame, scoping it to that object.
// Prefixes already known to the namespace manager are kept.
func (c *JSONLDCursor) loadContext(frame *parseFrame) {
	if c.reader.ReadMember("@context") {
		if c.reader.IsArray() {
			n := c.reader.CountElements()
			for i := 0; i < n; i++ {
				if c.reader.ReadElement(i) {
					c.loadContextObject(frame)
				}
				c.reader.EndElement()
			}
		} else {
			c.loadContextObject(frame)
		}
	}
	c.reader.EndMember()
}

func (c *JSONLDCursor) loadContextObject(frame *parseFrame) {
	if !c.reader.IsObject() {
		return
	}
	for _, member := range c.reader.ListMembers() {
		if strings.HasPrefix(member, "@") {
			c.loadSpecialKey(frame, member)
			continue
		}
		if _, ok := c.ns.LookupPrefix(member); ok {
			continue
		}
		if c.reader.ReadMember(member) {
			if namespace, ok := c.reader.StringValue(); ok {
				if err := c.ns.AddPrefix(member, namespace); err != nil {
					c.logger.Debug("context prefix ignored", slog.String("prefix", member), slog.Any("error", err))
				}
			}
		}
		c.reader.EndMember()
	}
}

// loadSpecialKey handles @language; null resets the default language.
func (c *JSONLDCursor) loadSpecialKey(frame *parseFrame, key string) {
	if key != "@language" {
		return
	}
	if c.reader.ReadMember(key) {
		frame.lang, _ = c.reader.StringValue()
		frame.hasLang = true
	}
	c.reader.EndMember()
}

// ValueType returns the type of a column of the current row.
func (c *JSONLDCursor) ValueType(column int) ValueType {
	if c.closed || !c.hasRow {
		return ValueTypeUnbound
	}
	switch column {
	case ColumnSubject:
		return resourceType(c.subject)
	case ColumnPredicate:
		return resourceType(c.predicate)
	case ColumnObject:
		return c.object.Type
	case ColumnGraph:
		return resourceType(c.graph)
	default:
		return ValueTypeUnbound
	}
}

func resourceType(id string) ValueType {
	switch {
	case id == "":
		return ValueTypeUnbound
	case strings.HasPrefix(id, "_:"):
		return ValueTypeBlankNode
	default:
		return ValueTypeURI
	}
}

// VariableName returns "subject", "predicate", "object" or "graph".
func (c *JSONLDCursor) VariableName(column int) (string, bool) {
	if c.closed || column < 0 || column >= quadColumns {
		return "", false
	}
	return quadColumnNames[column], true
}

// StringValue returns the lexical form of a column of the current row.
// String objects without their own language tag report the default
// language in scope where the row was produced.
func (c *JSONLDCursor) StringValue(column int) (string, string, bool) {
	if c.ValueType(column) == ValueTypeUnbound {
		return "", "", false
	}
	switch column {
	case ColumnSubject:
		return c.subject, "", true
	case ColumnPredicate:
		return c.predicate, "", true
	case ColumnGraph:
		return c.graph, "", true
	}
	return c.object.Lexical, c.object.Lang, true
}

// Location is not tracked for JSON-LD input.
func (c *JSONLDCursor) Location() (line, column int, ok bool) {
	return 0, 0, false
}

// Close releases the document. It is safe to call more than once.
func (c *JSONLDCursor) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true
	c.clearRow()
	c.reader = nil
	return c.closer.Close()
}
