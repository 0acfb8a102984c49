package rdf

import "fmt"

// ValueType identifies the type of a cursor column value.
type ValueType uint8

const (
	// ValueTypeUnbound marks a column with no value.
	ValueTypeUnbound ValueType = iota
	// ValueTypeURI is an IRI.
	ValueTypeURI
	// ValueTypeString is a plain or language-tagged string.
	ValueTypeString
	// ValueTypeInteger is an integer literal.
	ValueTypeInteger
	// ValueTypeDouble is a floating point or decimal literal.
	ValueTypeDouble
	// ValueTypeDateTime is an xsd:date or xsd:dateTime literal.
	ValueTypeDateTime
	// ValueTypeBlankNode is a blank node ("_:" prefixed).
	ValueTypeBlankNode
	// ValueTypeBoolean is a boolean literal.
	ValueTypeBoolean
)

var valueTypeNames = [...]string{
	ValueTypeUnbound:   "UNBOUND",
	ValueTypeURI:       "URI",
	ValueTypeString:    "STRING",
	ValueTypeInteger:   "INTEGER",
	ValueTypeDouble:    "DOUBLE",
	ValueTypeDateTime:  "DATETIME",
	ValueTypeBlankNode: "BLANK_NODE",
	ValueTypeBoolean:   "BOOLEAN",
}

// String returns the upper-case name of the value type.
func (t ValueType) String() string {
	if int(t) < len(valueTypeNames) {
		return valueTypeNames[t]
	}
	return fmt.Sprintf("ValueType(%d)", uint8(t))
}

// Term is a typed RDF value as reported by a cursor column.
// The zero Term is unbound.
type Term struct {
	// Type is the value type; ValueTypeUnbound means no value.
	Type ValueType
	// Lexical is the lexical form. Empty when unbound.
	Lexical string
	// Lang is the language tag. Only set for ValueTypeString.
	Lang string
}

// Unbound is the term used for variables without a binding.
var Unbound = Term{}

// NewTerm builds a term, dropping the language tag for non-string types.
func NewTerm(t ValueType, lexical, lang string) Term {
	if t == ValueTypeUnbound {
		return Unbound
	}
	if t != ValueTypeString {
		lang = ""
	}
	return Term{Type: t, Lexical: lexical, Lang: lang}
}

// IsBound reports whether the term carries a value.
func (t Term) IsBound() bool { return t.Type != ValueTypeUnbound }

// String returns an N-Triples-like rendering of the term.
func (t Term) String() string {
	switch t.Type {
	case ValueTypeUnbound:
		return ""
	case ValueTypeURI:
		return "<" + t.Lexical + ">"
	case ValueTypeBlankNode:
		return t.Lexical
	case ValueTypeString:
		if t.Lang != "" {
			return fmt.Sprintf("%q@%s", t.Lexical, t.Lang)
		}
		return fmt.Sprintf("%q", t.Lexical)
	default:
		return fmt.Sprintf("%q^^%s", t.Lexical, t.Type)
	}
}

// Column indexes of the fixed-shape rows produced by the JSON-LD cursor.
const (
	ColumnSubject = iota
	ColumnPredicate
	ColumnObject
	ColumnGraph

	quadColumns
)

var quadColumnNames = [quadColumns]string{"subject", "predicate", "object", "graph"}

// Quad is a subject/predicate/object/graph row.
type Quad struct {
	// S is the subject.
	S Term
	// P is the predicate.
	P Term
	// O is the object.
	O Term
	// G is the graph name, unbound for the default graph.
	G Term
}

// IsZero reports whether the quad has no bound component.
func (q Quad) IsZero() bool {
	return !q.S.IsBound() && !q.P.IsBound() && !q.O.IsBound() && !q.G.IsBound()
}

// InDefaultGraph reports whether the quad is in the default graph (no named graph).
func (q Quad) InDefaultGraph() bool {
	return !q.G.IsBound()
}

// ReadQuad reads the current row of a four-column cursor as a quad.
func ReadQuad(c Cursor) Quad {
	return Quad{
		S: columnTerm(c, ColumnSubject),
		P: columnTerm(c, ColumnPredicate),
		O: columnTerm(c, ColumnObject),
		G: columnTerm(c, ColumnGraph),
	}
}

// ReadRow reads every column of the current row.
func ReadRow(c Cursor) []Term {
	n := c.NColumns()
	row := make([]Term, n)
	for i := 0; i < n; i++ {
		row[i] = columnTerm(c, i)
	}
	return row
}

func columnTerm(c Cursor, column int) Term {
	value, lang, ok := c.StringValue(column)
	if !ok {
		return Unbound
	}
	return NewTerm(c.ValueType(column), value, lang)
}
