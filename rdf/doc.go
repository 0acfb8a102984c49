// Package rdf provides forward-only cursors over RDF result documents.
//
// Copyright 2026 Geoknoesis LLC (www.geoknoesis.com)
//
// Author: Stephane Fellah (stephanef@geoknoesis.com)
// Geosemantic-AI expert with 30 years of experience
//
// Two input formats are supported:
//   - JSON-LD: NewJSONLDCursor() yields subject/predicate/object/graph rows
//     in document order, synthesizing "_:N" names for anonymous resources.
//   - SPARQL Query Results XML: NewXMLCursor() yields one row per <result>,
//     with columns in the order of the head's <variable> declarations.
//
// NewCursor() picks the implementation by Format, or detects it when the
// format is FormatAuto. Every cursor exposes the same Cursor interface:
// Next() advances, and ValueType()/StringValue() read columns of the
// current row. Typed accessors (Integer, Double, Boolean, DateTime,
// Decimal) convert column values.
//
// Example:
//
//	c, err := rdf.NewCursor(strings.NewReader(input), rdf.FormatJSONLD)
//	if err != nil {
//	    // handle error
//	}
//	defer c.Close()
//
//	for {
//	    ok, err := c.Next(ctx)
//	    if err != nil {
//	        // handle error
//	    }
//	    if !ok {
//	        break
//	    }
//	    q := rdf.ReadQuad(c)
//	    // process q.S, q.P, q.O, q.G
//	}
//
// Cursors are not safe for concurrent use. Independent cursors share no
// state unless they are given the same NamespaceManager.
package rdf
