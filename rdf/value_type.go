package rdf

import (
	"strconv"
	"strings"
)

const (
	// XSDNamespace is the XML Schema datatype namespace.
	XSDNamespace = "http://www.w3.org/2001/XMLSchema#"
	// RDFNamespace is the RDF syntax namespace.
	RDFNamespace = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"
	// RDFSNamespace is the RDF Schema namespace.
	RDFSNamespace = "http://www.w3.org/2000/01/rdf-schema#"

	rdfTypeIRI = RDFNamespace + "type"
)

// TypeForDatatype maps the @type IRI of a JSON-LD value object to a value type.
// Unknown or empty datatypes are strings.
func TypeForDatatype(datatype string) ValueType {
	switch datatype {
	case XSDNamespace + "string", RDFNamespace + "langString":
		return ValueTypeString
	case XSDNamespace + "integer":
		return ValueTypeInteger
	case XSDNamespace + "boolean":
		return ValueTypeBoolean
	case XSDNamespace + "double":
		return ValueTypeDouble
	case XSDNamespace + "date", XSDNamespace + "dateTime":
		return ValueTypeDateTime
	default:
		return ValueTypeString
	}
}

// TypeForXSDDatatype maps the datatype attribute of a SPARQL XML <literal>.
// It accepts the wider set of XSD numeric types found in result documents.
func TypeForXSDDatatype(datatype string) ValueType {
	suffix, ok := strings.CutPrefix(datatype, XSDNamespace)
	if !ok {
		return ValueTypeString
	}
	switch suffix {
	case "byte", "int", "integer", "long":
		return ValueTypeInteger
	case "decimal", "double":
		return ValueTypeDouble
	case "date", "dateTime":
		return ValueTypeDateTime
	case "boolean":
		return ValueTypeBoolean
	default:
		return ValueTypeString
	}
}

// nativeValue types a bare JSON scalar. Strings are expanded through ns
// when it is non-nil.
func nativeValue(v JSONScalar, ns NamespaceManager) (string, ValueType) {
	switch v.Kind {
	case JSONInteger:
		return strconv.FormatInt(v.Int, 10), ValueTypeInteger
	case JSONDouble:
		return formatDouble(v.Float), ValueTypeDouble
	case JSONBool:
		return strconv.FormatBool(v.Bool), ValueTypeBoolean
	case JSONString:
		if ns == nil {
			return v.Str, ValueTypeString
		}
		return ns.ExpandURI(v.Str), ValueTypeString
	default:
		return "", ValueTypeUnbound
	}
}

// formatDouble renders a float in the shortest form that parses back to the
// same value, independent of locale.
func formatDouble(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
