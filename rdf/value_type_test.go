package rdf

import "testing"

func TestTypeForDatatype(t *testing.T) {
	tests := []struct {
		datatype string
		want     ValueType
	}{
		{XSDNamespace + "string", ValueTypeString},
		{RDFNamespace + "langString", ValueTypeString},
		{XSDNamespace + "integer", ValueTypeInteger},
		{XSDNamespace + "boolean", ValueTypeBoolean},
		{XSDNamespace + "double", ValueTypeDouble},
		{XSDNamespace + "date", ValueTypeDateTime},
		{XSDNamespace + "dateTime", ValueTypeDateTime},
		{XSDNamespace + "int", ValueTypeString},
		{"http://example.org/custom", ValueTypeString},
		{"", ValueTypeString},
	}
	for _, tt := range tests {
		if got := TypeForDatatype(tt.datatype); got != tt.want {
			t.Errorf("TypeForDatatype(%q) = %v, want %v", tt.datatype, got, tt.want)
		}
	}
}

func TestTypeForXSDDatatype(t *testing.T) {
	tests := []struct {
		datatype string
		want     ValueType
	}{
		{XSDNamespace + "byte", ValueTypeInteger},
		{XSDNamespace + "int", ValueTypeInteger},
		{XSDNamespace + "integer", ValueTypeInteger},
		{XSDNamespace + "long", ValueTypeInteger},
		{XSDNamespace + "decimal", ValueTypeDouble},
		{XSDNamespace + "double", ValueTypeDouble},
		{XSDNamespace + "date", ValueTypeDateTime},
		{XSDNamespace + "dateTime", ValueTypeDateTime},
		{XSDNamespace + "boolean", ValueTypeBoolean},
		{XSDNamespace + "string", ValueTypeString},
		{XSDNamespace + "float", ValueTypeString},
		{"", ValueTypeString},
		{"http://example.org/integer", ValueTypeString},
	}
	for _, tt := range tests {
		if got := TypeForXSDDatatype(tt.datatype); got != tt.want {
			t.Errorf("TypeForXSDDatatype(%q) = %v, want %v", tt.datatype, got, tt.want)
		}
	}
}

func TestNativeValue(t *testing.T) {
	ns := DefaultNamespaces()
	tests := []struct {
		in      JSONScalar
		lexical string
		typ     ValueType
	}{
		{JSONScalar{Kind: JSONInteger, Int: 42}, "42", ValueTypeInteger},
		{JSONScalar{Kind: JSONDouble, Float: 0.1}, "0.1", ValueTypeDouble},
		{JSONScalar{Kind: JSONDouble, Float: 1e21}, "1e+21", ValueTypeDouble},
		{JSONScalar{Kind: JSONBool, Bool: false}, "false", ValueTypeBoolean},
		{JSONScalar{Kind: JSONString, Str: "xsd:string"}, XSDNamespace + "string", ValueTypeString},
		{JSONScalar{Kind: JSONString, Str: "plain"}, "plain", ValueTypeString},
		{JSONScalar{Kind: JSONNull}, "", ValueTypeUnbound},
	}
	for _, tt := range tests {
		lexical, typ := nativeValue(tt.in, ns)
		if lexical != tt.lexical || typ != tt.typ {
			t.Errorf("nativeValue(%+v) = %q %v, want %q %v", tt.in, lexical, typ, tt.lexical, tt.typ)
		}
	}
}
