package rdf

import (
	"context"
	"fmt"
	"strings"
)

func ExampleNewCursor() {
	input := `{"@id":"http://example.org/a","http://example.org/age":42}`
	c, err := NewCursor(strings.NewReader(input), FormatJSONLD)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	defer c.Close()

	for {
		ok, err := c.Next(context.Background())
		if err != nil {
			fmt.Println("error:", err)
			return
		}
		if !ok {
			break
		}
		q := ReadQuad(c)
		fmt.Println(q.S, q.P, q.O)
	}

	// Output:
	// <http://example.org/a> <http://example.org/age> "42"^^INTEGER
}

func ExampleNewCursor_autoDetect() {
	input := `<sparql><head><variable name="name"/></head><results>
<result><binding name="name"><literal xml:lang="en">Alice</literal></binding></result>
</results></sparql>`
	c, err := NewCursor(strings.NewReader(input), FormatAuto)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	defer c.Close()

	for {
		ok, err := c.Next(context.Background())
		if err != nil || !ok {
			break
		}
		name, _ := c.VariableName(0)
		value, lang, _ := c.StringValue(0)
		fmt.Printf("%s=%s@%s (%s)\n", name, value, lang, c.ValueType(0))
	}

	// Output:
	// name=Alice@en (STRING)
}

func ExampleNewJSONLDCursor_graphs() {
	input := `{
		"@context": {"ex": "http://example.org/"},
		"@id": "ex:g",
		"@graph": [{"@id": "ex:a", "ex:knows": {"ex:name": "Bob"}}]
	}`
	c := NewJSONLDCursor(strings.NewReader(input))
	defer c.Close()

	for {
		ok, err := c.Next(context.Background())
		if err != nil || !ok {
			break
		}
		q := ReadQuad(c)
		fmt.Println(q.S, q.P, q.O, q.G)
	}

	// Output:
	// _:0 <http://example.org/name> "Bob" <http://example.org/g>
	// <http://example.org/a> <http://example.org/knows> "_:0" <http://example.org/g>
}

func ExampleForEachRow() {
	input := `<sparql><head><variable name="x"/><variable name="y"/></head><results>
<result><binding name="x"><uri>http://example.org/a</uri></binding></result>
<result><binding name="y"><bnode>b1</bnode></binding></result>
</results></sparql>`
	c := NewXMLCursor(strings.NewReader(input))
	err := ForEachRow(context.Background(), c, func(row []Term) error {
		fmt.Printf("%q %q\n", row[0].String(), row[1].String())
		return nil
	})
	if err != nil {
		fmt.Println("error:", err)
	}

	// Output:
	// "<http://example.org/a>" ""
	// "" "_:b1"
}
