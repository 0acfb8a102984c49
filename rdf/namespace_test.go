package rdf

import (
	"strings"
	"testing"
)

func TestNamespaces_ExpandURI(t *testing.T) {
	ns := NewNamespaces()
	if err := ns.AddPrefix("ex", "http://example.org/"); err != nil {
		t.Fatal(err)
	}
	tests := map[string]string{
		"ex:a":                 "http://example.org/a",
		"ex:":                  "http://example.org/",
		"unknown:a":            "unknown:a",
		"noprefix":             "noprefix",
		"http://example.org/x": "http://example.org/x",
	}
	for in, want := range tests {
		if got := ns.ExpandURI(in); got != want {
			t.Errorf("ExpandURI(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestNamespaces_AddPrefixValidation(t *testing.T) {
	ns := NewNamespaces()
	if err := ns.AddPrefix(strings.Repeat("p", MaxPrefixLength+1), "http://example.org/"); err == nil {
		t.Fatal("expected error for long prefix")
	}
	if err := ns.AddPrefix("a:b", "http://example.org/"); err == nil {
		t.Fatal("expected error for prefix with colon")
	}
	ns.Seal()
	if err := ns.AddPrefix("ex", "http://example.org/"); err == nil {
		t.Fatal("expected error on sealed manager")
	}
	if ns.HasPrefix("ex") {
		t.Fatal("expected sealed manager to stay empty")
	}
}

func TestNamespaces_CompressAndOrder(t *testing.T) {
	ns := NewNamespaces()
	ns.AddPrefix("ex", "http://example.org/")
	ns.AddPrefix("foaf", "http://xmlns.com/foaf/0.1/")
	ns.AddPrefix("ex", "http://example.com/")

	if got, ok := ns.CompressURI("http://example.com/a"); !ok || got != "ex:a" {
		t.Fatalf("expected ex:a, got %q %v", got, ok)
	}
	if _, ok := ns.CompressURI("http://example.org/a"); ok {
		t.Fatal("expected replaced namespace not to compress")
	}

	var prefixes []string
	ns.ForEach(func(prefix, _ string) { prefixes = append(prefixes, prefix) })
	if strings.Join(prefixes, ",") != "ex,foaf" {
		t.Fatalf("expected registration order, got %v", prefixes)
	}
}

func TestDefaultNamespaces(t *testing.T) {
	ns := DefaultNamespaces()
	for _, prefix := range []string{"rdf", "rdfs", "xsd", "nie", "nfo"} {
		if !ns.HasPrefix(prefix) {
			t.Errorf("expected default prefix %q", prefix)
		}
	}
	if got := ns.ExpandURI("rdf:type"); got != rdfTypeIRI {
		t.Fatalf("expected %s, got %s", rdfTypeIRI, got)
	}
}
