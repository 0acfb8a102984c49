package rdf

import "testing"

func TestValueType_String(t *testing.T) {
	tests := map[ValueType]string{
		ValueTypeUnbound:   "UNBOUND",
		ValueTypeURI:       "URI",
		ValueTypeBlankNode: "BLANK_NODE",
		ValueTypeDateTime:  "DATETIME",
		ValueType(99):      "ValueType(99)",
	}
	for vt, want := range tests {
		if got := vt.String(); got != want {
			t.Errorf("String() = %q, want %q", got, want)
		}
	}
}

func TestNewTerm_DropsLanguageForNonStrings(t *testing.T) {
	if term := NewTerm(ValueTypeInteger, "1", "en"); term.Lang != "" {
		t.Fatalf("expected no language, got %q", term.Lang)
	}
	if term := NewTerm(ValueTypeString, "chat", "fr"); term.Lang != "fr" {
		t.Fatalf("expected fr, got %q", term.Lang)
	}
	if term := NewTerm(ValueTypeUnbound, "x", ""); term.IsBound() {
		t.Fatal("expected unbound term")
	}
}

func TestTerm_String(t *testing.T) {
	tests := []struct {
		term Term
		want string
	}{
		{Unbound, ""},
		{Term{Type: ValueTypeURI, Lexical: "http://example.org/a"}, "<http://example.org/a>"},
		{Term{Type: ValueTypeBlankNode, Lexical: "_:0"}, "_:0"},
		{Term{Type: ValueTypeString, Lexical: "chat", Lang: "fr"}, `"chat"@fr`},
		{Term{Type: ValueTypeInteger, Lexical: "5"}, `"5"^^INTEGER`},
	}
	for _, tt := range tests {
		if got := tt.term.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestQuad_Graph(t *testing.T) {
	q := Quad{S: Term{Type: ValueTypeURI, Lexical: "s"}}
	if !q.InDefaultGraph() || q.IsZero() {
		t.Fatal("expected default graph, non-zero quad")
	}
	if !(Quad{}).IsZero() {
		t.Fatal("expected zero quad")
	}
}
