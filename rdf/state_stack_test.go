package rdf

import (
	"errors"
	"testing"
)

func TestStateStack_PopReturnsStateBelow(t *testing.T) {
	s := newStateStack()
	s.pushArray(2, stateRootList)
	s.pushObject([]string{"a"}, false, "", stateProperties)

	state, err := s.pop()
	if err != nil || state != stateRootList {
		t.Fatalf("expected root-list, got %v %v", state, err)
	}
	state, err = s.pop()
	if err != nil || state != stateFinal {
		t.Fatalf("expected final, got %v %v", state, err)
	}
	if _, err := s.pop(); !errors.Is(err, ErrInternal) {
		t.Fatalf("expected ErrInternal on empty pop, got %v", err)
	}
}

func TestStateStack_Advance(t *testing.T) {
	s := newStateStack()
	s.pushArray(2, stateValueList)
	for want := 0; want < 2; want++ {
		idx, more, err := s.advance()
		if err != nil || !more || idx != want {
			t.Fatalf("expected index %d, got %d %v %v", want, idx, more, err)
		}
	}
	if _, more, _ := s.advance(); more {
		t.Fatal("expected frame to be exhausted")
	}
	if _, more, _ := s.advance(); more {
		t.Fatal("expected frame to stay exhausted")
	}

	empty := newStateStack()
	if _, _, err := empty.advance(); !errors.Is(err, ErrInternal) {
		t.Fatalf("expected ErrInternal, got %v", err)
	}
}

func TestStateStack_Lookups(t *testing.T) {
	s := newStateStack()
	s.pushObject([]string{"@graph"}, true, "http://example.org/g", stateProperties)
	s.advance()
	s.pushArray(1, stateObjectList)
	s.advance()
	s.pushObject([]string{"@id", "p"}, false, "http://example.org/a", stateProperties)
	s.advance()
	s.advance()
	s.pushArray(1, stateValueList)

	if m, ok := s.currentMember(); !ok || m != "p" {
		t.Fatalf("expected member p, got %q %v", m, ok)
	}
	if id, ok := s.nearestSubjectID(); !ok || id != "http://example.org/a" {
		t.Fatalf("expected subject a, got %q %v", id, ok)
	}
	if id, ok := s.nearestGraphID(); !ok || id != "http://example.org/g" {
		t.Fatalf("expected graph g, got %q %v", id, ok)
	}
}

func TestStateStack_CurrentMemberBeforeAdvance(t *testing.T) {
	s := newStateStack()
	s.pushObject([]string{"p"}, false, "", stateProperties)
	if _, ok := s.currentMember(); ok {
		t.Fatal("expected no current member before the first advance")
	}
	if _, ok := s.nearestSubjectID(); ok {
		t.Fatal("expected no subject id for anonymous object")
	}
	if _, ok := s.nearestGraphID(); ok {
		t.Fatal("expected no graph")
	}
}

func TestStateStack_NearestLanguage(t *testing.T) {
	s := newStateStack()
	s.pushObject([]string{"p"}, false, "a", stateProperties)
	if got := s.nearestLanguage(); got != "" {
		t.Fatalf("expected no language, got %q", got)
	}
	outer, _ := s.top()
	outer.lang, outer.hasLang = "en", true

	s.pushArray(1, stateValueList)
	s.pushObject([]string{"q"}, false, "b", stateProperties)
	if got := s.nearestLanguage(); got != "en" {
		t.Fatalf("expected inherited language en, got %q", got)
	}
	inner, _ := s.top()
	inner.lang, inner.hasLang = "", true
	if got := s.nearestLanguage(); got != "" {
		t.Fatalf("expected reset language, got %q", got)
	}

	if _, err := s.pop(); err != nil {
		t.Fatal(err)
	}
	if got := s.nearestLanguage(); got != "en" {
		t.Fatalf("expected en after leaving nested object, got %q", got)
	}
}
