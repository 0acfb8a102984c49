package rdf

import "fmt"

// parseState is a state of the JSON-LD cursor.
type parseState uint8

const (
	stateInitial parseState = iota
	stateRootList
	stateMaybeGraph
	stateObjectList
	stateProperties
	stateValueList
	stateValue
	stateValueAsObject
	stateFinal
)

var parseStateNames = [...]string{
	stateInitial:       "initial",
	stateRootList:      "root-list",
	stateMaybeGraph:    "maybe-graph",
	stateObjectList:    "object-list",
	stateProperties:    "properties",
	stateValueList:     "value-list",
	stateValue:         "value",
	stateValueAsObject: "value-as-object",
	stateFinal:         "final",
}

func (s parseState) String() string {
	if int(s) < len(parseStateNames) {
		return parseStateNames[s]
	}
	return fmt.Sprintf("parseState(%d)", uint8(s))
}

// parseFrame is one open JSON container. state is the cursor state that
// processes the frame; it becomes current again when the frames above it
// are popped.
type parseFrame struct {
	array   bool
	state   parseState
	index   int
	length  int
	members []string
	id      string
	isGraph bool
	// lang is the default language set by the object's own @context.
	lang    string
	hasLang bool
}

func (f *parseFrame) size() int {
	if f.array {
		return f.length
	}
	return len(f.members)
}

// stateStack tracks the open containers of a JSON-LD document.
// The last frame is the top of the stack.
type stateStack struct {
	frames []parseFrame
}

func newStateStack() *stateStack {
	return &stateStack{frames: make([]parseFrame, 0, 16)}
}

func (s *stateStack) pushArray(length int, state parseState) {
	s.frames = append(s.frames, parseFrame{array: true, state: state, index: -1, length: length})
}

func (s *stateStack) pushObject(members []string, isGraph bool, id string, state parseState) {
	s.frames = append(s.frames, parseFrame{
		state:   state,
		index:   -1,
		members: members,
		id:      id,
		isGraph: isGraph,
	})
}

// top allows modifying the top frame in place.
func (s *stateStack) top() (*parseFrame, error) {
	if len(s.frames) == 0 {
		return nil, fmt.Errorf("%w: empty state stack", ErrInternal)
	}
	return &s.frames[len(s.frames)-1], nil
}

// advance moves the top frame to its next child and reports whether the
// child exists.
func (s *stateStack) advance() (int, bool, error) {
	f, err := s.top()
	if err != nil {
		return 0, false, err
	}
	if f.index < f.size() {
		f.index++
	}
	return f.index, f.index < f.size(), nil
}

// pop removes the top frame and returns the state of the new top,
// or stateFinal when the stack is empty.
func (s *stateStack) pop() (parseState, error) {
	if len(s.frames) == 0 {
		return stateFinal, fmt.Errorf("%w: pop on empty state stack", ErrInternal)
	}
	s.frames = s.frames[:len(s.frames)-1]
	if len(s.frames) == 0 {
		return stateFinal, nil
	}
	return s.frames[len(s.frames)-1].state, nil
}

func (s *stateStack) size() int {
	return len(s.frames)
}

// currentMember returns the member being visited by the innermost object.
func (s *stateStack) currentMember() (string, bool) {
	for i := len(s.frames) - 1; i >= 0; i-- {
		f := &s.frames[i]
		if f.array {
			continue
		}
		if f.index >= 0 && f.index < len(f.members) {
			return f.members[f.index], true
		}
		return "", false
	}
	return "", false
}

// subjectFrame returns the innermost object that describes a resource
// (as opposed to a graph container).
func (s *stateStack) subjectFrame() *parseFrame {
	for i := len(s.frames) - 1; i >= 0; i-- {
		f := &s.frames[i]
		if !f.array && !f.isGraph {
			return f
		}
	}
	return nil
}

// nearestSubjectID returns the id of the innermost resource object.
func (s *stateStack) nearestSubjectID() (string, bool) {
	f := s.subjectFrame()
	if f == nil || f.id == "" {
		return "", false
	}
	return f.id, true
}

// nearestGraphID returns the name of the innermost enclosing graph.
func (s *stateStack) nearestGraphID() (string, bool) {
	for i := len(s.frames) - 1; i >= 0; i-- {
		f := &s.frames[i]
		if !f.array && f.isGraph {
			return f.id, f.id != ""
		}
	}
	return "", false
}

// nearestLanguage returns the default language in scope: the one set by
// the innermost object whose @context declares @language.
func (s *stateStack) nearestLanguage() string {
	for i := len(s.frames) - 1; i >= 0; i-- {
		if f := &s.frames[i]; f.hasLang {
			return f.lang
		}
	}
	return ""
}
