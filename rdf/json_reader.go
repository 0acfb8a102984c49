package rdf

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// JSONKind identifies the kind of a JSON node.
type JSONKind uint8

const (
	JSONNull JSONKind = iota
	JSONString
	JSONInteger
	JSONDouble
	JSONBool
	JSONObject
	JSONArray
)

// JSONScalar is the value of a scalar JSON node.
type JSONScalar struct {
	Kind  JSONKind
	Str   string
	Int   int64
	Float float64
	Bool  bool
}

// JSONReader navigates a JSON document one node at a time.
//
// ReadMember and ReadElement move into a child and must always be paired
// with EndMember/EndElement, even when they fail: a failed read leaves the
// position unchanged and the matching End call only clears the failure.
type JSONReader interface {
	IsArray() bool
	IsObject() bool
	ReadElement(index int) bool
	EndElement()
	ReadMember(name string) bool
	EndMember()
	// ListMembers returns the member names of the current object in
	// document order.
	ListMembers() []string
	CountElements() int
	StringValue() (string, bool)
	Scalar() JSONScalar
	// Err returns the failure of the last unmatched read, if any.
	Err() error
}

type jsonMember struct {
	name  string
	value *jsonNode
}

type jsonNode struct {
	scalar   JSONScalar
	members  []jsonMember
	elements []*jsonNode
}

func (n *jsonNode) kind() JSONKind { return n.scalar.Kind }

func (n *jsonNode) member(name string) (*jsonNode, bool) {
	for _, m := range n.members {
		if m.name == name {
			return m.value, true
		}
	}
	return nil, false
}

func (n *jsonNode) setMember(name string, value *jsonNode) {
	for i := range n.members {
		if n.members[i].name == name {
			n.members[i].value = value
			return
		}
	}
	n.members = append(n.members, jsonMember{name: name, value: value})
}

// jsonTreeReader is the JSONReader over an in-memory document.
type jsonTreeReader struct {
	path     []*jsonNode
	failures int
	err      error
}

func newJSONTreeReader(root *jsonNode) *jsonTreeReader {
	return &jsonTreeReader{path: []*jsonNode{root}}
}

// NewJSONReader parses a complete JSON document and returns a reader
// positioned at its root. maxDepth <= 0 disables the nesting limit.
func NewJSONReader(r io.Reader, maxDepth int) (JSONReader, error) {
	root, err := parseJSONTree(r, maxDepth)
	if err != nil {
		return nil, err
	}
	return newJSONTreeReader(root), nil
}

func (r *jsonTreeReader) current() *jsonNode {
	return r.path[len(r.path)-1]
}

func (r *jsonTreeReader) fail(err error) bool {
	r.failures++
	r.err = err
	return false
}

func (r *jsonTreeReader) IsArray() bool {
	return r.failures == 0 && r.current().kind() == JSONArray
}

func (r *jsonTreeReader) IsObject() bool {
	return r.failures == 0 && r.current().kind() == JSONObject
}

func (r *jsonTreeReader) ReadElement(index int) bool {
	if r.failures > 0 {
		return r.fail(r.err)
	}
	node := r.current()
	if node.kind() != JSONArray {
		return r.fail(fmt.Errorf("json: cannot read element %d, current node is not an array", index))
	}
	if index < 0 || index >= len(node.elements) {
		return r.fail(fmt.Errorf("json: element index %d out of range (%d elements)", index, len(node.elements)))
	}
	r.path = append(r.path, node.elements[index])
	return true
}

func (r *jsonTreeReader) EndElement() { r.end() }

func (r *jsonTreeReader) ReadMember(name string) bool {
	if r.failures > 0 {
		return r.fail(r.err)
	}
	node := r.current()
	if node.kind() != JSONObject {
		return r.fail(fmt.Errorf("json: cannot read member %q, current node is not an object", name))
	}
	child, ok := node.member(name)
	if !ok {
		return r.fail(fmt.Errorf("json: object has no member %q", name))
	}
	r.path = append(r.path, child)
	return true
}

func (r *jsonTreeReader) EndMember() { r.end() }

func (r *jsonTreeReader) end() {
	if r.failures > 0 {
		r.failures--
		if r.failures == 0 {
			r.err = nil
		}
		return
	}
	if len(r.path) > 1 {
		r.path = r.path[:len(r.path)-1]
	}
}

func (r *jsonTreeReader) ListMembers() []string {
	if r.failures > 0 {
		return nil
	}
	node := r.current()
	names := make([]string, len(node.members))
	for i, m := range node.members {
		names[i] = m.name
	}
	return names
}

func (r *jsonTreeReader) CountElements() int {
	if r.failures > 0 {
		return 0
	}
	return len(r.current().elements)
}

func (r *jsonTreeReader) StringValue() (string, bool) {
	if r.failures > 0 {
		return "", false
	}
	node := r.current()
	if node.kind() != JSONString {
		return "", false
	}
	return node.scalar.Str, true
}

func (r *jsonTreeReader) Scalar() JSONScalar {
	if r.failures > 0 {
		return JSONScalar{}
	}
	node := r.current()
	switch node.kind() {
	case JSONObject, JSONArray:
		return JSONScalar{}
	}
	return node.scalar
}

func (r *jsonTreeReader) Err() error { return r.err }

type openJSONContainer struct {
	node    *jsonNode
	key     string
	haveKey bool
}

// parseJSONTree builds an ordered document tree from a token stream.
// Member order is kept because it drives row order.
func parseJSONTree(r io.Reader, maxDepth int) (*jsonNode, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	var root *jsonNode
	var open []*openJSONContainer

	attach := func(node *jsonNode) error {
		if len(open) == 0 {
			root = node
			return nil
		}
		top := open[len(open)-1]
		if top.node.kind() == JSONArray {
			top.node.elements = append(top.node.elements, node)
			return nil
		}
		if !top.haveKey {
			return errors.New("json: object value without key")
		}
		top.node.setMember(top.key, node)
		top.haveKey = false
		return nil
	}

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			if root == nil {
				return nil, io.ErrUnexpectedEOF
			}
			if len(open) > 0 {
				return nil, io.ErrUnexpectedEOF
			}
			return root, nil
		}
		if err != nil {
			return nil, err
		}
		if len(open) > 0 {
			top := open[len(open)-1]
			if top.node.kind() == JSONObject && !top.haveKey {
				if key, ok := tok.(string); ok {
					top.key = key
					top.haveKey = true
					continue
				}
			}
		} else if root != nil {
			return nil, errors.New("json: unexpected data after top-level value")
		}

		switch t := tok.(type) {
		case json.Delim:
			switch t {
			case '{', '[':
				kind := JSONObject
				if t == '[' {
					kind = JSONArray
				}
				node := &jsonNode{scalar: JSONScalar{Kind: kind}}
				if err := attach(node); err != nil {
					return nil, err
				}
				open = append(open, &openJSONContainer{node: node})
				if maxDepth > 0 && len(open) > maxDepth {
					return nil, ErrDepthExceeded
				}
			case '}', ']':
				open = open[:len(open)-1]
			}
		default:
			node, err := scalarNode(tok)
			if err != nil {
				return nil, err
			}
			if err := attach(node); err != nil {
				return nil, err
			}
		}
	}
}

func scalarNode(tok json.Token) (*jsonNode, error) {
	switch v := tok.(type) {
	case nil:
		return &jsonNode{scalar: JSONScalar{Kind: JSONNull}}, nil
	case bool:
		return &jsonNode{scalar: JSONScalar{Kind: JSONBool, Bool: v}}, nil
	case string:
		return &jsonNode{scalar: JSONScalar{Kind: JSONString, Str: v}}, nil
	case json.Number:
		return &jsonNode{scalar: numberScalar(string(v))}, nil
	default:
		return nil, fmt.Errorf("json: unexpected token %T", tok)
	}
}

// numberScalar types integral literals as integers and everything else
// (fractions, exponents, out of int64 range) as doubles.
func numberScalar(lit string) JSONScalar {
	if !strings.ContainsAny(lit, ".eE") {
		if i, err := strconv.ParseInt(lit, 10, 64); err == nil {
			return JSONScalar{Kind: JSONInteger, Int: i}
		}
	}
	f, _ := strconv.ParseFloat(lit, 64)
	return JSONScalar{Kind: JSONDouble, Float: f}
}

// jsonNodeFromValue converts a generic decoded value (as produced by
// encoding/json or json-gold) into a document tree. Object members are
// sorted since the generic form carries no order.
func jsonNodeFromValue(v any, depth, maxDepth int) (*jsonNode, error) {
	if maxDepth > 0 && depth > maxDepth {
		return nil, ErrDepthExceeded
	}
	switch val := v.(type) {
	case nil:
		return &jsonNode{scalar: JSONScalar{Kind: JSONNull}}, nil
	case bool:
		return &jsonNode{scalar: JSONScalar{Kind: JSONBool, Bool: val}}, nil
	case string:
		return &jsonNode{scalar: JSONScalar{Kind: JSONString, Str: val}}, nil
	case json.Number:
		return &jsonNode{scalar: numberScalar(string(val))}, nil
	case float64:
		return &jsonNode{scalar: floatScalar(val)}, nil
	case int:
		return &jsonNode{scalar: JSONScalar{Kind: JSONInteger, Int: int64(val)}}, nil
	case int64:
		return &jsonNode{scalar: JSONScalar{Kind: JSONInteger, Int: val}}, nil
	case []any:
		node := &jsonNode{scalar: JSONScalar{Kind: JSONArray}}
		for _, item := range val {
			child, err := jsonNodeFromValue(item, depth+1, maxDepth)
			if err != nil {
				return nil, err
			}
			node.elements = append(node.elements, child)
		}
		return node, nil
	case map[string]any:
		node := &jsonNode{scalar: JSONScalar{Kind: JSONObject}}
		for _, key := range sortedKeys(val) {
			child, err := jsonNodeFromValue(val[key], depth+1, maxDepth)
			if err != nil {
				return nil, err
			}
			node.members = append(node.members, jsonMember{name: key, value: child})
		}
		return node, nil
	default:
		return nil, fmt.Errorf("json: unsupported value type %T", v)
	}
}

// floatScalar keeps integral values that fit a float64 mantissa as integers.
func floatScalar(f float64) JSONScalar {
	const maxExact = 1 << 53
	if f == float64(int64(f)) && f > -maxExact && f < maxExact {
		return JSONScalar{Kind: JSONInteger, Int: int64(f)}
	}
	return JSONScalar{Kind: JSONDouble, Float: f}
}
