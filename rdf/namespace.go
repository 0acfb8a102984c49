package rdf

import (
	"fmt"
	"strings"
	"sync"
)

// MaxPrefixLength is the longest prefix a namespace manager accepts.
const MaxPrefixLength = 100

// NamespaceManager expands compact IRIs ("prefix:local") to full IRIs.
type NamespaceManager interface {
	// ExpandURI expands a compact IRI, or returns it unchanged when the
	// prefix is unknown.
	ExpandURI(compact string) string
	// AddPrefix registers a prefix for a namespace IRI.
	AddPrefix(prefix, namespace string) error
	// LookupPrefix returns the namespace for a prefix.
	LookupPrefix(prefix string) (string, bool)
}

type prefixMapping struct {
	prefix    string
	namespace string
}

// Namespaces is the default NamespaceManager. It is safe for concurrent use.
type Namespaces struct {
	mu       sync.RWMutex
	byPrefix map[string]string
	ordered  []prefixMapping
	sealed   bool
}

// NewNamespaces returns an empty namespace manager.
func NewNamespaces() *Namespaces {
	return &Namespaces{byPrefix: map[string]string{}}
}

// DefaultNamespaces returns a new manager holding well-known prefixes.
func DefaultNamespaces() *Namespaces {
	ns := NewNamespaces()
	for _, m := range defaultPrefixes {
		_ = ns.AddPrefix(m.prefix, m.namespace)
	}
	return ns
}

var defaultPrefixes = []prefixMapping{
	{"rdf", RDFNamespace},
	{"rdfs", RDFSNamespace},
	{"xsd", XSDNamespace},
	{"dc", "http://purl.org/dc/elements/1.1/"},
	{"nrl", "http://tracker.api.gnome.org/ontology/v3/nrl#"},
	{"nie", "http://tracker.api.gnome.org/ontology/v3/nie#"},
	{"nco", "http://tracker.api.gnome.org/ontology/v3/nco#"},
	{"nao", "http://tracker.api.gnome.org/ontology/v3/nao#"},
	{"nfo", "http://tracker.api.gnome.org/ontology/v3/nfo#"},
	{"slo", "http://tracker.api.gnome.org/ontology/v3/slo#"},
	{"nmm", "http://tracker.api.gnome.org/ontology/v3/nmm#"},
	{"mfo", "http://tracker.api.gnome.org/ontology/v3/mfo#"},
	{"osinfo", "http://tracker.api.gnome.org/ontology/v3/osinfo#"},
	{"tracker", "http://tracker.api.gnome.org/ontology/v3/tracker#"},
	{"fts", "http://tracker.api.gnome.org/ontology/v3/fts#"},
}

// AddPrefix registers prefix as the abbreviation of namespace.
func (n *Namespaces) AddPrefix(prefix, namespace string) error {
	if len(prefix) > MaxPrefixLength {
		return fmt.Errorf("rdf: prefix %q exceeds %d bytes", prefix, MaxPrefixLength)
	}
	if strings.Contains(prefix, ":") {
		return fmt.Errorf("rdf: prefix %q contains ':'", prefix)
	}
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.sealed {
		return fmt.Errorf("rdf: namespace manager is sealed, cannot add %q", prefix)
	}
	if _, ok := n.byPrefix[prefix]; ok {
		for i := range n.ordered {
			if n.ordered[i].prefix == prefix {
				n.ordered[i].namespace = namespace
			}
		}
	} else {
		n.ordered = append(n.ordered, prefixMapping{prefix: prefix, namespace: namespace})
	}
	n.byPrefix[prefix] = namespace
	return nil
}

// LookupPrefix returns the namespace registered for prefix.
func (n *Namespaces) LookupPrefix(prefix string) (string, bool) {
	n.mu.RLock()
	defer n.mu.RUnlock()
	ns, ok := n.byPrefix[prefix]
	return ns, ok
}

// HasPrefix reports whether prefix is registered.
func (n *Namespaces) HasPrefix(prefix string) bool {
	_, ok := n.LookupPrefix(prefix)
	return ok
}

// ExpandURI expands "prefix:local" when prefix is registered.
func (n *Namespaces) ExpandURI(compact string) string {
	prefix, local, ok := strings.Cut(compact, ":")
	if !ok || len(prefix) >= MaxPrefixLength {
		return compact
	}
	if ns, found := n.LookupPrefix(prefix); found {
		return ns + local
	}
	return compact
}

// CompressURI returns the compact form of uri using the first registered
// namespace it starts with.
func (n *Namespaces) CompressURI(uri string) (string, bool) {
	n.mu.RLock()
	defer n.mu.RUnlock()
	for _, m := range n.ordered {
		if m.namespace != "" && strings.HasPrefix(uri, m.namespace) {
			return m.prefix + ":" + uri[len(m.namespace):], true
		}
	}
	return "", false
}

// ForEach calls fn for every prefix in registration order.
func (n *Namespaces) ForEach(fn func(prefix, namespace string)) {
	n.mu.RLock()
	mappings := append([]prefixMapping(nil), n.ordered...)
	n.mu.RUnlock()
	for _, m := range mappings {
		fn(m.prefix, m.namespace)
	}
}

// Seal makes the manager read-only.
func (n *Namespaces) Seal() {
	n.mu.Lock()
	n.sealed = true
	n.mu.Unlock()
}
