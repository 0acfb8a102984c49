package rdf

import (
	"net/url"
	"strings"
)

// resolveIRI resolves a relative node identifier against base.
// Blank node labels, absolute IRIs and an empty base leave id unchanged.
func resolveIRI(base, id string) string {
	if base == "" || id == "" || strings.HasPrefix(id, "_:") {
		return id
	}
	ref, err := url.Parse(id)
	if err != nil || ref.Scheme != "" {
		return id
	}
	baseURL, err := url.Parse(base)
	if err != nil {
		return id
	}
	return baseURL.ResolveReference(ref).String()
}
