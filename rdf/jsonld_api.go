package rdf

import (
	"context"
	"encoding/json"
	"io"

	ld "github.com/piprate/json-gold/ld"
)

// DocumentLoader resolves remote contexts/documents.
type DocumentLoader interface {
	LoadDocument(ctx context.Context, iri string) (RemoteDocument, error)
}

// RemoteDocument represents a fetched JSON-LD document.
type RemoteDocument struct {
	DocumentURL string
	Document    interface{}
	ContextURL  string
}

// DocumentLoaderFunc adapts a function to DocumentLoader.
type DocumentLoaderFunc func(ctx context.Context, iri string) (RemoteDocument, error)

// LoadDocument calls f.
func (f DocumentLoaderFunc) LoadDocument(ctx context.Context, iri string) (RemoteDocument, error) {
	return f(ctx, iri)
}

// expandJSONLD decodes a document and runs JSON-LD expansion on it.
// The expanded form is a list of node objects with full IRIs, which the
// cursor reads without any context handling.
func expandJSONLD(ctx context.Context, r io.Reader, opts Options) (*jsonNode, error) {
	if err := checkCancelled(ctx); err != nil {
		return nil, err
	}
	var doc interface{}
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, err
	}
	proc := ld.NewJsonLdProcessor()
	expanded, err := proc.Expand(doc, newJSONGoldOptions(ctx, opts))
	if err != nil {
		return nil, err
	}
	if err := checkCancelled(ctx); err != nil {
		return nil, err
	}
	return jsonNodeFromValue(expanded, 0, opts.MaxDepth)
}

type jsonGoldDocumentLoader struct {
	ctx   context.Context
	inner DocumentLoader
}

func (l jsonGoldDocumentLoader) LoadDocument(iri string) (*ld.RemoteDocument, error) {
	if err := checkCancelled(l.ctx); err != nil {
		return nil, err
	}
	remote, err := l.inner.LoadDocument(l.ctx, iri)
	if err != nil {
		return nil, err
	}
	return &ld.RemoteDocument{
		DocumentURL: remote.DocumentURL,
		Document:    remote.Document,
		ContextURL:  remote.ContextURL,
	}, nil
}

func newJSONGoldOptions(ctx context.Context, opts Options) *ld.JsonLdOptions {
	goldOpts := ld.NewJsonLdOptions(opts.BaseIRI)
	if opts.DocumentLoader != nil {
		goldOpts.DocumentLoader = jsonGoldDocumentLoader{ctx: ctx, inner: opts.DocumentLoader}
	}
	return goldOpts
}
