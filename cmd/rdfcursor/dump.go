package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/theory/jsonpath"
	"golang.org/x/sync/errgroup"

	"github.com/geoknoesis/rdf-cursor/rdf"
)

const stdinName = "-"

// selectDocument replaces a JSON envelope with the first node matched by
// expr, so a JSON-LD payload embedded in a larger response can be read.
func selectDocument(r io.Reader, expr string) (io.Reader, error) {
	path, err := jsonpath.Parse(expr)
	if err != nil {
		return nil, fmt.Errorf("invalid JSONPath %q: %w", expr, err)
	}
	body, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	var data any
	if err := json.Unmarshal(body, &data); err != nil {
		return nil, fmt.Errorf("failed to parse JSON data: %w", err)
	}
	results := path.Select(data)
	if len(results) == 0 {
		return nil, fmt.Errorf("JSONPath %q matched nothing", expr)
	}
	doc, err := json.Marshal(results[0])
	if err != nil {
		return nil, err
	}
	return bytes.NewReader(doc), nil
}

// formatRow renders a row as tab separated terms. Unbound columns are empty.
func formatRow(row []rdf.Term) string {
	fields := make([]string, len(row))
	for i, term := range row {
		fields[i] = term.String()
	}
	return strings.Join(fields, "\t")
}

func formatHeader(c rdf.Cursor) string {
	names := make([]string, c.NColumns())
	for i := range names {
		if name, ok := c.VariableName(i); ok {
			names[i] = "?" + name
		}
	}
	return strings.Join(names, "\t")
}

// openCursor builds a cursor for one input, honouring an explicit format,
// then the content type, then the file extension, then sniffing.
func openCursor(r io.Reader, name string, cfg Config, opts []rdf.Option) (rdf.Cursor, error) {
	format, err := cfg.format()
	if err != nil {
		return nil, err
	}
	if cfg.Select != "" {
		if r, err = selectDocument(r, cfg.Select); err != nil {
			return nil, err
		}
		format = rdf.FormatJSONLD
	}
	if format != rdf.FormatAuto {
		return rdf.NewCursor(r, format, opts...)
	}
	if name == stdinName {
		name = ""
	}
	return rdf.NewCursorAuto(r, name, cfg.ContentType, opts...)
}

// dump writes every row of r to w.
func dump(ctx context.Context, r io.Reader, name string, cfg Config, w io.Writer, logger *slog.Logger) error {
	opts, err := cfg.options(ctx, logger)
	if err != nil {
		return err
	}
	c, err := openCursor(r, name, cfg, opts)
	if err != nil {
		return err
	}
	rows := 0
	err = rdf.ForEachRow(ctx, c, func(row []rdf.Term) error {
		if rows == 0 && cfg.Header {
			if _, err := fmt.Fprintln(w, formatHeader(c)); err != nil {
				return err
			}
		}
		rows++
		_, err := fmt.Fprintln(w, formatRow(row))
		return err
	})
	if err != nil {
		return err
	}
	logger.Debug("input done", "rows", rows)
	return nil
}

// dumpAll reads the inputs concurrently and writes their rows to w in
// argument order. Each input gets its own cursor and namespace manager.
func dumpAll(ctx context.Context, names []string, cfg Config, stdin io.Reader, w io.Writer, logger *slog.Logger) error {
	outputs := make([]bytes.Buffer, len(names))
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(cfg.jobs())
	for i, name := range names {
		eg.Go(func() error {
			r, err := openInput(name, stdin)
			if err != nil {
				return err
			}
			defer r.Close()
			if err := dump(ctx, r, name, cfg, &outputs[i], logger.With("input", name)); err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return err
	}
	for i := range outputs {
		if len(names) > 1 {
			if _, err := fmt.Fprintf(w, "# %s\n", names[i]); err != nil {
				return err
			}
		}
		if _, err := outputs[i].WriteTo(w); err != nil {
			return err
		}
	}
	return nil
}

func openInput(name string, stdin io.Reader) (io.ReadCloser, error) {
	if name == stdinName {
		return io.NopCloser(stdin), nil
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file %q: %v", name, err)
	}
	return f, nil
}
