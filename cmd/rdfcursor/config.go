package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"
	"sort"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/geoknoesis/rdf-cursor/rdf"
)

// Config holds the settings shared by every input file.
// Values come from an optional YAML file and are overridden by flags.
type Config struct {
	Format        string            `yaml:"format"`
	ContentType   string            `yaml:"content_type"`
	Jobs          int               `yaml:"jobs"`
	Expand        bool              `yaml:"expand"`
	Base          string            `yaml:"base"`
	Select        string            `yaml:"select"`
	Header        bool              `yaml:"header"`
	Safe          bool              `yaml:"safe"`
	MaxDepth      int               `yaml:"max_depth"`
	MaxInputBytes int64             `yaml:"max_input_bytes"`
	Prefixes      map[string]string `yaml:"prefixes"`
}

// parseConfig decodes a YAML config. An empty document yields a zero Config.
func parseConfig(r io.Reader) (Config, error) {
	var cfg Config
	decoder := yaml.NewDecoder(r)
	if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("failed to decode YAML config: %w", err)
	}
	return cfg, nil
}

func loadConfig(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to open config file %q: %w", path, err)
	}
	defer f.Close()
	return parseConfig(f)
}

// parsePrefix splits a "prefix=namespace" flag value.
func parsePrefix(value string) (string, string, error) {
	prefix, namespace, ok := strings.Cut(value, "=")
	if !ok || prefix == "" || namespace == "" {
		return "", "", fmt.Errorf("invalid prefix %q, expected prefix=namespace", value)
	}
	return prefix, namespace, nil
}

func (c Config) format() (rdf.Format, error) {
	format, ok := rdf.ParseFormat(c.Format)
	if !ok {
		return rdf.FormatAuto, fmt.Errorf("%w: %q", rdf.ErrUnsupportedFormat, c.Format)
	}
	return format, nil
}

func (c Config) jobs() int {
	if c.Jobs > 0 {
		return c.Jobs
	}
	return runtime.GOMAXPROCS(0)
}

// namespaces returns a fresh manager so cursors running in parallel never
// share @context prefixes.
func (c Config) namespaces() (*rdf.Namespaces, error) {
	ns := rdf.DefaultNamespaces()
	for _, prefix := range sortedPrefixes(c.Prefixes) {
		if err := ns.AddPrefix(prefix, c.Prefixes[prefix]); err != nil {
			return nil, fmt.Errorf("prefix %q: %w", prefix, err)
		}
	}
	return ns, nil
}

func (c Config) options(ctx context.Context, logger *slog.Logger) ([]rdf.Option, error) {
	ns, err := c.namespaces()
	if err != nil {
		return nil, err
	}
	opts := []rdf.Option{
		rdf.OptContext(ctx),
		rdf.OptNamespaces(ns),
		rdf.OptLogger(logger),
	}
	if c.Safe {
		opts = append(opts, rdf.OptSafeLimits())
	}
	if c.MaxDepth != 0 {
		opts = append(opts, rdf.OptMaxDepth(c.MaxDepth))
	}
	if c.MaxInputBytes != 0 {
		opts = append(opts, rdf.OptMaxInputBytes(c.MaxInputBytes))
	}
	if c.Expand {
		opts = append(opts, rdf.OptExpandJSONLD())
	}
	if c.Base != "" {
		opts = append(opts, rdf.OptBaseIRI(c.Base))
	}
	return opts, nil
}

func sortedPrefixes(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
