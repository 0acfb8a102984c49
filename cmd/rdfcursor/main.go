// Command rdfcursor prints the rows of JSON-LD and SPARQL XML result
// documents as tab separated terms.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"
)

var (
	logPath     string
	configPath  string
	format      string
	contentType string
	selectExpr  string
	base        string
	jobs        int
	expand      bool
	header      bool
	safe        bool
	verbose     bool
	prefixes    []string
	logCfg      slog.HandlerOptions = slog.HandlerOptions{
		Level: slog.LevelError,
	}
)

func cmdLineParse() {
	pflag.StringVarP(&logPath, "log", "l", "", "path to log file. Default is stderr")
	pflag.StringVarP(&configPath, "config", "c", "", "path to YAML config file")
	pflag.StringVarP(&format, "format", "f", "auto", "input format: auto, jsonld or xml")
	pflag.StringVar(&contentType, "content-type", "", "MIME type of the inputs, used when --format is auto")
	pflag.StringVarP(&selectExpr, "select", "s", "", "JSONPath selecting the JSON-LD document inside a JSON envelope")
	pflag.StringVar(&base, "base", "", "base IRI for relative identifiers")
	pflag.IntVarP(&jobs, "jobs", "j", 0, "number of inputs read concurrently. Default is GOMAXPROCS")
	pflag.BoolVarP(&expand, "expand", "e", false, "run JSON-LD expansion before reading rows")
	pflag.BoolVar(&header, "header", false, "print variable names before the first row")
	pflag.BoolVar(&safe, "safe", false, "apply input limits suitable for untrusted documents")
	pflag.BoolVarP(&verbose, "verbose", "v", false, "enable verbose (debug) logging")
	pflag.StringArrayVarP(&prefixes, "prefix", "p", nil, "extra namespace prefix as prefix=namespace (repeatable)")
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] [file ...]\n\nReads standard input when no file or \"-\" is given.\n\n", os.Args[0])
		pflag.PrintDefaults()
	}
	pflag.Parse()
}

// buildConfig merges the config file with the flags set on the command line.
func buildConfig(flags *pflag.FlagSet) (Config, error) {
	var cfg Config
	if configPath != "" {
		var err error
		if cfg, err = loadConfig(configPath); err != nil {
			return Config{}, err
		}
	}
	if cfg.Format == "" || flags.Changed("format") {
		cfg.Format = format
	}
	if flags.Changed("content-type") {
		cfg.ContentType = contentType
	}
	if flags.Changed("select") {
		cfg.Select = selectExpr
	}
	if flags.Changed("base") {
		cfg.Base = base
	}
	if flags.Changed("jobs") {
		cfg.Jobs = jobs
	}
	if flags.Changed("expand") {
		cfg.Expand = expand
	}
	if flags.Changed("header") {
		cfg.Header = header
	}
	if flags.Changed("safe") {
		cfg.Safe = safe
	}
	for _, value := range prefixes {
		prefix, namespace, err := parsePrefix(value)
		if err != nil {
			return Config{}, err
		}
		if cfg.Prefixes == nil {
			cfg.Prefixes = map[string]string{}
		}
		cfg.Prefixes[prefix] = namespace
	}
	if _, err := cfg.format(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func main() {
	cmdLineParse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if verbose {
		logCfg.Level = slog.LevelDebug
	}
	var output = os.Stderr
	if logPath != "" {
		f, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			log.Fatalf("failed to open log file %q: %v", logPath, err)
		}
		defer f.Close()
		output = f
	}
	logger := slog.New(slog.NewTextHandler(output, &logCfg))
	slog.SetDefault(logger)

	cfg, err := buildConfig(pflag.CommandLine)
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	inputs := pflag.Args()
	if len(inputs) == 0 {
		inputs = []string{stdinName}
	}

	if err := dumpAll(ctx, inputs, cfg, os.Stdin, os.Stdout, logger); err != nil {
		slog.Error("Error reading results", "error", err)
		stop()
		os.Exit(1)
	}
}
