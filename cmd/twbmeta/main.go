// Package main provides the CLI entry point for twbmeta.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/ukaji3/twbmeta-go/pkg/twbmeta"
	"github.com/ukaji3/twbmeta-go/pkg/twbmeta/output"
)

type flags struct {
	outputPath string
	format     string
	pretty     bool
	delimiter  string
	bom        bool
	configPath string
	noRecurse  bool
	workers    int
	noValidate bool
	logLevel   string
	logFormat  string
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var f flags

	cmd := &cobra.Command{
		Use:   "twbmeta [flags] <input>...",
		Short: "Extract field metadata from Tableau workbooks",
		Long: `twbmeta reads Tableau workbooks (.twb, .twbx) and writes one report row
per field and using worksheet, with calculation formulas rewritten to refer
to fields by their display names.`,
		Args:         cobra.MinimumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, f, args)
		},
	}

	fs := cmd.Flags()
	fs.StringVarP(&f.outputPath, "output", "o", "", "Output file or directory (default: stdout)")
	fs.StringVar(&f.format, "format", "", "Report format: csv, xlsx, json (default: from output extension, else csv)")
	fs.BoolVar(&f.pretty, "pretty", false, "Pretty-print JSON output")
	fs.StringVar(&f.delimiter, "delimiter", ",", "CSV field delimiter")
	fs.BoolVar(&f.bom, "bom", false, "Prefix CSV output with a UTF-8 byte order mark")
	fs.StringVar(&f.configPath, "config", "", "YAML config file")
	fs.BoolVar(&f.noRecurse, "no-recurse", false, "Do not scan input directories recursively")
	fs.IntVar(&f.workers, "workers", 1, "Number of workbooks parsed at once")
	fs.BoolVar(&f.noValidate, "no-validate", false, "Skip report validation before writing")
	fs.StringVar(&f.logLevel, "log-level", "info", "Log level: debug, info, warn, error")
	fs.StringVar(&f.logFormat, "log-format", "text", "Log format: text, json")

	return cmd
}

func run(cmd *cobra.Command, f flags, inputs []string) error {
	logger, err := newLogger(cmd.ErrOrStderr(), f.logLevel, f.logFormat)
	if err != nil {
		return err
	}

	opts, err := buildOptions(cmd.Flags(), f)
	if err != nil {
		return err
	}
	opts.Logger = logger

	if f.outputPath == "" && opts.Format == output.FormatXLSX {
		return fmt.Errorf("xlsx output requires --output")
	}

	res, err := twbmeta.Run(cmd.Context(), inputs, opts)
	if err != nil {
		return fmt.Errorf("run failed: %w", err)
	}

	written := "stdout"
	if f.outputPath != "" {
		if written, err = twbmeta.WriteFile(f.outputPath, res.Table, opts); err != nil {
			return err
		}
	} else if err := twbmeta.Write(cmd.OutOrStdout(), res.Table, opts); err != nil {
		return err
	}

	logger.Info("summary",
		"run", res.RunID.String(),
		"files", res.Table.Files,
		"failed", len(res.Table.Failures),
		"rows", len(res.Table.Rows),
		"output", written,
	)
	return nil
}

// buildOptions starts from the config file (or defaults) and applies the
// flags set on the command line.
func buildOptions(fs *pflag.FlagSet, f flags) (twbmeta.Options, error) {
	opts := twbmeta.DefaultOptions()
	if f.configPath != "" {
		loaded, err := twbmeta.LoadConfigFile(f.configPath)
		if err != nil {
			return twbmeta.Options{}, err
		}
		opts = loaded
	}

	switch {
	case fs.Changed("format"):
		format, err := output.ParseFormat(f.format)
		if err != nil {
			return twbmeta.Options{}, err
		}
		opts.Format = format
	case f.outputPath != "":
		if format, ok := output.FormatFromPath(f.outputPath); ok {
			opts.Format = format
		}
	}

	if fs.Changed("pretty") {
		opts.Pretty = f.pretty
	}
	if fs.Changed("delimiter") {
		if len([]rune(f.delimiter)) != 1 {
			return twbmeta.Options{}, fmt.Errorf("delimiter must be a single character, got %q", f.delimiter)
		}
		opts.Delimiter = f.delimiter
	}
	if fs.Changed("bom") {
		opts.BOM = f.bom
	}
	if fs.Changed("no-recurse") {
		recursive := !f.noRecurse
		opts.Recursive = &recursive
	}
	if fs.Changed("workers") {
		opts.Workers = max(f.workers, 1)
	}
	if fs.Changed("no-validate") {
		validate := !f.noValidate
		opts.Validate = &validate
	}

	return opts, nil
}

func newLogger(w io.Writer, level, format string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q", level)
	}

	handlerOpts := &slog.HandlerOptions{Level: lvl}
	switch strings.ToLower(format) {
	case "text":
		return slog.New(slog.NewTextHandler(w, handlerOpts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, handlerOpts)), nil
	default:
		return nil, fmt.Errorf("invalid log format %q (must be text or json)", format)
	}
}
