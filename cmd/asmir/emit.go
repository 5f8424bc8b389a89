package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"asmir/internal/config"
	"asmir/internal/dialect"
	"asmir/internal/emit"
	"asmir/internal/observ"
	"asmir/internal/programs"
	"asmir/internal/trace"
)

type emitOptions struct {
	configPath string
	dialect    string
	out        string
	format     string
	entry      string
	message    string
	newline    bool
}

func newEmitCmd() *cobra.Command {
	opts := &emitOptions{}
	cmd := &cobra.Command{
		Use:   "emit",
		Short: "Render the hello-world program as assembler source",
		Long: `Render the hello-world program in one or more assembler dialects.
Settings come from asmir.toml (searched upward from the working directory)
and are overridden by flags.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEmit(cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.configPath, "config", "", "path to asmir.toml (default: search upward)")
	cmd.Flags().StringVarP(&opts.dialect, "dialect", "d", "", "target dialect (att|intel|all)")
	cmd.Flags().StringVarP(&opts.out, "out", "o", "", "output path without extension (default: stdout)")
	cmd.Flags().StringVar(&opts.format, "format", "", "output format (text|json|msgpack)")
	cmd.Flags().StringVar(&opts.entry, "entry", "", "entry point symbol")
	cmd.Flags().StringVarP(&opts.message, "message", "m", "", "message printed by the program")
	cmd.Flags().BoolVar(&opts.newline, "newline", false, "append a newline to the message")
	return cmd
}

// emitPlan is the resolved configuration of one emit run.
type emitPlan struct {
	dialects []dialect.Kind
	encoding emit.Encoding
	out      string
	hello    programs.HelloOptions
}

func runEmit(cmd *cobra.Command, opts *emitOptions) (err error) {
	stopProfiling, err := setupProfiling(cmd)
	if err != nil {
		return err
	}
	defer stopProfiling()

	cleanup, err := setupTracing(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	ctx := cmd.Context()
	tracer := trace.FromContext(ctx)
	span := trace.Begin(tracer, trace.ScopeCommand, "emit", 0)
	defer func() {
		if err != nil {
			span.Fail(err)
			return
		}
		span.End("")
	}()

	timer := observ.NewTimer()

	loadIdx := timer.Begin("config")
	manifest, err := loadManifest(opts.configPath)
	if err != nil {
		return err
	}
	plan, err := resolveEmitPlan(cmd, manifest.Config, opts)
	if err != nil {
		return err
	}
	timer.End(loadIdx, manifest.Path)

	buildIdx := timer.Begin("build")
	prog, err := programs.Hello(plan.hello)
	if err != nil {
		return fmt.Errorf("build program: %w", err)
	}
	timer.End(buildIdx, "")

	renderIdx := timer.Begin("render")
	listings, err := renderAll(ctx, plan.dialects, func(ctx context.Context, d dialect.Kind) (*emit.Listing, error) {
		return emit.Build(ctx, prog, d)
	})
	if err != nil {
		return err
	}
	timer.End(renderIdx, fmt.Sprintf("%d dialect(s)", len(listings)))

	writeIdx := timer.Begin("write")
	written, err := writeListings(cmd.OutOrStdout(), listings, plan)
	if err != nil {
		return err
	}
	timer.End(writeIdx, "")

	if !quietFlag(cmd) {
		for _, path := range written {
			fmt.Fprintf(cmd.ErrOrStderr(), "%s %s\n", color.GreenString("wrote"), path)
		}
	}
	if timings, _ := cmd.Root().PersistentFlags().GetBool("timings"); timings {
		fmt.Fprint(cmd.ErrOrStderr(), timer.Summary())
	}
	return nil
}

func loadManifest(path string) (*config.Manifest, error) {
	if path != "" {
		return config.Load(path)
	}
	m, _, err := config.Discover(".")
	return m, err
}

// resolveEmitPlan merges cfg with the flags the user set explicitly.
func resolveEmitPlan(cmd *cobra.Command, cfg config.Config, opts *emitOptions) (emitPlan, error) {
	flags := cmd.Flags()
	if flags.Changed("dialect") {
		cfg.Emit.Dialect = opts.dialect
	}
	if flags.Changed("out") {
		cfg.Emit.Out = opts.out
	}
	if flags.Changed("format") {
		cfg.Emit.Format = opts.format
	}
	if flags.Changed("entry") {
		cfg.Program.Entry = opts.entry
	}
	if flags.Changed("message") {
		cfg.Program.Message = opts.message
	}
	if flags.Changed("newline") {
		cfg.Program.Newline = opts.newline
	}

	dialects, err := dialect.ParseList(cfg.Emit.Dialect)
	if err != nil {
		return emitPlan{}, err
	}
	enc, err := emit.ParseEncoding(cfg.Emit.Format)
	if err != nil {
		return emitPlan{}, err
	}
	return emitPlan{
		dialects: dialects,
		encoding: enc,
		out:      cfg.Emit.Out,
		hello: programs.HelloOptions{
			Entry:   cfg.Program.Entry,
			Message: cfg.Program.Message,
			Newline: cfg.Program.Newline,
		},
	}, nil
}

// renderAll runs build once per dialect concurrently. Results keep the
// order of dialects.
func renderAll(ctx context.Context, dialects []dialect.Kind, build func(context.Context, dialect.Kind) (*emit.Listing, error)) ([]*emit.Listing, error) {
	listings := make([]*emit.Listing, len(dialects))
	g, gctx := errgroup.WithContext(ctx)
	for i, d := range dialects {
		i, d := i, d
		g.Go(func() error {
			l, err := build(gctx, d)
			if err != nil {
				return fmt.Errorf("render %s: %w", d, err)
			}
			listings[i] = l
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return listings, nil
}

// writeListings writes to stdout when plan.out is empty, otherwise one
// file per dialect. It returns the paths written.
func writeListings(stdout io.Writer, listings []*emit.Listing, plan emitPlan) ([]string, error) {
	if plan.out == "" {
		for i, l := range listings {
			if i > 0 && plan.encoding == emit.EncodingText {
				if _, err := io.WriteString(stdout, "\n"); err != nil {
					return nil, err
				}
			}
			if err := l.Encode(stdout, plan.encoding); err != nil {
				return nil, fmt.Errorf("write %s listing: %w", l.Dialect, err)
			}
		}
		return nil, nil
	}

	written := make([]string, 0, len(listings))
	for i, l := range listings {
		path := outputPath(plan.out, plan.dialects[i], plan.encoding)
		var buf bytes.Buffer
		if err := l.Encode(&buf, plan.encoding); err != nil {
			return written, fmt.Errorf("encode %s listing: %w", l.Dialect, err)
		}
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return written, fmt.Errorf("create output directory: %w", err)
			}
		}
		if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
			return written, fmt.Errorf("write %s: %w", path, err)
		}
		written = append(written, path)
	}
	return written, nil
}

// outputPath appends the dialect's source extension, plus the encoding's
// extension for structured formats: build/hello -> build/hello.s,
// build/hello.asm.json. A dialect extension already present is kept.
func outputPath(base string, d dialect.Kind, enc emit.Encoding) string {
	path := base
	if !strings.HasSuffix(path, d.Ext()) {
		path += d.Ext()
	}
	switch enc {
	case emit.EncodingJSON:
		path += ".json"
	case emit.EncodingMsgpack:
		path += ".msgpack"
	}
	return path
}
