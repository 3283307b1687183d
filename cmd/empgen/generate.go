package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"pkg.jsn.cam/empgen/internal/config"
	"pkg.jsn.cam/empgen/pkg/employees"
	"pkg.jsn.cam/empgen/pkg/history"
)

type generateFlags struct {
	out        string
	bytes      config.Size
	seed       int64
	flushBytes config.Size
	progress   bool
}

func (f *generateFlags) register(cmd *cobra.Command) {
	f.bytes = employees.DefaultTargetBytes
	f.flushBytes = employees.DefaultFlushBytes

	fs := cmd.Flags()
	fs.StringVar(&f.out, "out", employees.DefaultOutput, "Output path")
	fs.Var(&f.bytes, "bytes", "Target output size, e.g. 500, 64MiB, 1GiB")
	fs.Int64Var(&f.seed, "seed", employees.DefaultSeed, "RNG seed for reproducibility")
	fs.Var(&f.flushBytes, "flush-bytes", "Buffer size before flushing to disk")
	fs.BoolVar(&f.progress, "progress", true, "Show a progress bar when stderr is a terminal")
}

// resolve layers explicitly set flags over the config file over defaults.
func (a *app) resolve(cmd *cobra.Command, f *generateFlags) (config.Config, error) {
	cfg := config.Default()
	if a.configPath != "" {
		loaded, err := config.Load(a.configPath)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}

	fs := cmd.Flags()
	if fs.Changed("out") {
		cfg.Output = f.out
	}
	if fs.Changed("bytes") {
		cfg.TargetBytes = f.bytes
	}
	if fs.Changed("seed") {
		cfg.Seed = f.seed
	}
	if fs.Changed("flush-bytes") {
		cfg.FlushBytes = f.flushBytes
	}
	if fs.Changed("progress") {
		cfg.Progress = f.progress
	}
	if a.historyPath != "" {
		cfg.History = a.historyPath
	}
	return cfg, cfg.Validate()
}

func (a *app) runGenerate(cmd *cobra.Command, f *generateFlags) error {
	cfg, err := a.resolve(cmd, f)
	if err != nil {
		return err
	}

	opts := cfg.Options()
	opts.Logger = a.logger

	var bar *progressbar.ProgressBar
	if cfg.Progress && isTerminal(a.stderr) {
		bar = newProgressBar(a.stderr, int64(cfg.TargetBytes))
		opts.OnFlush = func(written int64) {
			_ = bar.Set64(written)
		}
	}

	run := history.NewRun(cfg.Output, cfg.Seed, int64(cfg.TargetBytes), int(cfg.FlushBytes), time.Now())
	res, err := employees.Generate(opts)
	if bar != nil {
		_ = bar.Finish()
	}
	if err != nil {
		return fmt.Errorf("generating %s: %w", cfg.Output, err)
	}
	run.Bytes, run.Rows, run.Duration = res.Bytes, res.Rows, time.Since(run.StartedAt)

	a.logger.Debug("generation finished",
		"rows", res.Rows,
		"bytes", res.Bytes,
		"flushes", res.Flushes,
		"duration", run.Duration)

	if err := a.recordRun(cfg.History, run); err != nil {
		a.logger.Warn("failed to record run", "history", cfg.History, "error", err)
	} else {
		a.logger.Debug("recorded run", "id", run.ID, "history", cfg.History)
	}

	fmt.Fprintf(a.stdout, "Wrote: %s size: %d bytes (%s)\n", res.Path, res.Bytes, humanize.IBytes(uint64(res.Bytes)))
	return nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func newProgressBar(w io.Writer, target int64) *progressbar.ProgressBar {
	return progressbar.NewOptions64(target,
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetDescription("generating"),
		progressbar.OptionShowBytes(true),
		progressbar.OptionSetWidth(30),
		progressbar.OptionThrottle(100*time.Millisecond),
		progressbar.OptionClearOnFinish(),
	)
}
