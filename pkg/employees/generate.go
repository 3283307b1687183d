package employees

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

const (
	DefaultOutput      = "employees_1gb.csv"
	DefaultTargetBytes = 1 << 30
	DefaultFlushBytes  = 4 << 20
	DefaultSeed        = 42
)

// Options configures a generation run.
type Options struct {
	// Path is the output file. Missing parent directories are created.
	Path string
	// TargetBytes is the upper bound on the final file size. The header is
	// written even when it alone exceeds the bound.
	TargetBytes int64
	Seed        int64
	// FlushBytes is the buffered byte count that triggers a write.
	FlushBytes int
	Logger     *slog.Logger
	// OnFlush, if set, is called after every flush with the bytes written so far.
	OnFlush func(written int64)
}

// Result describes a finished run.
type Result struct {
	Path    string
	Bytes   int64
	Rows    int64
	Flushes int
}

// Generate writes the header and then rows until the next row would push
// the file past opts.TargetBytes.
func Generate(opts Options) (Result, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	res := Result{Path: opts.Path}

	if opts.Path == "" {
		return res, fmt.Errorf("%w: empty path", ErrCreateOutput)
	}
	if err := os.MkdirAll(filepath.Dir(opts.Path), 0o755); err != nil {
		return res, fmt.Errorf("%w: %w", ErrCreateOutput, err)
	}
	f, err := os.Create(opts.Path)
	if err != nil {
		return res, fmt.Errorf("%w: %w", ErrCreateOutput, err)
	}
	closed := false
	defer func() {
		if !closed {
			f.Close()
		}
	}()

	if _, err := f.WriteString(Header); err != nil {
		return res, fmt.Errorf("%w: header: %w", ErrWrite, err)
	}
	info, err := f.Stat()
	if err != nil {
		return res, fmt.Errorf("%w: stat: %w", ErrWrite, err)
	}

	bw := NewBoundedWriter(f, info.Size(), opts.TargetBytes, opts.FlushBytes)
	bw.onFlush = func(written int64) {
		logger.Debug("flushed rows", "path", opts.Path, "written", written)
		if opts.OnFlush != nil {
			opts.OnFlush(written)
		}
	}

	logger.Debug("generating rows",
		"path", opts.Path,
		"target_bytes", opts.TargetBytes,
		"flush_bytes", opts.FlushBytes,
		"seed", opts.Seed)

	res.Rows, err = WriteRows(bw, NewRowGenerator(opts.Seed))
	res.Flushes = bw.Flushes()
	if err != nil {
		return res, err
	}
	closed = true
	if err := f.Close(); err != nil {
		return res, fmt.Errorf("%w: close: %w", ErrWrite, err)
	}
	logger.Debug("rows written",
		"path", opts.Path,
		"rows", res.Rows,
		"written", bw.Written(),
		"flushes", res.Flushes)

	info, err = os.Stat(opts.Path)
	if err != nil {
		return res, fmt.Errorf("%w: stat: %w", ErrWrite, err)
	}
	res.Bytes = info.Size()
	return res, nil
}

// WriteRows appends rows from gen to bw until the next candidate row does
// not fit, then flushes and syncs. The rejected candidate is discarded and
// does not consume an id. It returns the number of accepted rows.
func WriteRows(bw *BoundedWriter, gen *RowGenerator) (int64, error) {
	var rows int64
	line := make([]byte, 0, 128)

	for {
		row := gen.Next()
		row.ID = rows + 1
		line = AppendRow(line[:0], row)

		if !bw.Fits(len(line)) {
			return rows, bw.Close()
		}
		rows++
		if err := bw.Append(line); err != nil {
			return rows, err
		}
	}
}
