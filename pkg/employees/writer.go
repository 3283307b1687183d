package employees

import (
	"fmt"
	"io"
)

// File is the destination of a BoundedWriter.
type File interface {
	io.Writer
	Sync() error
}

// BoundedWriter buffers rows in memory and hands them to a File once the
// buffer reaches the flush threshold. It tracks the bytes already written
// so that written+buffered never exceeds the budget.
type BoundedWriter struct {
	f          File
	limit      int64
	flushBytes int
	written    int64
	buf        []byte
	flushes    int
	onFlush    func(written int64)
}

const (
	minBufferCapacity = 256
	maxBufferCapacity = 64 << 10
)

// initialCapacity sizes the buffer for the first flush without trusting
// flushBytes or the remaining budget as an allocation size; append grows it.
func initialCapacity(size, limit int64, flushBytes int) int {
	c := int64(flushBytes)
	if remaining := limit - size; remaining < c {
		c = remaining
	}
	return int(min(max(c, minBufferCapacity), maxBufferCapacity))
}

// NewBoundedWriter wraps f, which already holds size bytes. A flushBytes of
// zero or less flushes after every appended row.
func NewBoundedWriter(f File, size, limit int64, flushBytes int) *BoundedWriter {
	return &BoundedWriter{
		f:          f,
		limit:      limit,
		flushBytes: flushBytes,
		written:    size,
		buf:        make([]byte, 0, initialCapacity(size, limit, flushBytes)),
	}
}

// Fits reports whether n more bytes stay within the budget.
func (w *BoundedWriter) Fits(n int) bool {
	return w.written+int64(len(w.buf))+int64(n) <= w.limit
}

// Append buffers p and flushes if the threshold is reached. Callers check
// Fits first; Append does not enforce the budget.
func (w *BoundedWriter) Append(p []byte) error {
	w.buf = append(w.buf, p...)
	if len(w.buf) >= w.flushBytes {
		return w.Flush()
	}
	return nil
}

// Flush writes any buffered bytes to the file.
func (w *BoundedWriter) Flush() error {
	if len(w.buf) == 0 {
		return nil
	}
	n, err := w.f.Write(w.buf)
	w.written += int64(n)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}
	w.buf = w.buf[:0]
	w.flushes++
	if w.onFlush != nil {
		w.onFlush(w.written)
	}
	return nil
}

// Close flushes the buffer and syncs the file. It does not close f.
func (w *BoundedWriter) Close() error {
	if err := w.Flush(); err != nil {
		return err
	}
	if err := w.f.Sync(); err != nil {
		return fmt.Errorf("%w: sync: %w", ErrWrite, err)
	}
	return nil
}

// Written returns the number of bytes handed to the file, including the
// size it started with.
func (w *BoundedWriter) Written() int64 { return w.written }

func (w *BoundedWriter) buffered() int { return len(w.buf) }

// Flushes returns how many non-empty flushes have happened.
func (w *BoundedWriter) Flushes() int { return w.flushes }
