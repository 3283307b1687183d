package employees

import (
	"bytes"
	"errors"
	"testing"
)

type recordingFile struct {
	bytes.Buffer
	writes int
	syncs  int
	err    error
}

func (f *recordingFile) Write(p []byte) (int, error) {
	if f.err != nil {
		return 0, f.err
	}
	f.writes++
	return f.Buffer.Write(p)
}

func (f *recordingFile) Sync() error {
	f.syncs++
	return nil
}

func TestBoundedWriterFits(t *testing.T) {
	f := &recordingFile{}
	w := NewBoundedWriter(f, 10, 20, 100)

	if !w.Fits(10) {
		t.Error("10 bytes on top of 10 should fit a 20 byte budget")
	}
	if w.Fits(11) {
		t.Error("11 bytes on top of 10 should not fit a 20 byte budget")
	}
	if err := w.Append([]byte("abcd")); err != nil {
		t.Fatal(err)
	}
	if w.Fits(7) {
		t.Error("buffered bytes must count against the budget")
	}
	if !w.Fits(6) {
		t.Error("6 bytes should still fit")
	}
}

func TestBoundedWriterFlushThreshold(t *testing.T) {
	tests := []struct {
		name        string
		flushBytes  int
		appends     int
		wantWrites  int
		wantPending int
	}{
		{name: "below threshold", flushBytes: 10, appends: 2, wantWrites: 0, wantPending: 8},
		{name: "reaches threshold", flushBytes: 10, appends: 3, wantWrites: 1, wantPending: 0},
		{name: "exact threshold", flushBytes: 8, appends: 2, wantWrites: 1, wantPending: 0},
		{name: "zero flushes every row", flushBytes: 0, appends: 3, wantWrites: 3, wantPending: 0},
		{name: "negative flushes every row", flushBytes: -1, appends: 3, wantWrites: 3, wantPending: 0},
		{name: "one byte", flushBytes: 1, appends: 5, wantWrites: 5, wantPending: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := &recordingFile{}
			w := NewBoundedWriter(f, 0, 1<<20, tt.flushBytes)
			for i := 0; i < tt.appends; i++ {
				if err := w.Append([]byte("row\n")); err != nil {
					t.Fatal(err)
				}
			}
			if f.writes != tt.wantWrites {
				t.Errorf("writes = %d, want %d", f.writes, tt.wantWrites)
			}
			if w.buffered() != tt.wantPending {
				t.Errorf("buffered = %d, want %d", w.buffered(), tt.wantPending)
			}
			if got := w.Written() + int64(w.buffered()); got != int64(4*tt.appends) {
				t.Errorf("written+buffered = %d, want %d", got, 4*tt.appends)
			}
		})
	}
}

func TestBoundedWriterCloseFlushesAndSyncs(t *testing.T) {
	f := &recordingFile{}
	w := NewBoundedWriter(f, 0, 100, 1000)
	if err := w.Append([]byte("a,b\n")); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	if f.String() != "a,b\n" {
		t.Errorf("file = %q", f.String())
	}
	if f.syncs != 1 {
		t.Errorf("syncs = %d, want 1", f.syncs)
	}
	if w.Flushes() != 1 {
		t.Errorf("flushes = %d, want 1", w.Flushes())
	}
}

func TestBoundedWriterWriteError(t *testing.T) {
	diskFull := errors.New("no space left on device")
	f := &recordingFile{err: diskFull}
	w := NewBoundedWriter(f, 0, 100, 1)

	err := w.Append([]byte("x\n"))
	if !errors.Is(err, ErrWrite) {
		t.Fatalf("expected ErrWrite, got %v", err)
	}
	if !errors.Is(err, diskFull) {
		t.Fatalf("expected wrapped cause, got %v", err)
	}
}

func TestInitialCapacity(t *testing.T) {
	tests := []struct {
		name       string
		size       int64
		limit      int64
		flushBytes int
		want       int
	}{
		{name: "flush below budget", size: 0, limit: 1 << 30, flushBytes: 4096, want: 4096},
		{name: "budget below flush", size: 45, limit: 500, flushBytes: 4096, want: 455},
		{name: "huge flush", size: 45, limit: 1 << 40, flushBytes: 1 << 50, want: maxBufferCapacity},
		{name: "zero flush", size: 0, limit: 1000, flushBytes: 0, want: minBufferCapacity},
		{name: "budget already spent", size: 45, limit: 10, flushBytes: 4096, want: minBufferCapacity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := initialCapacity(tt.size, tt.limit, tt.flushBytes); got != tt.want {
				t.Errorf("initialCapacity() = %d, want %d", got, tt.want)
			}
		})
	}
}
