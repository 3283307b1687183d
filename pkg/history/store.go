// Package history records generation runs so a dataset can be reproduced
// from its seed and sizes later.
package history

import (
	"errors"
	"sort"
	"time"

	"github.com/google/uuid"
)

// ErrRunNotFound is returned by Get for an unknown run id.
var ErrRunNotFound = errors.New("run not found")

// Run is one completed generation.
type Run struct {
	ID          uuid.UUID     `json:"id"`
	Path        string        `json:"path"`
	Seed        int64         `json:"seed"`
	TargetBytes int64         `json:"target_bytes"`
	FlushBytes  int           `json:"flush_bytes"`
	Bytes       int64         `json:"bytes"`
	Rows        int64         `json:"rows"`
	StartedAt   time.Time     `json:"started_at"`
	Duration    time.Duration `json:"duration"`
}

// NewRun returns a run with a fresh id.
func NewRun(path string, seed, targetBytes int64, flushBytes int, startedAt time.Time) Run {
	return Run{
		ID:          uuid.New(),
		Path:        path,
		Seed:        seed,
		TargetBytes: targetBytes,
		FlushBytes:  flushBytes,
		StartedAt:   startedAt,
	}
}

// Store persists runs.
type Store interface {
	Save(run Run) error
	Get(id uuid.UUID) (Run, error)
	// List returns all runs, newest first.
	List() ([]Run, error)
	Close() error
}

func sortNewestFirst(runs []Run) {
	sort.SliceStable(runs, func(i, j int) bool {
		return runs[i].StartedAt.After(runs[j].StartedAt)
	})
}
