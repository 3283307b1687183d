package employees

import "errors"

var (
	// ErrCreateOutput is returned when the output file or its directory cannot be created.
	ErrCreateOutput = errors.New("create output")
	// ErrWrite is returned when buffered rows cannot be written or synced.
	ErrWrite = errors.New("write output")
)
