package ingest

import "fmt"

// FileReadError indicates an upload could not be parsed as a table at all.
// It is the only ingest failure surfaced to the user; per-cell problems are
// coerced silently.
type FileReadError struct {
	Filename string
	Err      error
}

func (e *FileReadError) Error() string {
	return fmt.Sprintf("cannot read %q as a table: %v", e.Filename, e.Err)
}

func (e *FileReadError) Unwrap() error {
	return e.Err
}
