// Package errors defines the error types shared by the repository layers.
//
// User-facing outcomes (missing argument, unknown commit, nothing to commit)
// are not errors: they travel as repo.Result values. Errors are reserved for
// failures of the underlying storage, which the command dispatcher reports
// as an I/O failure without stopping the process.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors that can be used with errors.Is() for error type checking
var (
	// ErrMalformedLog indicates log.txt does not start with a "commit <id>" line
	ErrMalformedLog = errors.New("malformed commit log")

	// ErrSnapshotExists indicates a snapshot directory with the same id is already published
	ErrSnapshotExists = errors.New("snapshot already exists")
)

// Is reports whether target is in err's chain.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// IOError represents a failed filesystem operation on a repository or working-tree path.
type IOError struct {
	Op   string
	Path string
	Err  error
}

// Error implements the error interface.
func (e *IOError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap returns the underlying error for use with errors.Is and errors.As.
func (e *IOError) Unwrap() error {
	return e.Err
}

// NewIOError wraps err with the operation and path it failed on.
// A nil err yields nil so call sites can wrap unconditionally.
func NewIOError(op, path string, err error) error {
	if err == nil {
		return nil
	}
	return &IOError{Op: op, Path: path, Err: err}
}
