package saves

import (
	"errors"
	"fmt"
)

// Sentinel errors for user-actionable conditions. These are statuses rather
// than faults: callers convert them to messages and carry on.
var (
	// ErrNoLiveSave indicates an operation was attempted before a live save
	// file was selected.
	ErrNoLiveSave = errors.New("no live save selected")

	// ErrInvalidSaveFile indicates a selected file does not look like a live
	// save (its name does not end with the required marker suffix).
	ErrInvalidSaveFile = errors.New("not a live save file")

	// ErrNoQuickSave indicates a quickload was requested but no quicksave
	// exists yet. This is a benign no-op condition, not a fault.
	ErrNoQuickSave = errors.New("no quicksave found")
)

// ResolveError indicates the live save path could not be canonicalized.
type ResolveError struct {
	Path string
	Err  error
}

func (e *ResolveError) Error() string {
	return fmt.Sprintf("failed to resolve save path %s: %v", e.Path, e.Err)
}

func (e *ResolveError) Unwrap() error { return e.Err }

// DirCreateError indicates the archive directory could not be created.
// The selection itself still succeeds; archive-dependent operations will
// fail individually until the underlying cause is fixed.
type DirCreateError struct {
	Dir string
	Err error
}

func (e *DirCreateError) Error() string {
	return fmt.Sprintf("failed to create archive directory %s: %v", e.Dir, e.Err)
}

func (e *DirCreateError) Unwrap() error { return e.Err }

// CopyError wraps an I/O failure during one of the transfer operations.
type CopyError struct {
	Op  string
	Src string
	Dst string
	Err error
}

func (e *CopyError) Error() string {
	return fmt.Sprintf("%s: copy %s -> %s: %v", e.Op, e.Src, e.Dst, e.Err)
}

func (e *CopyError) Unwrap() error { return e.Err }
