// Package errors holds the sentinel errors shared across dir-remover.
package errors

import "errors"

var (
	// ErrNoPath is returned when no usable target directory could be resolved.
	ErrNoPath = errors.New("no path provided")

	// ErrListFailed wraps any failure to enumerate the target directory.
	ErrListFailed = errors.New("listing directory failed")

	// ErrDeleteFailed wraps a single entry's removal failure.
	ErrDeleteFailed = errors.New("delete failed")
)
