package ui

import (
	"context"
	"errors"
	"io"

	"github.com/charmbracelet/huh"
)

// ErrUserAborted means a question went unanswered: the form was closed,
// stdin ran dry, or the run's context ended. Callers treat it as "no".
var ErrUserAborted = errors.New("user aborted")

var abortCauses = []error{
	huh.ErrUserAborted,
	io.EOF,
	io.ErrUnexpectedEOF,
	context.Canceled,
}

// NormalizeAbort maps any unanswered-prompt cause onto ErrUserAborted.
func NormalizeAbort(err error) error {
	for _, cause := range abortCauses {
		if errors.Is(err, cause) {
			return ErrUserAborted
		}
	}
	return err
}

func IsAbort(err error) bool {
	return errors.Is(err, ErrUserAborted)
}
