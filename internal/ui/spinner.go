package ui

import (
	"context"

	"github.com/charmbracelet/huh/spinner"
)

// ProgressFunc runs action while showing title to the operator.
type ProgressFunc func(title string, action func()) error

// NoProgress runs action without any indicator.
func NoProgress(_ string, action func()) error {
	action()
	return nil
}

// SpinnerProgress shows a spinner for the duration of each action.
func SpinnerProgress(ctx context.Context) ProgressFunc {
	return func(title string, action func()) error {
		return spinner.New().
			Title(title).
			Context(ctx).
			Action(action).
			Run()
	}
}
