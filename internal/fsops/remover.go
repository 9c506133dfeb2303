// Package fsops provides the filesystem operations the pruner depends on.
// Removal goes through the Remover interface so tests can inject failures
// without depending on real permission errors.
package fsops

import (
	"context"
	"os"
)

// Remover defines the interface for recursive deletion.
type Remover interface {
	// RemoveAll deletes path and everything below it.
	RemoveAll(ctx context.Context, path string) error
}

// RealRemover deletes from the real filesystem.
type RealRemover struct{}

// RemoveAll refuses to start once ctx is done, then defers to os.RemoveAll.
func (r *RealRemover) RemoveAll(ctx context.Context, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return os.RemoveAll(path)
}

// DefaultRemover is used when no Remover is injected.
var DefaultRemover Remover = &RealRemover{}
