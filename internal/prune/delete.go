package prune

import (
	"context"
	"fmt"
	"path/filepath"

	apperrors "github.com/naoray/dir-remover/internal/errors"
)

// Delete removes each selected entry under the target path in order. A
// failure is reported and recorded, and the remaining entries are still
// attempted.
func (p *Pruner) Delete(ctx context.Context, selected []string, result *Result) {
	for _, name := range selected {
		path := filepath.Join(p.opts.Path, name)

		if err := p.remover.RemoveAll(ctx, path); err != nil {
			p.logger.Errorf("Failed to delete %s: %v", name, err)
			result.Failed = append(result.Failed, Failure{
				Name: name,
				Err:  fmt.Errorf("%s: %w: %w", path, apperrors.ErrDeleteFailed, err),
			})
			continue
		}

		p.out.Success("Deleted %s", name)
		result.Deleted = append(result.Deleted, name)
	}

	if len(result.Failed) > 0 {
		p.out.Warn("Deleted %d of %d", len(result.Deleted), len(selected))
	}
}
