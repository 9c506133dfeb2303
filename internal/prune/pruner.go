// Package prune walks the operator through deleting the immediate children
// of one directory: confirm the directory, select entries, confirm the
// selection, then remove each entry recursively on a best-effort basis.
package prune

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/log"

	"github.com/naoray/dir-remover/internal/config"
	"github.com/naoray/dir-remover/internal/fsops"
	"github.com/naoray/dir-remover/internal/ui"
)

// ConfirmFunc asks a yes/no question and reports the answer.
type ConfirmFunc func(message string) (bool, error)

// Failure records an entry that could not be removed.
type Failure struct {
	Name string
	Err  error
}

// Result describes what a run selected and removed.
type Result struct {
	Selected []string
	Deleted  []string
	Failed   []Failure
	Aborted  bool
}

type Pruner struct {
	opts     config.Options
	confirm  ConfirmFunc
	remover  fsops.Remover
	list     fsops.Lister
	out      *ui.Output
	logger   *log.Logger
	progress ui.ProgressFunc
}

type Option func(*Pruner)

func WithRemover(r fsops.Remover) Option {
	return func(p *Pruner) { p.remover = r }
}

func WithLister(l fsops.Lister) Option {
	return func(p *Pruner) { p.list = l }
}

func WithOutput(o *ui.Output) Option {
	return func(p *Pruner) { p.out = o }
}

func WithLogger(l *log.Logger) Option {
	return func(p *Pruner) { p.logger = l }
}

func WithProgress(fn ui.ProgressFunc) Option {
	return func(p *Pruner) { p.progress = fn }
}

// New creates a Pruner for opts.Path. Unset collaborators default to the
// real filesystem, stdout for messages and stderr for errors.
func New(opts config.Options, confirm ConfirmFunc, options ...Option) *Pruner {
	p := &Pruner{
		opts:     opts,
		confirm:  confirm,
		remover:  fsops.DefaultRemover,
		list:     fsops.List,
		progress: ui.NoProgress,
	}
	for _, opt := range options {
		opt(p)
	}
	if p.out == nil {
		p.out = ui.NewOutput(os.Stdout)
	}
	if p.logger == nil {
		p.logger = ui.NewLogger(os.Stderr, opts.Verbose)
	}
	return p
}

// Run executes the whole flow. Declining any confirmation, or abandoning a
// prompt, ends the run with Aborted set and a nil error. Only a failure to
// list the directory, or a prompt failing for another reason, is returned.
func (p *Pruner) Run(ctx context.Context) (*Result, error) {
	result := &Result{}

	ok, err := p.confirm(fmt.Sprintf("Are you sure you want to continue in '%s'?", p.opts.Path))
	if err != nil || !ok {
		return p.abort(result, err)
	}

	selected, err := p.Select()
	if err != nil {
		if ui.IsAbort(err) {
			return p.abort(result, err)
		}
		return result, err
	}
	result.Selected = selected

	if len(selected) == 0 {
		p.out.Info("Nothing to delete")
		return result, nil
	}

	ok, err = p.ConfirmDeletion(selected)
	if err != nil || !ok {
		return p.abort(result, err)
	}

	p.Delete(ctx, selected, result)
	return result, nil
}

func (p *Pruner) abort(result *Result, err error) (*Result, error) {
	if err != nil && !ui.IsAbort(err) {
		return result, fmt.Errorf("reading answer: %w", err)
	}
	p.out.Info("Aborting")
	result.Aborted = true
	return result, nil
}
