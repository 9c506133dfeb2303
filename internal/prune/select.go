package prune

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/naoray/dir-remover/internal/fsops"
)

// Select builds the selection list with the strategy chosen by opts.All.
func (p *Pruner) Select() ([]string, error) {
	if p.opts.All {
		return p.selectAll()
	}
	return p.selectInteractive()
}

// selectInteractive asks once per entry, in listing order. With verbose
// set the directory is read once more up front to print the entry table.
func (p *Pruner) selectInteractive() ([]string, error) {
	if p.opts.Verbose {
		var entries []fsops.Entry
		for entry, err := range p.list(p.opts.Path) {
			if err != nil {
				return nil, fmt.Errorf("%s: %w", p.opts.Path, err)
			}
			entries = append(entries, entry)
		}
		p.showEntries(entries)
	}

	var selected []string

	for entry, err := range p.list(p.opts.Path) {
		if err != nil {
			return nil, fmt.Errorf("%s: %w", p.opts.Path, err)
		}
		p.debugEntry(entry)

		ok, err := p.confirm(fmt.Sprintf("Do you want to delete %s?", entry.Name))
		if err != nil {
			return nil, err
		}
		if ok {
			selected = append(selected, entry.Name)
		}
	}

	return selected, nil
}

// selectAll takes every listed entry, files included, without prompting.
func (p *Pruner) selectAll() ([]string, error) {
	var entries []fsops.Entry
	var listErr error

	err := p.progress(fmt.Sprintf("Reading %s...", p.opts.Path), func() {
		for entry, err := range p.list(p.opts.Path) {
			if err != nil {
				listErr = err
				return
			}
			entries = append(entries, entry)
		}
	})
	if err != nil {
		return nil, err
	}
	if listErr != nil {
		return nil, fmt.Errorf("%s: %w", p.opts.Path, listErr)
	}

	selected := make([]string, 0, len(entries))
	for _, entry := range entries {
		p.debugEntry(entry)
		selected = append(selected, entry.Name)
	}

	if p.opts.Verbose {
		p.showEntries(entries)
	}

	return selected, nil
}

// ConfirmDeletion shows the full selection and asks once for all of it.
func (p *Pruner) ConfirmDeletion(selected []string) (bool, error) {
	p.out.Info("%s will be deleted", strings.Join(selected, ", "))
	return p.confirm("Are you sure you want to delete these directories?")
}

func (p *Pruner) debugEntry(entry fsops.Entry) {
	p.logger.Debug("listed entry",
		"name", entry.Name,
		"dir", entry.IsDir,
		"size", humanize.Bytes(uint64(max(entry.Size, 0))))
}

func (p *Pruner) showEntries(entries []fsops.Entry) {
	if len(entries) == 0 {
		return
	}
	p.out.Table([]string{"Type", "Name", "Size", "Modified"}, entryRows(entries))
}

func entryRows(entries []fsops.Entry) [][]string {
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		kind := "file"
		if e.IsDir {
			kind = "dir"
		}
		modified := "-"
		if !e.ModTime.IsZero() {
			modified = humanize.Time(e.ModTime)
		}
		rows = append(rows, []string{kind, e.Name, humanize.Bytes(uint64(max(e.Size, 0))), modified})
	}
	return rows
}
