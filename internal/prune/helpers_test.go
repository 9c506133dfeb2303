package prune

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/naoray/dir-remover/internal/config"
	"github.com/naoray/dir-remover/internal/fsops"
	"github.com/naoray/dir-remover/internal/ui"
)

// scriptedPrompter answers by exact message and records every question.
type scriptedPrompter struct {
	answers map[string]bool
	errs    map[string]error
	asked   []string
}

func newScriptedPrompter(answers map[string]bool) *scriptedPrompter {
	return &scriptedPrompter{answers: answers, errs: map[string]error{}}
}

func (s *scriptedPrompter) Confirm(message string) (bool, error) {
	s.asked = append(s.asked, message)
	if err, ok := s.errs[message]; ok {
		return false, err
	}
	return s.answers[message], nil
}

func (s *scriptedPrompter) count(message string) int {
	n := 0
	for _, m := range s.asked {
		if m == message {
			n++
		}
	}
	return n
}

type harness struct {
	pruner   *Pruner
	prompter *scriptedPrompter
	remover  *fsops.MockRemover
	stdout   *bytes.Buffer
	stderr   *bytes.Buffer
}

func newHarness(t *testing.T, opts config.Options, answers map[string]bool, extra ...Option) *harness {
	t.Helper()
	h := &harness{
		prompter: newScriptedPrompter(answers),
		remover:  fsops.NewMockRemover(),
		stdout:   &bytes.Buffer{},
		stderr:   &bytes.Buffer{},
	}
	h.remover.Next = &fsops.RealRemover{}
	options := []Option{
		WithRemover(h.remover),
		WithOutput(ui.NewOutput(h.stdout)),
		WithLogger(ui.NewLogger(h.stderr, opts.Verbose)),
	}
	h.pruner = New(opts, h.prompter.Confirm, append(options, extra...)...)
	return h
}

func makeDirs(t *testing.T, root string, names ...string) {
	t.Helper()
	for _, name := range names {
		require.NoError(t, os.MkdirAll(filepath.Join(root, name, "inner"), 0755))
		require.NoError(t, os.WriteFile(filepath.Join(root, name, "inner", "file.txt"), []byte(name), 0644))
	}
}

func continueMsg(path string) string {
	return "Are you sure you want to continue in '" + path + "'?"
}

func deleteMsg(name string) string {
	return "Do you want to delete " + name + "?"
}

const finalMsg = "Are you sure you want to delete these directories?"
