package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
)

func requireNoError(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// recordingPrompter answers by exact message and records every question.
type recordingPrompter struct {
	answers map[string]bool
	asked   []string
}

func (p *recordingPrompter) Confirm(message string) (bool, error) {
	p.asked = append(p.asked, message)
	return p.answers[message], nil
}

// runRoot executes the root command with args and returns captured stdout and stderr.
func runRoot(t *testing.T, deps Deps, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer

	cmd := NewRootCmd(deps)
	cmd.SetArgs(args)
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func newTestRoot(t *testing.T, deps Deps) *cobra.Command {
	t.Helper()
	return NewRootCmd(deps)
}

// makeProjectDirs creates non-empty directories under root.
func makeProjectDirs(t *testing.T, root string, names ...string) {
	t.Helper()
	for _, name := range names {
		requireNoError(t, os.MkdirAll(filepath.Join(root, name, "src"), 0755))
		requireNoError(t, os.WriteFile(filepath.Join(root, name, "src", "main.go"), []byte("package main"), 0644))
	}
}
