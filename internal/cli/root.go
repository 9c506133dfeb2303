package cli

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/naoray/dir-remover/internal/config"
	"github.com/naoray/dir-remover/internal/fsops"
	"github.com/naoray/dir-remover/internal/ui"
)

// Deps carries the collaborators a run needs. Zero values select the real
// terminal and filesystem.
type Deps struct {
	Prompter ui.Prompter
	Remover  fsops.Remover
	Getwd    func() (string, error)
	Progress ui.ProgressFunc
}

func NewRootCmd(deps Deps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dir-remover [PATH]",
		Short: "Interactively delete the subdirectories of a directory",
		Long: `Lists the immediate children of PATH and deletes the ones you pick.

Arguments:
  PATH  Directory to prune ("." or omitted uses the current directory)

You are asked to confirm the directory, then asked about each entry
(or, with --all, every entry is selected), and finally asked once more
before anything is removed. A failed deletion is reported and the
remaining entries are still processed.`,
		Args:          cobra.MaximumNArgs(1),
		Version:       versionString(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPrune(cmd, args, deps)
		},
	}

	cmd.SetVersionTemplate("dir-remover version {{.Version}}\n")
	cmd.Flags().Bool("all", false, "Skip per-entry prompts and select every entry")
	cmd.Flags().Bool("verbose", false, "Enable verbose output")

	return cmd
}

func Execute() error {
	deps := Deps{}
	ctx := context.Background()
	if ui.IsTerminal(os.Stdin) && ui.IsTerminal(os.Stdout) {
		deps.Progress = ui.SpinnerProgress(ctx)
	}
	return NewRootCmd(deps).ExecuteContext(ctx)
}

// ExitCode maps an Execute error to the process exit code.
func ExitCode(err error) int {
	if err == nil {
		return config.ExitSuccess
	}
	return config.ExitGeneralError
}
