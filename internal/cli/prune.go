package cli

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/naoray/dir-remover/internal/config"
	"github.com/naoray/dir-remover/internal/prune"
	"github.com/naoray/dir-remover/internal/ui"
)

func runPrune(cmd *cobra.Command, args []string, deps Deps) error {
	// Path and option errors are reported before opts exists.
	early, _ := cmd.Flags().GetBool("verbose")
	logger := ui.NewLogger(cmd.ErrOrStderr(), early)

	path, err := config.ResolvePath(args, deps.Getwd)
	if err != nil {
		logger.Error("Please provide a path")
		logger.Debug("resolving path", "err", err)
		return err
	}

	v := viper.New()
	for _, name := range []string{"all", "verbose"} {
		if err := v.BindPFlag(name, cmd.Flags().Lookup(name)); err != nil {
			return err
		}
	}
	v.Set("path", path)

	opts, err := config.Load(v)
	if err != nil {
		logger.Error(err)
		return err
	}
	logger = ui.NewLogger(cmd.ErrOrStderr(), opts.Verbose)

	prompter := deps.Prompter
	if prompter == nil {
		prompter = ui.NewPrompter(os.Stdin, cmd.OutOrStdout())
	}

	options := []prune.Option{
		prune.WithOutput(ui.NewOutput(cmd.OutOrStdout())),
		prune.WithLogger(logger),
	}
	if deps.Remover != nil {
		options = append(options, prune.WithRemover(deps.Remover))
	}
	if deps.Progress != nil {
		options = append(options, prune.WithProgress(deps.Progress))
	}

	logger.Debug("starting", "path", opts.Path, "all", opts.All)

	if _, err := prune.New(*opts, prompter.Confirm, options...).Run(cmd.Context()); err != nil {
		logger.Error(err)
		return err
	}

	return nil
}
