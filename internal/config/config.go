package config

import (
	"fmt"
	"os"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"

	apperrors "github.com/naoray/dir-remover/internal/errors"
)

const (
	// Exit codes
	ExitSuccess = iota
	ExitGeneralError
)

// CurrentDir is the path argument that selects the working directory.
const CurrentDir = "."

// Options is the resolved configuration for a single run.
type Options struct {
	Path    string `mapstructure:"path"`
	All     bool   `mapstructure:"all"`
	Verbose bool   `mapstructure:"verbose"`
}

// Load decodes the run options held in v. Unknown keys are rejected.
func Load(v *viper.Viper) (*Options, error) {
	var opts Options
	if err := v.Unmarshal(&opts, func(c *mapstructure.DecoderConfig) {
		c.ErrorUnused = true
	}); err != nil {
		return nil, fmt.Errorf("parsing options: %w", err)
	}

	if opts.Path == "" {
		return nil, apperrors.ErrNoPath
	}

	return &opts, nil
}

// ResolvePath turns the positional arguments into the target directory.
// An absent argument or "." resolves to the working directory; anything
// else is used verbatim without checking that it exists.
func ResolvePath(args []string, getwd func() (string, error)) (string, error) {
	if getwd == nil {
		getwd = os.Getwd
	}

	var path string
	if len(args) > 0 {
		path = args[0]
	}

	if len(args) == 0 || path == CurrentDir {
		wd, err := getwd()
		if err != nil {
			return "", fmt.Errorf("getting current directory: %w: %v", apperrors.ErrNoPath, err)
		}
		path = wd
	}

	if path == "" {
		return "", apperrors.ErrNoPath
	}

	return path, nil
}
