package main

import (
	"os"

	"github.com/naoray/dir-remover/internal/cli"
)

// Release builds override these with
// -ldflags "-X main.version=... -X main.commit=... -X main.buildDate=...".
var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

func main() {
	cli.Version, cli.Commit, cli.BuildDate = version, commit, buildDate
	os.Exit(cli.ExitCode(cli.Execute()))
}
