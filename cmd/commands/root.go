package commands

import (
	"github.com/urfave/cli/v3"
)

// Version is set at build time with -ldflags "-X ...commands.Version=...".
var Version = "dev"

// NewRootCommand returns the top-level CLI command.
func NewRootCommand() *cli.Command {
	return &cli.Command{
		Name:    "guess",
		Usage:   "Guess the secret number between 1 and 100",
		Version: Version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to an optional config file (.jsonc or .yaml)",
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "Enable debug logging",
			},
			&cli.Int64Flag{
				Name:  "seed",
				Usage: "Fixed seed for the secret number (0 = random)",
			},
			&cli.BoolFlag{
				Name:  "color",
				Usage: "Style output when stdout is a terminal",
			},
		},
		Action: runPlay,
	}
}
