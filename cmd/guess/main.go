package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/dohr-michael/guess/cmd/commands"
)

func main() {
	cmd := commands.NewRootCommand()
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		slog.Error("fatal", "error", err)
		os.Exit(1)
	}
}
