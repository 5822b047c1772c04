package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/dohr-michael/guess/internal/config"
	"github.com/dohr-michael/guess/internal/game"
	"github.com/dohr-michael/guess/internal/random"
)

func runPlay(ctx context.Context, cmd *cli.Command) error {
	cfg := config.Default()
	if path := cmd.String("config"); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	level, err := cfg.Log.SlogLevel()
	if err != nil {
		return err
	}
	if cmd.Bool("debug") {
		level = slog.LevelDebug
	}

	in, out, errOut := stdio(cmd)
	logger := slog.New(slog.NewTextHandler(errOut, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	seed := cmd.Int64("seed")
	if seed == 0 {
		if seed, err = random.NewSeed(); err != nil {
			return fmt.Errorf("seed secret: %w", err)
		}
	}
	logger.Debug("seeded", "seed", seed)

	var theme game.Theme = game.PlainTheme{}
	if (cfg.Output.Color || cmd.Bool("color")) && isTerminal(out) {
		theme = game.NewColorTheme()
	}

	g := game.New(game.Options{
		In:     in,
		Out:    out,
		Source: game.NewSource(seed),
		Theme:  theme,
		Logger: logger,
	})
	_, err = g.Run(ctx)
	return err
}

// stdio returns the command's streams, falling back to the process ones.
func stdio(cmd *cli.Command) (io.Reader, io.Writer, io.Writer) {
	root := cmd.Root()
	var (
		in     io.Reader = os.Stdin
		out    io.Writer = os.Stdout
		errOut io.Writer = os.Stderr
	)
	if root.Reader != nil {
		in = root.Reader
	}
	if root.Writer != nil {
		out = root.Writer
	}
	if root.ErrWriter != nil {
		errOut = root.ErrWriter
	}
	return in, out, errOut
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
