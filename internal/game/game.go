package game

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/google/uuid"
)

// Options configures a Game. A nil Source draws from math/rand/v2's global
// generator; nil Theme and Logger mean PlainTheme and slog.Default.
type Options struct {
	In     io.Reader
	Out    io.Writer
	Source Source
	Theme  Theme
	Logger *slog.Logger
}

// Result summarizes a finished game.
type Result struct {
	Outcome Outcome
	Rounds  int
	Secret  int
}

// Game is a single play-through with a fixed secret number.
type Game struct {
	id     string
	secret int
	in     *bufio.Reader
	out    *bufio.Writer
	theme  Theme
	logger *slog.Logger
}

// New draws the secret from opts.Source and returns a game ready to Run.
func New(opts Options) *Game {
	src := opts.Source
	if src == nil {
		src = globalSource{}
	}
	theme := opts.Theme
	if theme == nil {
		theme = PlainTheme{}
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	id := generateGameID()
	return &Game{
		id:     id,
		secret: NewSecret(src, MinSecret, MaxSecret),
		in:     bufio.NewReader(opts.In),
		out:    bufio.NewWriter(opts.Out),
		theme:  theme,
		logger: logger.With("game", id),
	}
}

func generateGameID() string {
	u := uuid.New().String()
	return "game_" + strings.ReplaceAll(u[:8], "-", "")
}

// ID returns the identifier attached to the game's log records.
func (g *Game) ID() string { return g.id }

// Run plays rounds until a win, a quit token or the end of input.
// Only output and input failures are returned as errors.
func (g *Game) Run(ctx context.Context) (Result, error) {
	res := Result{Secret: g.secret}
	g.logger.Debug("game started", "min", MinSecret, "max", MaxSecret)

	g.println(Message{Tone: ToneTitle, Text: Banner})

	var buf []byte
	for {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		g.out.WriteString(Prompt)
		if err := g.out.Flush(); err != nil {
			return res, fmt.Errorf("flush output: %w", err)
		}

		var err error
		buf, err = readLine(g.in, buf[:0])
		eof := errors.Is(err, io.EOF)
		if err != nil && !eof {
			return res, fmt.Errorf("read input: %w", err)
		}
		if eof && len(buf) == 0 {
			g.logger.Debug("input closed", "rounds", res.Rounds)
			res.Outcome = Quit
			break
		}

		res.Rounds++
		outcome, msg := Classify(string(buf), g.secret)
		if msg.Text != "" {
			g.println(msg)
		}
		g.logger.Debug("round", "round", res.Rounds, "outcome", outcome.String())

		if outcome.Done() {
			res.Outcome = outcome
			break
		}
		if eof {
			res.Outcome = Quit
			break
		}
	}

	if err := g.out.Flush(); err != nil {
		return res, fmt.Errorf("flush output: %w", err)
	}
	g.logger.Debug("game finished", "outcome", res.Outcome.String(), "rounds", res.Rounds)
	return res, nil
}

// println writes through the buffered writer; errors surface at the next Flush.
func (g *Game) println(msg Message) {
	g.out.WriteString(g.theme.Render(msg.Tone, msg.Text))
	g.out.WriteByte('\n')
}

// readLine appends one line, newline included, to buf.
// At end of input it returns what was read together with io.EOF.
func readLine(r *bufio.Reader, buf []byte) ([]byte, error) {
	for {
		chunk, err := r.ReadSlice('\n')
		buf = append(buf, chunk...)
		if errors.Is(err, bufio.ErrBufferFull) {
			continue
		}
		return buf, err
	}
}
