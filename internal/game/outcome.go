// Package game implements the number-guessing game loop.
package game

// Outcome is the result of a single round.
type Outcome int

const (
	// Lose means the round did not end the game: a wrong or unparseable guess.
	Lose Outcome = iota
	Win
	Quit
)

func (o Outcome) String() string {
	switch o {
	case Lose:
		return "lose"
	case Win:
		return "win"
	case Quit:
		return "quit"
	default:
		return "unknown"
	}
}

// Done reports whether the outcome ends the game.
func (o Outcome) Done() bool {
	return o == Win || o == Quit
}
