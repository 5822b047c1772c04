package game

import (
	"strconv"
	"strings"
)

// Quit tokens, matched together with the newline a line read leaves behind.
const (
	quitShort = "q\n"
	quitLong  = "quit\n"
)

// Compare checks guess against secret.
func Compare(guess, secret int) (Outcome, Message) {
	switch {
	case guess == secret:
		return Win, Message{Tone: ToneSuccess, Text: Winning}
	case guess > secret:
		return Lose, Message{Tone: ToneHint, Text: Greater}
	default:
		return Lose, Message{Tone: ToneHint, Text: Less}
	}
}

// Classify turns one raw input line into a round outcome.
// A quit token yields Quit with an empty message.
func Classify(line string, secret int) (Outcome, Message) {
	if line == quitShort || line == quitLong {
		return Quit, Message{}
	}
	guess, err := strconv.ParseInt(strings.TrimSpace(line), 10, 32)
	if err != nil {
		return Lose, Message{Tone: ToneError, Text: NaN}
	}
	return Compare(int(guess), secret)
}
