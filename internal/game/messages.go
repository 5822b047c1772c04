package game

// Player-facing text. These strings are the game's wire format.
const (
	Banner  = "Guess the number!"
	Prompt  = ">> "
	Winning = "You guessed it!"
	Greater = "Your guess is greater than secret number"
	Less    = "Your guess is less than secret number"
	NaN     = "Please type number"
)

// Tone selects how a message is styled.
type Tone int

const (
	TonePlain Tone = iota
	ToneTitle
	ToneSuccess
	ToneHint
	ToneError
)

// Message is a line of output produced by a round.
type Message struct {
	Tone Tone
	Text string
}
