package game

import (
	"fmt"
	"testing"
)

func TestCompare(t *testing.T) {
	tests := []struct {
		name          string
		guess, secret int
		want          Outcome
		text          string
	}{
		{"equal", 42, 42, Win, Winning},
		{"equal negative", -7, -7, Win, Winning},
		{"greater", 70, 50, Lose, Greater},
		{"less", 30, 50, Lose, Less},
		{"less negative", -1, 1, Lose, Less},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, msg := Compare(tt.guess, tt.secret)
			if got != tt.want {
				t.Errorf("expected %s, got %s", tt.want, got)
			}
			if msg.Text != tt.text {
				t.Errorf("expected %q, got %q", tt.text, msg.Text)
			}
		})
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		line string
		want Outcome
		text string
	}{
		{"short quit", "q\n", Quit, ""},
		{"long quit", "quit\n", Quit, ""},
		{"winning guess", "50\n", Win, Winning},
		{"padded guess", "  50 \t\n", Win, Winning},
		{"plus sign", "+50\n", Win, Winning},
		{"high guess", "99\n", Lose, Greater},
		{"low guess", "-3\n", Lose, Less},
		{"letters", "abc\n", Lose, NaN},
		{"empty line", "\n", Lose, NaN},
		{"float", "50.0\n", Lose, NaN},
		{"overflow", "99999999999\n", Lose, NaN},
		{"quit without newline", "quit", Lose, NaN},
		{"quit with carriage return", "quit\r\n", Lose, NaN},
		{"quit with spaces", " q\n", Lose, NaN},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, msg := Classify(tt.line, 50)
			if got != tt.want {
				t.Errorf("expected %s, got %s", tt.want, got)
			}
			if msg.Text != tt.text {
				t.Errorf("expected %q, got %q", tt.text, msg.Text)
			}
		})
	}
}

func TestSecretRoundTrip(t *testing.T) {
	for seed := int64(1); seed <= 500; seed++ {
		secret := NewSecret(NewSource(seed), MinSecret, MaxSecret)
		if secret < MinSecret || secret > MaxSecret {
			t.Fatalf("seed %d: secret %d out of range", seed, secret)
		}
		if got, _ := Classify(fmt.Sprintf("%d\n", secret), secret); got != Win {
			t.Fatalf("seed %d: expected win, got %s", seed, got)
		}
	}
}

func TestNewSecretCoversRange(t *testing.T) {
	src := NewSource(7)
	seen := make(map[int]bool)
	for i := 0; i < 10000; i++ {
		seen[NewSecret(src, MinSecret, MaxSecret)] = true
	}
	if len(seen) != MaxSecret-MinSecret+1 {
		t.Errorf("expected %d distinct secrets, got %d", MaxSecret-MinSecret+1, len(seen))
	}
	if !seen[MinSecret] || !seen[MaxSecret] {
		t.Error("expected both bounds to be drawn")
	}
}

func TestNewSourceDeterministic(t *testing.T) {
	a := NewSecret(NewSource(42), MinSecret, MaxSecret)
	b := NewSecret(NewSource(42), MinSecret, MaxSecret)
	if a != b {
		t.Errorf("expected same secret for same seed, got %d and %d", a, b)
	}
}

func TestOutcomeDone(t *testing.T) {
	if Lose.Done() {
		t.Error("lose should not end the game")
	}
	if !Win.Done() || !Quit.Done() {
		t.Error("win and quit should end the game")
	}
}
