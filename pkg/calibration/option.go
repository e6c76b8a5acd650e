package calibration

import (
	"log/slog"

	"github.com/pkg/errors"
)

// Mode selects what counts as a digit in a line.
type Mode int

const (
	// Digits only accepts the characters 0 to 9.
	Digits Mode = iota
	// Words also accepts the spelled-out digits of the vocabulary.
	Words
)

func (m Mode) String() string {
	switch m {
	case Digits:
		return "digits"
	case Words:
		return "words"
	}
	return "unknown"
}

// ParseMode converts "digits" or "words" into a Mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "digits":
		return Digits, nil
	case "words":
		return Words, nil
	}
	return 0, errors.Errorf("unknown mode %q", s)
}

type Option func(*Calibrator) *Calibrator

func DefaultOptions() *Calibrator {
	return &Calibrator{
		vocabulary: DefaultVocabulary(),
		mode:       Words,
		logger:     slog.Default(),
	}
}

func WithVocabulary(vocabulary Vocabulary) Option {
	return func(c *Calibrator) *Calibrator {
		c.vocabulary = vocabulary
		return c
	}
}

func WithMode(mode Mode) Option {
	return func(c *Calibrator) *Calibrator {
		c.mode = mode
		return c
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(c *Calibrator) *Calibrator {
		if logger != nil {
			c.logger = logger
		}
		return c
	}
}
