package calibration

import (
	"log/slog"

	"github.com/khalid-nowaf/trebuchet/pkg/scanner"
	"github.com/khalid-nowaf/trebuchet/pkg/trie"
	"github.com/pkg/errors"
)

// ErrNoValue is returned when a line holds neither a digit nor a spelled-out digit.
var ErrNoValue = errors.New("line has no calibration value")

// Calibrator recovers the calibration value of a line: the first and the last
// digit of the line, read as a two digit number.
//
// The forward and backward tries are built once and never modified, a single
// Calibrator can be shared by any number of goroutines.
type Calibrator struct {
	vocabulary Vocabulary
	mode       Mode
	logger     *slog.Logger
	forward    *trie.Trie[int] // words as spelled
	backward   *trie.Trie[int] // words spelled backwards
}

// New builds a Calibrator, by default in Words mode with DefaultVocabulary.
//
// Returns:
//   - ErrInvalidVocabulary if the vocabulary does not validate
//   - the trie construction error if the tries can not be built
func New(opts ...Option) (*Calibrator, error) {
	c := DefaultOptions()
	for _, opt := range opts {
		c = opt(c)
	}

	if c.mode == Digits {
		c.logger.Info("calibrator ready", "mode", c.mode)
		return c, nil
	}

	if err := c.vocabulary.Validate(); err != nil {
		return nil, err
	}

	var err error
	if c.forward, err = trie.Build[int](c.vocabulary); err != nil {
		return nil, errors.Wrap(err, "failed to build forward trie")
	}
	if c.backward, err = trie.Build[int](c.vocabulary.Reversed()); err != nil {
		return nil, errors.Wrap(err, "failed to build backward trie")
	}

	c.logger.Info("calibrator ready",
		"mode", c.mode,
		"words", len(c.vocabulary),
		"nodes", c.forward.Len(),
		"longest", c.forward.MaxWordLen())
	return c, nil
}

// Mode returns the mode the calibrator was built with.
func (c *Calibrator) Mode() Mode {
	return c.mode
}

// Vocabulary returns the words the forward trie was built from,
// or the backward trie's when reversed is set. It is empty in Digits mode.
func (c *Calibrator) Vocabulary(reversed bool) Vocabulary {
	if c.forward == nil {
		return Vocabulary{}
	}
	if reversed {
		return Vocabulary(c.backward.Words())
	}
	return Vocabulary(c.forward.Words())
}

func digitValue(r rune) (int, bool) {
	if r >= '0' && r <= '9' {
		return int(r - '0'), true
	}
	return 0, false
}

// First returns the first digit of the line, scanning from its start.
func (c *Calibrator) First(line string) (int, bool) {
	return c.firstValue([]rune(line), c.forward)
}

// Last returns the last digit of the line, scanning from its end with the
// backward trie.
func (c *Calibrator) Last(line string) (int, bool) {
	runes := []rune(line)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return c.firstValue(runes, c.backward)
}

// firstValue returns the first digit or word found in runes.
// Digits short-circuit, everything else goes through the scanner.
func (c *Calibrator) firstValue(runes []rune, t *trie.Trie[int]) (int, bool) {
	var s *scanner.Scanner[int]
	if c.mode == Words {
		s = scanner.New(t)
	}

	for _, r := range runes {
		if v, ok := digitValue(r); ok {
			if s != nil {
				// a word can not span a digit, settle the one in progress
				if w, ok := s.Flush(); ok {
					return w, true
				}
			}
			return v, true
		}
		if s == nil {
			continue
		}
		if v, ok := s.Advance(r); ok {
			return v, true
		}
	}

	if s != nil {
		return s.Flush()
	}
	return 0, false
}

// RowValue returns first*10+last for the line.
// A line with a single digit uses it twice.
func (c *Calibrator) RowValue(line string) (int, error) {
	result := c.LineValue(0, line)
	if result.Skipped() {
		return 0, errors.Wrapf(result.Err, "line %q", line)
	}

	c.logger.Debug("row value", "line", line, "first", result.First, "last", result.Last, "value", result.Value)
	return result.Value, nil
}
