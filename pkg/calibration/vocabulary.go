package calibration

import (
	"os"

	"github.com/khalid-nowaf/trebuchet/pkg/trie"
	"github.com/pkg/errors"
	"github.com/thoas/go-funk"
	"gopkg.in/yaml.v3"
)

// ErrInvalidVocabulary is returned when a vocabulary can not be used to build the tries.
var ErrInvalidVocabulary = errors.New("invalid vocabulary")

// Vocabulary lists the spelled-out digits and their values.
type Vocabulary []trie.Word[int]

// DefaultVocabulary returns "one" to "nine".
func DefaultVocabulary() Vocabulary {
	return Vocabulary{
		{Text: "one", Value: 1},
		{Text: "two", Value: 2},
		{Text: "three", Value: 3},
		{Text: "four", Value: 4},
		{Text: "five", Value: 5},
		{Text: "six", Value: 6},
		{Text: "seven", Value: 7},
		{Text: "eight", Value: 8},
		{Text: "nine", Value: 9},
	}
}

// Reversed returns the same words spelled backwards, used to scan a line from its end.
func (v Vocabulary) Reversed() Vocabulary {
	reversed := make(Vocabulary, 0, len(v))
	for _, w := range v {
		reversed = append(reversed, trie.Word[int]{Text: funk.ReverseString(w.Text), Value: w.Value})
	}
	return reversed
}

// Validate checks that there is at least one word, that every word is made of
// lowercase ASCII letters and that every value is a digit between 1 and 9.
func (v Vocabulary) Validate() error {
	if len(v) == 0 {
		return errors.Wrap(ErrInvalidVocabulary, "no words")
	}
	for _, w := range v {
		if w.Text == "" {
			return errors.Wrap(ErrInvalidVocabulary, "empty word")
		}
		for _, c := range w.Text {
			if c < 'a' || c > 'z' {
				return errors.Wrapf(ErrInvalidVocabulary, "word %q: %q is not a lowercase letter", w.Text, c)
			}
		}
		if w.Value < 1 || w.Value > 9 {
			return errors.Wrapf(ErrInvalidVocabulary, "word %q: value %d is out of range 1..9", w.Text, w.Value)
		}
	}
	return nil
}

// VocabularyFile is the YAML layout of a vocabulary file:
//
//	words:
//	  - text: one
//	    value: 1
type VocabularyFile struct {
	Words []VocabularyEntry `yaml:"words"`
}

// VocabularyEntry is one word of a vocabulary file.
type VocabularyEntry struct {
	Text  string `yaml:"text"`
	Value int    `yaml:"value"`
}

// LoadVocabulary reads and validates a YAML vocabulary file.
func LoadVocabulary(filename string) (Vocabulary, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read vocabulary file '%s'", filename)
	}
	return ParseVocabulary(data)
}

// ParseVocabulary decodes and validates a YAML vocabulary.
func ParseVocabulary(data []byte) (Vocabulary, error) {
	var file VocabularyFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, errors.Wrap(err, "failed to parse vocabulary YAML")
	}

	vocabulary := make(Vocabulary, 0, len(file.Words))
	for _, entry := range file.Words {
		vocabulary = append(vocabulary, trie.Word[int]{Text: entry.Text, Value: entry.Value})
	}

	if err := vocabulary.Validate(); err != nil {
		return nil, err
	}
	return vocabulary, nil
}

// MarshalYAML renders the vocabulary in the vocabulary file layout.
func (v Vocabulary) MarshalYAML() (interface{}, error) {
	file := VocabularyFile{Words: make([]VocabularyEntry, 0, len(v))}
	for _, w := range v {
		file.Words = append(file.Words, VocabularyEntry{Text: w.Text, Value: w.Value})
	}
	return file, nil
}
