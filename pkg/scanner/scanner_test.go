package scanner

import (
	"math/rand"
	"testing"

	"github.com/khalid-nowaf/trebuchet/pkg/trie"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var digitWords = []trie.Word[int]{
	{Text: "one", Value: 1}, {Text: "two", Value: 2}, {Text: "three", Value: 3},
	{Text: "four", Value: 4}, {Text: "five", Value: 5}, {Text: "six", Value: 6},
	{Text: "seven", Value: 7}, {Text: "eight", Value: 8}, {Text: "nine", Value: 9},
}

func reverse(s string) string {
	r := []rune(s)
	for i, j := 0, len(r)-1; i < j; i, j = i+1, j-1 {
		r[i], r[j] = r[j], r[i]
	}
	return string(r)
}

func forwardTrie(t testing.TB) *trie.Trie[int] {
	tr, err := trie.Build(digitWords)
	require.NoError(t, err)
	return tr
}

func backwardTrie(t testing.TB) *trie.Trie[int] {
	words := make([]trie.Word[int], 0, len(digitWords))
	for _, w := range digitWords {
		words = append(words, trie.Word[int]{Text: reverse(w.Text), Value: w.Value})
	}
	tr, err := trie.Build(words)
	require.NoError(t, err)
	return tr
}

// TestNewIsIdle verifies the initial state.
func TestNewIsIdle(t *testing.T) {
	s := New(forwardTrie(t))
	assert.Equal(t, Idle, s.State())
	assert.Empty(t, s.Pending())
	assert.Empty(t, s.Frontier())
}

// TestNewPanicsWithoutTrie verifies that a scanner needs a trie.
func TestNewPanicsWithoutTrie(t *testing.T) {
	assert.Panics(t, func() {
		New[int](nil)
	})
}

// TestEveryWordCompletesOnLastCharacter scans each registered word through a fresh scanner.
func TestEveryWordCompletesOnLastCharacter(t *testing.T) {
	tr := forwardTrie(t)

	for _, w := range digitWords {
		s := New(tr)
		runes := []rune(w.Text)
		for i, c := range runes {
			v, ok := s.Advance(c)
			if i < len(runes)-1 {
				assert.False(t, ok, "%q should not complete on character %d", w.Text, i)
				assert.Equal(t, Pending, s.State())
				assert.Equal(t, string(runes[:i+1]), s.Pending())
			} else {
				assert.True(t, ok, "%q should complete on its last character", w.Text)
				assert.Equal(t, w.Value, v)
			}
		}
	}
}

// TestUnknownCharacterStaysIdle verifies that a character no word starts with is discarded.
func TestUnknownCharacterStaysIdle(t *testing.T) {
	s := New(forwardTrie(t))
	for _, c := range "xyzabc1" {
		_, ok := s.Advance(c)
		assert.False(t, ok)
		assert.Equal(t, Idle, s.State(), "%q should leave the scanner Idle", c)
		assert.Empty(t, s.Pending())
	}
}

// TestResetAfterComplete verifies that a completion leaves the scanner as if it was just created.
func TestResetAfterComplete(t *testing.T) {
	tr := forwardTrie(t)
	s := New(tr)

	for _, c := range "xtw" {
		s.Advance(c)
	}
	require.Equal(t, Pending, s.State())

	v, ok := s.Advance('o')
	require.True(t, ok)
	assert.Equal(t, 2, v)
	assert.Equal(t, New(tr), s, "State after a completion should match a new scanner")
}

// TestReset verifies that Reset drops a match in progress.
func TestReset(t *testing.T) {
	tr := forwardTrie(t)
	s := New(tr)
	s.Advance('s')
	s.Advance('e')
	require.Equal(t, "se", s.Pending())

	s.Reset()
	assert.Equal(t, New(tr), s)
}

// TestFrontier verifies that the frontier follows the buffered characters.
func TestFrontier(t *testing.T) {
	tr := forwardTrie(t)
	s := New(tr)
	s.Advance('t')
	s.Advance('w')

	frontier := s.Frontier()
	require.Len(t, frontier, 1)
	assert.Equal(t, 'w', tr.Label(frontier[0]))
	assert.Equal(t, 2, tr.Depth(frontier[0]))

	frontier[0] = tr.Root()
	assert.Equal(t, 'w', tr.Label(s.Frontier()[0]), "Frontier should return a copy")
}

// TestOverlapByDirection verifies that "twone" yields two forward and one backward.
func TestOverlapByDirection(t *testing.T) {
	forward := New(forwardTrie(t))
	v, ok := forward.Scan("twone")
	assert.True(t, ok)
	assert.Equal(t, 2, v, "Forward scan of twone should find two first")

	backward := New(backwardTrie(t))
	v, ok = backward.Scan(reverse("twone"))
	assert.True(t, ok)
	assert.Equal(t, 1, v, "Backward scan of twone should find one first")
}

// TestRecovery verifies that dead ends replay the buffered characters.
func TestRecovery(t *testing.T) {
	testCases := []struct {
		text     string
		expected int
	}{
		{"fone", 1},       // "fo" dead-ends on n, "on" is replayed
		{"eeight", 8},     // "ee" dead-ends, the second e starts eight
		{"ninine", 9},     // "nini" dead-ends, "ni" is replayed
		{"thfour", 4},     // "thf" dead-ends, f starts four
		{"sevseven", 7},   // "sevs" dead-ends, the last s starts seven
		{"oneight", 1},    // first complete wins
		{"xxsixteen", 6},  // leading noise
		{"ththree", 3},    // "tht" dead-ends, t starts three
		{"fivfive", 5},    // "fivf" dead-ends
		{"seighteven", 8}, // "se" dead-ends on i, e is replayed into eight
	}

	tr := forwardTrie(t)
	for _, tc := range testCases {
		s := New(tr)
		v, ok := s.Scan(tc.text)
		assert.True(t, ok, "%q should contain a word", tc.text)
		assert.Equal(t, tc.expected, v, "%q", tc.text)
	}
}

// TestRecoveryCharacterByCharacter follows a recovery one step at a time.
func TestRecoveryCharacterByCharacter(t *testing.T) {
	s := New(forwardTrie(t))

	steps := []struct {
		c       rune
		ok      bool
		value   int
		pending string
		state   State
	}{
		{'f', false, 0, "f", Pending},
		{'o', false, 0, "fo", Pending},
		{'n', false, 0, "on", Pending},
		{'e', true, 1, "", Idle},
	}

	for _, step := range steps {
		v, ok := s.Advance(step.c)
		assert.Equal(t, step.ok, ok, "Advance(%q)", step.c)
		assert.Equal(t, step.value, v, "Advance(%q)", step.c)
		assert.Equal(t, step.pending, s.Pending(), "Pending after %q", step.c)
		assert.Equal(t, step.state, s.State(), "State after %q", step.c)
	}
}

// TestDeadEndWithoutWord verifies that a failed replay ends Idle without a value.
func TestDeadEndWithoutWord(t *testing.T) {
	s := New(forwardTrie(t))
	s.Advance('t')
	s.Advance('w')

	v, ok := s.Advance('x')
	assert.False(t, ok)
	assert.Equal(t, 0, v)
	assert.Equal(t, Idle, s.State())
	assert.Empty(t, s.Pending())
}

// TestNoWord verifies that text without words yields nothing.
func TestNoWord(t *testing.T) {
	s := New(forwardTrie(t))
	_, ok := s.Scan("pqrstuvwxyz")
	assert.False(t, ok)
	assert.Equal(t, Idle, s.State())
}

// TestPendingNeverExceedsLongestWord feeds random letters and checks the buffer bound.
func TestPendingNeverExceedsLongestWord(t *testing.T) {
	tr := forwardTrie(t)
	s := New(tr)
	letters := []rune("onetwhrfuivsxg")
	r := rand.New(rand.NewSource(42))

	for i := 0; i < 10000; i++ {
		s.Advance(letters[r.Intn(len(letters))])
		assert.LessOrEqual(t, len([]rune(s.Pending())), tr.MaxWordLen())
		assert.Equal(t, s.State() == Idle, s.Pending() == "", "Buffer should be empty exactly when Idle")
	}
}

// TestFlush verifies that a word hidden inside a match left in progress at the
// end of the input is still found.
func TestFlush(t *testing.T) {
	tr, err := trie.Build([]trie.Word[int]{{Text: "abcd", Value: 1}, {Text: "bc", Value: 2}})
	require.NoError(t, err)

	s := New(tr)
	for _, c := range "abc" {
		_, ok := s.Advance(c)
		require.False(t, ok)
	}
	require.Equal(t, "abc", s.Pending())

	v, ok := s.Flush()
	assert.True(t, ok)
	assert.Equal(t, 2, v)
	assert.Equal(t, Idle, s.State())

	v, ok = s.Scan("xabc")
	assert.True(t, ok)
	assert.Equal(t, 2, v)
}

// TestFlushWithoutWord verifies that flushing a dead prefix ends Idle.
func TestFlushWithoutWord(t *testing.T) {
	s := New(forwardTrie(t))
	s.Advance('s')
	s.Advance('e')

	_, ok := s.Flush()
	assert.False(t, ok)
	assert.Equal(t, Idle, s.State())
	assert.Empty(t, s.Pending())

	_, ok = s.Flush()
	assert.False(t, ok, "Flushing an Idle scanner should do nothing")
}

// TestStateString verifies the state names.
func TestStateString(t *testing.T) {
	assert.Equal(t, "Idle", Idle.String())
	assert.Equal(t, "Pending", Pending.String())
	assert.Equal(t, "State(7)", State(7).String())
}

func BenchmarkScan(b *testing.B) {
	s := New(forwardTrie(b))
	for i := 0; i < b.N; i++ {
		s.Scan("xxthfoseveightwone")
	}
}
