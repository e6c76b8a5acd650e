package trie

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

var (
	// ErrEmptyVocabulary is returned by Build when no word is given.
	ErrEmptyVocabulary = errors.New("trie: vocabulary must contain at least one word")
	// ErrEmptyWord is returned by Build when one of the words has no characters.
	ErrEmptyWord = errors.New("trie: words must not be empty")
)

// NodeID addresses a node inside the arena of a Trie.
type NodeID = int

// RootLabel is the label of the root node, it never matches a real character.
const RootLabel rune = -1

// Outcome is the result kind of a trie step.
type Outcome int

const (
	NoMatch Outcome = iota
	Partial
	Complete
)

func (o Outcome) String() string {
	switch o {
	case NoMatch:
		return "NoMatch"
	case Partial:
		return "Partial"
	case Complete:
		return "Complete"
	}
	return fmt.Sprintf("Outcome(%d)", int(o))
}

// Step is the answer to a single query against the trie.
// Node is set for Partial, Value for Complete.
type Step[T any] struct {
	Outcome Outcome
	Node    NodeID
	Value   T
}

// Word pairs a registered word with its terminal value.
type Word[T any] struct {
	Text  string
	Value T
}

type node[T any] struct {
	label    rune
	children []NodeID // insertion order, labels are unique among siblings
	value    T
	terminal bool
	depth    int
}

// Trie is an immutable prefix tree. The zero value is not usable, use Build.
type Trie[T any] struct {
	nodes      []node[T]
	maxWordLen int
}

// Build creates a trie holding every word of words.
// Words sharing the same text keep the value of the last one.
func Build[T any](words []Word[T]) (*Trie[T], error) {
	if len(words) == 0 {
		return nil, ErrEmptyVocabulary
	}

	t := &Trie[T]{
		nodes: []node[T]{{label: RootLabel}},
	}

	for i, w := range words {
		if w.Text == "" {
			return nil, errors.Wrapf(ErrEmptyWord, "word #%d", i)
		}
		t.insert(w)
	}

	return t, nil
}

// insert walks the word from the root, creating the missing nodes,
// and marks the last one as terminal.
func (t *Trie[T]) insert(w Word[T]) {
	current := t.Root()
	length := 0
	for _, c := range w.Text {
		child, found := t.child(current, c)
		if !found {
			child = t.attachChild(current, c)
		}
		current = child
		length++
	}

	t.nodes[current].value = w.Value
	t.nodes[current].terminal = true

	if length > t.maxWordLen {
		t.maxWordLen = length
	}
}

// adds a new child labelled c under parent and returns its id.
func (t *Trie[T]) attachChild(parent NodeID, c rune) NodeID {
	id := len(t.nodes)
	t.nodes = append(t.nodes, node[T]{
		label: c,
		depth: t.nodes[parent].depth + 1,
	})
	t.nodes[parent].children = append(t.nodes[parent].children, id)
	return id
}

func (t *Trie[T]) child(parent NodeID, c rune) (NodeID, bool) {
	for _, id := range t.nodes[parent].children {
		if t.nodes[id].label == c {
			return id, true
		}
	}
	return 0, false
}

// Root returns the id of the root node.
func (t *Trie[T]) Root() NodeID {
	return 0
}

// StepFrom looks up the child of id labelled c.
//
// Returns:
//   - NoMatch if there is no such child
//   - Complete with the child's value if a word ends at the child
//   - Partial with the child's id otherwise
func (t *Trie[T]) StepFrom(id NodeID, c rune) Step[T] {
	if id < 0 || id >= len(t.nodes) {
		panic(fmt.Sprintf("[BUG] StepFrom: node %d is not part of this trie", id))
	}

	child, found := t.child(id, c)
	if !found {
		return Step[T]{Outcome: NoMatch}
	}
	if n := t.nodes[child]; n.terminal {
		return Step[T]{Outcome: Complete, Node: child, Value: n.value}
	}
	return Step[T]{Outcome: Partial, Node: child}
}

// Find walks the whole word from the root.
// It is Complete when the word is registered, Partial when the word is a strict
// prefix of a registered word (the empty word included) and NoMatch otherwise.
func (t *Trie[T]) Find(word string) Step[T] {
	current := t.Root()
	for _, c := range word {
		child, found := t.child(current, c)
		if !found {
			return Step[T]{Outcome: NoMatch}
		}
		current = child
	}

	if n := t.nodes[current]; n.terminal {
		return Step[T]{Outcome: Complete, Node: current, Value: n.value}
	}
	return Step[T]{Outcome: Partial, Node: current}
}

// Label returns the character of the node, RootLabel for the root.
func (t *Trie[T]) Label(id NodeID) rune {
	return t.nodes[id].label
}

// IsRoot checks if id is the root node.
func (t *Trie[T]) IsRoot(id NodeID) bool {
	return t.nodes[id].label == RootLabel
}

// IsLeaf checks if the node has no children.
func (t *Trie[T]) IsLeaf(id NodeID) bool {
	return len(t.nodes[id].children) == 0
}

// Depth returns the number of characters from the root to the node.
func (t *Trie[T]) Depth(id NodeID) int {
	return t.nodes[id].depth
}

// Len returns the number of nodes, the root included.
func (t *Trie[T]) Len() int {
	return len(t.nodes)
}

// MaxWordLen returns the length, in characters, of the longest registered word.
func (t *Trie[T]) MaxWordLen() int {
	return t.maxWordLen
}

// ForEachStepDown applies f to every node below the root, depth first,
// children in insertion order. The path from the root (excluded) to the node
// is passed along.
func (t *Trie[T]) ForEachStepDown(f func(id NodeID, path []rune)) {
	path := make([]rune, 0, t.maxWordLen)
	t.forEachStepDown(t.Root(), path, f)
}

// is a helper for ForEachStepDown to implement recursive traversal.
func (t *Trie[T]) forEachStepDown(id NodeID, path []rune, f func(id NodeID, path []rune)) {
	for _, child := range t.nodes[id].children {
		childPath := append(path, t.nodes[child].label)
		f(child, childPath)
		t.forEachStepDown(child, childPath, f)
	}
}

// Words returns every registered word with its value, in depth first order.
func (t *Trie[T]) Words() []Word[T] {
	words := []Word[T]{}
	t.ForEachStepDown(func(id NodeID, path []rune) {
		if n := t.nodes[id]; n.terminal {
			words = append(words, Word[T]{Text: string(path), Value: n.value})
		}
	})
	return words
}

func (t *Trie[T]) String() string {
	var sb strings.Builder
	t.ForEachStepDown(func(id NodeID, path []rune) {
		sb.WriteString(strings.Repeat("  ", len(path)-1))
		sb.WriteRune(t.nodes[id].label)
		if t.nodes[id].terminal {
			fmt.Fprintf(&sb, " = %v", t.nodes[id].value)
		}
		sb.WriteByte('\n')
	})
	return sb.String()
}
