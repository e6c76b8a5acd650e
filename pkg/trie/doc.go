// ## Overview
// Package trie implements a generic prefix tree over runes.
// The trie is built once from a fixed list of words, each carrying a terminal
// value, and is read-only afterwards. Nodes are stored in an arena and are
// addressed by NodeID, so callers walking the tree hold plain integers instead
// of pointers into it, and any number of goroutines can walk the same trie.
//
// ## Example usage:
//
//	t, err := trie.Build([]trie.Word[int]{
//		{Text: "one", Value: 1},
//		{Text: "two", Value: 2},
//	})
//	if err != nil {
//		return err
//	}
//
//	// Step one character at a time
//	step := t.StepFrom(t.Root(), 't') // Partial
//	step = t.StepFrom(step.Node, 'w') // Partial
//	step = t.StepFrom(step.Node, 'o') // Complete, step.Value == 2
//
//	// Or look a whole word up
//	fmt.Println(t.Find("on").Outcome) // Output: Partial
//
//	// List the registered words
//	for _, w := range t.Words() {
//		fmt.Println(w.Text, w.Value)
//	}
//
// The terminal value type is generic, the scanner and calibration packages
// use small integers.
package trie
