// ## Overview
// Package trie implements a generic trie (prefix tree) holding a set of sequences.
// Each element of a sequence selects one child, and a node is marked as terminating
// when the path from the root to it is a stored sequence.
// The trie supports insertion, removal (with pruning of the nodes that no longer lead
// anywhere), membership tests, counting, and enumeration of the stored sequences,
// optionally restricted to a prefix.
//
// Tries behave like values: Clone is O(1) and the clone shares the node tree
// with the original until one of them is modified, which duplicates the tree
// for the modified one only (copy-on-write).
//
// ## Example usage:
//
//	words := trie.New[rune]()
//	words.Insert([]rune("cat"))
//	words.Insert([]rune("car"))
//	words.Insert([]rune("cart"))
//
//	fmt.Println(words.Count())                // Output: 3
//	fmt.Println(words.Contains([]rune("ca"))) // Output: false
//
//	snapshot := words.Clone()
//	words.Remove([]rune("car"))
//	fmt.Println(snapshot.Contains([]rune("car"))) // Output: true
//
//	for _, seq := range words.CollectionsWithPrefix([]rune("ca")) {
//		fmt.Println(string(seq)) // cat, cart (any order)
//	}
//
// Strings wraps a Trie[rune] for callers that work with Go strings.
package trie
