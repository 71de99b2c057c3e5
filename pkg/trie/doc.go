// ## Overview
// Package trie implements a rune keyed trie (prefix tree).
// Every node owns its children through a map keyed by a single rune, and a node
// is terminal when the path from the root to it spells a stored key. The package
// provides functions to create nodes, add and remove keys with structural pruning,
// and traverse the trie in a deterministic (ascending rune) order.
//
// ## Example usage:
//
//	root := trie.New()
//	root.Insert([]rune("hell"))
//	root.Insert([]rune("hello"))
//
//	// Check if a key is stored
//	fmt.Println(root.Contains([]rune("hell"))) // Output: true
//
//	// Remove a key, nodes that are no longer needed are detached
//	pruned, ok := root.Remove([]rune("hello"))
//	fmt.Println(pruned, ok) // Output: 1 true
//
//	// Traverse every stored key below a node
//	root.ForEachKey(nil, func(key []rune) bool {
//		fmt.Println(string(key))
//		return true
//	})
//
// The trie has no parent pointers: removal keeps an explicit ancestor stack, and
// traversal uses an explicit stack, so deep keys never grow the goroutine stack.
// A Node is not safe for concurrent use.
package trie
