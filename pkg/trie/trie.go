package trie

import (
	"slices"
	"strings"
)

// Node is a node in the trie, representing one rune position of the stored keys.
type Node struct {
	children map[rune]*Node // owned child nodes, one per next rune
	terminal bool           // the path from the root to this node is a stored key
}

// New creates an empty root node.
func New() *Node {
	return &Node{}
}

// IsTerminal reports whether the path to this node spells a stored key.
func (n *Node) IsTerminal() bool {
	return n.terminal
}

// IsLeaf checks if the node has no children.
func (n *Node) IsLeaf() bool {
	return n.Len() == 0
}

// Len returns the number of direct children.
func (n *Node) Len() int {
	return len(n.children)
}

// returns the child reached through r, or nil
func (n *Node) Child(r rune) *Node {
	if n == nil {
		panic("[BUG] Child: node must not be nil")
	}
	return n.children[r]
}

// adds a child for r if no child exists there yet.
// return the new added child or the existing one
func (n *Node) AttachChild(r rune) *Node {
	if child, ok := n.children[r]; ok {
		return child
	}
	if n.children == nil {
		n.children = make(map[rune]*Node)
	}
	child := &Node{}
	n.children[r] = child
	return child
}

// DetachChild disconnects the child reached through r.
// if there is no other reference to it, the whole subtree will be GC'ed
func (n *Node) DetachChild(r rune) {
	delete(n.children, r)
	if len(n.children) == 0 {
		n.children = nil
	}
}

// Descend follows path from n and returns the node it ends on,
// or nil when an edge along the path is missing.
func (n *Node) Descend(path []rune) *Node {
	current := n
	for _, r := range path {
		current = current.Child(r)
		if current == nil {
			return nil
		}
	}
	return current
}

// Contains reports whether path is a stored key.
func (n *Node) Contains(path []rune) bool {
	node := n.Descend(path)
	return node != nil && node.IsTerminal()
}

// Insert adds path as a stored key, creating the missing nodes on the way.
// It returns true if the key was not stored before.
// The root never holds a key, so an empty path is ignored.
func (n *Node) Insert(path []rune) bool {
	if len(path) == 0 {
		return false
	}
	current := n
	for _, r := range path {
		current = current.AttachChild(r)
	}
	if current.terminal {
		return false
	}
	current.terminal = true
	return true
}

// step records a node on the way down and the rune used to leave it.
type step struct {
	node *Node
	r    rune
}

// Remove deletes path from the stored keys and prunes every node that ends up
// with no children and no key of its own.
//
// Returns:
//   - pruned: the number of nodes detached from the trie.
//   - ok: false if path was not stored, in that case the trie is left untouched.
//
// Pruning walks back up from the end of the path and stops at the first node that
// still has other children or is the end of another key, so shared prefixes of
// other keys are never removed.
func (n *Node) Remove(path []rune) (pruned int, ok bool) {
	if len(path) == 0 {
		return 0, false
	}

	ancestors := make([]step, 0, len(path))
	current := n
	for _, r := range path {
		next := current.children[r]
		if next == nil {
			return 0, false
		}
		ancestors = append(ancestors, step{node: current, r: r})
		current = next
	}
	if !current.terminal {
		return 0, false
	}
	current.terminal = false

	for i := len(ancestors) - 1; i >= 0; i-- {
		if !current.IsLeaf() || current.terminal {
			break
		}
		parent := ancestors[i]
		parent.node.DetachChild(parent.r)
		pruned++
		current = parent.node
	}
	return pruned, true
}

// applies a function to each child of the node in ascending rune order.
// will return the original node n
func (n *Node) ForEachChild(f func(r rune, child *Node)) *Node {
	for _, r := range n.sortedRunes() {
		f(r, n.children[r])
	}
	return n
}

// frame is a pending node of a traversal with the key spelled up to it.
type frame struct {
	node *Node
	key  []rune
}

// ForEachStepDown visits n and every descendant in depth first pre-order, children
// in ascending rune order, passing the key spelled from n (prefixed with prefix).
// Returning false from f stops the traversal. The key slice is owned by the
// traversal and must be copied if retained.
func (n *Node) ForEachStepDown(prefix []rune, f func(key []rune, node *Node) bool) *Node {
	stack := []frame{{node: n, key: slices.Clone(prefix)}}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if !f(top.key, top.node) {
			return n
		}

		children := make([]frame, 0, top.node.Len())
		top.node.ForEachChild(func(r rune, child *Node) {
			key := make([]rune, len(top.key)+1)
			copy(key, top.key)
			key[len(top.key)] = r
			children = append(children, frame{node: child, key: key})
		})
		// push in reverse so the smallest rune is visited first
		for i := len(children) - 1; i >= 0; i-- {
			stack = append(stack, children[i])
		}
	}
	return n
}

// ForEachKey calls f with every stored key at or below n, in ascending order.
// Each key is prefixed with prefix. Returning false from f stops the traversal.
func (n *Node) ForEachKey(prefix []rune, f func(key []rune) bool) *Node {
	return n.ForEachStepDown(prefix, func(key []rune, node *Node) bool {
		if node.terminal {
			return f(key)
		}
		return true
	})
}

// Keys returns every stored key at or below n, each prefixed with prefix.
func (n *Node) Keys(prefix []rune) [][]rune {
	keys := [][]rune{}
	n.ForEachKey(prefix, func(key []rune) bool {
		keys = append(keys, key)
		return true
	})
	return keys
}

// CountKeys returns the number of terminal nodes at or below n.
func (n *Node) CountKeys() int {
	count := 0
	n.ForEachKey(nil, func([]rune) bool {
		count++
		return true
	})
	return count
}

// Size returns the number of nodes at or below n, n included.
func (n *Node) Size() int {
	size := 0
	n.ForEachStepDown(nil, func([]rune, *Node) bool {
		size++
		return true
	})
	return size
}

func (n *Node) sortedRunes() []rune {
	runes := make([]rune, 0, len(n.children))
	for r := range n.children {
		runes = append(runes, r)
	}
	slices.Sort(runes)
	return runes
}

// String renders every stored key on its own line.
func (n *Node) String() string {
	var sb strings.Builder
	n.ForEachKey(nil, func(key []rune) bool {
		sb.WriteString(string(key))
		sb.WriteByte('\n')
		return true
	})
	return sb.String()
}
