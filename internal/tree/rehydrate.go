package tree

import "github.com/address-parser/internal/token"

// Rehydrate deep-copies a cached tree template, reassigning each leaf
// its lexeme from tokens by position. The structure cache keys on
// token *kind* sequence, so a cache hit's tree shares that shape with
// the current input but not its concrete lexemes (e.g. "Tucumán" vs
// "Corrientes") — Rehydrate is what lets a cached shape be reused
// safely for a different address with the same shape, and without
// mutating the shared cached node.
func Rehydrate(template *Node, tokens []token.Token) *Node {
	idx := 0
	var walk func(*Node) *Node
	walk = func(n *Node) *Node {
		if n.IsLeaf() {
			t := tokens[idx]
			idx++
			return NewLeaf(t)
		}
		children := make([]*Node, len(n.Children))
		for i, c := range n.Children {
			children[i] = walk(c)
		}
		return NewInternal(n.Label, children)
	}
	return walk(template)
}
