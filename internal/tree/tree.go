// Package tree holds the parse-tree representation the chart parser
// builds and the visitor/ranker/disambiguator that turn a forest of
// candidate trees into the single best address reading.
package tree

import "github.com/address-parser/internal/token"

// Node is one node of a parse tree: a leaf wraps a single scanned
// token, an internal node carries a nonterminal label and its
// children in left-to-right order.
type Node struct {
	Label    string
	Leaf     *token.Token
	Children []*Node
}

// IsLeaf reports whether n wraps a scanned token rather than a
// nonterminal.
func (n *Node) IsLeaf() bool { return n.Leaf != nil }

// NewLeaf builds a leaf node for a scanned token, labeled with its
// kind.
func NewLeaf(t token.Token) *Node {
	tc := t
	return &Node{Label: string(t.Kind), Leaf: &tc}
}

// NewInternal builds an internal node for a nonterminal reduction.
func NewInternal(label string, children []*Node) *Node {
	return &Node{Label: label, Children: children}
}

// Text joins the lexemes of every leaf under n, in order, separated by
// single spaces — the surface text the subtree spans.
func (n *Node) Text() string {
	var leaves []string
	collectLeaves(n, &leaves)
	out := ""
	for i, l := range leaves {
		if i > 0 {
			out += " "
		}
		out += l
	}
	return out
}

func collectLeaves(n *Node, out *[]string) {
	if n.IsLeaf() {
		*out = append(*out, n.Leaf.Lexeme)
		return
	}
	for _, c := range n.Children {
		collectLeaves(c, out)
	}
}

// Find returns every subtree (including n itself) labeled label, in
// pre-order.
func (n *Node) Find(label string) []*Node {
	var out []*Node
	var walk func(*Node)
	walk = func(cur *Node) {
		if cur.Label == label {
			out = append(out, cur)
		}
		for _, c := range cur.Children {
			walk(c)
		}
	}
	walk(n)
	return out
}

// FindAny returns every subtree (including n itself) labeled one of
// labels, in pre-order left-to-right document order.
func (n *Node) FindAny(labels ...string) []*Node {
	want := map[string]bool{}
	for _, l := range labels {
		want[l] = true
	}
	var out []*Node
	var walk func(*Node)
	walk = func(cur *Node) {
		if want[cur.Label] {
			out = append(out, cur)
		}
		for _, c := range cur.Children {
			walk(c)
		}
	}
	walk(n)
	return out
}

// FirstChild returns n's first child, or nil for a leaf or childless
// node.
func (n *Node) FirstChild() *Node {
	if len(n.Children) == 0 {
		return nil
	}
	return n.Children[0]
}
