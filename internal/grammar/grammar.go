// Package grammar loads and validates the context-free grammar that
// drives the chart parser: a text format of `lhs -> alt1 | alt2 | ...`
// productions over the token package's terminal alphabet.
package grammar

import (
	"embed"
	"strings"
)

//go:embed grammars/address_ar.cfg
var embedded embed.FS

// DefaultSource returns the text of the grammar shipped with this
// module.
func DefaultSource() string {
	b, err := embedded.ReadFile("grammars/address_ar.cfg")
	if err != nil {
		// The embedded file is part of the build; its absence is a
		// packaging defect, not a runtime condition callers can act on.
		panic(err)
	}
	return string(b)
}

// StartSymbol is the nonterminal every complete parse must reduce to.
const StartSymbol = "address"

// Production is one alternative right-hand side for a nonterminal.
type Production struct {
	LHS string
	RHS []string
}

func (p Production) String() string {
	return p.LHS + " -> " + strings.Join(p.RHS, " ")
}

// Grammar is a validated context-free grammar: every nonterminal
// referenced on a right-hand side has at least one production, every
// terminal referenced is a known token kind, and every production has
// a nonempty right-hand side.
type Grammar struct {
	Start       string
	productions map[string][]Production
	nonterms    map[string]bool
}

// ProductionsFor returns the alternatives for a nonterminal, or nil if
// it has none.
func (g *Grammar) ProductionsFor(lhs string) []Production {
	return g.productions[lhs]
}

// IsNonterminal reports whether sym has at least one production.
func (g *Grammar) IsNonterminal(sym string) bool {
	return g.nonterms[sym]
}

// Nonterminals lists every nonterminal in declaration order-independent
// (map) form; used when building the chart parser, not on the parser's
// hot path.
func (g *Grammar) Nonterminals() []string {
	out := make([]string, 0, len(g.nonterms))
	for nt := range g.nonterms {
		out = append(out, nt)
	}
	return out
}
