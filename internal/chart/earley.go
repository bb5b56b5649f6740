// Package chart implements an Earley chart parser over the address
// grammar: given a token-kind sequence it enumerates every parse tree
// the grammar admits, doing no pruning or precedence resolution of its
// own — disambiguation is the tree package's job, not this one's.
package chart

import (
	"github.com/address-parser/internal/grammar"
	"github.com/address-parser/internal/token"
	"github.com/address-parser/internal/tree"
)

type rule struct {
	lhs string
	rhs []string
}

// Parser recognizes and parses token sequences against a fixed
// grammar. A Parser is read-only after construction and safe for
// concurrent use by multiple goroutines, since Parse allocates all of
// its working state locally.
type Parser struct {
	start string
	rules []rule
	byLHS map[string][]int
}

// New builds a chart parser for g. g is assumed already validated by
// the grammar package.
func New(g *grammar.Grammar) *Parser {
	p := &Parser{start: g.Start, byLHS: map[string][]int{}}
	for _, nt := range g.Nonterminals() {
		for _, prod := range g.ProductionsFor(nt) {
			idx := len(p.rules)
			p.rules = append(p.rules, rule{lhs: prod.LHS, rhs: append([]string(nil), prod.RHS...)})
			p.byLHS[prod.LHS] = append(p.byLHS[prod.LHS], idx)
		}
	}
	return p
}

// item is an Earley state: rule `ruleIdx`, dot position `dot` within
// its right-hand side, recognized starting at position `origin`.
type item struct {
	ruleIdx int
	dot     int
	origin  int
}

func (p *Parser) atDot(it item) (string, bool) {
	r := p.rules[it.ruleIdx]
	if it.dot >= len(r.rhs) {
		return "", false
	}
	return r.rhs[it.dot], true
}

func (p *Parser) isNonterminal(sym string) bool {
	_, ok := p.byLHS[sym]
	return ok
}

// completion records that nonterminal `sym` was recognized spanning
// [origin, end).
type completion struct {
	sym    string
	origin int
}

// Parse enumerates every parse tree of tokens rooted at the grammar's
// start symbol. It returns nil if the token-kind sequence is not in
// the language (no tree at all) — ambiguity, if any, is left entirely
// to the caller to resolve.
func (p *Parser) Parse(tokens []token.Token) []*tree.Node {
	n := len(tokens)
	sets := make([]map[item]bool, n+1)
	order := make([][]item, n+1)
	completed := make([]map[completion]bool, n+1)
	for i := range sets {
		sets[i] = map[item]bool{}
		completed[i] = map[completion]bool{}
	}

	add := func(pos int, it item) {
		if !sets[pos][it] {
			sets[pos][it] = true
			order[pos] = append(order[pos], it)
		}
	}

	for _, idx := range p.byLHS[p.start] {
		add(0, item{ruleIdx: idx, dot: 0, origin: 0})
	}

	for i := 0; i <= n; i++ {
		for k := 0; k < len(order[i]); k++ {
			it := order[i][k]
			sym, hasMore := p.atDot(it)
			if !hasMore {
				lhs := p.rules[it.ruleIdx].lhs
				completed[i][completion{sym: lhs, origin: it.origin}] = true
				for _, waiting := range order[it.origin] {
					wSym, ok := p.atDot(waiting)
					if ok && wSym == lhs {
						add(i, item{ruleIdx: waiting.ruleIdx, dot: waiting.dot + 1, origin: waiting.origin})
					}
				}
				continue
			}
			if p.isNonterminal(sym) {
				for _, idx := range p.byLHS[sym] {
					add(i, item{ruleIdx: idx, dot: 0, origin: i})
				}
				continue
			}
			if i < n && string(tokens[i].Kind) == sym {
				add(i+1, item{ruleIdx: it.ruleIdx, dot: it.dot + 1, origin: it.origin})
			}
		}
	}

	if !completed[n][completion{sym: p.start, origin: 0}] {
		return nil
	}

	f := &forest{tokens: tokens, completed: completed, byLHS: p.byLHS, rules: p.rules, memo: map[key][]*tree.Node{}}
	return f.trees(p.start, 0, n)
}
