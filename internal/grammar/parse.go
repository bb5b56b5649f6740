package grammar

import (
	"fmt"
	"strings"

	"github.com/address-parser/internal/token"
)

// Parse parses grammar source text into a validated Grammar. It
// rejects empty productions, nonterminals referenced but never
// defined, unknown terminal names, and a start symbol other than
// "address" — each as an *InvalidGrammar. Unknown-symbol and
// missing-start errors carry a did-you-mean suggestion drawn from the
// grammar's own symbol set; syntax and empty-production errors do not.
func Parse(source string) (*Grammar, error) {
	productions := map[string][]Production{}
	order := []string{}
	current := ""

	for lineNo, rawLine := range strings.Split(source, "\n") {
		line := stripComment(rawLine)
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "|") && current != "" {
			// A line opening with "|" adds alternatives to the previous
			// production.
			line = current + " -> " + line[1:]
		}
		lhs, rhsText, ok := strings.Cut(line, "->")
		if !ok {
			return nil, &InvalidGrammar{Reason: fmt.Sprintf("line %d: missing '->'", lineNo+1), Symbol: line}
		}
		lhs = strings.TrimSpace(lhs)
		if lhs == "" {
			return nil, &InvalidGrammar{Reason: fmt.Sprintf("line %d: missing left-hand side", lineNo+1), Symbol: line}
		}
		if _, seen := productions[lhs]; !seen {
			order = append(order, lhs)
		}
		current = lhs
		for _, alt := range strings.Split(rhsText, "|") {
			fields := strings.Fields(alt)
			if len(fields) == 0 {
				return nil, &InvalidGrammar{Reason: "empty production", Symbol: lhs}
			}
			rhs := make([]string, len(fields))
			for i, f := range fields {
				sym, quoted := unquoteTerminal(f)
				if quoted && !token.IsKnown(token.Kind(sym)) {
					return nil, &InvalidGrammar{
						Reason:     fmt.Sprintf("line %d: unknown terminal", lineNo+1),
						Symbol:     sym,
						DidYouMean: closestSymbol(sym, candidateSymbols(nil)),
					}
				}
				rhs[i] = sym
			}
			productions[lhs] = append(productions[lhs], Production{LHS: lhs, RHS: rhs})
		}
	}

	nonterms := map[string]bool{}
	for _, lhs := range order {
		nonterms[lhs] = true
	}

	g := &Grammar{Start: StartSymbol, productions: productions, nonterms: nonterms}

	if !nonterms[StartSymbol] {
		return nil, &InvalidGrammar{
			Reason:     "start symbol not defined",
			Symbol:     StartSymbol,
			DidYouMean: closestSymbol(StartSymbol, order),
		}
	}

	for _, lhs := range order {
		for _, p := range productions[lhs] {
			for _, sym := range p.RHS {
				if token.IsKnown(token.Kind(sym)) {
					continue
				}
				if nonterms[sym] {
					continue
				}
				return nil, &InvalidGrammar{
					Reason:     "unknown symbol",
					Symbol:     sym,
					DidYouMean: closestSymbol(sym, candidateSymbols(order)),
				}
			}
		}
	}

	return g, nil
}

func candidateSymbols(nonterms []string) []string {
	out := make([]string, 0, len(nonterms)+len(token.Kinds))
	out = append(out, nonterms...)
	for _, k := range token.Kinds {
		out = append(out, string(k))
	}
	return out
}

// unquoteTerminal strips a symbol's surrounding single quotes, if any
// ('NUM' -> NUM), per the grammar file format's documented convention
// that terminals are single-quoted kind names and nonterminals are
// bare identifiers. A bare identifier is returned unchanged, quoted=false,
// since it may legitimately name either a terminal or a nonterminal —
// the unquoted .cfg convention this module ships its own grammar in.
func unquoteTerminal(sym string) (name string, quoted bool) {
	if len(sym) >= 2 && strings.HasPrefix(sym, "'") && strings.HasSuffix(sym, "'") {
		return sym[1 : len(sym)-1], true
	}
	return sym, false
}

func stripComment(line string) string {
	if i := strings.IndexByte(line, '#'); i >= 0 {
		return line[:i]
	}
	return line
}
