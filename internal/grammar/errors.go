package grammar

import (
	"fmt"
	"sort"

	"github.com/agnivade/levenshtein"
)

// InvalidGrammar reports a structural defect found while validating a
// grammar: an undefined nonterminal, an unknown terminal name, or an
// empty production. It never inspects parsed address text — only the
// grammar's own closed set of symbol names — so it stays clear of any
// spell-correction concern.
type InvalidGrammar struct {
	Reason     string
	Symbol     string
	DidYouMean string
}

func (e *InvalidGrammar) Error() string {
	if e.DidYouMean != "" {
		return fmt.Sprintf("%s: %q (did you mean %q?)", e.Reason, e.Symbol, e.DidYouMean)
	}
	return fmt.Sprintf("%s: %q", e.Reason, e.Symbol)
}

// closestSymbol finds the candidate with the smallest Levenshtein
// distance to want, used only to make an InvalidGrammar error
// actionable for whoever is authoring the .cfg file.
func closestSymbol(want string, candidates []string) string {
	if len(candidates) == 0 {
		return ""
	}
	sorted := append([]string(nil), candidates...)
	sort.Strings(sorted)

	best := sorted[0]
	bestDist := levenshtein.ComputeDistance(want, best)
	for _, c := range sorted[1:] {
		d := levenshtein.ComputeDistance(want, c)
		if d < bestDist {
			bestDist = d
			best = c
		}
	}
	return best
}
