// Package cache stores parse results keyed by token-kind sequence, so
// that two addresses with the same grammatical shape (e.g. "Corrientes
// 1000" and "Tucumán 2000", both WORD NUM) reuse one parse instead of
// re-running the chart parser. A cached entry may legitimately be nil
// — an unparseable or ambiguous kind-sequence is cached as "no result"
// just as eagerly as a successful parse.
package cache

import (
	"strings"

	"github.com/address-parser/internal/token"
	"github.com/address-parser/internal/tree"
)

// Cache maps a token-kind sequence to a previously disambiguated
// result (or to a cached "no result").
type Cache interface {
	Get(kinds []token.Kind) (*tree.Node, bool)
	Put(kinds []token.Kind, value *tree.Node)
	Len() int
}

// Key encodes a kind sequence into the string map/LRU backends index
// on; kinds never contain the separator byte, so this is collision-free.
func Key(kinds []token.Kind) string {
	strs := make([]string, len(kinds))
	for i, k := range kinds {
		strs[i] = string(k)
	}
	return strings.Join(strs, "\x1f")
}
