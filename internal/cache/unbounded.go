package cache

import (
	"sync"

	"github.com/address-parser/internal/token"
	"github.com/address-parser/internal/tree"
)

// Unbounded is a plain map guarded by a mutex: every distinct
// token-kind sequence ever seen stays cached for the process's
// lifetime. The default backend unless configuration selects
// "bounded".
type Unbounded struct {
	mu      sync.RWMutex
	entries map[string]*tree.Node
}

// NewUnbounded builds an empty Unbounded cache.
func NewUnbounded() *Unbounded {
	return &Unbounded{entries: map[string]*tree.Node{}}
}

func (c *Unbounded) Get(kinds []token.Kind) (*tree.Node, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.entries[Key(kinds)]
	return v, ok
}

func (c *Unbounded) Put(kinds []token.Kind, value *tree.Node) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[Key(kinds)] = value
}

func (c *Unbounded) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
