package cache

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/address-parser/internal/token"
	"github.com/address-parser/internal/tree"
)

// Bounded is an LRU-evicting cache backend for deployments that want
// to put a ceiling on structure-cache memory, used when configuration
// sets the cache backend to "bounded".
type Bounded struct {
	lru *lru.Cache[string, *tree.Node]
}

// NewBounded builds a Bounded cache holding at most size entries.
func NewBounded(size int) (*Bounded, error) {
	l, err := lru.New[string, *tree.Node](size)
	if err != nil {
		return nil, err
	}
	return &Bounded{lru: l}, nil
}

func (c *Bounded) Get(kinds []token.Kind) (*tree.Node, bool) {
	return c.lru.Get(Key(kinds))
}

func (c *Bounded) Put(kinds []token.Kind, value *tree.Node) {
	c.lru.Add(Key(kinds), value)
}

func (c *Bounded) Len() int {
	return c.lru.Len()
}
