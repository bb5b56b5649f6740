package cache

import (
	"testing"

	"github.com/address-parser/internal/token"
	"github.com/address-parser/internal/tree"
)

func TestUnboundedCachesNilResults(t *testing.T) {
	c := NewUnbounded()
	kinds := []token.Kind{token.Word, token.AndWord, token.Word}
	if _, ok := c.Get(kinds); ok {
		t.Fatal("expected a miss before any Put")
	}
	c.Put(kinds, nil)
	v, ok := c.Get(kinds)
	if !ok {
		t.Fatal("expected a hit after caching a nil result")
	}
	if v != nil {
		t.Fatalf("expected cached nil, got %v", v)
	}
	if c.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", c.Len())
	}
}

func TestUnboundedDistinguishesKindSequences(t *testing.T) {
	c := NewUnbounded()
	c.Put([]token.Kind{token.Word, token.Num}, tree.NewInternal("simple", nil))
	c.Put([]token.Kind{token.Word, token.Word, token.Num}, tree.NewInternal("simple", nil))
	if c.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", c.Len())
	}
}

func TestBoundedEvictsLeastRecentlyUsed(t *testing.T) {
	c, err := NewBounded(1)
	if err != nil {
		t.Fatalf("NewBounded: %v", err)
	}
	a := []token.Kind{token.Word}
	b := []token.Kind{token.Num}
	c.Put(a, tree.NewInternal("simple", nil))
	c.Put(b, tree.NewInternal("simple", nil))
	if _, ok := c.Get(a); ok {
		t.Error("expected a to be evicted once b was inserted past capacity 1")
	}
	if _, ok := c.Get(b); !ok {
		t.Error("expected b to still be cached")
	}
}
