package grammar

import "testing"

func TestParseDefaultSource(t *testing.T) {
	g, err := Parse(DefaultSource())
	if err != nil {
		t.Fatalf("Parse(DefaultSource()) = %v", err)
	}
	if !g.IsNonterminal("address") {
		t.Fatal("expected address to be defined")
	}
	if prods := g.ProductionsFor("address"); len(prods) != 3 {
		t.Fatalf("expected 3 address alternatives, got %d", len(prods))
	}
}

func TestParseRejectsUnknownTerminal(t *testing.T) {
	_, err := Parse("address -> simple\nsimple -> STREET_TYP_S")
	ig, ok := err.(*InvalidGrammar)
	if !ok {
		t.Fatalf("expected *InvalidGrammar, got %v (%T)", err, err)
	}
	if ig.Symbol != "STREET_TYP_S" {
		t.Fatalf("unexpected symbol in error: %q", ig.Symbol)
	}
	if ig.DidYouMean != "STREET_TYPE_S" {
		t.Fatalf("expected did-you-mean STREET_TYPE_S, got %q", ig.DidYouMean)
	}
}

func TestParseAcceptsQuotedTerminals(t *testing.T) {
	g, err := Parse("address -> simple\nsimple -> 'WORD' 'NUM'")
	if err != nil {
		t.Fatalf("Parse() = %v", err)
	}
	prods := g.ProductionsFor("simple")
	if len(prods) != 1 || len(prods[0].RHS) != 2 {
		t.Fatalf("unexpected productions: %+v", prods)
	}
	if prods[0].RHS[0] != "WORD" || prods[0].RHS[1] != "NUM" {
		t.Fatalf("quotes not stripped from RHS: %+v", prods[0].RHS)
	}
}

func TestParseRejectsUnknownQuotedTerminal(t *testing.T) {
	_, err := Parse("address -> simple\nsimple -> 'STREET_TYP_S'")
	ig, ok := err.(*InvalidGrammar)
	if !ok {
		t.Fatalf("expected *InvalidGrammar, got %v (%T)", err, err)
	}
	if ig.Symbol != "STREET_TYP_S" {
		t.Fatalf("unexpected symbol in error: %q", ig.Symbol)
	}
	if ig.DidYouMean != "STREET_TYPE_S" {
		t.Fatalf("expected did-you-mean STREET_TYPE_S, got %q", ig.DidYouMean)
	}
}

func TestParseRejectsMissingStart(t *testing.T) {
	_, err := Parse("simple -> WORD")
	if _, ok := err.(*InvalidGrammar); !ok {
		t.Fatalf("expected *InvalidGrammar, got %v", err)
	}
}

func TestParseRejectsEmptyProduction(t *testing.T) {
	_, err := Parse("address -> simple\nsimple -> WORD |")
	if _, ok := err.(*InvalidGrammar); !ok {
		t.Fatalf("expected *InvalidGrammar, got %v", err)
	}
}
