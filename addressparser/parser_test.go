package addressparser

import "testing"

func mustNewParser(t *testing.T) *Parser {
	t.Helper()
	p, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return p
}

func TestParseSimpleWithFloor(t *testing.T) {
	p := mustNewParser(t)
	got := p.Parse("Tucumán 1300 1° A")
	if got == nil {
		t.Fatal("expected a non-nil result")
	}
	if got.Type != "simple" {
		t.Errorf("Type = %q, want simple", got.Type)
	}
	if len(got.StreetNames) != 1 || got.StreetNames[0] != "Tucumán" {
		t.Errorf("StreetNames = %v", got.StreetNames)
	}
	if v, ok := got.NormalizedDoorNumberValue(); !ok || v != 1300 {
		t.Errorf("NormalizedDoorNumberValue() = (%v, %v), want (1300, true)", v, ok)
	}
}

func TestParseIntersection(t *testing.T) {
	p := mustNewParser(t)
	got := p.Parse("Corrientes y Salta")
	if got == nil || got.Type != "intersection" {
		t.Fatalf("got %+v, want type intersection", got)
	}
	if len(got.StreetNames) != 2 {
		t.Fatalf("StreetNames = %v", got.StreetNames)
	}
}

func TestParseBetweenWithDoorNumberOnFirstStreet(t *testing.T) {
	p := mustNewParser(t)
	got := p.Parse("Tucumán 1300 entre Corrientes y Salta")
	if got == nil || got.Type != "between" {
		t.Fatalf("got %+v, want type between", got)
	}
	if len(got.StreetNames) != 3 {
		t.Fatalf("StreetNames = %v", got.StreetNames)
	}
	if v, ok := got.NormalizedDoorNumberValue(); !ok || v != 1300 {
		t.Errorf("NormalizedDoorNumberValue() = (%v, %v)", v, ok)
	}
}

func TestParseBetweenWithDoorNumberOnLastStreet(t *testing.T) {
	p := mustNewParser(t)
	got := p.Parse("Tucumán e/ Corrientes y Salta 1000")
	if got == nil || got.Type != "between" {
		t.Fatalf("got %+v, want type between", got)
	}
	if v, ok := got.NormalizedDoorNumberValue(); !ok || v != 1000 {
		t.Errorf("NormalizedDoorNumberValue() = (%v, %v)", v, ok)
	}
}

func TestParseRouteWithKilometer(t *testing.T) {
	p := mustNewParser(t)
	got := p.Parse("Ruta 33 KM. 33")
	if got == nil {
		t.Fatal("expected a non-nil result")
	}
	if unit, ok := got.NormalizedDoorNumberUnit(); !ok || unit != "km" {
		t.Errorf("NormalizedDoorNumberUnit() = (%q, %v), want (km, true)", unit, ok)
	}
	if v, ok := got.NormalizedDoorNumberValue(); !ok || v != 33 {
		t.Errorf("NormalizedDoorNumberValue() = (%v, %v), want (33, true)", v, ok)
	}
}

func TestParseMissingNumber(t *testing.T) {
	p := mustNewParser(t)
	got := p.Parse("Leandro Alem S/N")
	if got == nil {
		t.Fatal("expected a non-nil result")
	}
	if len(got.StreetNames) != 1 || got.StreetNames[0] != "Leandro Alem" {
		t.Errorf("StreetNames = %v", got.StreetNames)
	}
	if _, ok := got.NormalizedDoorNumberValue(); ok {
		t.Error("expected NormalizedDoorNumberValue to report ok=false for S/N")
	}
}

func TestParseAmbiguousInputReturnsNil(t *testing.T) {
	p := mustNewParser(t)
	if got := p.Parse("Tucumán y Córdoba y Callao"); got != nil {
		t.Errorf("expected nil for a genuinely ambiguous address, got %+v", got)
	}
}

func TestParseEmptyInputReturnsNil(t *testing.T) {
	p := mustNewParser(t)
	if got := p.Parse(""); got != nil {
		t.Errorf("expected nil for empty input, got %+v", got)
	}
}

func TestStructureCacheReusesSharedShape(t *testing.T) {
	p := mustNewParser(t)
	first := p.Parse("Corrientes 1000")
	second := p.Parse("Tucumán 2000")
	if first == nil || second == nil {
		t.Fatal("expected both addresses to parse")
	}
	if got := p.CacheLen(); got != 1 {
		t.Fatalf("CacheLen() = %d, want 1 (same WORD NUM shape)", got)
	}
	if second.StreetNames[0] != "Tucumán" {
		t.Errorf("second.StreetNames = %v, want [Tucumán] (not reused from the first parse)", second.StreetNames)
	}
	if v, ok := second.NormalizedDoorNumberValue(); !ok || v != 2000 {
		t.Errorf("second door number = (%v, %v), want (2000, true)", v, ok)
	}

	p.Parse("Ruta 4")
	if got := p.CacheLen(); got != 2 {
		t.Fatalf("CacheLen() = %d, want 2 after a different shape", got)
	}
}

func TestStructureCacheCachesAmbiguousNilResults(t *testing.T) {
	p := mustNewParser(t)
	p.Parse("Tucumán y Córdoba y Callao")
	if got := p.CacheLen(); got != 1 {
		t.Fatalf("CacheLen() = %d, want 1 (ambiguous shape cached too)", got)
	}
}
