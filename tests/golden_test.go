// Package tests runs the golden fixture batches in golden/*.json
// against the public parser, in the test-case interchange format.
package tests

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/address-parser/addressparser"
	"github.com/address-parser/app/models"
)

// goldenCase mirrors one object of the test-case interchange format:
// address and type are required, the rest default to their null/empty
// equivalents. _comment is carried but never asserted on.
type goldenCase struct {
	Comment     string   `json:"_comment,omitempty"`
	Address     string   `json:"address"`
	Type        *string  `json:"type"`
	StreetNames []string `json:"street_names,omitempty"`
	DoorNumber  *struct {
		Value string `json:"value"`
		Unit  string `json:"unit,omitempty"`
	} `json:"door_number,omitempty"`
	Floor string `json:"floor,omitempty"`
}

func TestGoldenFixtures(t *testing.T) {
	p, err := addressparser.New()
	if err != nil {
		t.Fatalf("addressparser.New: %v", err)
	}

	goldenDir := "golden"
	entries, err := os.ReadDir(goldenDir)
	if err != nil {
		t.Fatalf("reading %s: %v", goldenDir, err)
	}

	for _, entry := range entries {
		if filepath.Ext(entry.Name()) != ".json" {
			continue
		}
		t.Run(entry.Name(), func(t *testing.T) {
			runGoldenFile(t, p, filepath.Join(goldenDir, entry.Name()))
		})
	}
}

func runGoldenFile(t *testing.T, p *addressparser.Parser, path string) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}

	var cases []goldenCase
	if err := json.Unmarshal(data, &cases); err != nil {
		t.Fatalf("parsing %s: %v", path, err)
	}

	for i, c := range cases {
		c := c
		t.Run(caseName(i, c), func(t *testing.T) {
			assertGoldenCase(t, p, c)
		})
	}
}

func caseName(i int, c goldenCase) string {
	if c.Comment != "" {
		return c.Comment
	}
	return c.Address
}

func assertGoldenCase(t *testing.T, p *addressparser.Parser, c goldenCase) {
	t.Helper()
	got := p.Parse(c.Address)

	if c.Type == nil {
		if got != nil {
			t.Fatalf("Parse(%q) = %+v, want nil", c.Address, got)
		}
		return
	}

	if got == nil {
		t.Fatalf("Parse(%q) = nil, want type %q", c.Address, *c.Type)
	}
	if got.Type != *c.Type {
		t.Errorf("Parse(%q).Type = %q, want %q", c.Address, got.Type, *c.Type)
	}
	if !equalStrings(got.StreetNames, c.StreetNames) {
		t.Errorf("Parse(%q).StreetNames = %v, want %v", c.Address, got.StreetNames, c.StreetNames)
	}
	assertDoorNumber(t, c.Address, got.DoorNumber, c.DoorNumber)
	if got.Floor != c.Floor {
		t.Errorf("Parse(%q).Floor = %q, want %q", c.Address, got.Floor, c.Floor)
	}
}

func assertDoorNumber(t *testing.T, address string, got *models.DoorNumber, want *struct {
	Value string `json:"value"`
	Unit  string `json:"unit,omitempty"`
}) {
	t.Helper()
	if want == nil {
		if got != nil {
			t.Errorf("Parse(%q).DoorNumber = %+v, want nil", address, got)
		}
		return
	}
	if got == nil {
		t.Errorf("Parse(%q).DoorNumber = nil, want %+v", address, *want)
		return
	}
	if got.Value != want.Value || got.Unit != want.Unit {
		t.Errorf("Parse(%q).DoorNumber = %+v, want %+v", address, *got, *want)
	}
}

func equalStrings(got, want []string) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}
