// Command batch runs the parser over a file of test-case interchange
// objects (the same shape golden fixtures use) and reports mismatches
// against any expected fields each case carries.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"slices"

	"github.com/address-parser/addressparser"
	"github.com/address-parser/app/config"
	"github.com/address-parser/app/models"
	"github.com/address-parser/helpers/utils"

	"go.uber.org/zap"
)

type testCase struct {
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

func main() {
	configPath := flag.String("config", "config/parser.yaml", "path to the ambient config file")
	inputPath := flag.String("in", "", "path to a JSON file of test-case interchange objects")
	flag.Parse()

	if *inputPath == "" {
		fmt.Fprintln(os.Stderr, "usage: batch -in cases.json")
		os.Exit(1)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "loading config:", err)
		os.Exit(1)
	}
	logger, err := config.NewLogger(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, "building logger:", err)
		os.Exit(1)
	}
	defer logger.Sync()

	parser, err := addressparser.NewFromConfig(cfg, logger)
	if err != nil {
		logger.Error("failed to build parser", zap.Error(err))
		os.Exit(1)
	}

	raw, err := os.ReadFile(*inputPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "reading input:", err)
		os.Exit(1)
	}
	var cases []testCase
	if err := json.Unmarshal(raw, &cases); err != nil {
		fmt.Fprintln(os.Stderr, "parsing input:", err)
		os.Exit(1)
	}

	runID := utils.GenerateShortID()
	logger.Info("batch run starting", zap.String("run_id", runID), zap.Int("cases", len(cases)))

	mismatches := 0
	for i, c := range cases {
		got := parser.Parse(c.Address)
		if ok, reason := matches(c, got); !ok {
			mismatches++
			fmt.Printf("[%d] MISMATCH %q: %s\n", i, c.Address, reason)
			continue
		}
		fmt.Printf("[%d] ok %q\n", i, c.Address)
	}

	logger.Info("batch run finished", zap.String("run_id", runID), zap.Int("mismatches", mismatches))
	if mismatches > 0 {
		os.Exit(1)
	}
}

func matches(c testCase, got *models.AddressData) (bool, string) {
	if c.Type == nil {
		if got != nil {
			return false, fmt.Sprintf("expected nil, got type %q", got.Type)
		}
		return true, ""
	}
	if got == nil {
		return false, fmt.Sprintf("expected type %q, got nil", *c.Type)
	}
	if got.Type != *c.Type {
		return false, fmt.Sprintf("type = %q, want %q", got.Type, *c.Type)
	}
	if c.StreetNames != nil && !slices.Equal(got.StreetNames, c.StreetNames) {
		return false, fmt.Sprintf("street_names = %v, want %v", got.StreetNames, c.StreetNames)
	}
	if c.DoorNumber != nil {
		if got.DoorNumber == nil || got.DoorNumber.Value != c.DoorNumber.Value || got.DoorNumber.Unit != c.DoorNumber.Unit {
			return false, fmt.Sprintf("door_number = %+v, want %+v", got.DoorNumber, *c.DoorNumber)
		}
	}
	if c.Floor != "" && got.Floor != c.Floor {
		return false, fmt.Sprintf("floor = %q, want %q", got.Floor, c.Floor)
	}
	return true, ""
}
