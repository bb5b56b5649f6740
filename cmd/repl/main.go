// Command repl is an interactive read-evaluate loop for trying
// addresses: one per line in, its parsed AddressData (or "invalid
// address") out.
package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/address-parser/addressparser"
	"github.com/address-parser/app/config"

	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", "config/parser.yaml", "path to the ambient config file")
	flag.Parse()

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
	logger.Info("repl ready")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		address := scanner.Text()
		if address == "" {
			break
		}

		data := parser.Parse(address)
		if data == nil {
			fmt.Println("invalid address")
			continue
		}

		out, err := json.MarshalIndent(data.ToMap(), "", "    ")
		if err != nil {
			logger.Error("failed to encode result", zap.Error(err))
			continue
		}
		fmt.Println(string(out))
	}
	fmt.Println()
}
