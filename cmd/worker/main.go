// Command worker fans a stream of addresses (one per line on stdin)
// out across a pool of goroutines, all sharing one Parser. Safe
// because the parser is read-only after construction and its
// structure cache is internally synchronized (see internal/cache) —
// concurrent Parse calls are observationally equivalent to some serial
// order.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"sync"
	"syscall"

	"github.com/address-parser/addressparser"
	"github.com/address-parser/app/config"
	"github.com/address-parser/helpers/utils"

	"go.uber.org/zap"
)

type job struct {
	line    int
	address string
}

type result struct {
	line int
	data map[string]any
}

func main() {
	configPath := flag.String("config", "config/parser.yaml", "path to the ambient config file")
	workers := flag.Int("workers", runtime.NumCPU(), "number of parsing goroutines")
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

	runID := utils.GenerateShortID()
	logger.Info("worker pool starting", zap.String("run_id", runID), zap.Int("workers", *workers))

	jobs := make(chan job)
	results := make(chan result)

	var wg sync.WaitGroup
	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				data := parser.Parse(j.address)
				if data == nil {
					results <- result{line: j.line, data: nil}
					continue
				}
				results <- result{line: j.line, data: data.ToMap()}
			}
		}()
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-quit
		logger.Info("worker pool interrupted", zap.String("run_id", runID))
		os.Exit(1)
	}()

	go func() {
		scanner := bufio.NewScanner(os.Stdin)
		for i := 0; scanner.Scan(); i++ {
			jobs <- job{line: i, address: scanner.Text()}
		}
		close(jobs)
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	for r := range results {
		if r.data == nil {
			fmt.Printf("%d\tinvalid address\n", r.line)
			continue
		}
		fmt.Printf("%d\t%v\n", r.line, r.data)
	}

	logger.Info("worker pool finished", zap.String("run_id", runID), zap.Int("cache_entries", parser.CacheLen()))
}
