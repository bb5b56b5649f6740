package addressparser

import (
	"os"

	"github.com/address-parser/app/config"
	"github.com/address-parser/internal/cache"

	"go.uber.org/zap"
)

// NewFromConfig builds a Parser wired per a resolved ambient Config:
// a custom grammar file if cfg.GrammarPath is set (the embedded
// default otherwise), and the bounded or unbounded cache backend
// cfg.Cache selects.
func NewFromConfig(cfg *config.Config, logger *zap.Logger) (*Parser, error) {
	opts := []Option{WithLogger(logger)}

	if cfg.GrammarPath != "" {
		b, err := os.ReadFile(cfg.GrammarPath)
		if err != nil {
			return nil, err
		}
		opts = append(opts, WithGrammarSource(string(b)))
	}

	switch cfg.Cache.Backend {
	case "bounded":
		bounded, err := cache.NewBounded(cfg.Cache.Size)
		if err != nil {
			return nil, err
		}
		opts = append(opts, WithCache(bounded))
	case "", "unbounded":
		// Parser defaults to cache.NewUnbounded(); nothing to add.
	default:
		logger.Warn("unknown cache backend, falling back to unbounded", zap.String("backend", cfg.Cache.Backend))
	}

	return New(opts...)
}
