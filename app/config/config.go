// Package config loads the ambient settings that govern how the
// parser is wired up — grammar file, structure-cache backend, log
// level — never the parsing semantics themselves, which live entirely
// in the grammar.
package config

import (
	"errors"
	"io/fs"
	"strings"

	"github.com/spf13/viper"
)

// Cache configures the structure-cache backend.
type Cache struct {
	// Backend is "unbounded" (default) or "bounded".
	Backend string `mapstructure:"backend"`
	// Size is the LRU capacity when Backend is "bounded".
	Size int `mapstructure:"size"`
}

// Config is the full set of ambient settings.
type Config struct {
	// GrammarPath is a filesystem path to a .cfg grammar file. Empty
	// means use the grammar embedded in the module.
	GrammarPath string `mapstructure:"grammar_path"`
	Cache       Cache  `mapstructure:"cache"`
	// Env selects zap's development or production preset ("development",
	// "production").
	Env string `mapstructure:"env"`
	// LogLevel overrides the preset's default level ("debug", "info",
	// "warn", "error"); empty keeps the preset's own default.
	LogLevel string `mapstructure:"log_level"`
}

// Load reads settings from a YAML file at path (if it exists) layered
// under defaults, then applies environment-variable overrides prefixed
// ADDRESS_PARSER_ (e.g. ADDRESS_PARSER_CACHE_BACKEND=bounded).
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	v.SetDefault("grammar_path", "")
	v.SetDefault("cache.backend", "unbounded")
	v.SetDefault("cache.size", 10000)
	v.SetDefault("env", "development")
	v.SetDefault("log_level", "")

	v.SetEnvPrefix("address_parser")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// An explicit SetConfigFile path that does not exist surfaces as a
		// filesystem not-exist error rather than ConfigFileNotFoundError.
		_, notFound := err.(viper.ConfigFileNotFoundError)
		if !notFound && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
