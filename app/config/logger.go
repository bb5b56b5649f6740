package config

import "go.uber.org/zap"

// NewLogger builds a *zap.Logger from the resolved Config: the
// production preset for cfg.Env == "production", the development
// preset otherwise, with LogLevel overriding the preset's default when
// set.
func NewLogger(cfg *Config) (*zap.Logger, error) {
	var zcfg zap.Config
	if cfg.Env == "production" {
		zcfg = zap.NewProductionConfig()
	} else {
		zcfg = zap.NewDevelopmentConfig()
	}

	if cfg.LogLevel != "" {
		level, err := zap.ParseAtomicLevel(cfg.LogLevel)
		if err != nil {
			return nil, err
		}
		zcfg.Level = level
	}

	return zcfg.Build()
}
