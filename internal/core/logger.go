package core

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// NewLogger builds a zap logger. Output goes to cfg.File, or stderr when the
// file is empty or "stderr".
func NewLogger(cfg LogConfig) (*zap.Logger, error) {
	zcfg := zap.NewProductionConfig()
	if cfg.Development {
		zcfg = zap.NewDevelopmentConfig()
	}

	if cfg.Level != "" {
		level, err := zap.ParseAtomicLevel(cfg.Level)
		if err != nil {
			return nil, fmt.Errorf("log level: %w", err)
		}
		zcfg.Level = level
	}

	output := "stderr"
	if cfg.File != "" && cfg.File != "stderr" {
		if err := os.MkdirAll(filepath.Dir(cfg.File), 0o755); err != nil {
			return nil, err
		}
		output = cfg.File
	}
	zcfg.OutputPaths = []string{output}
	zcfg.ErrorOutputPaths = []string{output}

	return zcfg.Build()
}
