package core

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	BackendSQLite = "sqlite"
	BackendPebble = "pebble"

	// DefaultStoreName is the slot key for the message being edited.
	DefaultStoreName = "current-message"
)

// LogConfig controls logger construction.
type LogConfig struct {
	Level       string `mapstructure:"level"`
	File        string `mapstructure:"file"`
	Development bool   `mapstructure:"development"`
}

// Config holds project settings from embedg.yaml, EMBEDG_* and flags.
type Config struct {
	Backend   string    `mapstructure:"backend"`
	StoreName string    `mapstructure:"store_name"`
	Log       LogConfig `mapstructure:"log"`
}

// flagBindings maps config keys to persistent flag names.
var flagBindings = map[string]string{
	"backend":   "backend",
	"log.level": "log-level",
}

// LoadConfig resolves configuration for a project. flags may be nil.
func LoadConfig(project Project, flags *pflag.FlagSet) (Config, error) {
	v := viper.New()
	v.SetConfigName("embedg")
	v.SetConfigType("yaml")
	v.AddConfigPath(project.Dir())
	v.AddConfigPath(project.Root)
	v.SetEnvPrefix("EMBEDG")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("backend", BackendSQLite)
	v.SetDefault("store_name", DefaultStoreName)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", project.LogPath())
	v.SetDefault("log.development", false)

	if flags != nil {
		for key, name := range flagBindings {
			flag := flags.Lookup(name)
			if flag == nil {
				continue
			}
			if err := v.BindPFlag(key, flag); err != nil {
				return Config{}, fmt.Errorf("bind flag %s: %w", name, err)
			}
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}

	cfg.Backend = strings.ToLower(strings.TrimSpace(cfg.Backend))
	switch cfg.Backend {
	case BackendSQLite, BackendPebble:
	default:
		return Config{}, fmt.Errorf("unknown backend %q. Use sqlite or pebble", cfg.Backend)
	}
	if cfg.StoreName == "" {
		cfg.StoreName = DefaultStoreName
	}
	if cfg.Log.File != "" && cfg.Log.File != "stderr" && !filepath.IsAbs(cfg.Log.File) {
		cfg.Log.File = filepath.Join(project.Root, cfg.Log.File)
	}
	return cfg, nil
}
