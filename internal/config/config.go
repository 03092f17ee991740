package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Strategy names select which randomness strategy the generator uses.
const (
	StrategyDefault   = "default"
	StrategyRuntime   = "runtime_lexical"
	StrategyLocal     = "local_lexical"
	StrategyEnv       = "env_lexical"
	StrategyThreadEnv = "thread_env_lexical"
	StrategyShortEnv  = "short_env_lexical"
	StrategySLID      = "slid_lexical"
)

// Counter backend names for the file-scoped strategy.
const (
	BackendFile   = "file"
	BackendPebble = "pebble"
)

// Config is the top-level configuration loaded from file/env.
type Config struct {
	SkipIntegrityChecks bool   `json:"skipIntegrityChecks" yaml:"skipIntegrityChecks"`
	Strategy            string `json:"strategy" yaml:"strategy"`
	DataDir             string `json:"dataDir" yaml:"dataDir"`
	CounterBackend      string `json:"counterBackend" yaml:"counterBackend"`
	HTTPAddr            string `json:"httpAddr" yaml:"httpAddr"`
	LogLevel            string `json:"logLevel" yaml:"logLevel"`
	LogFormat           string `json:"logFormat" yaml:"logFormat"`
	Fsync               string `json:"fsync" yaml:"fsync"`
	FsyncIntervalMs     int    `json:"fsyncIntervalMs" yaml:"fsyncIntervalMs"`
}

// Default returns built-in defaults.
func Default() Config {
	return Config{
		Strategy:       StrategyDefault,
		CounterBackend: BackendFile,
		HTTPAddr:       ":8080",
		LogLevel:       "info",
		LogFormat:      "text",
		Fsync:          "always",
	}
}

// FsyncInterval returns the configured group-commit interval.
func (c Config) FsyncInterval() time.Duration {
	return time.Duration(c.FsyncIntervalMs) * time.Millisecond
}

// Validate rejects unknown strategy and backend names.
func (c Config) Validate() error {
	switch c.Strategy {
	case StrategyDefault, StrategyRuntime, StrategyLocal, StrategyEnv,
		StrategyThreadEnv, StrategyShortEnv, StrategySLID:
	default:
		return fmt.Errorf("config: unknown strategy %q", c.Strategy)
	}
	switch c.CounterBackend {
	case BackendFile, BackendPebble:
	default:
		return fmt.Errorf("config: unknown counter backend %q", c.CounterBackend)
	}
	switch c.Fsync {
	case "", "always", "interval", "never":
	default:
		return fmt.Errorf("config: unknown fsync mode %q", c.Fsync)
	}
	return nil
}

// Load reads configuration from a JSON or YAML file (by extension). If path
// is empty, returns defaults.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	cfg := Default()
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return Config{}, err
		}
	default:
		if err := json.Unmarshal(b, &cfg); err != nil {
			return Config{}, err
		}
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
