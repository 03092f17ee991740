package client

import (
	"fmt"
	"strconv"
	"time"

	cfgpkg "github.com/srccircumflex/ulid-tool/internal/config"
	"github.com/srccircumflex/ulid-tool/pkg/ulid"
	"github.com/spf13/cobra"
)

// configFromFlags assembles a Config from the shared generation flags.
func configFromFlags(cmd *cobra.Command) (cfgpkg.Config, error) {
	cfg := cfgpkg.Default()
	cfgpkg.FromEnv(&cfg)
	if v, _ := cmd.Flags().GetString("strategy"); v != "" {
		cfg.Strategy = v
	}
	if v, _ := cmd.Flags().GetString("data-dir"); v != "" {
		cfg.DataDir = v
	}
	if v, _ := cmd.Flags().GetString("counter-backend"); v != "" {
		cfg.CounterBackend = v
	}
	if err := cfg.Validate(); err != nil {
		return cfgpkg.Config{}, err
	}
	return cfg, nil
}

// addGenerateFlags registers the flags shared by commands that emit ids.
func addGenerateFlags(cmd *cobra.Command) {
	cmd.Flags().String("strategy", "", "Randomness strategy: default|runtime_lexical|local_lexical|env_lexical|thread_env_lexical|short_env_lexical")
	cmd.Flags().String("data-dir", "", "Data directory for local_lexical counter state (if not specified, uses OS-specific application data directory)")
	cmd.Flags().String("counter-backend", "", "Counter backend for local_lexical: file|pebble")
	cmd.Flags().String("format", "canonical", "Output format: canonical|hex|oct|bin|int|uuid")
}

// formatULID renders id in the requested representation.
func formatULID(id ulid.ULID, format string) (string, error) {
	switch format {
	case "", "canonical":
		return id.String(), nil
	case "hex":
		return id.Hex(), nil
	case "oct":
		return id.Oct(), nil
	case "bin":
		return id.Bin(), nil
	case "int":
		return id.Big().String(), nil
	case "uuid":
		return id.UUID().String(), nil
	}
	return "", fmt.Errorf("invalid --format; use canonical|hex|oct|bin|int|uuid")
}

// parseAt accepts an RFC3339 time or a unix epoch in milliseconds.
func parseAt(at string) (time.Time, error) {
	if ms, err := strconv.ParseInt(at, 10, 64); err == nil {
		return time.UnixMilli(ms), nil
	}
	t, err := time.Parse(time.RFC3339, at)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --at; use RFC3339 or unix epoch milliseconds")
	}
	return t, nil
}
