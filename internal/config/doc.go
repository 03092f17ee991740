// Package config provides loading and environment overlay for the ulid-tool
// runtime configuration. It exposes a Default() baseline, file loading for
// JSON and YAML, and a ULID_* environment overlay.
//
// Example:
//
//	cfg := config.Default()
//	if fileCfg, err := config.Load("/etc/ulid-tool.yaml"); err == nil {
//	    cfg = fileCfg
//	}
//	config.FromEnv(&cfg)
package config
