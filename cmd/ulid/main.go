package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	clientcmd "github.com/srccircumflex/ulid-tool/internal/cmd/client"
	serverrun "github.com/srccircumflex/ulid-tool/internal/cmd/server"
	cfgpkg "github.com/srccircumflex/ulid-tool/internal/config"
	logpkg "github.com/srccircumflex/ulid-tool/pkg/log"
	"github.com/spf13/cobra"
)

func main() {
	// initialize logger for CLI
	// Respect ULID_LOG_LEVEL for both CLI and server start output
	level := os.Getenv("ULID_LOG_LEVEL")
	parsed, err := logpkg.ParseLevel(level)
	if err != nil || level == "" {
		parsed = logpkg.InfoLevel
	}
	logger := logpkg.NewLogger(
		logpkg.WithLevel(parsed),
		logpkg.WithFormatter(&logpkg.TextFormatter{}),
		logpkg.WithOutput(logpkg.NewConsoleOutput()),
	)

	// Redirect standard library logs (used by Pebble) to our logger
	logpkg.RedirectStdLog(logger)

	rootCmd := &cobra.Command{
		Use:   "ulid",
		Short: "Sortable identifier toolkit",
		Long:  "ulid generates, inspects and serves lexically sortable identifiers. This CLI manages the server and local operations.",
	}

	// server start
	serverCmd := &cobra.Command{Use: "server", Short: "Server commands"}
	serverStartCmd := &cobra.Command{
		Use:     "start",
		Short:   "Start the identifier HTTP server",
		Aliases: []string{"run", "serve"},
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			httpAddr, _ := cmd.Flags().GetString("http")
			dataDir, _ := cmd.Flags().GetString("data-dir")
			strategy, _ := cmd.Flags().GetString("strategy")
			counterBackend, _ := cmd.Flags().GetString("counter-backend")
			fsyncMode, _ := cmd.Flags().GetString("fsync")
			fsyncIntervalMs, _ := cmd.Flags().GetInt("fsync-interval-ms")
			logLevel, _ := cmd.Flags().GetString("log-level")
			logFormat, _ := cmd.Flags().GetString("log-format")
			skipChecks, _ := cmd.Flags().GetBool("skip-integrity-checks")

			cfg, err := cfgpkg.Load(configPath)
			if err != nil {
				return err
			}
			cfgpkg.FromEnv(&cfg)
			if dataDir != "" {
				cfg.DataDir = dataDir
			}
			if strategy != "" {
				cfg.Strategy = strategy
			}
			if counterBackend != "" {
				cfg.CounterBackend = counterBackend
			}
			if fsyncMode != "" {
				cfg.Fsync = fsyncMode
			}
			if fsyncIntervalMs > 0 {
				cfg.FsyncIntervalMs = fsyncIntervalMs
			}
			if skipChecks {
				cfg.SkipIntegrityChecks = true
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			if logLevel != "" {
				_ = os.Setenv("ULID_LOG_LEVEL", logLevel)
			}
			if logFormat != "" {
				_ = os.Setenv("ULID_LOG_FORMAT", logFormat)
			}

			ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer cancel()

			if err := serverrun.Run(ctx, serverrun.Options{
				HTTPAddr: httpAddr,
				Config:   cfg,
			}); err != nil {
				return fmt.Errorf("server error: %w", err)
			}
			return nil
		},
	}
	serverStartCmd.Flags().String("config", "", "Config file (JSON or YAML)")
	serverStartCmd.Flags().String("http", "", "HTTP listen address (default :8080)")
	serverStartCmd.Flags().String("data-dir", "", "Data directory (if not specified, uses OS-specific application data directory)")
	serverStartCmd.Flags().String("strategy", "", "Randomness strategy (default: fresh entropy per id)")
	serverStartCmd.Flags().String("counter-backend", "", "Counter backend for local_lexical: file|pebble")
	serverStartCmd.Flags().String("fsync", "", "Fsync mode: always|interval|never")
	serverStartCmd.Flags().Int("fsync-interval-ms", 0, "When --fsync=interval, group-commit window in ms (default 5)")
	serverStartCmd.Flags().String("log-level", os.Getenv("ULID_LOG_LEVEL"), "Log level: debug|info|warn|error")
	serverStartCmd.Flags().String("log-format", os.Getenv("ULID_LOG_FORMAT"), "Log format: text|json (default text)")
	serverStartCmd.Flags().Bool("skip-integrity-checks", false, "Skip the startup arithmetic/byte-order checks")
	serverCmd.AddCommand(serverStartCmd)
	rootCmd.AddCommand(serverCmd)

	// local operations
	rootCmd.AddCommand(clientcmd.NewNewCommand())
	rootCmd.AddCommand(clientcmd.NewInspectCommand())
	rootCmd.AddCommand(clientcmd.NewSeqCommand())
	rootCmd.AddCommand(clientcmd.NewVerifyCommand())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
