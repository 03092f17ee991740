// Package log provides the structured logging used by the ulid-tool CLI and
// server. The core identifier package stays log-free; components with I/O
// (counter stores, the HTTP server) receive a Logger explicitly.
//
// Usage:
//
//	logger := log.NewLogger(
//	    log.WithLevel(log.InfoLevel),
//	    log.WithFormatter(&log.TextFormatter{}),
//	    log.WithOutput(log.NewConsoleOutput()),
//	)
//	logger.Info("counter store opened", log.F("backend", "pebble"))
package log
