package serverrun

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"

	cfgpkg "github.com/srccircumflex/ulid-tool/internal/config"
	httpserver "github.com/srccircumflex/ulid-tool/internal/server/http"
	idsvc "github.com/srccircumflex/ulid-tool/internal/services/ids"
	logpkg "github.com/srccircumflex/ulid-tool/pkg/log"
	"github.com/srccircumflex/ulid-tool/pkg/ulid"
)

func getenvDefault(key, def string) string {
	if v := getenv(key); v != "" {
		return v
	}
	return def
}

// overridable in tests
var getenv = func(key string) string { return os.Getenv(key) }

type Options struct {
	HTTPAddr string
	Config   cfgpkg.Config
}

// Run starts the HTTP server and blocks until ctx is cancelled. The
// file-scoped counter is flushed on shutdown.
func Run(ctx context.Context, opts Options) error {
	// Be robust to callers that don't pass a signal-aware context
	// or if signal delivery needs to be observed here. We layer a
	// local signal context over the provided one.
	sctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := ulid.Init(ulid.Options{SkipChecks: opts.Config.SkipIntegrityChecks}); err != nil {
		return err
	}

	// Build process-wide logger using env/ApplyConfig; defaults: level=info, format=text
	cfg := &logpkg.Config{
		Level:  getenvDefault("ULID_LOG_LEVEL", opts.Config.LogLevel),
		Format: getenvDefault("ULID_LOG_FORMAT", opts.Config.LogFormat),
	}
	procLogger, err := logpkg.ApplyConfig(cfg)
	if err != nil {
		// Fallback to a sane default
		lvl := logpkg.InfoLevel
		if l, e := logpkg.ParseLevel(cfg.Level); e == nil {
			lvl = l
		}
		procLogger = logpkg.NewLogger(logpkg.WithLevel(lvl), logpkg.WithFormatter(&logpkg.TextFormatter{}))
	}

	// Redirect stdlib logs (e.g., Pebble) to our logger
	logpkg.RedirectStdLog(procLogger)

	if opts.HTTPAddr == "" {
		opts.HTTPAddr = opts.Config.HTTPAddr
	}

	svc, err := idsvc.Open(opts.Config)
	if err != nil {
		return err
	}
	defer svc.Close()

	procLogger.Info("Starting ulid-tool server",
		logpkg.Str("http", opts.HTTPAddr),
		logpkg.Str("strategy", opts.Config.Strategy),
		logpkg.Str("counter_backend", opts.Config.CounterBackend),
		logpkg.Str("level", cfg.Level),
		logpkg.Str("format", cfg.Format),
	)

	hsrv := httpserver.New(svc, procLogger)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := hsrv.ListenAndServe(sctx, opts.HTTPAddr); err != nil && sctx.Err() == nil {
			procLogger.Error("http error", logpkg.Err(err))
		}
	}()

	<-sctx.Done()
	// Shut the server down before releasing the service so in-flight
	// handlers never observe a flushed counter store.
	hsrv.Close()
	wg.Wait()
	return nil
}
