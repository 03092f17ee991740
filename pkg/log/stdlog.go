package log

import (
	"bytes"
	stdlog "log"
)

type stdLogWriter struct {
	logger Logger
}

func (w stdLogWriter) Write(p []byte) (int, error) {
	w.logger.Info(string(bytes.TrimRight(p, "\n")))
	return len(p), nil
}

// RedirectStdLog routes the standard library's default logger (used by some
// dependencies, e.g. Pebble) through logger at info level.
func RedirectStdLog(logger Logger) {
	stdlog.SetFlags(0)
	stdlog.SetOutput(stdLogWriter{logger: logger.WithComponent("stdlog")})
}
