package log

import "fmt"

// Config declaratively describes a logger. Zero values mean info-level text
// output on stderr.
type Config struct {
	Level  string `json:"level" yaml:"level"`
	Format string `json:"format" yaml:"format"`
}

// ApplyConfig builds a logger from cfg.
func ApplyConfig(cfg *Config) (Logger, error) {
	level := InfoLevel
	if cfg.Level != "" {
		var err error
		level, err = ParseLevel(cfg.Level)
		if err != nil {
			return nil, err
		}
	}
	var formatter Formatter
	switch cfg.Format {
	case "", "text":
		formatter = &TextFormatter{}
	case "json":
		formatter = &JSONFormatter{}
	default:
		return nil, fmt.Errorf("log: unknown format %q", cfg.Format)
	}
	return NewLogger(WithLevel(level), WithFormatter(formatter)), nil
}
