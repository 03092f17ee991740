package log

import (
	"io"
	"os"
	"sync"
)

// ConsoleOutput writes formatted entries to a writer, stderr by default.
type ConsoleOutput struct {
	mu sync.Mutex
	w  io.Writer
}

// NewConsoleOutput returns an output writing to stderr.
func NewConsoleOutput() *ConsoleOutput { return &ConsoleOutput{w: os.Stderr} }

// NewWriterOutput returns an output writing to w.
func NewWriterOutput(w io.Writer) *ConsoleOutput { return &ConsoleOutput{w: w} }

// Write emits one formatted entry.
func (o *ConsoleOutput) Write(_ *Entry, formatted []byte) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	_, err := o.w.Write(formatted)
	return err
}

// Close is a no-op for console outputs.
func (o *ConsoleOutput) Close() error { return nil }
