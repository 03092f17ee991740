package log

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// TextFormatter renders entries as a human-readable line:
// time LEVEL [component] message key=value ...
type TextFormatter struct {
	// TimestampFormat overrides the default RFC3339 millisecond format.
	TimestampFormat string
}

// Format renders the entry.
func (f *TextFormatter) Format(entry *Entry) ([]byte, error) {
	layout := f.TimestampFormat
	if layout == "" {
		layout = "2006-01-02T15:04:05.000Z07:00"
	}
	var b strings.Builder
	b.WriteString(entry.Timestamp.Format(layout))
	b.WriteByte(' ')
	b.WriteString(entry.Level.String())
	if entry.Component != "" {
		b.WriteString(" [")
		b.WriteString(entry.Component)
		b.WriteByte(']')
	}
	b.WriteByte(' ')
	b.WriteString(entry.Message)
	for _, f := range entry.Fields {
		fmt.Fprintf(&b, " %s=%v", f.Key, f.Value)
	}
	b.WriteByte('\n')
	return []byte(b.String()), nil
}

// JSONFormatter renders entries as single-line JSON objects.
type JSONFormatter struct{}

// Format renders the entry.
func (f *JSONFormatter) Format(entry *Entry) ([]byte, error) {
	obj := map[string]any{
		"ts":    entry.Timestamp.Format(time.RFC3339Nano),
		"level": entry.Level.String(),
		"msg":   entry.Message,
	}
	if entry.Component != "" {
		obj["component"] = entry.Component
	}
	for _, f := range entry.Fields {
		if err, ok := f.Value.(error); ok {
			obj[f.Key] = err.Error()
			continue
		}
		obj[f.Key] = f.Value
	}
	b, err := json.Marshal(obj)
	if err != nil {
		return nil, err
	}
	return append(b, '\n'), nil
}
