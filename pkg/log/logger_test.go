package log

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(
		WithLevel(WarnLevel),
		WithOutput(NewWriterOutput(&buf)),
	)
	logger.Info("dropped")
	logger.Warn("kept")
	out := buf.String()
	if strings.Contains(out, "dropped") {
		t.Fatalf("info must be filtered at warn level: %q", out)
	}
	if !strings.Contains(out, "kept") {
		t.Fatalf("warn must pass: %q", out)
	}
}

func TestTextFormatIncludesFieldsAndComponent(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(WithOutput(NewWriterOutput(&buf))).
		WithComponent("store").
		With(F("backend", "file"))
	logger.Info("opened", F("path", "/tmp/c"))
	out := buf.String()
	for _, want := range []string{"INFO", "[store]", "opened", "backend=file", "path=/tmp/c"} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in %q", want, out)
		}
	}
}

func TestJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(
		WithFormatter(&JSONFormatter{}),
		WithOutput(NewWriterOutput(&buf)),
	)
	logger.Info("hello", F("n", 3))

	var obj map[string]any
	if err := json.Unmarshal(buf.Bytes(), &obj); err != nil {
		t.Fatalf("not valid JSON: %v (%q)", err, buf.String())
	}
	if obj["msg"] != "hello" || obj["level"] != "INFO" {
		t.Fatalf("unexpected object: %v", obj)
	}
	if obj["n"] != float64(3) {
		t.Fatalf("field lost: %v", obj)
	}
}

func TestParseLevel(t *testing.T) {
	if l, err := ParseLevel("debug"); err != nil || l != DebugLevel {
		t.Fatalf("debug: %v %v", l, err)
	}
	if l, err := ParseLevel(""); err != nil || l != InfoLevel {
		t.Fatalf("empty defaults to info: %v %v", l, err)
	}
	if _, err := ParseLevel("loud"); err == nil {
		t.Fatalf("unknown level must error")
	}
}

func TestFatalUsesExitHook(t *testing.T) {
	var buf bytes.Buffer
	code := -1
	l := &BaseLogger{
		level:     InfoLevel,
		formatter: &TextFormatter{},
		outputs:   []Output{NewWriterOutput(&buf)},
		exit:      func(c int) { code = c },
	}
	l.Fatal("boom")
	if code != 1 {
		t.Fatalf("exit code = %d", code)
	}
	if !strings.Contains(buf.String(), "FATAL") {
		t.Fatalf("fatal entry missing: %q", buf.String())
	}
}
