package logging

import (
	"bytes"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

type testStringer string

func (s testStringer) String() string { return string(s) }

func TestInitAndLoggingToFile(t *testing.T) {
	tempDir := t.TempDir()
	logPath := filepath.Join(tempDir, "nested", "autodetect.log")

	SetQuiet(true)
	t.Cleanup(func() { SetQuiet(false) })
	if err := Init(logPath); err != nil {
		t.Fatalf("Init error: %v", err)
	}
	t.Cleanup(func() {
		_ = Close()
	})

	LogEvent("hello %s", "world")
	LogDecision("ollama", "llama3:8b", map[string]any{"family": "llama3"})
	_ = Close()

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	content := string(data)
	if !strings.Contains(content, "hello world") {
		t.Fatalf("expected LogEvent content, got: %s", content)
	}
	if !strings.Contains(content, "[DETECT] provider=ollama model=llama3:8b family=llama3") {
		t.Fatalf("expected LogDecision content, got: %s", content)
	}
}

func TestBuildDecisionMessageDefaults(t *testing.T) {
	msg := buildDecisionMessage(" ", "", map[string]any{
		"parallel": true,
		"edit":     nil,
		"caps":     map[string]any{"ok": true},
	})
	if !strings.HasPrefix(msg, "[DETECT] provider=unknown model=unknown") {
		t.Fatalf("expected defaults, got: %s", msg)
	}
	if !strings.HasSuffix(msg, `caps={"ok":true} edit=null parallel=true`) {
		t.Fatalf("expected sorted fields, got: %s", msg)
	}
}

func TestFormatValueVariants(t *testing.T) {
	if got := formatValue(nil); got != "null" {
		t.Fatalf("nil value: %s", got)
	}
	if got := formatValue(" "); got != `""` {
		t.Fatalf("empty string value: %s", got)
	}
	if got := formatValue([]byte("hi")); got != "hi" {
		t.Fatalf("byte value: %s", got)
	}
	if got := formatValue(testStringer("ok")); got != "ok" {
		t.Fatalf("stringer value: %s", got)
	}
}

func TestInitDiscard(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	if err := Init(""); err != nil {
		t.Fatalf("Init error: %v", err)
	}
	LogEvent("discard")
	if buf.Len() != 0 {
		t.Fatalf("expected log output discarded, got: %s", buf.String())
	}
}

func TestInitFailureDiscards(t *testing.T) {
	dir := t.TempDir()
	if err := Init(filepath.Join(dir, "first.log")); err != nil {
		t.Fatalf("Init error: %v", err)
	}
	t.Cleanup(func() { _ = Close() })

	blocker := filepath.Join(dir, "blocker")
	if err := os.WriteFile(blocker, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	if err := Init(filepath.Join(blocker, "nested", "autodetect.log")); err == nil {
		t.Fatal("expected error when the log directory cannot be created")
	}
	if log.Writer() != io.Discard {
		t.Fatalf("expected logger to discard after failed Init, got %T", log.Writer())
	}
}
