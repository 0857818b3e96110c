package jsonlog

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

type logEntry struct {
	Level      string            `json:"level"`
	Time       string            `json:"time"`
	Message    string            `json:"message"`
	Properties map[string]string `json:"properties"`
	Trace      string            `json:"trace"`
}

func TestLoggerWritesJSONLines(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, LevelInfo)

	l.PrintInfo("server started", map[string]string{"addr": ":4000"})

	var entry logEntry
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("log output is not valid JSON: %v", err)
	}
	if entry.Level != "INFO" {
		t.Errorf("expected level INFO; got %s", entry.Level)
	}
	if entry.Message != "server started" {
		t.Errorf("expected message %q; got %q", "server started", entry.Message)
	}
	if entry.Properties["addr"] != ":4000" {
		t.Errorf("expected addr property %q; got %q", ":4000", entry.Properties["addr"])
	}
	if !strings.HasSuffix(buf.String(), "\n") {
		t.Error("expected log entry to end with a newline")
	}
}

func TestLoggerErrorIncludesTrace(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, LevelInfo)

	l.PrintError(errors.New("boom"), nil)

	var entry logEntry
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("log output is not valid JSON: %v", err)
	}
	if entry.Level != "ERROR" {
		t.Errorf("expected level ERROR; got %s", entry.Level)
	}
	if entry.Trace == "" {
		t.Error("expected a stack trace on ERROR entries")
	}
}

func TestLoggerMinLevelSuppressesEntries(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, LevelError)

	l.PrintInfo("should not appear", nil)
	if buf.Len() != 0 {
		t.Errorf("expected no output below the minimum level; got %q", buf.String())
	}

	n, err := l.print(LevelError, "should appear", nil)
	if err != nil {
		t.Fatal(err)
	}
	if n == 0 {
		t.Error("expected output at the minimum level")
	}
}

func TestLoggerWriteUsesErrorLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, LevelInfo)

	if _, err := l.Write([]byte("http: panic serving")); err != nil {
		t.Fatal(err)
	}
	var entry logEntry
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("log output is not valid JSON: %v", err)
	}
	if entry.Level != "ERROR" {
		t.Errorf("expected level ERROR; got %s", entry.Level)
	}
}
