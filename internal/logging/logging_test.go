package logging

import "testing"
import "bytes"
import "encoding/json"
import "log/slog"
import "strings"
import "time"

func TestParse(t *testing.T) {
	levels := map[string]Level{ "debug": LevelDebug, "INFO": LevelInfo, "": LevelInfo, "warning": LevelWarn, "Error": LevelError }
	for name, want := range levels {
		got, err := ParseLevel(name)
		if err != nil || got != want {
			t.Fatalf("ParseLevel(%q): expected %d, got %d (%v)", name, want, got, err)
		}
	}
	if _, err := ParseLevel("verbose"); err == nil {
		t.Fatal("expected error for unknown level")
	}

	if format, err := ParseFormat("JSON"); err != nil || format != FormatJSON {
		t.Fatalf("expected json format, got %d (%v)", format, err)
	}
	if _, err := ParseFormat("xml"); err == nil {
		t.Fatal("expected error for unknown format")
	}
}

func TestJSONOutput(t *testing.T) {
	var buffer bytes.Buffer
	logger := New(&buffer, LevelInfo, FormatJSON)
	logger.Debug("hidden")
	logger.Info("sweep done", "function", "sin", "max_ulp", 0.75)

	lines := strings.Split(strings.TrimSpace(buffer.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected a single line, got %q", buffer.String())
	}
	var entry map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil { t.Fatal(err) }
	if entry["msg"] != "sweep done" || entry["function"] != "sin" || entry["max_ulp"] != 0.75 {
		t.Fatalf("unexpected entry %v", entry)
	}
	if _, err := time.Parse(time.RFC3339, entry["time"].(string)); err != nil {
		t.Fatalf("expected RFC 3339 timestamp: %v", err)
	}
}

func TestTextOutputAndDefault(t *testing.T) {
	var buffer bytes.Buffer
	previous := slog.Default()
	defer slog.SetDefault(previous)

	Init(&buffer, LevelDebug, FormatText)
	slog.Debug("converted", "format", "Q7.8")
	if !strings.Contains(buffer.String(), "level=DEBUG") || !strings.Contains(buffer.String(), "format=Q7.8") {
		t.Fatalf("unexpected text output %q", buffer.String())
	}
}
