package logger

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNew_Modes(t *testing.T) {
	var dev, prod bytes.Buffer

	New(ModeDev, &dev).Debug("landed", "rows", 2)
	if !strings.Contains(dev.String(), "msg=landed") || !strings.Contains(dev.String(), "rows=2") {
		t.Errorf("unexpected dev output: %q", dev.String())
	}

	l := New(ModeProd, &prod)
	l.Debug("hidden")
	l.Info("game over", "score", 120)
	var rec map[string]any
	if err := json.Unmarshal(prod.Bytes(), &rec); err != nil {
		t.Fatalf("prod output is not one JSON record: %v (%q)", err, prod.String())
	}
	if rec["msg"] != "game over" || rec["score"] != float64(120) {
		t.Errorf("unexpected prod record: %v", rec)
	}
}

func TestOpenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "tetris.log")

	l, closer, err := OpenFile(path)
	if err != nil {
		t.Fatalf("OpenFile returned error: %v", err)
	}
	l.Debug("spawned", "kind", "T")
	if err := closer.Close(); err != nil {
		t.Fatalf("close failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}
	if !strings.Contains(string(data), "kind=T") {
		t.Errorf("log file missing record: %q", data)
	}
}
