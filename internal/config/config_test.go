package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefault_IsValid(t *testing.T) {
	r := Default()
	if err := r.Validate(); err != nil {
		t.Fatalf("default rules invalid: %v", err)
	}
	if r.SpawnColumn() != 4 {
		t.Errorf("expected spawn column 4, got %d", r.SpawnColumn())
	}
}

func TestParse_OverlaysDefaults(t *testing.T) {
	data := []byte(`
drop_interval: 1s
speedup:
  numerator: 1
  denominator: 2
hold: false
seed: 42
`)
	r, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if r.DropInterval != time.Second {
		t.Errorf("expected 1s drop interval, got %s", r.DropInterval)
	}
	if r.Speedup != (Speedup{1, 2}) {
		t.Errorf("unexpected speedup %+v", r.Speedup)
	}
	if r.HoldEnabled {
		t.Error("expected hold disabled")
	}
	if r.Seed != 42 {
		t.Errorf("expected seed 42, got %d", r.Seed)
	}
	if r.Width != 10 || r.Height != 20 || r.PointsPerRow != 10 {
		t.Errorf("unset keys should keep defaults, got %+v", r)
	}
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"tiny playfield", "width: 2"},
		{"spawn below floor", "spawn_row: 20"},
		{"spawn too low for a piece", "spawn_row: 17"},
		{"zero interval", "drop_interval: 0s"},
		{"min above interval", "min_drop_interval: 2s"},
		{"speedup above one", "speedup: {numerator: 3, denominator: 2}"},
		{"no points", "points_per_row: 0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			if !errors.Is(err, ErrInvalidRules) {
				t.Errorf("expected ErrInvalidRules, got %v", err)
			}
		})
	}
}

func TestParse_BadYAML(t *testing.T) {
	_, err := Parse([]byte("width: [1, 2"))
	if err == nil {
		t.Fatal("expected decode error")
	}
	if errors.Is(err, ErrInvalidRules) {
		t.Error("decode errors should not be reported as invalid rules")
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rules.yaml")
	if err := os.WriteFile(path, []byte("level_threshold: 50\n"), 0644); err != nil {
		t.Fatalf("failed to write rules file: %v", err)
	}

	r, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if r.LevelThreshold != 50 {
		t.Errorf("expected threshold 50, got %d", r.LevelThreshold)
	}

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestNextInterval(t *testing.T) {
	r := Default()

	if got := r.NextInterval(700 * time.Millisecond); got != 700*time.Millisecond*2/3 {
		t.Errorf("expected two thirds of 700ms, got %s", got)
	}
	if got := r.NextInterval(60 * time.Millisecond); got != r.MinDropInterval {
		t.Errorf("expected clamp to %s, got %s", r.MinDropInterval, got)
	}
}
