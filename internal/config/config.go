package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrInvalidRules is wrapped by every validation failure.
var ErrInvalidRules = errors.New("invalid rules")

// Speedup is the factor the drop interval is multiplied by on each level-up,
// kept as a fraction so intervals stay exact.
type Speedup struct {
	Numerator   int `yaml:"numerator"`
	Denominator int `yaml:"denominator"`
}

// Rules holds the tunable constants of a session.
type Rules struct {
	Width           int           `yaml:"width"`
	Height          int           `yaml:"height"`
	SpawnRow        int           `yaml:"spawn_row"`
	DropInterval    time.Duration `yaml:"drop_interval"`
	MinDropInterval time.Duration `yaml:"min_drop_interval"`
	Speedup         Speedup       `yaml:"speedup"`
	PointsPerRow    int           `yaml:"points_per_row"`
	LevelThreshold  int           `yaml:"level_threshold"`
	HoldEnabled     bool          `yaml:"hold"`
	Seed            uint64        `yaml:"seed"`
}

// Default returns the standard 10x20 rules.
func Default() Rules {
	return Rules{
		Width:           10,
		Height:          20,
		SpawnRow:        -1,
		DropInterval:    700 * time.Millisecond,
		MinDropInterval: 50 * time.Millisecond,
		Speedup:         Speedup{Numerator: 2, Denominator: 3},
		PointsPerRow:    10,
		LevelThreshold:  100,
		HoldEnabled:     true,
	}
}

// Parse decodes YAML on top of the defaults, so a file only needs the keys it
// changes, and validates the result.
func Parse(data []byte) (Rules, error) {
	r := Default()
	if err := yaml.Unmarshal(data, &r); err != nil {
		return Rules{}, fmt.Errorf("failed to decode rules: %w", err)
	}
	if err := r.Validate(); err != nil {
		return Rules{}, err
	}
	return r, nil
}

// Load reads and parses the rules file at path.
func Load(path string) (Rules, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Rules{}, fmt.Errorf("failed to read rules file %s: %w", path, err)
	}
	r, err := Parse(data)
	if err != nil {
		return Rules{}, fmt.Errorf("%s: %w", path, err)
	}
	return r, nil
}

// Validate checks the rules can drive a session.
func (r Rules) Validate() error {
	switch {
	case r.Width < 4 || r.Height < 4:
		return fmt.Errorf("%w: playfield %dx%d is smaller than a piece", ErrInvalidRules, r.Width, r.Height)
	case r.SpawnRow+4 > r.Height:
		return fmt.Errorf("%w: spawn row %d leaves no room for a piece", ErrInvalidRules, r.SpawnRow)
	case r.DropInterval <= 0 || r.MinDropInterval <= 0:
		return fmt.Errorf("%w: drop intervals must be positive", ErrInvalidRules)
	case r.MinDropInterval > r.DropInterval:
		return fmt.Errorf("%w: min drop interval %s exceeds drop interval %s", ErrInvalidRules, r.MinDropInterval, r.DropInterval)
	case r.Speedup.Numerator <= 0 || r.Speedup.Denominator <= 0 || r.Speedup.Numerator > r.Speedup.Denominator:
		return fmt.Errorf("%w: speedup %d/%d must be in (0, 1]", ErrInvalidRules, r.Speedup.Numerator, r.Speedup.Denominator)
	case r.PointsPerRow <= 0 || r.LevelThreshold <= 0:
		return fmt.Errorf("%w: points per row and level threshold must be positive", ErrInvalidRules)
	}
	return nil
}

// SpawnColumn is the anchor column new pieces appear at.
func (r Rules) SpawnColumn() int {
	return r.Width/2 - 1
}

// NextInterval applies one level's speedup to d, clamped to MinDropInterval.
func (r Rules) NextInterval(d time.Duration) time.Duration {
	next := d * time.Duration(r.Speedup.Numerator) / time.Duration(r.Speedup.Denominator)
	return max(next, r.MinDropInterval)
}
