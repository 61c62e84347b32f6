package navigator

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Default mode speeds in km/h: a typical campus walking pace and a
// typical campus cycling pace.
const (
	DefaultWalkingKmh = 5.0
	DefaultCyclingKmh = 15.0
)

// Mode is a named speed profile. It is an immutable value object: a
// session switches modes by replacing the whole value, never by
// mutating one in place.
type Mode struct {
	// Name identifies the mode ("Walking", "Cycling").
	Name string
	// SpeedKmh is the average travel speed in km/h. Always positive for
	// a valid mode.
	SpeedKmh float64
}

// TravelTime converts a distance in meters into minutes at the mode's
// average speed.
func (m Mode) TravelTime(meters float64) float64 {
	metersPerMinute := m.SpeedKmh * 1000 / 60

	return meters / metersPerMinute
}

// IsZero reports whether m is the unusable zero value.
func (m Mode) IsZero() bool { return m == Mode{} }

// Walking is the default pedestrian mode.
func Walking() Mode { return Mode{Name: "Walking", SpeedKmh: DefaultWalkingKmh} }

// Cycling is the bicycle mode.
func Cycling() Mode { return Mode{Name: "Cycling", SpeedKmh: DefaultCyclingKmh} }

// ModeConfig overrides the built-in mode speeds. The numeric constants
// are configuration, not contract: deployments with different campus
// terrain can tune them without touching code.
type ModeConfig struct {
	WalkingKmh float64 `yaml:"walking_kmh"`
	CyclingKmh float64 `yaml:"cycling_kmh"`
}

// DefaultModeConfig returns the documented default speed set.
func DefaultModeConfig() ModeConfig {
	return ModeConfig{WalkingKmh: DefaultWalkingKmh, CyclingKmh: DefaultCyclingKmh}
}

// LoadModeConfig reads a ModeConfig from a YAML file. Absent fields
// keep their defaults; non-positive speeds fail with ErrBadSpeed.
func LoadModeConfig(path string) (ModeConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return ModeConfig{}, fmt.Errorf("navigator: read mode config: %w", err)
	}

	cfg := DefaultModeConfig()
	if err = yaml.Unmarshal(raw, &cfg); err != nil {
		return ModeConfig{}, fmt.Errorf("navigator: parse mode config: %w", err)
	}
	if err = cfg.Validate(); err != nil {
		return ModeConfig{}, err
	}

	return cfg, nil
}

// Validate checks that both configured speeds are positive.
func (c ModeConfig) Validate() error {
	if c.WalkingKmh <= 0 {
		return fmt.Errorf("%w: walking %v km/h", ErrBadSpeed, c.WalkingKmh)
	}
	if c.CyclingKmh <= 0 {
		return fmt.Errorf("%w: cycling %v km/h", ErrBadSpeed, c.CyclingKmh)
	}

	return nil
}

// Walking returns the pedestrian mode at the configured speed.
func (c ModeConfig) Walking() Mode { return Mode{Name: "Walking", SpeedKmh: c.WalkingKmh} }

// Cycling returns the bicycle mode at the configured speed.
func (c ModeConfig) Cycling() Mode { return Mode{Name: "Cycling", SpeedKmh: c.CyclingKmh} }
