package gesture

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/go-json-experiment/json"

	"gioui.org/unit"
)

// ErrInvalidConfig is wrapped by all validation errors.
var ErrInvalidConfig = errors.New("invalid gesture configuration")

// Config holds the thresholds that disambiguate gestures. Lengths are in the same units as event positions,
// usually pixels.
type Config struct {
	// DoubleTapTime is the window in which a second press makes a double tap. A single tap is only reported
	// once this window has passed.
	DoubleTapTime time.Duration
	// DoubleTapDistance is the distance a contact may drift and still be long pressed.
	DoubleTapDistance float32
	// LongPress is how long a contact has to be held still to be long pressed.
	LongPress time.Duration
	// VelocitySample is the interval at which the velocity of moves is sampled.
	VelocitySample time.Duration
	// SwipeDelay is how long after a move starts its velocity is checked for a swipe.
	SwipeDelay time.Duration
	// SwipeVelocity is the velocity, in length units per second divided by Density, above which a move
	// becomes a swipe.
	SwipeVelocity float32
	// WheelSensitivity is the scale reported per wheel step.
	WheelSensitivity float32
	// MoveSlop is the distance from its origin a contact has to exceed to start a move.
	MoveSlop float32
	// Density is the number of length units per inch.
	Density float32
}

func DefaultConfig() Config {
	return Config{
		DoubleTapTime:     250 * time.Millisecond,
		DoubleTapDistance: 20,
		LongPress:         400 * time.Millisecond,
		VelocitySample:    200 * time.Millisecond,
		SwipeDelay:        100 * time.Millisecond,
		SwipeVelocity:     10,
		WheelSensitivity:  1.1,
		MoveSlop:          0,
		Density:           160,
	}
}

// DensityFromMetric returns the number of pixels per inch for a Gio metric. Gio defines a dp as 1/160 of an
// inch.
func DensityFromMetric(m unit.Metric) float32 {
	if m.PxPerDp <= 0 {
		return 160
	}
	return 160 * m.PxPerDp
}

func (cfg Config) Validate() error {
	durations := []struct {
		name string
		d    time.Duration
	}{
		{"double tap time", cfg.DoubleTapTime},
		{"long press delay", cfg.LongPress},
		{"velocity sample interval", cfg.VelocitySample},
		{"swipe delay", cfg.SwipeDelay},
	}
	for _, d := range durations {
		if d.d <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %v", ErrInvalidConfig, d.name, d.d)
		}
	}
	if cfg.DoubleTapDistance < 0 {
		return fmt.Errorf("%w: double tap distance must not be negative, got %v", ErrInvalidConfig, cfg.DoubleTapDistance)
	}
	if cfg.MoveSlop < 0 {
		return fmt.Errorf("%w: move slop must not be negative, got %v", ErrInvalidConfig, cfg.MoveSlop)
	}
	if cfg.SwipeVelocity <= 0 {
		return fmt.Errorf("%w: swipe velocity must be positive, got %v", ErrInvalidConfig, cfg.SwipeVelocity)
	}
	if cfg.WheelSensitivity <= 0 {
		return fmt.Errorf("%w: wheel sensitivity must be positive, got %v", ErrInvalidConfig, cfg.WheelSensitivity)
	}
	if cfg.Density <= 0 {
		return fmt.Errorf("%w: density must be positive, got %v", ErrInvalidConfig, cfg.Density)
	}
	return nil
}

// configFile is the on-disk form of Config. Times are in seconds. Absent keys keep their defaults.
type configFile struct {
	DoubleTapTime     *float64 `json:"double_tap_time"`
	DoubleTapDistance *float32 `json:"double_tap_distance"`
	LongPress         *float64 `json:"long_press"`
	VelocitySample    *float64 `json:"velocity_sample"`
	SwipeDelay        *float64 `json:"swipe_delay"`
	SwipeVelocity     *float32 `json:"swipe_velocity"`
	WheelSensitivity  *float32 `json:"wheel_sensitivity"`
	MoveSlop          *float32 `json:"move_slop"`
	Density           *float32 `json:"density"`
}

// ParseConfig parses a JSON configuration and applies it on top of DefaultConfig.
func ParseConfig(data []byte) (Config, error) {
	var f configFile
	if err := json.Unmarshal(data, &f, json.RejectUnknownMembers(true)); err != nil {
		return Config{}, fmt.Errorf("couldn't parse gesture configuration: %w", err)
	}

	cfg := DefaultConfig()
	seconds := func(dst *time.Duration, src *float64) {
		if src != nil {
			*dst = time.Duration(*src * float64(time.Second))
		}
	}
	length := func(dst *float32, src *float32) {
		if src != nil {
			*dst = *src
		}
	}
	seconds(&cfg.DoubleTapTime, f.DoubleTapTime)
	seconds(&cfg.LongPress, f.LongPress)
	seconds(&cfg.VelocitySample, f.VelocitySample)
	seconds(&cfg.SwipeDelay, f.SwipeDelay)
	length(&cfg.DoubleTapDistance, f.DoubleTapDistance)
	length(&cfg.SwipeVelocity, f.SwipeVelocity)
	length(&cfg.WheelSensitivity, f.WheelSensitivity)
	length(&cfg.MoveSlop, f.MoveSlop)
	length(&cfg.Density, f.Density)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfig reads a JSON configuration file. See ParseConfig.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("couldn't load gesture configuration: %w", err)
	}
	return ParseConfig(data)
}
