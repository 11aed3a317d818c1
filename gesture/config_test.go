package gesture

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"gioui.org/unit"
)

func TestParseConfig(t *testing.T) {
	cfg, err := ParseConfig([]byte(`{"double_tap_time": 0.3, "long_press": 1, "move_slop": 4, "density": 320}`))
	if err != nil {
		t.Fatal(err)
	}
	want := DefaultConfig()
	want.DoubleTapTime = 300 * time.Millisecond
	want.LongPress = time.Second
	want.MoveSlop = 4
	want.Density = 320
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("unexpected config (-want +got):\n%s", diff)
	}

	cfg, err = ParseConfig([]byte(`{}`))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(DefaultConfig(), cfg); diff != "" {
		t.Errorf("empty config doesn't match defaults (-want +got):\n%s", diff)
	}
}

func TestParseConfigErrors(t *testing.T) {
	for _, tc := range []struct {
		label   string
		data    string
		invalid bool
	}{
		{"unknown key", `{"double_tap_tme": 0.3}`, false},
		{"syntax", `{"double_tap_time": }`, false},
		{"wrong type", `{"density": "high"}`, false},
		{"zero duration", `{"swipe_delay": 0}`, true},
		{"negative slop", `{"move_slop": -1}`, true},
		{"zero density", `{"density": 0}`, true},
	} {
		t.Run(tc.label, func(t *testing.T) {
			_, err := ParseConfig([]byte(tc.data))
			if err == nil {
				t.Fatal("expected error")
			}
			if got := errors.Is(err, ErrInvalidConfig); got != tc.invalid {
				t.Errorf("errors.Is(err, ErrInvalidConfig) = %t, want %t: %v", got, tc.invalid, err)
			}
		})
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gestures.json")
	if err := os.WriteFile(path, []byte(`{"wheel_sensitivity": 1.5}`), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.WheelSensitivity != 1.5 {
		t.Errorf("got wheel sensitivity %v, want 1.5", cfg.WheelSensitivity)
	}

	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.json")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("got %v, want an error wrapping os.ErrNotExist", err)
	}
}

func TestDefaultConfigValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatal(err)
	}
}

func TestDensityFromMetric(t *testing.T) {
	if got := DensityFromMetric(unit.Metric{PxPerDp: 2}); got != 320 {
		t.Errorf("got %v, want 320", got)
	}
	if got := DensityFromMetric(unit.Metric{}); got != 160 {
		t.Errorf("got %v for zero metric, want 160", got)
	}
}
