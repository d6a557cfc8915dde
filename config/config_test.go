package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") error: %v", err)
	}

	if cfg.Screen.Width != 640 || cfg.Screen.Height != 640 {
		t.Errorf("screen = %dx%d, want 640x640", cfg.Screen.Width, cfg.Screen.Height)
	}
	if cfg.Derived.GravityDivisor != 7500 {
		t.Errorf("gravity divisor = %v, want 7500", cfg.Derived.GravityDivisor)
	}
	if cfg.Derived.VelocityDivisor != 100 {
		t.Errorf("velocity divisor = %v, want 100", cfg.Derived.VelocityDivisor)
	}
	want := [4]float32{1, 0.75, 0.5, 0.25}
	if cfg.Derived.SpeedPresets != want {
		t.Errorf("speed presets = %v, want %v", cfg.Derived.SpeedPresets, want)
	}
	if cfg.Controls.Reset != "R" || cfg.Controls.Speed4 != "FOUR" {
		t.Errorf("controls = %+v, want R ... FOUR", cfg.Controls)
	}
	if cfg.Render.ClearColor != [3]uint8{128, 128, 128} {
		t.Errorf("clear color = %v, want grey", cfg.Render.ClearColor)
	}
}

func TestLoadMergesOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := "physics:\n  gravity_divisor: 5000\ncontrols:\n  pause: SPACE\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Derived.GravityDivisor != 5000 {
		t.Errorf("gravity divisor = %v, want 5000", cfg.Derived.GravityDivisor)
	}
	if cfg.Physics.VelocityDivisor != 100 {
		t.Errorf("velocity divisor = %v, want default 100", cfg.Physics.VelocityDivisor)
	}
	if cfg.Controls.Pause != "SPACE" || cfg.Controls.Reset != "R" {
		t.Errorf("controls = %+v, want pause SPACE and default reset", cfg.Controls)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{"zero gravity divisor", "physics:\n  gravity_divisor: 0\n", "gravity_divisor"},
		{"negative velocity divisor", "physics:\n  velocity_divisor: -1\n", "velocity_divisor"},
		{"three presets", "physics:\n  speed_presets: [1, 0.5, 0.25]\n", "speed_presets"},
		{"zero preset", "physics:\n  speed_presets: [1, 0, 0.5, 0.25]\n", "speed_presets[1]"},
		{"empty screen", "screen:\n  width: 0\n", "screen size"},
		{"bad yaml", "physics: [", "parsing config file"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			if err := os.WriteFile(path, []byte(tt.yaml), 0644); err != nil {
				t.Fatal(err)
			}
			_, err := Load(path)
			if err == nil {
				t.Fatal("Load succeeded, want error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load of missing file succeeded")
	}
}

func TestWriteYAMLReloads(t *testing.T) {
	cfg := Defaults()
	cfg.Physics.GravityDivisor = 1234

	path := filepath.Join(t.TempDir(), "snapshot.yaml")
	if err := cfg.WriteYAML(path); err != nil {
		t.Fatalf("WriteYAML error: %v", err)
	}
	reloaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load snapshot error: %v", err)
	}
	if reloaded.Physics.GravityDivisor != 1234 {
		t.Errorf("reloaded gravity divisor = %v, want 1234", reloaded.Physics.GravityDivisor)
	}
}

func TestCfgBeforeInitPanics(t *testing.T) {
	saved := global
	global = nil
	defer func() {
		global = saved
		if recover() == nil {
			t.Error("Cfg() before Init() did not panic")
		}
	}()
	Cfg()
}

func TestBindingsCoverControls(t *testing.T) {
	b := Defaults().Controls.Bindings()
	if len(b) != 9 {
		t.Fatalf("Bindings() has %d entries, want 9", len(b))
	}
	for cmd, key := range b {
		if key == "" {
			t.Errorf("command %q has no key", cmd)
		}
	}
}
