package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"lanerunner/internal/graphics"
	"lanerunner/internal/input"
	"lanerunner/internal/player"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "lanerunner.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	return path
}

func TestEmbeddedDefaultMatchesDefault(t *testing.T) {
	cfg := Default()
	if err := parse(defaultYAML, &cfg); err != nil {
		t.Fatalf("Embedded default does not parse: %v", err)
	}
	if cfg.PlayerPhysics() != player.DefaultPhysics() {
		t.Errorf("Expected embedded physics %+v, got %+v", player.DefaultPhysics(), cfg.PlayerPhysics())
	}
	if cfg.Scene.TileWindow != 20 {
		t.Errorf("Expected tile window 20, got %d", cfg.Scene.TileWindow)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Expected embedded default to validate, got %v", err)
	}
}

func TestDefaultBindingsRoundTrip(t *testing.T) {
	got := Default().Bindings()
	want := input.DefaultBindings()
	for a := input.Action(0); a < input.ActionCount; a++ {
		if strings.Join(got[a], ",") != strings.Join(want[a], ",") {
			t.Errorf("Action %s: expected keys %v, got %v", a, want[a], got[a])
		}
	}
}

func TestLoadCustomPathPartial(t *testing.T) {
	path := writeConfig(t, `
physics:
  max_speed: 0.8
keys:
  jump: [w, " "]
`)
	cfg, source, err := Load(path)
	if err != nil {
		t.Fatalf("Expected config, got %v", err)
	}
	if source != path {
		t.Errorf("Expected source %s, got %s", path, source)
	}
	if cfg.Physics.MaxSpeed != 0.8 {
		t.Errorf("Expected max_speed 0.8, got %v", cfg.Physics.MaxSpeed)
	}
	if cfg.Physics.Accel != player.DefaultPhysics().Accel {
		t.Errorf("Expected missing accel to keep its default, got %v", cfg.Physics.Accel)
	}

	b := cfg.Bindings()
	if strings.Join(b[input.ActionJump], ",") != "w, " {
		t.Errorf("Expected jump bound to w and space, got %q", b[input.ActionJump])
	}
	if len(b[input.ActionMoveLeft]) != 1 || b[input.ActionMoveLeft][0] != input.KeyArrowLeft {
		t.Errorf("Expected left to keep its default binding, got %v", b[input.ActionMoveLeft])
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	if _, _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Expected error for missing file")
	}

	path := writeConfig(t, "physics: [unclosed")
	if _, _, err := Load(path); err == nil || !strings.Contains(err.Error(), "failed to parse") {
		t.Errorf("Expected parse error, got %v", err)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	path := writeConfig(t, `
physics:
  gravity: 0
scene:
  tile_window: 0
keys:
  jump: []
  fly: [f]
log:
  level: loud
`)
	_, _, err := Load(path)
	if !IsValidationError(err) {
		t.Fatalf("Expected validation error, got %v", err)
	}
	msg := err.Error()
	for _, want := range []string{"physics.gravity", "scene.tile_window", "keys.jump", "keys.fly", "log.level"} {
		if !strings.Contains(msg, want) {
			t.Errorf("Expected %q in %q", want, msg)
		}
	}
}

func TestValidateCamera(t *testing.T) {
	cfg := Default()
	cfg.Camera.FOVY = 180
	cfg.Camera.Far = cfg.Camera.Near
	err := cfg.Validate()
	if err == nil {
		t.Fatal("Expected camera validation error")
	}
	if !strings.Contains(err.Error(), "camera.fov_y") || !strings.Contains(err.Error(), "camera.far") {
		t.Errorf("Expected fov and far problems, got %v", err)
	}
}

func TestApplyCamera(t *testing.T) {
	cfg := Default()
	cfg.Camera.FOVY = 60
	cfg.Camera.Distance = 8

	cam := graphics.NewCamera(800, 400)
	cfg.ApplyCamera(cam)
	if cam.FOV != 60 || cam.Distance != 8 {
		t.Errorf("Expected fov 60 and distance 8, got %v and %v", cam.FOV, cam.Distance)
	}
	if cam.AspectRatio != 2 {
		t.Errorf("Expected aspect ratio kept at 2, got %v", cam.AspectRatio)
	}
}

func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get working directory: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Failed to chdir: %v", err)
	}
	t.Cleanup(func() { os.Chdir(prev) })
}

func TestLoadSearchOrder(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	chdir(t, t.TempDir())

	write := func(path, body string) {
		t.Helper()
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("Failed to create %s: %v", filepath.Dir(path), err)
		}
		if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
			t.Fatalf("Failed to write %s: %v", path, err)
		}
	}
	userPath := filepath.Join(home, ".lanerunner", "config.yaml")
	localPath := filepath.Join("configs", "lanerunner.yaml")

	steps := []struct {
		name     string
		setup    func()
		source   string
		maxSpeed float32
	}{
		{"no files", func() {}, "embedded", 0.5},
		{"local file", func() { write(localPath, "physics:\n  max_speed: 0.7\n") }, localPath, 0.7},
		{"user file wins", func() { write(userPath, "physics:\n  max_speed: 0.9\n") }, userPath, 0.9},
		{"broken user file", func() { write(userPath, "physics: [unclosed") }, localPath, 0.7},
	}
	for _, step := range steps {
		step.setup()
		cfg, source, err := Load("")
		if err != nil {
			t.Fatalf("%s: expected config, got %v", step.name, err)
		}
		if source != step.source {
			t.Errorf("%s: expected source %s, got %s", step.name, step.source, source)
		}
		if cfg.Physics.MaxSpeed != step.maxSpeed {
			t.Errorf("%s: expected max_speed %v, got %v", step.name, step.maxSpeed, cfg.Physics.MaxSpeed)
		}
		if cfg.Physics.Accel != player.DefaultPhysics().Accel {
			t.Errorf("%s: expected accel to keep its default, got %v", step.name, cfg.Physics.Accel)
		}
	}
}
