// Package config loads the YAML settings for the window, physics, camera,
// scene and key bindings.
package config

import (
	"lanerunner/internal/graphics"
	"lanerunner/internal/input"
	"lanerunner/internal/player"
)

type Config struct {
	Window  WindowConfig        `yaml:"window"`
	Physics PhysicsConfig       `yaml:"physics"`
	Camera  CameraConfig        `yaml:"camera"`
	Scene   SceneConfig         `yaml:"scene"`
	Keys    map[string][]string `yaml:"keys"`
	Log     LogConfig           `yaml:"log"`
}

type WindowConfig struct {
	Title    string `yaml:"title"`
	VSync    bool   `yaml:"vsync"`
	FPSLimit int    `yaml:"fps_limit"` // 0 = unlimited
}

// PhysicsConfig mirrors player.Physics; speeds are world units per frame.
type PhysicsConfig struct {
	MaxSpeed    float32 `yaml:"max_speed"`
	Accel       float32 `yaml:"accel"`
	Decel       float32 `yaml:"decel"`
	JumpImpulse float32 `yaml:"jump_impulse"`
	Gravity     float32 `yaml:"gravity"`
	LaneSpeed   float32 `yaml:"lane_speed"`
	LaneLimit   float32 `yaml:"lane_limit"`
	RestHeight  float32 `yaml:"rest_height"`
}

type CameraConfig struct {
	FOVY     float32 `yaml:"fov_y"` // degrees
	Near     float32 `yaml:"near"`
	Far      float32 `yaml:"far"`
	Distance float32 `yaml:"distance"`
	Tilt     float32 `yaml:"tilt"`
}

type SceneConfig struct {
	TileWindow int `yaml:"tile_window"` // columns drawn each side of the player
}

type LogConfig struct {
	Level string `yaml:"level"`
}

// Default returns the built-in configuration.
func Default() Config {
	ph := player.DefaultPhysics()
	cam := graphics.NewCamera(graphics.SurfaceWidth, graphics.SurfaceHeight)
	return Config{
		Window: WindowConfig{
			Title:    "lanerunner",
			VSync:    true,
			FPSLimit: 60,
		},
		Physics: PhysicsConfig{
			MaxSpeed:    ph.MaxSpeed,
			Accel:       ph.Accel,
			Decel:       ph.Decel,
			JumpImpulse: ph.JumpImpulse,
			Gravity:     ph.Gravity,
			LaneSpeed:   ph.LaneSpeed,
			LaneLimit:   ph.LaneLimit,
			RestHeight:  ph.RestHeight,
		},
		Camera: CameraConfig{
			FOVY:     cam.FOV,
			Near:     cam.NearPlane,
			Far:      cam.FarPlane,
			Distance: cam.Distance,
			Tilt:     cam.Tilt,
		},
		Scene: SceneConfig{TileWindow: 20},
		Keys:  bindingsToKeys(input.DefaultBindings()),
		Log:   LogConfig{Level: "info"},
	}
}

func bindingsToKeys(b input.Bindings) map[string][]string {
	keys := make(map[string][]string, input.ActionCount)
	for a := input.Action(0); a < input.ActionCount; a++ {
		keys[a.String()] = append([]string(nil), b[a]...)
	}
	return keys
}

// PlayerPhysics returns the physics tuning for player.Player.
func (c Config) PlayerPhysics() player.Physics {
	return player.Physics{
		MaxSpeed:    c.Physics.MaxSpeed,
		Accel:       c.Physics.Accel,
		Decel:       c.Physics.Decel,
		JumpImpulse: c.Physics.JumpImpulse,
		Gravity:     c.Physics.Gravity,
		LaneSpeed:   c.Physics.LaneSpeed,
		LaneLimit:   c.Physics.LaneLimit,
		RestHeight:  c.Physics.RestHeight,
	}
}

// ApplyCamera copies the camera section onto cam, keeping its aspect ratio.
func (c Config) ApplyCamera(cam *graphics.Camera) {
	cam.FOV = c.Camera.FOVY
	cam.NearPlane = c.Camera.Near
	cam.FarPlane = c.Camera.Far
	cam.Distance = c.Camera.Distance
	cam.Tilt = c.Camera.Tilt
}

// Bindings resolves the keys section. Validate must have accepted c.
func (c Config) Bindings() input.Bindings {
	var b input.Bindings
	for name, keys := range c.Keys {
		action, ok := input.ParseAction(name)
		if !ok {
			continue
		}
		for _, k := range keys {
			b.Bind(action, k)
		}
	}
	return b
}
