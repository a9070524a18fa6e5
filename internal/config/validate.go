package config

import (
	"errors"
	"fmt"

	"lanerunner/internal/input"

	"github.com/charmbracelet/log"
)

// ValidationError lists every problem found in a configuration.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid config: %v", e.Problems)
}

// Validate rejects settings the game cannot run with.
func (c Config) Validate() error {
	var problems []string
	positive := func(name string, v float32) {
		if v <= 0 {
			problems = append(problems, fmt.Sprintf("%s must be positive, got %v", name, v))
		}
	}

	positive("physics.max_speed", c.Physics.MaxSpeed)
	positive("physics.accel", c.Physics.Accel)
	positive("physics.decel", c.Physics.Decel)
	positive("physics.jump_impulse", c.Physics.JumpImpulse)
	positive("physics.gravity", c.Physics.Gravity)
	positive("physics.lane_speed", c.Physics.LaneSpeed)
	positive("physics.lane_limit", c.Physics.LaneLimit)

	if c.Camera.FOVY <= 0 || c.Camera.FOVY >= 180 {
		problems = append(problems, fmt.Sprintf("camera.fov_y must be in (0,180), got %v", c.Camera.FOVY))
	}
	positive("camera.near", c.Camera.Near)
	if c.Camera.Far <= c.Camera.Near {
		problems = append(problems, fmt.Sprintf("camera.far (%v) must exceed camera.near (%v)", c.Camera.Far, c.Camera.Near))
	}
	positive("camera.distance", c.Camera.Distance)

	if c.Scene.TileWindow <= 0 {
		problems = append(problems, fmt.Sprintf("scene.tile_window must be positive, got %d", c.Scene.TileWindow))
	}
	if c.Window.FPSLimit < 0 {
		problems = append(problems, fmt.Sprintf("window.fps_limit must not be negative, got %d", c.Window.FPSLimit))
	}

	for name, keys := range c.Keys {
		if _, ok := input.ParseAction(name); !ok {
			problems = append(problems, fmt.Sprintf("keys.%s: unknown action", name))
		}
		if len(keys) == 0 {
			problems = append(problems, fmt.Sprintf("keys.%s: no keys bound", name))
		}
	}
	for a := input.Action(0); a < input.ActionCount; a++ {
		if _, ok := c.Keys[a.String()]; !ok {
			problems = append(problems, fmt.Sprintf("keys.%s: missing", a))
		}
	}

	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		problems = append(problems, fmt.Sprintf("log.level: %v", err))
	}

	if len(problems) > 0 {
		return &ValidationError{Problems: problems}
	}
	return nil
}

// IsValidationError reports whether err came from Validate.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
