package game

import (
	"time"

	"lanerunner/internal/graphics"
	"lanerunner/internal/graphics/renderer"
	"lanerunner/internal/input"
	"lanerunner/internal/player"
	"lanerunner/internal/profiling"

	"github.com/charmbracelet/log"
)

// Driver advances the demo by one frame per Tick. It is not safe for
// concurrent use; the host loop is its only caller.
type Driver struct {
	Surface  *graphics.Surface
	Renderer *renderer.Renderer
	Program  *graphics.QuadProgram
	Player   *player.Player
	Keys     *input.KeyState
	Bindings input.Bindings
	Logger   *log.Logger

	// FrameBudget is the time one frame may take before it is logged as slow.
	// Zero disables the check.
	FrameBudget time.Duration

	Frames           int
	LastFPSCheckTime time.Time
	respawnHeld      bool
}

// Tick clears the surface, draws the scene for the current state and then
// advances the player by the controls held at this moment.
func (d *Driver) Tick() {
	profiling.ResetFrame()
	start := time.Now()

	d.Surface.Frame()
	d.Renderer.Render(d.Player)

	controls := d.Bindings.Sample(d.Keys)
	d.Player.Advance(controls)
	if controls.Respawn {
		d.Player.Reset()
		if !d.respawnHeld {
			d.logger().Info("respawn", "frame", d.Surface.FrameCount())
		}
	}
	d.respawnHeld = controls.Respawn

	d.frameStats(time.Since(start))
}

func (d *Driver) frameStats(took time.Duration) {
	logger := d.logger()
	if d.FrameBudget > 0 && took > d.FrameBudget {
		logger.Debug("slow frame",
			"took", took,
			"render", profiling.SumWithPrefix("renderer."),
			"top", profiling.TopN(5))
	}

	d.Frames++
	if d.LastFPSCheckTime.IsZero() {
		d.LastFPSCheckTime = time.Now()
		return
	}
	if elapsed := time.Since(d.LastFPSCheckTime); elapsed >= time.Second {
		fps := float64(d.Frames) / elapsed.Seconds()
		x, z := d.Player.Tile()
		logger.Debug("fps", "fps", int(fps+0.5), "tile_x", x, "tile_z", z)
		d.Frames = 0
		d.LastFPSCheckTime = time.Now()
	}
}

func (d *Driver) logger() *log.Logger {
	if d.Logger == nil {
		return log.Default()
	}
	return d.Logger
}

// Dispose releases the GPU program.
func (d *Driver) Dispose() {
	if d.Program != nil {
		d.Program.Dispose()
	}
}
