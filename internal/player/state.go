package player

import (
	"lanerunner/internal/terrain"

	"github.com/go-gl/mathgl/mgl32"
)

// Physics holds the movement tuning. All speeds are in world units per frame.
type Physics struct {
	MaxSpeed    float32 // horizontal speed cap while accelerating
	Accel       float32 // horizontal acceleration per frame
	Decel       float32 // horizontal braking per frame
	JumpImpulse float32
	Gravity     float32
	LaneSpeed   float32 // depth speed while forward/backward is held
	LaneLimit   float32 // |z| the player may move to
	RestHeight  float32 // y of the player standing on a tile
}

func DefaultPhysics() Physics {
	return Physics{
		MaxSpeed:    0.5,
		Accel:       0.005,
		Decel:       0.02,
		JumpImpulse: 0.3,
		Gravity:     0.02,
		LaneSpeed:   0.1,
		LaneLimit:   2.0,
		RestHeight:  -1.0,
	}
}

type Player struct {
	Position mgl32.Vec3
	Velocity mgl32.Vec3
	Physics  Physics
	Field    terrain.Field
}

func New(field terrain.Field) *Player {
	p := &Player{
		Physics: DefaultPhysics(),
		Field:   field,
	}
	p.Reset()
	return p
}

// Reset puts the player back at the spawn point, at rest.
func (p *Player) Reset() {
	p.Position = mgl32.Vec3{0, p.Physics.RestHeight, 0}
	p.Velocity = mgl32.Vec3{0, 0, 0}
}

// Tile returns the tile under the player.
func (p *Player) Tile() (x, z int) {
	return terrain.TileAt(p.Position[0]), terrain.TileAt(p.Position[2])
}

// Standing reports whether the player is at rest height over a solid tile.
func (p *Player) Standing() bool {
	return p.Position[1] <= p.Physics.RestHeight && !p.overHole()
}

func (p *Player) overHole() bool {
	x, z := p.Tile()
	return p.Field.IsHole(x, z)
}
