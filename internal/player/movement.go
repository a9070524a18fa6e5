package player

import (
	"lanerunner/internal/input"
	"lanerunner/internal/profiling"
)

// motion is the part of the state the horizontal rules look at.
type motion struct {
	left     bool // left held, right not held
	right    bool // right held, left not held
	standing bool
	vx       float32
}

// accelRule yields a horizontal acceleration when match holds.
type accelRule struct {
	name  string
	match func(m motion, ph *Physics) bool
	accel func(m motion, ph *Physics) float32
}

// horizontalRules are tried top to bottom, the first match wins. Later rules
// only cover what the earlier ones leave unhandled, so order matters.
var horizontalRules = [...]accelRule{
	{
		name:  "left-brake",
		match: func(m motion, ph *Physics) bool { return m.left && m.standing && m.vx < 0 },
		accel: func(m motion, ph *Physics) float32 { return ph.Decel },
	},
	{
		name:  "left-accel",
		match: func(m motion, ph *Physics) bool { return m.left && m.standing && m.vx >= 0 && m.vx < ph.MaxSpeed },
		accel: func(m motion, ph *Physics) float32 { return ph.Accel },
	},
	{
		name:  "right-accel",
		match: func(m motion, ph *Physics) bool { return m.right && m.standing && m.vx <= 0 && m.vx > -ph.MaxSpeed },
		accel: func(m motion, ph *Physics) float32 { return -ph.Accel },
	},
	{
		name:  "right-brake",
		match: func(m motion, ph *Physics) bool { return m.right && m.standing && m.vx > 0 },
		accel: func(m motion, ph *Physics) float32 { return -ph.Decel },
	},
	{
		name:  "coast-positive",
		match: func(m motion, ph *Physics) bool { return m.standing && m.vx > ph.Decel },
		accel: func(m motion, ph *Physics) float32 { return -ph.Decel },
	},
	{
		name:  "coast-negative",
		match: func(m motion, ph *Physics) bool { return m.standing && m.vx < -ph.Decel },
		accel: func(m motion, ph *Physics) float32 { return ph.Decel },
	},
	{
		name:  "stop",
		match: func(m motion, ph *Physics) bool { return m.standing },
		accel: func(m motion, ph *Physics) float32 { return -m.vx },
	},
	{
		// airborne: keep momentum
		name:  "airborne",
		match: func(m motion, ph *Physics) bool { return true },
		accel: func(m motion, ph *Physics) float32 { return 0 },
	},
}

// matchRule returns the first rule that applies to m. The last rule matches
// everything, so the result is never nil.
func matchRule(m motion, ph *Physics) *accelRule {
	for i := range horizontalRules {
		if horizontalRules[i].match(m, ph) {
			return &horizontalRules[i]
		}
	}
	return &horizontalRules[len(horizontalRules)-1]
}

// horizontalAccel returns the acceleration along x.
func horizontalAccel(m motion, ph *Physics) float32 {
	return matchRule(m, ph).accel(m, ph)
}

// Advance steps the player by one frame using the sampled controls.
func (p *Player) Advance(c input.Controls) {
	defer profiling.Track("player.Advance")()

	ph := &p.Physics
	standing := p.Standing()

	ax := horizontalAccel(motion{
		left:     c.Left && !c.Right,
		right:    c.Right && !c.Left,
		standing: standing,
		vx:       p.Velocity[0],
	}, ph)
	p.Velocity[0] += ax

	// Jump input is ignored while airborne.
	switch {
	case standing && c.Jump:
		p.Velocity[1] += ph.JumpImpulse
	case standing:
		p.Velocity[1] = 0
		p.Position[1] = ph.RestHeight
	default:
		p.Velocity[1] -= ph.Gravity
	}

	// Depth speed is set, not accelerated.
	switch {
	case c.Forward && !c.Backward && p.Position[2] < ph.LaneLimit:
		p.Velocity[2] = ph.LaneSpeed
	case c.Backward && !c.Forward && p.Position[2] > -ph.LaneLimit:
		p.Velocity[2] = -ph.LaneSpeed
	default:
		p.Velocity[2] = 0
	}

	p.Position = p.Position.Add(p.Velocity)

	if p.Position[1] <= ph.RestHeight && !p.overHole() {
		p.Position[1] = ph.RestHeight
	}
}
