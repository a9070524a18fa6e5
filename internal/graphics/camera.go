package graphics

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Camera follows the player from behind, swinging sideways with the
// player's horizontal speed.
type Camera struct {
	AspectRatio float32
	FOV         float32 // vertical, degrees
	NearPlane   float32
	FarPlane    float32
	Distance    float32 // distance from the eye to the lane axis
	Tilt        float32 // sideways swing per unit of horizontal speed
}

func NewCamera(width, height int) *Camera {
	return &Camera{
		AspectRatio: float32(width) / float32(height),
		FOV:         90.0,
		NearPlane:   0.1,
		FarPlane:    10000.0,
		Distance:    5.0,
		Tilt:        3.0,
	}
}

func (c *Camera) GetProjectionMatrix() mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.FOV), c.AspectRatio, c.NearPlane, c.FarPlane)
}

// Eye returns the camera position for a player at pos moving with vel. The
// eye sits behind the platform on -z, at height 0, and leads the player
// sideways opposite to the direction of travel.
func (c *Camera) Eye(pos, vel mgl32.Vec3) mgl32.Vec3 {
	dir := mgl32.Vec3{-vel[0] * c.Tilt, 0, -1}.Normalize()
	return mgl32.Vec3{dir[0]*c.Distance + pos[0], dir[1], dir[2] * c.Distance}
}

func (c *Camera) GetViewMatrix(pos, vel mgl32.Vec3) mgl32.Mat4 {
	return mgl32.LookAtV(c.Eye(pos, vel), pos, mgl32.Vec3{0, 1, 0})
}

// ViewProjection returns projection × view for the current frame.
func (c *Camera) ViewProjection(pos, vel mgl32.Vec3) mgl32.Mat4 {
	return c.GetProjectionMatrix().Mul4(c.GetViewMatrix(pos, vel))
}
