package graphics

import "lanerunner/internal/profiling"

// Size of the drawing surface in pixels.
const (
	SurfaceWidth  = 1200
	SurfaceHeight = 700
)

// tintPeriod is the number of frames of one background tint cycle.
const tintPeriod = 256

// Surface clears the framebuffer at the start of every frame and counts frames.
type Surface struct {
	ctx   Context
	frame uint64
}

func NewSurface(ctx Context) *Surface {
	ctx.Enable(CapDepthTest)
	ctx.Viewport(0, 0, SurfaceWidth, SurfaceHeight)
	return &Surface{ctx: ctx}
}

// SetViewport maps the surface onto a framebuffer of the given size. On HiDPI
// displays the framebuffer is larger than the window.
func (s *Surface) SetViewport(width, height int) {
	s.ctx.Viewport(0, 0, int32(width), int32(height))
}

// Tint returns the blue component of the background for a frame: a triangle
// wave over tintPeriod frames, 0 at the start of the cycle and 0.5 halfway.
func Tint(frame uint64) float32 {
	t := float32(frame%tintPeriod) / tintPeriod
	if t >= 0.5 {
		t = 1 - t
	}
	return t
}

// Frame clears color and depth and advances the frame counter.
func (s *Surface) Frame() {
	defer profiling.Track("frame.Clear")()

	s.ctx.ClearColor(0, 0.5, Tint(s.frame), 1)
	s.ctx.Clear(ColorBufferBit | DepthBufferBit)
	s.frame++
}

// FrameCount returns how many frames have been cleared.
func (s *Surface) FrameCount() uint64 {
	return s.frame
}
