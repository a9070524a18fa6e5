package body

import (
	"math"

	renderer "lanerunner/internal/graphics/renderer"
	"lanerunner/internal/profiling"

	"github.com/go-gl/mathgl/mgl32"
)

// Segments is the number of flat panels arranged around the player.
const Segments = 8

// Body draws the player as panels standing around its vertical axis.
type Body struct {
	drawer renderer.QuadDrawer
	// panel squeezes the quad to a thin slab pushed out from the axis.
	panel mgl32.Mat4
}

func NewBody(drawer renderer.QuadDrawer) *Body {
	return &Body{
		drawer: drawer,
		panel:  mgl32.Translate3D(0, 0, 0.7).Mul4(mgl32.Scale3D(0.3, 1, 1)),
	}
}

// SegmentColor shifts from yellow-green at the front panel to orange-red at
// the back.
func SegmentColor(i int) [4]float32 {
	d := i
	if Segments-i < d {
		d = Segments - i
	}
	w := float32(d) * 0.2
	return [4]float32{0.8 + w, 0.8 - w, 0.2, 1.0}
}

// SegmentModel returns the model transform of panel i for a player at pos.
func (b *Body) SegmentModel(i int, pos mgl32.Vec3) mgl32.Mat4 {
	angle := float32(i) * 2 * math.Pi / Segments
	return mgl32.Translate3D(pos[0], pos[1], pos[2]).
		Mul4(mgl32.HomogRotate3DY(angle)).
		Mul4(b.panel)
}

func (b *Body) Render(ctx renderer.RenderContext) {
	defer profiling.Track("renderer.body")()

	pos := ctx.Player.Position
	for i := 0; i < Segments; i++ {
		b.drawer.Run(SegmentColor(i), ctx.ViewProj, b.SegmentModel(i, pos))
	}
}
