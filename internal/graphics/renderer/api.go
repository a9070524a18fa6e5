package renderer

import (
	"lanerunner/internal/player"

	"github.com/go-gl/mathgl/mgl32"
)

// RenderContext provides shared context for all renderables
type RenderContext struct {
	Player *player.Player
	// ViewProj is projection × view, computed once per frame.
	ViewProj mgl32.Mat4
}

// Renderable draws one feature of the scene
type Renderable interface {
	Render(ctx RenderContext)
}

// QuadDrawer submits one flat-colored quad. graphics.QuadProgram implements it.
type QuadDrawer interface {
	Run(color [4]float32, projection, modelView mgl32.Mat4)
}
