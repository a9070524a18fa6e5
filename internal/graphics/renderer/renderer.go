package renderer

import (
	"lanerunner/internal/graphics"
	"lanerunner/internal/player"
	"lanerunner/internal/profiling"
)

// Renderer composes a frame from its renderables
type Renderer struct {
	renderables []Renderable
	camera      *graphics.Camera
}

// NewRenderer creates a renderer drawing rs in order
func NewRenderer(camera *graphics.Camera, rs ...Renderable) *Renderer {
	return &Renderer{
		renderables: rs,
		camera:      camera,
	}
}

// Render derives the camera for p and draws every renderable
func (r *Renderer) Render(p *player.Player) {
	defer profiling.Track("renderer.Render")()

	ctx := RenderContext{
		Player:   p,
		ViewProj: r.camera.ViewProjection(p.Position, p.Velocity),
	}
	for _, renderable := range r.renderables {
		renderable.Render(ctx)
	}
}

// GetCamera returns the camera instance
func (r *Renderer) GetCamera() *graphics.Camera {
	return r.camera
}
