package renderer_test

import (
	"testing"

	"lanerunner/internal/graphics"
	"lanerunner/internal/graphics/graphicstest"
	"lanerunner/internal/graphics/renderables/body"
	"lanerunner/internal/graphics/renderables/tiles"
	"lanerunner/internal/graphics/renderer"
	"lanerunner/internal/player"
	"lanerunner/internal/terrain"

	"github.com/go-gl/mathgl/mgl32"
)

type countingRenderable struct {
	order *[]string
	name  string
	ctx   renderer.RenderContext
}

func (c *countingRenderable) Render(ctx renderer.RenderContext) {
	*c.order = append(*c.order, c.name)
	c.ctx = ctx
}

func TestRenderOrderAndContext(t *testing.T) {
	var order []string
	first := &countingRenderable{order: &order, name: "first"}
	second := &countingRenderable{order: &order, name: "second"}
	cam := graphics.NewCamera(graphics.SurfaceWidth, graphics.SurfaceHeight)
	r := renderer.NewRenderer(cam, first, second)

	p := player.New(terrain.LaneField{})
	p.Position = mgl32.Vec3{3, -1, 1}
	p.Velocity = mgl32.Vec3{0.2, 0, 0}
	r.Render(p)

	if len(order) != 2 || order[0] != "first" || order[1] != "second" {
		t.Fatalf("Expected renderables in order, got %v", order)
	}
	want := cam.ViewProjection(p.Position, p.Velocity)
	if first.ctx.ViewProj != want || second.ctx.ViewProj != want {
		t.Errorf("Expected both renderables to share the frame's view-projection")
	}
	if first.ctx.Player != p {
		t.Errorf("Expected context to carry the player")
	}
	if r.GetCamera() != cam {
		t.Errorf("Expected GetCamera to return the camera")
	}
}

func TestRenderSceneAtSpawn(t *testing.T) {
	ctx := graphicstest.NewRecorder()
	q, err := graphics.NewQuadProgram(ctx, nil)
	if err != nil {
		t.Fatalf("Expected program, got %v", err)
	}
	defer q.Dispose()
	ctx.Reset()

	cam := graphics.NewCamera(graphics.SurfaceWidth, graphics.SurfaceHeight)
	r := renderer.NewRenderer(cam,
		tiles.NewTiles(q, terrain.LaneField{}, tiles.DefaultWindow),
		body.NewBody(q),
	)
	p := player.New(terrain.LaneField{})
	r.Render(p)

	if len(ctx.Draws) != 108+body.Segments {
		t.Fatalf("Expected %d draws, got %d", 108+body.Segments, len(ctx.Draws))
	}
	vp := cam.ViewProjection(p.Position, p.Velocity)
	for i, d := range ctx.Draws {
		if d.Projection() != vp {
			t.Fatalf("Draw %d: projection differs from the frame camera", i)
		}
		if d.Count != 6 {
			t.Errorf("Draw %d: expected 6 vertices, got %d", i, d.Count)
		}
	}
	// Body segments come last.
	last := ctx.Draws[len(ctx.Draws)-body.Segments:]
	for i, d := range last {
		if d.Color() != body.SegmentColor(i) {
			t.Errorf("Body draw %d: expected color %v, got %v", i, body.SegmentColor(i), d.Color())
		}
	}
}
