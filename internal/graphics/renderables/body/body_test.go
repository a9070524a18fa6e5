package body

import (
	"testing"

	renderer "lanerunner/internal/graphics/renderer"
	"lanerunner/internal/player"
	"lanerunner/internal/terrain"

	"github.com/go-gl/mathgl/mgl32"
)

type recordingDrawer struct {
	colors [][4]float32
	models []mgl32.Mat4
}

func (d *recordingDrawer) Run(color [4]float32, projection, modelView mgl32.Mat4) {
	d.colors = append(d.colors, color)
	d.models = append(d.models, modelView)
}

func approx(a, b float32) bool {
	d := a - b
	return d < 1e-5 && d > -1e-5
}

func TestSegmentColor(t *testing.T) {
	tests := []struct {
		i    int
		want [4]float32
	}{
		{0, [4]float32{0.8, 0.8, 0.2, 1}},
		{1, [4]float32{1.0, 0.6, 0.2, 1}},
		{3, [4]float32{1.4, 0.2, 0.2, 1}},
		{4, [4]float32{1.6, 0.0, 0.2, 1}},
		{7, [4]float32{1.0, 0.6, 0.2, 1}},
	}
	for _, tt := range tests {
		got := SegmentColor(tt.i)
		for c := range got {
			if !approx(got[c], tt.want[c]) {
				t.Errorf("SegmentColor(%d) = %v, want %v", tt.i, got, tt.want)
				break
			}
		}
	}
}

func TestSegmentModelRing(t *testing.T) {
	b := NewBody(&recordingDrawer{})
	pos := mgl32.Vec3{10, -1, 0.5}

	tests := []struct {
		i    int
		want mgl32.Vec3
	}{
		{0, mgl32.Vec3{10, -1, 1.2}},
		{2, mgl32.Vec3{10.7, -1, 0.5}},
		{4, mgl32.Vec3{10, -1, -0.2}},
		{6, mgl32.Vec3{9.3, -1, 0.5}},
	}
	for _, tt := range tests {
		center := b.SegmentModel(tt.i, pos).Mul4x1(mgl32.Vec4{0, 0, 0, 1}).Vec3()
		if !center.ApproxEqualThreshold(tt.want, 1e-5) {
			t.Errorf("Segment %d: expected center %v, got %v", tt.i, tt.want, center)
		}
	}
}

func TestSegmentModelIsThin(t *testing.T) {
	b := NewBody(&recordingDrawer{})
	m := b.SegmentModel(0, mgl32.Vec3{})
	// The quad's x extent of ±1 shrinks to ±0.3; y stays ±1.
	corner := m.Mul4x1(mgl32.Vec4{1, 1, 0, 1}).Vec3()
	if !corner.ApproxEqualThreshold(mgl32.Vec3{0.3, 1, 0.7}, 1e-5) {
		t.Errorf("Expected corner (0.3,1,0.7), got %v", corner)
	}
}

func TestRenderDrawsAllSegments(t *testing.T) {
	d := &recordingDrawer{}
	b := NewBody(d)
	p := player.New(terrain.LaneField{})
	p.Position = mgl32.Vec3{4, 0, -1}

	b.Render(renderer.RenderContext{Player: p, ViewProj: mgl32.Ident4()})

	if len(d.colors) != Segments {
		t.Fatalf("Expected %d draws, got %d", Segments, len(d.colors))
	}
	for i := 0; i < Segments; i++ {
		if d.colors[i] != SegmentColor(i) {
			t.Errorf("Segment %d: expected color %v, got %v", i, SegmentColor(i), d.colors[i])
		}
		if d.models[i] != b.SegmentModel(i, p.Position) {
			t.Errorf("Segment %d: model does not follow the player", i)
		}
	}
}
