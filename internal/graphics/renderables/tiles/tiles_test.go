package tiles

import (
	"testing"

	renderer "lanerunner/internal/graphics/renderer"
	"lanerunner/internal/player"
	"lanerunner/internal/terrain"

	"github.com/go-gl/mathgl/mgl32"
)

type quad struct {
	color      [4]float32
	projection mgl32.Mat4
	model      mgl32.Mat4
}

type recordingDrawer struct {
	quads []quad
}

func (d *recordingDrawer) Run(color [4]float32, projection, modelView mgl32.Mat4) {
	d.quads = append(d.quads, quad{color, projection, modelView})
}

func TestVisibleWindowAtSpawn(t *testing.T) {
	tl := NewTiles(&recordingDrawer{}, terrain.LaneField{}, DefaultWindow)
	visible := tl.Visible(0)

	if len(visible) != 108 {
		t.Fatalf("Expected 108 solid tiles around spawn, got %d", len(visible))
	}
	minX, maxX := visible[0].X, visible[0].X
	for _, tile := range visible {
		if terrain.IsHole(tile.X, tile.Z) {
			t.Errorf("Hole (%d,%d) reported visible", tile.X, tile.Z)
		}
		minX = min(minX, tile.X)
		maxX = max(maxX, tile.X)
	}
	if minX != -20 || maxX != 19 {
		t.Errorf("Expected columns [-20,19], got [%d,%d]", minX, maxX)
	}
}

func TestVisibleWindowFollowsPlayer(t *testing.T) {
	tests := []struct {
		playerX    float32
		start, end int
	}{
		{0.9, -20, 19},
		{2, -19, 20},
		{41.5, 0, 39},
		{-3.9, -21, 18}, // int(-3.9)/2 == -1
	}

	tl := NewTiles(&recordingDrawer{}, terrain.Flat{}, DefaultWindow)
	for _, tt := range tests {
		visible := tl.Visible(tt.playerX)
		if len(visible) != 40*len(terrain.Lanes) {
			t.Errorf("x=%v: expected %d tiles on flat ground, got %d", tt.playerX, 40*len(terrain.Lanes), len(visible))
			continue
		}
		if visible[0].X != tt.start || visible[len(visible)-1].X != tt.end {
			t.Errorf("x=%v: expected columns [%d,%d], got [%d,%d]",
				tt.playerX, tt.start, tt.end, visible[0].X, visible[len(visible)-1].X)
		}
	}
}

func TestVisibleOrder(t *testing.T) {
	tl := NewTiles(&recordingDrawer{}, terrain.Flat{}, 1)
	want := []Tile{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 0}, {0, 1}}
	got := tl.Visible(0)
	if len(got) != len(want) {
		t.Fatalf("Expected %d tiles, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Tile %d: expected %v, got %v", i, want[i], got[i])
		}
	}
}

func TestColorCheckerboard(t *testing.T) {
	tests := []struct {
		tile Tile
		want float32
	}{
		{Tile{0, 0}, 0.3},
		{Tile{1, 0}, 0.5},
		{Tile{1, 1}, 0.3},
		{Tile{-3, 0}, 0.5}, // -3 % 2 == -1
		{Tile{-3, 1}, 0.3},
	}
	for _, tt := range tests {
		c := Color(tt.tile)
		if c != [4]float32{tt.want, tt.want, tt.want, 1} {
			t.Errorf("Color(%v) = %v, want gray %v", tt.tile, c, tt.want)
		}
	}
}

func TestModelLaysQuadOnFloor(t *testing.T) {
	tl := NewTiles(&recordingDrawer{}, terrain.Flat{}, DefaultWindow)
	m := tl.Model(Tile{X: 3, Z: -1})

	corner := m.Mul4x1(mgl32.Vec4{1, 1, 0, 1})
	want := mgl32.Vec4{7, -2, -1, 1}
	if !corner.ApproxEqualThreshold(want, 1e-5) {
		t.Errorf("Expected quad corner at %v, got %v", want, corner)
	}
	center := m.Mul4x1(mgl32.Vec4{0, 0, 0, 1})
	if !center.ApproxEqualThreshold(mgl32.Vec4{6, -2, -2, 1}, 1e-5) {
		t.Errorf("Expected tile center at (6,-2,-2), got %v", center)
	}
}

func TestRenderDrawsEveryVisibleTile(t *testing.T) {
	d := &recordingDrawer{}
	tl := NewTiles(d, terrain.LaneField{}, DefaultWindow)
	p := player.New(terrain.LaneField{})
	vp := mgl32.Scale3D(2, 2, 2)

	tl.Render(renderer.RenderContext{Player: p, ViewProj: vp})

	visible := tl.Visible(0)
	if len(d.quads) != len(visible) {
		t.Fatalf("Expected %d draws, got %d", len(visible), len(d.quads))
	}
	for i, q := range d.quads {
		if q.projection != vp {
			t.Fatalf("Draw %d: expected shared view-projection", i)
		}
		if q.color != Color(visible[i]) {
			t.Errorf("Draw %d: expected color %v, got %v", i, Color(visible[i]), q.color)
		}
		if q.model != tl.Model(visible[i]) {
			t.Errorf("Draw %d: model does not match tile %v", i, visible[i])
		}
	}
}

func TestNewTilesDefaultsWindow(t *testing.T) {
	tl := NewTiles(&recordingDrawer{}, terrain.Flat{}, 0)
	if tl.window != DefaultWindow {
		t.Errorf("Expected window %d, got %d", DefaultWindow, tl.window)
	}
}
