package tiles

import (
	"math"

	renderer "lanerunner/internal/graphics/renderer"
	"lanerunner/internal/profiling"
	"lanerunner/internal/terrain"

	"github.com/go-gl/mathgl/mgl32"
)

// DefaultWindow is how many columns are drawn on each side of the player.
const DefaultWindow = 20

var (
	darkGray  = [4]float32{0.3, 0.3, 0.3, 1.0}
	lightGray = [4]float32{0.5, 0.5, 0.5, 1.0}
)

// Tile addresses one platform tile by column and lane.
type Tile struct {
	X, Z int
}

// Tiles draws the platform around the player, one quad per solid tile.
type Tiles struct {
	drawer renderer.QuadDrawer
	field  terrain.Field
	window int

	// base lays the xy-plane quad flat on the floor.
	base mgl32.Mat4
}

// NewTiles creates a tile renderable showing window columns either side of the player
func NewTiles(drawer renderer.QuadDrawer, field terrain.Field, window int) *Tiles {
	if window <= 0 {
		window = DefaultWindow
	}
	return &Tiles{
		drawer: drawer,
		field:  field,
		window: window,
		base:   mgl32.Translate3D(0, -2, 0).Mul4(mgl32.HomogRotate3DX(math.Pi / 2)),
	}
}

// Visible lists the solid tiles in the window around playerX, column by
// column, lanes in ascending order within a column.
func (t *Tiles) Visible(playerX float32) []Tile {
	center := int(playerX) / terrain.TileSize
	visible := make([]Tile, 0, 2*t.window*len(terrain.Lanes))
	for x := center - t.window; x < center+t.window; x++ {
		for _, z := range terrain.Lanes {
			if t.field.IsHole(x, z) {
				continue
			}
			visible = append(visible, Tile{X: x, Z: z})
		}
	}
	return visible
}

// Model returns the model transform of a tile.
func (t *Tiles) Model(tile Tile) mgl32.Mat4 {
	offset := mgl32.Translate3D(float32(tile.X*terrain.TileSize), 0, float32(tile.Z*terrain.TileSize))
	return offset.Mul4(t.base)
}

// Color returns the checkerboard shade of a tile.
func Color(tile Tile) [4]float32 {
	if (tile.X+tile.Z)%2 == 0 {
		return darkGray
	}
	return lightGray
}

// Render draws the visible tiles
func (t *Tiles) Render(ctx renderer.RenderContext) {
	defer profiling.Track("renderer.tiles")()

	for _, tile := range t.Visible(ctx.Player.Position[0]) {
		t.drawer.Run(Color(tile), ctx.ViewProj, t.Model(tile))
	}
}
