package terrain

import (
	"math"
	"strings"
)

const (
	// TileSize is the edge length of one tile in world units.
	TileSize = 2

	// Period and threshold of the hole pattern on lane 0. Each lane shifts
	// both by its index (period by twice the index).
	basePeriod    = 12
	baseThreshold = 10
)

// Lanes lists the z-lane indices tiles and the player occupy.
var Lanes = [...]int{-1, 0, 1}

// Field reports which tiles of the platform are missing.
type Field interface {
	IsHole(x, z int) bool
}

// IsHole reports whether tile (x, z) is a hole. The pattern repeats along x
// with a lane-dependent period and threshold.
//
// z must keep basePeriod + z*2 non-zero; every lane in Lanes does.
func IsHole(x, z int) bool {
	ax := x
	if ax < 0 {
		ax = -ax
	}
	return (ax+z*3)%(basePeriod+z*2) >= baseThreshold+z
}

// TileAt maps a continuous world coordinate onto its tile index.
func TileAt(pos float32) int {
	return int(math.Round(float64(pos / TileSize)))
}

// LaneField is the procedural platform used by the game.
type LaneField struct{}

func (LaneField) IsHole(x, z int) bool { return IsHole(x, z) }

// Flat is a platform without holes.
type Flat struct{}

func (Flat) IsHole(x, z int) bool { return false }

// Map renders columns [minX, maxX) of every lane as text, one row per lane,
// '#' for solid tiles and '.' for holes.
func Map(f Field, minX, maxX int) []string {
	rows := make([]string, 0, len(Lanes))
	for _, z := range Lanes {
		var sb strings.Builder
		for x := minX; x < maxX; x++ {
			if f.IsHole(x, z) {
				sb.WriteByte('.')
			} else {
				sb.WriteByte('#')
			}
		}
		rows = append(rows, sb.String())
	}
	return rows
}
