package game

import "fmt"

// Cell is a grid coordinate: column X, row Y.
type Cell struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Add returns the cell offset by (dx,dy).
func (c Cell) Add(dx, dy int) Cell {
	return Cell{X: c.X + dx, Y: c.Y + dy}
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// manhattan returns the Manhattan distance between two cells.
func manhattan(a, b Cell) int {
	return absInt(a.X-b.X) + absInt(a.Y-b.Y)
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func signInt(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

// TerrainKind identifies the surface of a tile. Terrain is assigned once at
// level load by a pure function of coordinates and never changes afterwards.
type TerrainKind uint8

const (
	TerrainPlains    TerrainKind = iota // open ground, baseline cost
	TerrainForest                       // undergrowth, costly to enter and to leave
	TerrainMountain                     // impassable, blocks line of sight
	TerrainWater                        // impassable, drowns anything forced onto it
	terrainKindCount                    // sentinel
)

func (t TerrainKind) String() string {
	switch t {
	case TerrainPlains:
		return "plains"
	case TerrainForest:
		return "forest"
	case TerrainMountain:
		return "mountain"
	case TerrainWater:
		return "water"
	default:
		return "unknown"
	}
}

// terrainMoveCost returns the movement cost paid to enter a tile.
// Impassable kinds never get this far; movement filters them out first.
func terrainMoveCost(t TerrainKind) int {
	if t == TerrainForest {
		return 2
	}
	return 1
}

// terrainBlocksMovement reports whether a tile can never be entered or
// rested on by normal movement.
func terrainBlocksMovement(t TerrainKind) bool {
	return t == TerrainMountain || t == TerrainWater
}

// terrainBlocksSight reports whether a tile interrupts line of sight.
func terrainBlocksSight(t TerrainKind) bool {
	return t == TerrainMountain
}

// TerrainFunc assigns a terrain kind to every coordinate of a level.
// It must be pure: the same (x,y) always yields the same kind.
type TerrainFunc func(x, y int) TerrainKind

// PlainsTerrain is the all-plains assignment, the usual test baseline.
func PlainsTerrain(x, y int) TerrainKind {
	return TerrainPlains
}
