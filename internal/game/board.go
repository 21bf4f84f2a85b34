package game

import (
	"fmt"
	"sort"
)

// Board holds the terrain grid and the live unit roster for one combat
// session. Terrain is immutable after construction; the roster mutates only
// through the session's own synchronous handlers.
type Board struct {
	width   int
	height  int
	terrain []TerrainKind // row-major, y*width+x
	units   map[int]*Unit
}

// NewBoard builds a board of the given size, evaluating the terrain function
// once per cell.
func NewBoard(width, height int, assign TerrainFunc) (*Board, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("board size must be positive, got %dx%d", width, height)
	}
	if assign == nil {
		assign = PlainsTerrain
	}
	b := &Board{
		width:   width,
		height:  height,
		terrain: make([]TerrainKind, width*height),
		units:   make(map[int]*Unit),
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			b.terrain[y*width+x] = assign(x, y)
		}
	}
	return b, nil
}

func (b *Board) Width() int  { return b.width }
func (b *Board) Height() int { return b.height }

// InBounds reports whether c lies on the grid.
func (b *Board) InBounds(c Cell) bool {
	return c.X >= 0 && c.X < b.width && c.Y >= 0 && c.Y < b.height
}

// TerrainAt returns the terrain of c. Out-of-bounds lookups report mountain,
// which blocks both movement and sight, so a missed bounds check upstream
// fails closed instead of corrupting state.
func (b *Board) TerrainAt(c Cell) TerrainKind {
	if !b.InBounds(c) {
		return TerrainMountain
	}
	return b.terrain[c.Y*b.width+c.X]
}

// UnitAt returns the unit occupying c, or nil.
func (b *Board) UnitAt(c Cell) *Unit {
	for _, u := range b.units {
		if u.Pos == c {
			return u
		}
	}
	return nil
}

// Unit returns the live unit with the given ID, or nil if it has been
// eliminated or never existed.
func (b *Board) Unit(id int) *Unit {
	return b.units[id]
}

// Units returns the live roster keyed by unit ID. Callers must not mutate
// through it outside the session's handlers.
func (b *Board) Units() map[int]*Unit {
	return b.units
}

// UnitsOfTeam returns the live units of one team, sorted by ID so iteration
// order is stable.
func (b *Board) UnitsOfTeam(team Team) []*Unit {
	var out []*Unit
	for _, u := range b.units {
		if u.Team == team {
			out = append(out, u)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// AddUnit places a unit on the board. It rejects out-of-bounds positions,
// water, duplicate IDs and double occupancy.
func (b *Board) AddUnit(u *Unit) error {
	if !b.InBounds(u.Pos) {
		return fmt.Errorf("unit %q starts out of bounds at (%d,%d)", u.Name, u.Pos.X, u.Pos.Y)
	}
	// Water is never a rest position. Mountain is allowed here because a
	// bash collision can legitimately leave a unit on a mountain cell, and
	// such rosters must survive a snapshot round trip.
	if b.TerrainAt(u.Pos) == TerrainWater {
		return fmt.Errorf("unit %q starts on water at (%d,%d)", u.Name, u.Pos.X, u.Pos.Y)
	}
	if _, exists := b.units[u.ID]; exists {
		return fmt.Errorf("duplicate unit id %d", u.ID)
	}
	if other := b.UnitAt(u.Pos); other != nil {
		return fmt.Errorf("cell (%d,%d) already occupied by %q", u.Pos.X, u.Pos.Y, other.Name)
	}
	b.units[u.ID] = u
	return nil
}

// RemoveUnit deletes a unit from the roster. Removing an ID that is already
// gone is a no-op.
func (b *Board) RemoveUnit(id int) {
	delete(b.units, id)
}

// MoveUnit relocates a live unit. Validation (reachability, occupancy) is the
// caller's job; this only refuses positions outside the grid.
func (b *Board) MoveUnit(id int, to Cell) {
	u := b.units[id]
	if u == nil || !b.InBounds(to) {
		return
	}
	u.Pos = to
}
