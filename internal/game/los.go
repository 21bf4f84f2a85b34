package game

// HasLineOfSight reports whether a straight line between two cells is free of
// sight-blocking terrain. The line is walked with an integer Bresenham trace;
// both endpoints are excluded from the check, so a unit standing beside a
// mountain can still be seen. The trace is direction-independent:
// HasLineOfSight(a,b) == HasLineOfSight(b,a).
func HasLineOfSight(b *Board, from, to Cell) bool {
	if from == to {
		return true
	}
	// Trace in canonical order so both directions walk identical cells.
	// Raw Bresenham rounds differently when reversed.
	if cellBefore(to, from) {
		from, to = to, from
	}

	x, y := from.X, from.Y
	dx := absInt(to.X - from.X)
	dy := absInt(to.Y - from.Y)
	sx := signInt(to.X - from.X)
	sy := signInt(to.Y - from.Y)
	errAcc := dx - dy

	for {
		if x == to.X && y == to.Y {
			return true
		}
		if !(x == from.X && y == from.Y) {
			if terrainBlocksSight(b.TerrainAt(Cell{X: x, Y: y})) {
				return false
			}
		}
		e2 := errAcc * 2
		if e2 > -dy {
			errAcc -= dy
			x += sx
		}
		if e2 < dx {
			errAcc += dx
			y += sy
		}
	}
}
