package game

// ValidTargets returns the cells the attacker may strike this turn, mapped to
// the enemy unit occupying each: opposing-team units within Manhattan attack
// range with a clear line of sight.
func ValidTargets(b *Board, attacker *Unit) map[Cell]*Unit {
	out := make(map[Cell]*Unit)
	for _, u := range b.units {
		if u.Team == attacker.Team || u.ID == attacker.ID {
			continue
		}
		if manhattan(attacker.Pos, u.Pos) > attacker.AttackRange {
			continue
		}
		if !HasLineOfSight(b, attacker.Pos, u.Pos) {
			continue
		}
		out[u.Pos] = u
	}
	return out
}

// ThreatenedCells returns every cell the unit threatens, occupied or not:
// Manhattan distance in (0, AttackRange] with clear line of sight. Used for
// the hover danger-zone preview. Cells are emitted in row-major scan order.
func ThreatenedCells(b *Board, u *Unit) []Cell {
	var out []Cell
	r := u.AttackRange
	for y := u.Pos.Y - r; y <= u.Pos.Y+r; y++ {
		for x := u.Pos.X - r; x <= u.Pos.X+r; x++ {
			c := Cell{X: x, Y: y}
			if c == u.Pos || !b.InBounds(c) {
				continue
			}
			if manhattan(u.Pos, c) > r {
				continue
			}
			if !HasLineOfSight(b, u.Pos, c) {
				continue
			}
			out = append(out, c)
		}
	}
	return out
}
