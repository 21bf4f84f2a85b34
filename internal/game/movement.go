package game

// cardinalDirs is the fixed neighbour expansion order for movement search.
// The order is part of the planner's contract: first arrival wins, so a
// stable order keeps reachability deterministic.
var cardinalDirs = [4][2]int{
	{1, 0},  // east
	{-1, 0}, // west
	{0, 1},  // south
	{0, -1}, // north
}

// ReachableCells returns every cell the unit can reach this turn, mapped to
// the movement cost of first arrival. The unit's own cell is excluded and a
// stunned unit can reach nothing.
//
// The search is a FIFO breadth-first expansion with first-arrival
// deduplication: a cell is accepted once, at the cost of the path that found
// it first. This is cost-bounded reachability, not cheapest-path-per-cell.
// Entering forest costs 2, anything else passable costs 1; mountain, water
// and occupied cells are never entered. A unit starting on forest pays 2 for
// its first step regardless of destination, unless its kind slips out of
// forests freely.
func ReachableCells(b *Board, u *Unit) map[Cell]int {
	out := make(map[Cell]int)
	if u.Stunned {
		return out
	}

	start := u.Pos
	forestStart := b.TerrainAt(start) == TerrainForest && !exitsForestFreely(u.Kind)

	type frontier struct {
		cell Cell
		cost int
	}
	queue := []frontier{{cell: start, cost: 0}}
	visited := map[Cell]bool{start: true}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		for _, d := range cardinalDirs {
			next := cur.cell.Add(d[0], d[1])
			if visited[next] || !b.InBounds(next) {
				continue
			}
			terrain := b.TerrainAt(next)
			if terrainBlocksMovement(terrain) {
				continue
			}
			if b.UnitAt(next) != nil {
				continue
			}
			step := terrainMoveCost(terrain)
			if forestStart && cur.cell == start {
				step = 2
			}
			total := cur.cost + step
			if total > u.MoveRange {
				continue
			}
			visited[next] = true
			out[next] = total
			queue = append(queue, frontier{cell: next, cost: total})
		}
	}
	return out
}
