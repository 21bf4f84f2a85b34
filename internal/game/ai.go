package game

import "sort"

// heroUnit returns the player unit the enemy force converges on: the
// lowest-ID live player unit.
func (s *Session) heroUnit() *Unit {
	players := s.board.UnitsOfTeam(TeamPlayer)
	if len(players) == 0 {
		return nil
	}
	return players[0]
}

// bestApproach picks, among the unit's reachable cells, the one minimizing
// |distance_to_goal − attackRange|. Returns false when no cell strictly beats
// the current position, in which case the unit stays put. Ties resolve by
// (Y, X) so the choice is deterministic.
func bestApproach(b *Board, u *Unit, goal Cell) (Cell, bool) {
	bestScore := absInt(manhattan(u.Pos, goal) - u.AttackRange)
	var best Cell
	found := false
	for c := range ReachableCells(b, u) {
		score := absInt(manhattan(c, goal) - u.AttackRange)
		if score > bestScore {
			continue
		}
		if score == bestScore && (!found || !cellBefore(c, best)) {
			continue
		}
		if score < bestScore {
			found = true
		}
		bestScore = score
		best = c
	}
	return best, found
}

// cellBefore is the deterministic tie-break order: row-major.
func cellBefore(a, b Cell) bool {
	if a.Y != b.Y {
		return a.Y < b.Y
	}
	return a.X < b.X
}

// runEnemyPhase executes the whole enemy turn as one atomic batch:
//
//  1. Snapshot the enemy roster sorted ascending by Manhattan distance to
//     the hero (ties by ID); both passes walk this fixed order.
//  2. Movement pass: every non-stunned enemy that cannot already hit the
//     hero (range and line of sight) moves toward its preferred engagement
//     distance. All movement completes before any attack is evaluated.
//  3. Attack pass: every non-stunned enemy whose final position is in range
//     with line of sight contributes its damage; the contributions
//     accumulate and hit the hero's HP pool once.
func (s *Session) runEnemyPhase() {
	if s.outcome != OutcomePlaying {
		return
	}
	hero := s.heroUnit()
	if hero == nil {
		s.checkOutcome()
		return
	}

	enemies := s.board.UnitsOfTeam(TeamEnemy)
	sort.SliceStable(enemies, func(i, j int) bool {
		di := manhattan(enemies[i].Pos, hero.Pos)
		dj := manhattan(enemies[j].Pos, hero.Pos)
		if di != dj {
			return di < dj
		}
		return enemies[i].ID < enemies[j].ID
	})

	for _, e := range enemies {
		if s.board.Unit(e.ID) == nil || e.Stunned {
			continue
		}
		inRange := manhattan(e.Pos, hero.Pos) <= e.AttackRange && HasLineOfSight(s.board, e.Pos, hero.Pos)
		if inRange {
			continue
		}
		dest, ok := bestApproach(s.board, e, hero.Pos)
		if !ok {
			continue
		}
		from := e.Pos
		s.board.MoveUnit(e.ID, dest)
		s.log.Add(s.turn, e.Label(), e.Team.String(), "move", "approach", from.String()+" → "+dest.String(), 0)
	}

	total := 0
	for _, e := range enemies {
		if s.board.Unit(e.ID) == nil || e.Stunned {
			continue
		}
		if manhattan(e.Pos, hero.Pos) > e.AttackRange || !HasLineOfSight(s.board, e.Pos, hero.Pos) {
			continue
		}
		total += e.Damage
		s.log.Add(s.turn, e.Label(), e.Team.String(), "combat", "attack",
			"direct "+e.Label()+" → "+hero.Label(), float64(e.Damage))
		s.emit(Event{Kind: EventDamage, UnitID: hero.ID, Cell: hero.Pos, Amount: e.Damage})
	}
	if total > 0 {
		hero.HP -= total
		s.log.Add(s.turn, hero.Label(), hero.Team.String(), "combat", "damage", hero.Label(), float64(total))
		if hero.HP <= 0 {
			hero.HP = 0
			s.resolver.eliminate(hero, CauseDamage)
		}
	}
	s.checkOutcome()
}
