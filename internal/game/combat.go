package game

// AttackMode selects per-action between plain damage and a knockback bash.
type AttackMode uint8

const (
	AttackDirect AttackMode = iota
	AttackBash
)

func (m AttackMode) String() string {
	switch m {
	case AttackDirect:
		return "direct"
	case AttackBash:
		return "bash"
	default:
		return "unknown"
	}
}

// bashPushDistance is the fixed knockback length of a bash, in cells.
const bashPushDistance = 2

// collisionKind classifies the first obstruction found on a knockback path.
type collisionKind uint8

const (
	collideNone collisionKind = iota
	collideBounds
	collideMountain
	collideUnit
)

// combatResolver applies attacks to the board on behalf of a session,
// recording log lines and emitting side-channel events as it mutates.
type combatResolver struct {
	s *Session
}

// eliminate removes a unit from the roster and reports why. Removal is key
// deletion, so re-eliminating an already-removed ID is a no-op.
func (r *combatResolver) eliminate(u *Unit, cause EliminationCause) {
	if r.s.board.Unit(u.ID) == nil {
		return
	}
	r.s.board.RemoveUnit(u.ID)
	r.s.log.Add(r.s.turn, u.Label(), u.Team.String(), "combat", "eliminated", cause.String(), 0)
	r.s.emit(Event{Kind: EventEliminated, UnitID: u.ID, Cell: u.Pos, Cause: cause})
}

// damage applies amount to the unit, eliminating it when HP reaches zero.
// The live roster never holds a unit at HP <= 0.
func (r *combatResolver) damage(u *Unit, amount int) {
	if amount <= 0 {
		return
	}
	u.HP -= amount
	r.s.log.Add(r.s.turn, u.Label(), u.Team.String(), "combat", "damage", u.Label(), float64(amount))
	r.s.emit(Event{Kind: EventDamage, UnitID: u.ID, Cell: u.Pos, Amount: amount})
	if u.HP <= 0 {
		u.HP = 0
		r.eliminate(u, CauseDamage)
	}
}

// stun flags the unit and reports it. Only the primary target of a bash is
// ever stunned; chain-reaction units never are.
func (r *combatResolver) stun(u *Unit) {
	u.Stunned = true
	r.s.log.Add(r.s.turn, u.Label(), u.Team.String(), "combat", "stunned", u.Pos.String(), 0)
	r.s.emit(Event{Kind: EventStunned, UnitID: u.ID, Cell: u.Pos})
}

// displace moves a unit along a knockback path and reports the travel.
func (r *combatResolver) displace(u *Unit, path []Cell, to Cell) {
	from := u.Pos
	r.s.board.MoveUnit(u.ID, to)
	r.s.log.Add(r.s.turn, u.Label(), u.Team.String(), "combat", "knockback",
		from.String()+" → "+to.String(), 0)
	r.s.emit(Event{Kind: EventKnockback, UnitID: u.ID, Cell: to, Path: path})
}

// resolveDirect applies a plain attack: damage only, nobody moves.
func (r *combatResolver) resolveDirect(attacker, target *Unit) {
	r.damage(target, attacker.Damage)
}

// scanKnockbackPath walks the path cells in order and returns the first
// obstruction: off-grid, a mountain tile, or an occupied cell. index is the
// position within path where the obstruction sits.
func (r *combatResolver) scanKnockbackPath(path []Cell) (kind collisionKind, index int, struck *Unit) {
	for i, c := range path {
		if !r.s.board.InBounds(c) {
			return collideBounds, i, nil
		}
		if r.s.board.TerrainAt(c) == TerrainMountain {
			return collideMountain, i, nil
		}
		if u := r.s.board.UnitAt(c); u != nil {
			return collideUnit, i, u
		}
	}
	return collideNone, -1, nil
}

// resolveBash pushes the target two cells away from the attacker and resolves
// whatever it runs into. Returns true when the resolution stunned the primary
// target, which forces the acting turn to end at once.
//
// The push axis is the sign of the attacker→target offset; range gating keeps
// it purely cardinal in practice.
func (r *combatResolver) resolveBash(attacker, target *Unit) (turnEnds bool) {
	dx := signInt(target.Pos.X - attacker.Pos.X)
	dy := signInt(target.Pos.Y - attacker.Pos.Y)

	path := make([]Cell, 0, bashPushDistance)
	for i := 1; i <= bashPushDistance; i++ {
		path = append(path, target.Pos.Add(dx*i, dy*i))
	}

	kind, index, struck := r.scanKnockbackPath(path)
	switch kind {
	case collideNone:
		dest := path[len(path)-1]
		if r.s.board.TerrainAt(dest) == TerrainWater {
			r.eliminate(target, CauseWater)
			return false
		}
		r.displace(target, path, dest)
		r.damage(target, 1)
		return false

	case collideBounds:
		// Knocked clean off the grid. No HP bookkeeping, just removal.
		r.eliminate(target, CauseEdge)
		return false

	case collideMountain:
		// The target slams into the rock face and settles on the mountain
		// cell itself. Deliberate rules quirk: this is the one way a unit
		// comes to rest on a mountain.
		stop := path[index]
		r.displace(target, path[:index+1], stop)
		r.damage(target, 1)
		if r.s.board.Unit(target.ID) == nil {
			return true
		}
		r.stun(target)
		return true

	case collideUnit:
		return r.resolveUnitCollision(target, struck, path, index, dx, dy)
	}

	// Terrain-only stop with nothing qualifying: settle one cell short of
	// the obstruction. Defensive fallback, should be unreachable.
	if index > 0 {
		stop := path[index-1]
		r.displace(target, path[:index], stop)
		r.damage(target, 1)
	}
	return false
}

// resolveUnitCollision handles a bash target crashing into another unit at
// path[index].
func (r *combatResolver) resolveUnitCollision(target, struck *Unit, path []Cell, index int, dx, dy int) (turnEnds bool) {
	collision := path[index]

	shieldVsArcher := (target.Kind == KindShieldbearer && struck.Kind == KindArcher) ||
		(target.Kind == KindArcher && struck.Kind == KindShieldbearer)
	if shieldVsArcher {
		// The archer shatters outright; the heavier unit ends up in the
		// struck cell, bruised and stunned. No knockback for the archer.
		archer, survivor := struck, target
		if target.Kind == KindArcher {
			archer, survivor = target, struck
		}
		r.eliminate(archer, CauseArcherBreak)
		if r.s.board.Unit(survivor.ID) == nil {
			return true
		}
		if survivor.Pos != collision {
			r.displace(survivor, path[:index+1], collision)
		}
		r.damage(survivor, 1)
		if r.s.board.Unit(survivor.ID) == nil {
			return true
		}
		r.stun(survivor)
		return true
	}

	// Generic unit-vs-unit: the pushed unit swaps into the struck cell and
	// the struck unit is itself knocked two cells further. The secondary
	// push measures from the collision point, not from the struck unit's
	// original position, so displacement compounds down a chain.
	r.resolveSecondaryKnockback(struck, collision, dx, dy)

	r.displace(target, path[:index+1], collision)
	r.damage(target, 1)
	if r.s.board.Unit(target.ID) == nil {
		return true
	}
	r.stun(target)
	return true
}

// resolveSecondaryKnockback pushes a struck unit two cells onward from the
// collision point. Secondary units take 1 HP and are never stunned; off-grid
// or water landings eliminate them.
func (r *combatResolver) resolveSecondaryKnockback(struck *Unit, collision Cell, dx, dy int) {
	dest := collision.Add(dx*bashPushDistance, dy*bashPushDistance)
	mid := collision.Add(dx, dy)

	if !r.s.board.InBounds(dest) {
		r.eliminate(struck, CauseEdge)
		return
	}
	if r.s.board.TerrainAt(dest) == TerrainWater {
		r.eliminate(struck, CauseWater)
		return
	}
	// The landing cell must end up singly occupied. When something already
	// holds it (or it is rock), fall back to the midpoint; a blocked
	// midpoint leaves nowhere to settle and the unit is crushed.
	landing := dest
	if r.s.board.TerrainAt(dest) == TerrainMountain || r.s.board.UnitAt(dest) != nil {
		if terrainBlocksMovement(r.s.board.TerrainAt(mid)) || r.s.board.UnitAt(mid) != nil || !r.s.board.InBounds(mid) {
			r.eliminate(struck, CauseEdge)
			return
		}
		landing = mid
	}
	r.displace(struck, []Cell{mid, landing}, landing)
	r.damage(struck, 1)
}
