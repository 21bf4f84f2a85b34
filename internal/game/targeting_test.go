package game

import "testing"

func TestValidTargets_RangeAndTeamGate(t *testing.T) {
	tb := NewTestBattle(
		WithUnit(UnitSpec{Name: "Archer", Team: TeamPlayer, Kind: KindArcher,
			Pos: Cell{5, 5}, HP: 4, MoveRange: 3, AttackRange: 2, Damage: 4}),
		WithEnemy(KindSoldier, 5, 7), // distance 2: in range
		WithEnemy(KindSoldier, 5, 2), // distance 3: out of range
		WithUnit(UnitSpec{Name: "Ally", Team: TeamPlayer, Kind: KindSoldier,
			Pos: Cell{6, 5}, HP: 10, MoveRange: 3, AttackRange: 1, Damage: 2}),
	)
	targets := ValidTargets(tb.Session.Board(), tb.Unit(0))

	if len(targets) != 1 {
		t.Fatalf("expected exactly one target, got %d", len(targets))
	}
	if _, ok := targets[Cell{5, 7}]; !ok {
		t.Fatal("enemy at distance 2 should be targetable")
	}
}

func TestValidTargets_BlockedByMountain(t *testing.T) {
	tb := NewTestBattle(
		WithUnit(UnitSpec{Name: "Archer", Team: TeamPlayer, Kind: KindArcher,
			Pos: Cell{5, 5}, HP: 4, MoveRange: 3, AttackRange: 2, Damage: 4}),
		WithEnemy(KindSoldier, 5, 7),
		WithMountain(5, 6),
	)
	targets := ValidTargets(tb.Session.Board(), tb.Unit(0))
	if len(targets) != 0 {
		t.Fatalf("mountain between attacker and target must block, got %d targets", len(targets))
	}
}

func TestThreatenedCells_RingAndLOS(t *testing.T) {
	tb := NewTestBattle(
		WithUnit(UnitSpec{Name: "Archer", Team: TeamPlayer, Kind: KindArcher,
			Pos: Cell{5, 5}, HP: 4, MoveRange: 3, AttackRange: 2, Damage: 4}),
		WithMountain(5, 6),
	)
	u := tb.Unit(0)
	threat := ThreatenedCells(tb.Session.Board(), u)

	seen := make(map[Cell]bool, len(threat))
	for _, c := range threat {
		seen[c] = true
		if c == u.Pos {
			t.Fatal("own cell must not be threatened")
		}
		if d := manhattan(u.Pos, c); d < 1 || d > u.AttackRange {
			t.Fatalf("cell %s at distance %d outside (0,%d]", c, d, u.AttackRange)
		}
	}
	if !seen[Cell{7, 5}] || !seen[Cell{6, 6}] {
		t.Fatal("expected open ring cells to be threatened")
	}
	// The mountain itself is opaque ground, and the cell behind it is shadowed.
	if seen[Cell{5, 7}] {
		t.Fatal("cell behind the mountain must not be threatened")
	}
}

func TestThreatenedCells_EmptyCellsIncluded(t *testing.T) {
	tb := NewTestBattle(WithHero(5, 5))
	threat := ThreatenedCells(tb.Session.Board(), tb.Unit(0))
	// Range 1 on open plains: the four neighbours, occupied or not.
	if len(threat) != 4 {
		t.Fatalf("expected 4 threatened cells for range 1, got %d", len(threat))
	}
}
