package game

import "testing"

func TestReachable_BudgetAndExclusions(t *testing.T) {
	tb := NewTestBattle(
		WithHero(5, 5),
		WithEnemy(KindSoldier, 5, 4), // occupied neighbour
		WithMountain(4, 5),
		WithWater(6, 5),
	)
	hero := tb.Unit(0)
	reach := ReachableCells(tb.Session.Board(), hero)

	if len(reach) == 0 {
		t.Fatal("expected reachable cells on an open field")
	}
	for c, cost := range reach {
		if cost > hero.MoveRange {
			t.Errorf("cell %s costs %d, over budget %d", c, cost, hero.MoveRange)
		}
		if c == hero.Pos {
			t.Error("own cell must be excluded")
		}
		if tb.Session.Board().UnitAt(c) != nil {
			t.Errorf("occupied cell %s returned as reachable", c)
		}
		if k := tb.Session.Board().TerrainAt(c); k == TerrainMountain || k == TerrainWater {
			t.Errorf("impassable %s cell %s returned as reachable", k, c)
		}
	}
	for _, blocked := range []Cell{{4, 5}, {6, 5}, {5, 4}} {
		if _, ok := reach[blocked]; ok {
			t.Errorf("cell %s must not be reachable", blocked)
		}
	}
}

func TestReachable_ForestEntryCostsTwo(t *testing.T) {
	tb := NewTestBattle(
		WithUnit(UnitSpec{Name: "Scout", Team: TeamPlayer, Kind: KindSoldier,
			Pos: Cell{5, 5}, HP: 10, MoveRange: 2, AttackRange: 1, Damage: 1}),
		WithForest(6, 5),
	)
	reach := ReachableCells(tb.Session.Board(), tb.Unit(0))

	if cost := reach[Cell{6, 5}]; cost != 2 {
		t.Fatalf("expected forest entry cost 2, got %d", cost)
	}
	if _, ok := reach[Cell{7, 5}]; ok {
		t.Fatal("cell beyond the forest should exceed a budget of 2")
	}
}

func TestReachable_ForestExitCostsTwo(t *testing.T) {
	tb := NewTestBattle(
		WithUnit(UnitSpec{Name: "Scout", Team: TeamPlayer, Kind: KindSoldier,
			Pos: Cell{5, 5}, HP: 10, MoveRange: 2, AttackRange: 1, Damage: 1}),
		WithForest(5, 5),
	)
	reach := ReachableCells(tb.Session.Board(), tb.Unit(0))

	if cost := reach[Cell{6, 5}]; cost != 2 {
		t.Fatalf("expected first step off forest to cost 2, got %d", cost)
	}
	if _, ok := reach[Cell{7, 5}]; ok {
		t.Fatal("with budget 2 spent on the exit step, distance 2 must be out of reach")
	}
}

func TestReachable_ArcherExemptFromForestExit(t *testing.T) {
	tb := NewTestBattle(
		WithUnit(UnitSpec{Name: "Archer", Team: TeamPlayer, Kind: KindArcher,
			Pos: Cell{5, 5}, HP: 4, MoveRange: 2, AttackRange: 2, Damage: 4}),
		WithForest(5, 5),
	)
	reach := ReachableCells(tb.Session.Board(), tb.Unit(0))

	if cost := reach[Cell{6, 5}]; cost != 1 {
		t.Fatalf("archer exit step should cost 1, got %d", cost)
	}
	if _, ok := reach[Cell{7, 5}]; !ok {
		t.Fatal("archer should reach distance 2 out of a forest")
	}
}

func TestReachable_StunnedHasNoMoves(t *testing.T) {
	tb := NewTestBattle(WithHero(5, 5))
	hero := tb.Unit(0)
	hero.Stunned = true
	if reach := ReachableCells(tb.Session.Board(), hero); len(reach) != 0 {
		t.Fatalf("stunned unit must reach nothing, got %d cells", len(reach))
	}
}

// First arrival wins: the four-hop line through triple forest reaches (9,5)
// before the six-hop detour over plains, so the recorded cost is the
// expensive one even though the detour is cheaper.
func TestReachable_FirstArrivalNotCheapest(t *testing.T) {
	tb := NewTestBattle(
		WithUnit(UnitSpec{Name: "Scout", Team: TeamPlayer, Kind: KindSoldier,
			Pos: Cell{5, 5}, HP: 10, MoveRange: 7, AttackRange: 1, Damage: 1}),
		WithForest(6, 5), WithForest(7, 5), WithForest(8, 5),
	)
	reach := ReachableCells(tb.Session.Board(), tb.Unit(0))

	// Straight: 2+2+2+1 = 7 in four hops. Detour via row 4: all plains,
	// cost 6 in six hops, but it arrives later.
	if cost := reach[Cell{9, 5}]; cost != 7 {
		t.Fatalf("expected first-arrival cost 7 through the forests, got %d", cost)
	}
}

// With a tighter budget the straight-line arrival is over budget and gets
// discarded without marking the cell visited, letting the later detour claim
// it at its own cost.
func TestReachable_OverBudgetArrivalDoesNotPoison(t *testing.T) {
	tb := NewTestBattle(
		WithUnit(UnitSpec{Name: "Scout", Team: TeamPlayer, Kind: KindSoldier,
			Pos: Cell{5, 5}, HP: 10, MoveRange: 6, AttackRange: 1, Damage: 1}),
		WithForest(6, 5), WithForest(7, 5), WithForest(8, 5),
	)
	reach := ReachableCells(tb.Session.Board(), tb.Unit(0))

	if cost, ok := reach[Cell{9, 5}]; !ok || cost != 6 {
		t.Fatalf("expected detour arrival at cost 6, got cost=%d ok=%v", cost, ok)
	}
}
