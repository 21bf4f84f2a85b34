package game

import (
	"encoding/json"
	"testing"
)

func TestSelectUnit_Gates(t *testing.T) {
	tb := NewTestBattle(WithHero(5, 5), WithEnemy(KindSoldier, 8, 8))

	if sel := tb.Session.SelectUnit(Cell{0, 0}); sel.Valid {
		t.Fatal("selecting an empty cell must be rejected")
	}
	if sel := tb.Session.SelectUnit(Cell{8, 8}); sel.Valid {
		t.Fatal("selecting an enemy unit must be rejected")
	}
	tb.Unit(0).Stunned = true
	if sel := tb.Session.SelectUnit(Cell{5, 5}); sel.Valid {
		t.Fatal("selecting a stunned unit must be rejected")
	}
	tb.Unit(0).Stunned = false
	sel := tb.Session.SelectUnit(Cell{5, 5})
	if !sel.Valid || sel.UnitID != 0 {
		t.Fatalf("expected valid selection of unit 0, got %+v", sel)
	}
	if len(sel.Reachable) == 0 {
		t.Fatal("selection must return the reachable set")
	}
}

func TestMoveUnit_SilentRejects(t *testing.T) {
	tb := NewTestBattle(WithHero(5, 5), WithEnemy(KindSoldier, 8, 8))
	hero := tb.Unit(0)

	// No selection yet.
	if mv := tb.Session.MoveUnit(hero.ID, Cell{5, 4}); mv.Valid {
		t.Fatal("move without selection must be rejected")
	}

	tb.Session.SelectUnit(hero.Pos)
	// Out of the reachable set.
	if mv := tb.Session.MoveUnit(hero.ID, Cell{5, -1}); mv.Valid {
		t.Fatal("move outside the reachable set must be rejected")
	}
	if hero.Pos != (Cell{5, 5}) {
		t.Fatal("rejected move must not change state")
	}

	if mv := tb.Session.MoveUnit(hero.ID, Cell{5, 4}); !mv.Valid {
		t.Fatal("move within the reachable set should succeed")
	}
	// One move per action.
	if mv := tb.Session.MoveUnit(hero.ID, Cell{5, 3}); mv.Valid {
		t.Fatal("second move in one action must be rejected")
	}
}

func TestAttack_StaleTargetIsNoOp(t *testing.T) {
	tb := NewTestBattle(WithHero(5, 5), WithEnemy(KindSoldier, 8, 8))
	hero := tb.Unit(0)
	tb.Session.SelectUnit(hero.Pos)

	enemyHP := tb.Unit(1).HP
	if res := tb.Session.Attack(hero.ID, Cell{8, 8}, AttackDirect); res.Valid {
		t.Fatal("attack on a cell outside the valid-target set must be rejected")
	}
	if tb.Unit(1).HP != enemyHP || tb.Session.Phase() != PhasePlayer {
		t.Fatal("rejected attack must not change state")
	}
}

func TestMoveUnit_RecomputesTargets(t *testing.T) {
	tb := NewTestBattle(WithHero(5, 5), WithEnemy(KindSoldier, 5, 2))
	hero := tb.Unit(0)

	sel := tb.Session.SelectUnit(hero.Pos)
	if len(sel.Targets) != 0 {
		t.Fatal("enemy at distance 3 must not be targetable for range 1")
	}
	mv := tb.Session.MoveUnit(hero.ID, Cell{5, 3})
	if !mv.Valid {
		t.Fatal("expected the approach move to be accepted")
	}
	if len(mv.Attackable) != 1 || mv.Attackable[0] != (Cell{5, 2}) {
		t.Fatalf("expected the enemy cell to become attackable, got %v", mv.Attackable)
	}
}

func TestSnapshot_RoundTrip(t *testing.T) {
	desc, ok := LevelByName("river-crossing")
	if !ok {
		t.Fatal("river-crossing level missing")
	}
	s, err := LoadLevel(desc)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	// Mutate some state first.
	s.AdvanceIfIdle()

	snap := s.Snapshot()
	data, err := json.Marshal(snap)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var decoded Snapshot
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	restored, err := RestoreSession(desc, decoded)
	if err != nil {
		t.Fatalf("restore: %v", err)
	}
	if restored.ID() != s.ID() {
		t.Fatal("session identity must survive the round trip")
	}
	if restored.Turn() != s.Turn() || restored.Phase() != s.Phase() || restored.GetOutcome() != s.GetOutcome() {
		t.Fatal("turn state must survive the round trip")
	}
	for id, u := range s.Board().Units() {
		ru := restored.Board().Unit(id)
		if ru == nil {
			t.Fatalf("unit %d missing after restore", id)
		}
		if ru.Pos != u.Pos || ru.HP != u.HP || ru.Kind != u.Kind || ru.Team != u.Team {
			t.Fatalf("unit %d diverged after restore: %+v vs %+v", id, ru, u)
		}
	}
	// The restored session accepts commands immediately.
	hero := restored.Board().UnitsOfTeam(TeamPlayer)[0]
	if sel := restored.SelectUnit(hero.Pos); !sel.Valid {
		t.Fatal("restored session must accept commands without re-derivation")
	}
}

func TestSnapshot_RejectsWrongLevel(t *testing.T) {
	first, _ := LevelByName("training-field")
	second, _ := LevelByName("river-crossing")
	s, err := LoadLevel(first)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if _, err := RestoreSession(second, s.Snapshot()); err == nil {
		t.Fatal("restore must reject a mismatched level descriptor")
	}
}

func TestLoadLevel_RejectsBadDescriptors(t *testing.T) {
	_, err := LoadLevel(LevelDescriptor{Name: "empty", Width: 5, Height: 5})
	if err == nil {
		t.Fatal("a level without units must be rejected")
	}

	_, err = LoadLevel(LevelDescriptor{
		Name: "enemy-only", Width: 5, Height: 5,
		Units: []UnitSpec{{Name: "E", Team: TeamEnemy, Kind: KindSoldier, Pos: Cell{1, 1}, HP: 5}},
	})
	if err == nil {
		t.Fatal("a level without a player unit must be rejected")
	}

	_, err = LoadLevel(LevelDescriptor{
		Name: "stacked", Width: 5, Height: 5,
		Units: []UnitSpec{
			{Name: "A", Team: TeamPlayer, Kind: KindSoldier, Pos: Cell{1, 1}, HP: 5},
			{Name: "B", Team: TeamEnemy, Kind: KindSoldier, Pos: Cell{1, 1}, HP: 5},
		},
	})
	if err == nil {
		t.Fatal("double occupancy in the roster must be rejected")
	}
}

func TestBuiltinLevels_AllLoad(t *testing.T) {
	for _, desc := range Levels() {
		if _, err := LoadLevel(desc); err != nil {
			t.Errorf("level %q failed to load: %v", desc.Name, err)
		}
	}
}
