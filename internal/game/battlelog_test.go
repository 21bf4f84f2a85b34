package game

import (
	"strings"
	"testing"
)

func TestBattleLog_FilterAndTail(t *testing.T) {
	bl := NewBattleLog()
	bl.Add(1, "P0", "player", "combat", "attack", "direct P0 → E1", 0)
	bl.Add(1, "E1", "enemy", "combat", "damage", "E1", 5)
	bl.Add(1, "--", "--", "turn", "phase", "player → enemy", 0)
	bl.Add(2, "E1", "enemy", "move", "approach", "(5,5) → (4,5)", 0)

	if got := len(bl.Filter("combat", "")); got != 2 {
		t.Fatalf("combat filter: got %d entries, want 2", got)
	}
	if got := len(bl.Filter("", "phase")); got != 1 {
		t.Fatalf("phase filter: got %d entries, want 1", got)
	}
	if got := len(bl.Filter("combat", "damage")); got != 1 {
		t.Fatalf("combat/damage filter: got %d entries, want 1", got)
	}
	if got := len(bl.FilterUnit("E1")); got != 2 {
		t.Fatalf("unit filter: got %d entries, want 2", got)
	}

	tail := bl.Tail(2)
	if len(tail) != 2 || tail[1].Key != "approach" {
		t.Fatalf("tail should keep the newest entries, got %+v", tail)
	}
	if got := bl.Tail(100); len(got) != 4 {
		t.Fatalf("oversized tail should return everything, got %d", len(got))
	}
}

func TestBattleLogEntry_String(t *testing.T) {
	e := BattleLogEntry{Turn: 4, Unit: "E1", Team: "enemy", Category: "combat", Key: "knockback", Value: "(5,5) → (6,5)"}
	line := e.String()
	if !strings.HasPrefix(line, "[T=004]") {
		t.Fatalf("missing turn prefix: %q", line)
	}
	if !strings.Contains(line, "knockback") || !strings.Contains(line, "(6,5)") {
		t.Fatalf("line dropped fields: %q", line)
	}
}

func TestFormatReport_IncludesRostersAndTail(t *testing.T) {
	tb := NewTestBattle(WithHero(4, 5), WithEnemy(KindArcher, 5, 5))
	tb.SelectAndAttack(0, nil, Cell{5, 5}, AttackDirect)

	report := FormatReport(tb.Session, 10)
	for _, want := range []string{"test-battle", "Hero", "won", "[T=001]"} {
		if !strings.Contains(report, want) {
			t.Fatalf("report missing %q:\n%s", want, report)
		}
	}
}
