package game

import (
	"fmt"
	"strings"
)

// FormatReport renders a plain-text battle report: session header, both
// rosters, and the tail of the battle log. The HUD copies this to the
// clipboard and the headless runner prints it per run.
func FormatReport(s *Session, logTail int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "--- Shield-Bash battle report ---\n")
	fmt.Fprintf(&b, "session=%s level=%s turn=%d phase=%s outcome=%s\n\n",
		s.ID(), s.LevelName(), s.Turn(), s.Phase(), s.GetOutcome())

	writeTeam := func(title string, team Team) {
		fmt.Fprintf(&b, "== %s ==\n", title)
		units := s.Board().UnitsOfTeam(team)
		if len(units) == 0 {
			b.WriteString("(none remaining)\n")
		}
		for _, u := range units {
			status := ""
			if u.Stunned {
				status = " [stunned]"
			}
			fmt.Fprintf(&b, "%-4s %-14s %-13s %s hp=%d/%d rng=%d dmg=%d mov=%d%s\n",
				u.Label(), u.Name, u.Kind, u.Pos, u.HP, u.MaxHP,
				u.AttackRange, u.Damage, u.MoveRange, status)
		}
		b.WriteString("\n")
	}
	writeTeam("player", TeamPlayer)
	writeTeam("enemy", TeamEnemy)

	if logTail > 0 {
		fmt.Fprintf(&b, "== log (last %d) ==\n", logTail)
		entries := s.Log().Tail(logTail)
		if len(entries) == 0 {
			b.WriteString("(no log entries)\n")
		}
		for _, e := range entries {
			b.WriteString(e.String())
			b.WriteString("\n")
		}
	}
	return b.String()
}
