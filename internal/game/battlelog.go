package game

import "fmt"

// BattleLogEntry is one recorded event during a combat session.
type BattleLogEntry struct {
	Turn     int
	Unit     string  // label e.g. "P0", "E3", or "--" for global events
	Team     string  // "player", "enemy", or "--"
	Category string  // combat, move, turn, outcome
	Key      string  // specific event name within the category
	Value    string  // human-readable detail
	NumVal   float64 // optional numeric value for threshold checks
}

// String formats the entry as a fixed-width log line.
//
//	[T=004] E1   combat   knockback   (5,5) → (6,5)
func (e BattleLogEntry) String() string {
	return fmt.Sprintf("[T=%03d] %-4s %-8s %-16s %s",
		e.Turn, e.Unit, e.Category, e.Key, e.Value)
}

// BattleLog collects structured combat events for the whole session. Unlike
// the HUD message strip it is unbounded and machine-readable; scenario tests
// and the headless report assert against it.
type BattleLog struct {
	entries []BattleLogEntry
}

func NewBattleLog() *BattleLog {
	return &BattleLog{}
}

// Add records a new entry.
func (bl *BattleLog) Add(turn int, unit, team, category, key, value string, numVal float64) {
	bl.entries = append(bl.entries, BattleLogEntry{
		Turn:     turn,
		Unit:     unit,
		Team:     team,
		Category: category,
		Key:      key,
		Value:    value,
		NumVal:   numVal,
	})
}

// Entries returns all recorded entries.
func (bl *BattleLog) Entries() []BattleLogEntry {
	return bl.entries
}

// Filter returns entries matching the given category and/or key.
// Pass empty string to match any value for that field.
func (bl *BattleLog) Filter(category, key string) []BattleLogEntry {
	var out []BattleLogEntry
	for _, e := range bl.entries {
		if category != "" && e.Category != category {
			continue
		}
		if key != "" && e.Key != key {
			continue
		}
		out = append(out, e)
	}
	return out
}

// FilterUnit returns entries for a specific unit label.
func (bl *BattleLog) FilterUnit(label string) []BattleLogEntry {
	var out []BattleLogEntry
	for _, e := range bl.entries {
		if e.Unit == label {
			out = append(out, e)
		}
	}
	return out
}

// Tail returns the last n entries (all of them when fewer exist).
func (bl *BattleLog) Tail(n int) []BattleLogEntry {
	if n >= len(bl.entries) {
		return bl.entries
	}
	return bl.entries[len(bl.entries)-n:]
}
