package game

import (
	"fmt"

	"github.com/google/uuid"
)

// Snapshot is the serializable form of a session, consumed by the external
// save layer. Terrain is not embedded: it is a pure function of the level
// descriptor, so the snapshot carries the level name and restore re-derives
// the grid from the descriptor.
type Snapshot struct {
	SessionID string    `json:"session_id"`
	Level     string    `json:"level"`
	Turn      int       `json:"turn"`
	Phase     TurnPhase `json:"phase"`
	Outcome   Outcome   `json:"outcome"`
	Units     []Unit    `json:"units"`
}

// Snapshot captures the authoritative session state. Caches (reachable sets,
// valid targets) are deliberately excluded; they are recomputed on demand.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		SessionID: s.id.String(),
		Level:     s.levelName,
		Turn:      s.turn,
		Phase:     s.phase,
		Outcome:   s.outcome,
	}
	for _, team := range []Team{TeamPlayer, TeamEnemy} {
		for _, u := range s.board.UnitsOfTeam(team) {
			snap.Units = append(snap.Units, *u)
		}
	}
	return snap
}

// RestoreSession rebuilds a session from a snapshot and the level descriptor
// it was taken from. Derived caches are not recomputed; the restored session
// is ready for the next command immediately.
func RestoreSession(desc LevelDescriptor, snap Snapshot) (*Session, error) {
	if desc.Name != snap.Level {
		return nil, fmt.Errorf("snapshot is for level %q, descriptor is %q", snap.Level, desc.Name)
	}
	id, err := uuid.Parse(snap.SessionID)
	if err != nil {
		return nil, fmt.Errorf("bad session id %q: %w", snap.SessionID, err)
	}
	board, err := NewBoard(desc.Width, desc.Height, desc.Terrain)
	if err != nil {
		return nil, err
	}
	s := &Session{
		id:         id,
		levelName:  desc.Name,
		board:      board,
		phase:      snap.Phase,
		outcome:    snap.Outcome,
		turn:       snap.Turn,
		log:        NewBattleLog(),
		selectedID: -1,
	}
	s.resolver = combatResolver{s: s}
	for i := range snap.Units {
		u := snap.Units[i]
		if err := board.AddUnit(&u); err != nil {
			return nil, fmt.Errorf("restore %q: %w", snap.Level, err)
		}
	}
	return s, nil
}
