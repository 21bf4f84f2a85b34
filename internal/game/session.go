package game

import (
	"fmt"

	"github.com/google/uuid"
)

// Session owns one combat: the board, turn state, outcome, the battle log,
// and the player's cached action sets. All mutation happens inside its
// synchronous handlers; there is no background work and no parallel access.
type Session struct {
	id        uuid.UUID
	levelName string
	board     *Board
	phase     TurnPhase
	outcome   Outcome
	turn      int
	log       *BattleLog
	sinks     []EventSink
	resolver  combatResolver

	// Player action caches. Commands validate against these, so a stale UI
	// click is rejected as a no-op rather than surfacing an error.
	selectedID int
	hasMoved   bool
	reachable  map[Cell]int
	targets    map[Cell]*Unit
}

// LoadLevel initializes a session from a level descriptor: terrain from the
// assignment function, roster from the unit specs, player phase, playing
// outcome.
func LoadLevel(desc LevelDescriptor) (*Session, error) {
	if err := desc.validate(); err != nil {
		return nil, err
	}
	board, err := NewBoard(desc.Width, desc.Height, desc.Terrain)
	if err != nil {
		return nil, err
	}
	s := &Session{
		id:         uuid.New(),
		levelName:  desc.Name,
		board:      board,
		phase:      PhasePlayer,
		outcome:    OutcomePlaying,
		turn:       1,
		log:        NewBattleLog(),
		selectedID: -1,
	}
	s.resolver = combatResolver{s: s}
	for i, spec := range desc.Units {
		u := &Unit{
			ID:          i,
			Name:        spec.Name,
			Team:        spec.Team,
			Kind:        spec.Kind,
			Pos:         spec.Pos,
			HP:          spec.HP,
			MaxHP:       spec.HP,
			MoveRange:   spec.MoveRange,
			AttackRange: spec.AttackRange,
			Damage:      spec.Damage,
		}
		if err := board.AddUnit(u); err != nil {
			return nil, fmt.Errorf("level %q: %w", desc.Name, err)
		}
	}
	return s, nil
}

// ID is the session identity, stable across snapshot and restore.
func (s *Session) ID() uuid.UUID { return s.id }

// LevelName names the descriptor this session was loaded from.
func (s *Session) LevelName() string { return s.levelName }

// Board exposes the grid model. External collaborators read it; only the
// session mutates it.
func (s *Session) Board() *Board { return s.board }

// Phase reports whose turn segment is running.
func (s *Session) Phase() TurnPhase { return s.phase }

// GetOutcome reports the session result.
func (s *Session) GetOutcome() Outcome { return s.outcome }

// Turn is the 1-based turn counter, advanced each time control returns to
// the player.
func (s *Session) Turn() int { return s.turn }

// Log is the structured battle log.
func (s *Session) Log() *BattleLog { return s.log }

// AddSink registers a side-channel event consumer.
func (s *Session) AddSink(sink EventSink) {
	if sink != nil {
		s.sinks = append(s.sinks, sink)
	}
}

func (s *Session) emit(e Event) {
	for _, sink := range s.sinks {
		sink.HandleEvent(e)
	}
}

func (s *Session) clearSelection() {
	s.selectedID = -1
	s.hasMoved = false
	s.reachable = nil
	s.targets = nil
}

// SelectResult is the answer to a select-unit command.
type SelectResult struct {
	Valid     bool
	UnitID    int
	Reachable map[Cell]int
	Targets   []Cell
}

// SelectUnit begins a player action on the unit at c. Selecting an empty
// cell, an enemy, or a stunned unit is rejected; selecting a second unit
// mid-action abandons the first selection.
func (s *Session) SelectUnit(c Cell) SelectResult {
	if s.outcome != OutcomePlaying || s.phase != PhasePlayer {
		return SelectResult{}
	}
	u := s.board.UnitAt(c)
	if u == nil || u.Team != TeamPlayer || u.Stunned {
		return SelectResult{}
	}
	s.selectedID = u.ID
	s.hasMoved = false
	s.reachable = ReachableCells(s.board, u)
	s.targets = ValidTargets(s.board, u)
	return SelectResult{
		Valid:     true,
		UnitID:    u.ID,
		Reachable: s.reachable,
		Targets:   s.targetCells(),
	}
}

func (s *Session) targetCells() []Cell {
	var out []Cell
	for c := range s.targets {
		out = append(out, c)
	}
	return out
}

// MoveResult is the answer to a move command.
type MoveResult struct {
	Valid      bool
	Attackable []Cell
}

// MoveUnit moves the selected unit to dest. The destination must be in the
// reachable set computed at selection; anything else — wrong unit, second
// move, stale cell — is a silent no-op. On success the valid-target cache is
// recomputed from the new position.
func (s *Session) MoveUnit(unitID int, dest Cell) MoveResult {
	if s.outcome != OutcomePlaying || s.phase != PhasePlayer {
		return MoveResult{}
	}
	if unitID != s.selectedID || s.hasMoved {
		return MoveResult{}
	}
	if _, ok := s.reachable[dest]; !ok {
		return MoveResult{}
	}
	u := s.board.Unit(unitID)
	if u == nil {
		return MoveResult{}
	}
	from := u.Pos
	s.board.MoveUnit(unitID, dest)
	s.hasMoved = true
	s.reachable = nil
	s.targets = ValidTargets(s.board, u)
	s.log.Add(s.turn, u.Label(), u.Team.String(), "move", "step", from.String()+" → "+dest.String(), 0)
	return MoveResult{Valid: true, Attackable: s.targetCells()}
}

// AttackResult is the answer to an attack command.
type AttackResult struct {
	Valid     bool
	TurnEnded bool
	Events    []Event
}

// Attack resolves an attack by the selected unit against targetCell in the
// given mode. The cell must be in the valid-target cache; stale targets are
// silent no-ops. Resolving an attack ends the player turn and runs the enemy
// phase; a stun outcome short-circuits to the same place.
func (s *Session) Attack(unitID int, targetCell Cell, mode AttackMode) AttackResult {
	if s.outcome != OutcomePlaying || s.phase != PhasePlayer {
		return AttackResult{}
	}
	if unitID != s.selectedID {
		return AttackResult{}
	}
	target, ok := s.targets[targetCell]
	if !ok || s.board.Unit(target.ID) == nil {
		return AttackResult{}
	}
	attacker := s.board.Unit(unitID)
	if attacker == nil {
		return AttackResult{}
	}

	var collected []Event
	collect := EventSinkFunc(func(e Event) { collected = append(collected, e) })
	s.sinks = append(s.sinks, collect)

	s.log.Add(s.turn, attacker.Label(), attacker.Team.String(), "combat", "attack",
		fmt.Sprintf("%s %s → %s", mode, attacker.Label(), target.Label()), 0)

	switch mode {
	case AttackBash:
		// The resolver reports whether a stun cut the action short; either
		// way the attack ends the player turn, so the flag is not needed
		// here.
		s.resolver.resolveBash(attacker, target)
	default:
		s.resolver.resolveDirect(attacker, target)
	}
	s.sinks = s.sinks[:len(s.sinks)-1]

	s.checkOutcome()
	s.endPlayerTurn()
	return AttackResult{Valid: true, TurnEnded: true, Events: collected}
}

// AdvanceIfIdle ends the player turn without an attack: the pass command,
// also invoked by the UI when a moved unit has no valid targets.
func (s *Session) AdvanceIfIdle() {
	if s.outcome != OutcomePlaying || s.phase != PhasePlayer {
		return
	}
	s.log.Add(s.turn, "--", "--", "turn", "pass", "player idle", 0)
	s.endPlayerTurn()
}
