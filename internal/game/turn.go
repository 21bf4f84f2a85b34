package game

// TurnPhase says whose turn segment is running.
type TurnPhase uint8

const (
	PhasePlayer TurnPhase = iota
	PhaseEnemy
)

func (p TurnPhase) String() string {
	switch p {
	case PhasePlayer:
		return "player"
	case PhaseEnemy:
		return "enemy"
	default:
		return "unknown"
	}
}

// Outcome is the session result. Terminal once it leaves playing: no command
// mutates combat state afterwards.
type Outcome uint8

const (
	OutcomePlaying Outcome = iota
	OutcomeWon             // no enemy units remain
	OutcomeLost            // no player unit remains
)

func (o Outcome) String() string {
	switch o {
	case OutcomePlaying:
		return "playing"
	case OutcomeWon:
		return "won"
	case OutcomeLost:
		return "lost"
	default:
		return "unknown"
	}
}

// checkOutcome runs the win/loss check after a mutation and emits the
// outcome-changed event on the transition. Once terminal it never moves
// again.
func (s *Session) checkOutcome() {
	if s.outcome != OutcomePlaying {
		return
	}
	var next Outcome
	switch {
	case len(s.board.UnitsOfTeam(TeamEnemy)) == 0:
		next = OutcomeWon
	case len(s.board.UnitsOfTeam(TeamPlayer)) == 0:
		next = OutcomeLost
	default:
		return
	}
	s.outcome = next
	s.log.Add(s.turn, "--", "--", "outcome", "changed", next.String(), 0)
	s.emit(Event{Kind: EventOutcomeChanged, Outcome: next})
}

// endPlayerTurn hands control to the enemy phase, runs it to completion as
// one atomic batch, clears every stunned flag, and returns control to the
// player. The stun clear happens exactly at the enemy-phase end, so a stun
// lasts one enemy cycle from the stunned unit's perspective.
func (s *Session) endPlayerTurn() {
	if s.outcome != OutcomePlaying {
		return
	}
	s.clearSelection()

	s.phase = PhaseEnemy
	s.log.Add(s.turn, "--", "--", "turn", "phase", "player → enemy", 0)
	s.emit(Event{Kind: EventTurnChanged, Phase: PhaseEnemy})

	s.runEnemyPhase()

	for _, u := range s.board.Units() {
		u.Stunned = false
	}
	s.phase = PhasePlayer
	s.turn++
	s.log.Add(s.turn, "--", "--", "turn", "phase", "enemy → player", 0)
	s.emit(Event{Kind: EventTurnChanged, Phase: PhasePlayer})
}
