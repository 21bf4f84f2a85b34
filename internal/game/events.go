package game

// EventKind identifies one of the engine's side-channel notifications.
// Events tell presentation and audio collaborators what just happened; they
// are never part of the authoritative state and sinks cannot feed back into
// the engine.
type EventKind uint8

const (
	EventDamage         EventKind = iota // Amount of damage applied to UnitID
	EventEliminated                      // UnitID removed from the roster, Cause says why
	EventStunned                         // UnitID gained the stunned flag
	EventKnockback                       // UnitID displaced along Path to Cell
	EventTurnChanged                     // Phase switched
	EventOutcomeChanged                  // Outcome left playing
)

func (k EventKind) String() string {
	switch k {
	case EventDamage:
		return "damage"
	case EventEliminated:
		return "eliminated"
	case EventStunned:
		return "stunned"
	case EventKnockback:
		return "knockback"
	case EventTurnChanged:
		return "turn_changed"
	case EventOutcomeChanged:
		return "outcome_changed"
	default:
		return "unknown"
	}
}

// EliminationCause says why a unit left the roster.
type EliminationCause uint8

const (
	CauseNone        EliminationCause = iota
	CauseDamage                       // HP reduced to zero or below
	CauseWater                        // forced onto water
	CauseEdge                         // knocked off the grid
	CauseArcherBreak                  // archer shattered by a shieldbearer impact
)

func (c EliminationCause) String() string {
	switch c {
	case CauseDamage:
		return "damage"
	case CauseWater:
		return "water"
	case CauseEdge:
		return "edge"
	case CauseArcherBreak:
		return "archer_break"
	default:
		return "none"
	}
}

// Event is one side-channel notification.
type Event struct {
	Kind    EventKind        `json:"kind"`
	UnitID  int              `json:"unit_id,omitempty"`
	Cell    Cell             `json:"cell,omitempty"`
	Path    []Cell           `json:"path,omitempty"`
	Amount  int              `json:"amount,omitempty"`
	Cause   EliminationCause `json:"cause,omitempty"`
	Phase   TurnPhase        `json:"phase,omitempty"`
	Outcome Outcome          `json:"outcome,omitempty"`
}

// EventSink receives engine notifications. Implementations must not call
// back into the session from HandleEvent; delivery happens inside the
// mutating handler.
type EventSink interface {
	HandleEvent(e Event)
}

// EventSinkFunc adapts a function to the EventSink interface.
type EventSinkFunc func(e Event)

func (f EventSinkFunc) HandleEvent(e Event) { f(e) }
