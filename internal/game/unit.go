package game

import "fmt"

// Team distinguishes the player's side from the opposing force.
type Team uint8

const (
	TeamPlayer Team = iota
	TeamEnemy
)

func (t Team) String() string {
	switch t {
	case TeamPlayer:
		return "player"
	case TeamEnemy:
		return "enemy"
	default:
		return "unknown"
	}
}

// UnitKind tags the behavioural archetype of a unit. Rules that vary per
// archetype (the forest-exit exemption, the shieldbearer/archer bash
// elimination) key off this tag and never off display data.
type UnitKind uint8

const (
	KindSoldier      UnitKind = iota // baseline melee
	KindArcher                       // ranged, slips out of forests freely
	KindShieldbearer                 // heavy, shatters archers on bash impact
	unitKindCount                    // sentinel
)

func (k UnitKind) String() string {
	switch k {
	case KindSoldier:
		return "soldier"
	case KindArcher:
		return "archer"
	case KindShieldbearer:
		return "shieldbearer"
	default:
		return "unknown"
	}
}

// exitsForestFreely reports whether a kind is exempt from the extra cost of
// stepping off a forest tile.
func exitsForestFreely(k UnitKind) bool {
	return k == KindArcher
}

// Unit is one combatant on the board. Units live in the board roster keyed
// by ID; a unit whose HP reaches zero is deleted from the roster in the same
// mutation, so a live unit always has HP > 0.
type Unit struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	Team        Team     `json:"team"`
	Kind        UnitKind `json:"kind"`
	Pos         Cell     `json:"pos"`
	HP          int      `json:"hp"`
	MaxHP       int      `json:"max_hp"`
	MoveRange   int      `json:"move_range"`
	AttackRange int      `json:"attack_range"`
	Damage      int      `json:"damage"`
	Stunned     bool     `json:"stunned"`
}

// Label is the short log identifier, e.g. "P0" or "E3".
func (u *Unit) Label() string {
	prefix := "P"
	if u.Team == TeamEnemy {
		prefix = "E"
	}
	return fmt.Sprintf("%s%d", prefix, u.ID)
}
