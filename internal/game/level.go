package game

import "fmt"

// UnitSpec is the level-descriptor form of a unit, before it gets a roster
// ID.
type UnitSpec struct {
	Name        string
	Team        Team
	Kind        UnitKind
	Pos         Cell
	HP          int
	MoveRange   int
	AttackRange int
	Damage      int
}

// LevelDescriptor describes one combat level: grid size, the pure
// terrain-assignment function, the starting roster, and an optional unlock
// reference consumed by the overworld layer. Immutable for the duration of a
// session.
type LevelDescriptor struct {
	Name         string
	Width        int
	Height       int
	Terrain      TerrainFunc
	Units        []UnitSpec
	UnlockTarget string
}

func (d LevelDescriptor) validate() error {
	if d.Width <= 0 || d.Height <= 0 {
		return fmt.Errorf("level %q: size must be positive, got %dx%d", d.Name, d.Width, d.Height)
	}
	if len(d.Units) == 0 {
		return fmt.Errorf("level %q: no units", d.Name)
	}
	hasPlayer := false
	for _, u := range d.Units {
		if u.HP <= 0 {
			return fmt.Errorf("level %q: unit %q has non-positive HP %d", d.Name, u.Name, u.HP)
		}
		if u.Team == TeamPlayer {
			hasPlayer = true
		}
	}
	if !hasPlayer {
		return fmt.Errorf("level %q: no player unit", d.Name)
	}
	return nil
}

// riverCrossingTerrain cuts a vertical river with a single ford through a
// forested band. Pure in (x,y).
func riverCrossingTerrain(x, y int) TerrainKind {
	if x == 6 && y != 4 {
		return TerrainWater
	}
	if x >= 2 && x <= 4 && y >= 2 && y <= 7 {
		return TerrainForest
	}
	return TerrainPlains
}

// mountainPassTerrain walls the middle of the map with rock, leaving two
// gaps. Pure in (x,y).
func mountainPassTerrain(x, y int) TerrainKind {
	if x == 5 && y != 2 && y != 7 {
		return TerrainMountain
	}
	if (x == 8 || x == 9) && y >= 6 {
		return TerrainForest
	}
	return TerrainPlains
}

// Levels returns the built-in campaign in play order.
func Levels() []LevelDescriptor {
	return []LevelDescriptor{
		{
			Name:    "training-field",
			Width:   10,
			Height:  10,
			Terrain: PlainsTerrain,
			Units: []UnitSpec{
				{Name: "Hero", Team: TeamPlayer, Kind: KindSoldier, Pos: Cell{4, 9}, HP: 20, MoveRange: 5, AttackRange: 1, Damage: 5},
				{Name: "Archer", Team: TeamEnemy, Kind: KindArcher, Pos: Cell{1, 3}, HP: 4, MoveRange: 3, AttackRange: 2, Damage: 4},
			},
			UnlockTarget: "river-crossing",
		},
		{
			Name:    "river-crossing",
			Width:   10,
			Height:  10,
			Terrain: riverCrossingTerrain,
			Units: []UnitSpec{
				{Name: "Hero", Team: TeamPlayer, Kind: KindSoldier, Pos: Cell{1, 8}, HP: 20, MoveRange: 5, AttackRange: 1, Damage: 5},
				{Name: "Archer", Team: TeamEnemy, Kind: KindArcher, Pos: Cell{8, 2}, HP: 4, MoveRange: 3, AttackRange: 2, Damage: 4},
				{Name: "Shieldbearer", Team: TeamEnemy, Kind: KindShieldbearer, Pos: Cell{8, 5}, HP: 8, MoveRange: 2, AttackRange: 1, Damage: 3},
			},
			UnlockTarget: "mountain-pass",
		},
		{
			Name:    "mountain-pass",
			Width:   12,
			Height:  10,
			Terrain: mountainPassTerrain,
			Units: []UnitSpec{
				{Name: "Hero", Team: TeamPlayer, Kind: KindSoldier, Pos: Cell{1, 5}, HP: 24, MoveRange: 5, AttackRange: 1, Damage: 5},
				{Name: "Archer", Team: TeamEnemy, Kind: KindArcher, Pos: Cell{9, 2}, HP: 4, MoveRange: 3, AttackRange: 2, Damage: 4},
				{Name: "Soldier", Team: TeamEnemy, Kind: KindSoldier, Pos: Cell{8, 7}, HP: 10, MoveRange: 3, AttackRange: 1, Damage: 4},
				{Name: "Shieldbearer", Team: TeamEnemy, Kind: KindShieldbearer, Pos: Cell{10, 5}, HP: 8, MoveRange: 2, AttackRange: 1, Damage: 3},
			},
		},
	}
}

// LevelByName looks a built-in level up by name.
func LevelByName(name string) (LevelDescriptor, bool) {
	for _, d := range Levels() {
		if d.Name == name {
			return d, true
		}
	}
	return LevelDescriptor{}, false
}
