package game

// TestBattle is a headless session builder used exclusively by tests. It
// assembles a synthetic level descriptor from options and loads it, so tests
// exercise the same LoadLevel path as production callers.
type TestBattle struct {
	Session *Session

	width   int
	height  int
	overlay map[Cell]TerrainKind
	base    TerrainFunc
	units   []UnitSpec
}

// battleOptionKind controls the pass in which an option is applied.
type battleOptionKind int

const (
	battleOptInfra battleOptionKind = iota // grid size, terrain — applied first
	battleOptUnit                          // roster — applied after terrain exists
)

// BattleOption is a builder function applied to a TestBattle during
// construction.
type BattleOption struct {
	kind battleOptionKind
	fn   func(*TestBattle)
}

// WithGridSize sets the board dimensions.
func WithGridSize(w, h int) BattleOption {
	return BattleOption{battleOptInfra, func(tb *TestBattle) {
		tb.width = w
		tb.height = h
	}}
}

// WithTerrain sets the base terrain function (default all plains).
func WithTerrain(fn TerrainFunc) BattleOption {
	return BattleOption{battleOptInfra, func(tb *TestBattle) {
		tb.base = fn
	}}
}

// WithTerrainCell overrides the terrain of a single cell on top of the base
// function.
func WithTerrainCell(x, y int, kind TerrainKind) BattleOption {
	return BattleOption{battleOptInfra, func(tb *TestBattle) {
		tb.overlay[Cell{X: x, Y: y}] = kind
	}}
}

// WithMountain marks a cell as mountain.
func WithMountain(x, y int) BattleOption { return WithTerrainCell(x, y, TerrainMountain) }

// WithWater marks a cell as water.
func WithWater(x, y int) BattleOption { return WithTerrainCell(x, y, TerrainWater) }

// WithForest marks a cell as forest.
func WithForest(x, y int) BattleOption { return WithTerrainCell(x, y, TerrainForest) }

// WithUnit adds a unit from a full spec.
func WithUnit(spec UnitSpec) BattleOption {
	return BattleOption{battleOptUnit, func(tb *TestBattle) {
		tb.units = append(tb.units, spec)
	}}
}

// WithHero adds the standard player soldier at (x,y): 20 HP, move 5,
// range 1, damage 5.
func WithHero(x, y int) BattleOption {
	return WithUnit(UnitSpec{
		Name: "Hero", Team: TeamPlayer, Kind: KindSoldier,
		Pos: Cell{X: x, Y: y}, HP: 20, MoveRange: 5, AttackRange: 1, Damage: 5,
	})
}

// WithEnemy adds an enemy of the given kind at (x,y) with common stats:
// 4 HP, move 3, range 2, damage 4 for archers; 8 HP, move 2, range 1,
// damage 3 otherwise.
func WithEnemy(kind UnitKind, x, y int) BattleOption {
	spec := UnitSpec{
		Name: kind.String(), Team: TeamEnemy, Kind: kind,
		Pos: Cell{X: x, Y: y}, HP: 8, MoveRange: 2, AttackRange: 1, Damage: 3,
	}
	if kind == KindArcher {
		spec.HP = 4
		spec.MoveRange = 3
		spec.AttackRange = 2
		spec.Damage = 4
	}
	return WithUnit(spec)
}

// NewTestBattle constructs a TestBattle from the given options in two
// ordered passes: infrastructure first, then units. It panics on a level
// that fails to load, which in a test surfaces as a direct failure at the
// construction site.
func NewTestBattle(opts ...BattleOption) *TestBattle {
	tb := &TestBattle{
		width:   10,
		height:  10,
		overlay: make(map[Cell]TerrainKind),
		base:    PlainsTerrain,
	}
	for _, pass := range []battleOptionKind{battleOptInfra, battleOptUnit} {
		for _, opt := range opts {
			if opt.kind == pass {
				opt.fn(tb)
			}
		}
	}

	base := tb.base
	overlay := tb.overlay
	terrain := func(x, y int) TerrainKind {
		if kind, ok := overlay[Cell{X: x, Y: y}]; ok {
			return kind
		}
		return base(x, y)
	}
	desc := LevelDescriptor{
		Name:    "test-battle",
		Width:   tb.width,
		Height:  tb.height,
		Terrain: terrain,
		Units:   tb.units,
	}
	s, err := LoadLevel(desc)
	if err != nil {
		panic("test battle setup: " + err.Error())
	}
	tb.Session = s
	return tb
}

// Unit returns the live unit with the given roster ID (IDs follow option
// order, starting at 0), or nil once eliminated.
func (tb *TestBattle) Unit(id int) *Unit {
	return tb.Session.Board().Unit(id)
}

// SelectAndAttack drives a full player action: select the attacker's cell,
// optionally move, then attack the target cell. Returns the attack result.
func (tb *TestBattle) SelectAndAttack(attackerID int, moveTo *Cell, target Cell, mode AttackMode) AttackResult {
	attacker := tb.Unit(attackerID)
	if attacker == nil {
		return AttackResult{}
	}
	sel := tb.Session.SelectUnit(attacker.Pos)
	if !sel.Valid {
		return AttackResult{}
	}
	if moveTo != nil {
		if mv := tb.Session.MoveUnit(attackerID, *moveTo); !mv.Valid {
			return AttackResult{}
		}
	}
	return tb.Session.Attack(attackerID, target, mode)
}
