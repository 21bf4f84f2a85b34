package game

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/hajimehoshi/ebiten/v2"
)

const (
	// tileSize is the pixel edge of one board cell.
	tileSize = 48
	// borderWidth is the pixel gap between the window edge and the board.
	borderWidth = 24
	// hudHeight is the pixel strip below the board for status text.
	hudHeight = 120
	// maxMessages is how many recent event lines the HUD keeps.
	maxMessages = 6
)

// Game is the windowed front end. It owns a Session, translates mouse and
// keyboard input into engine commands, and renders the authoritative state
// plus the command caches the engine hands back. It never mutates units or
// terrain itself.
type Game struct {
	session  *Session
	levels   []LevelDescriptor
	levelIdx int

	bashMode  bool
	selected  int // selected unit ID, -1 when none
	reachable map[Cell]int
	targets   []Cell
	threat    []Cell // hovered enemy's danger zone

	messages []string

	prevMouseLeft bool
	prevKeys      map[ebiten.Key]bool
}

// NewGame builds the front end on the first built-in level.
func NewGame() (*Game, error) {
	g := &Game{
		levels:   Levels(),
		selected: -1,
		prevKeys: make(map[ebiten.Key]bool),
	}
	if err := g.loadLevel(0); err != nil {
		return nil, err
	}
	return g, nil
}

func (g *Game) loadLevel(idx int) error {
	if idx < 0 || idx >= len(g.levels) {
		return fmt.Errorf("no level at index %d", idx)
	}
	s, err := LoadLevel(g.levels[idx])
	if err != nil {
		return err
	}
	g.levelIdx = idx
	g.session = s
	g.clearAction()
	g.messages = nil
	g.pushMessage("level: " + g.levels[idx].Name)
	s.AddSink(EventSinkFunc(g.onEvent))
	return nil
}

func (g *Game) clearAction() {
	g.selected = -1
	g.reachable = nil
	g.targets = nil
	g.bashMode = false
}

func (g *Game) pushMessage(msg string) {
	g.messages = append(g.messages, msg)
	if len(g.messages) > maxMessages {
		g.messages = g.messages[len(g.messages)-maxMessages:]
	}
}

// onEvent turns engine notifications into HUD message lines. Pure
// presentation: nothing here feeds back into the session.
func (g *Game) onEvent(e Event) {
	switch e.Kind {
	case EventDamage:
		g.pushMessage(fmt.Sprintf("unit %d takes %d damage", e.UnitID, e.Amount))
	case EventEliminated:
		g.pushMessage(fmt.Sprintf("unit %d eliminated (%s)", e.UnitID, e.Cause))
	case EventStunned:
		g.pushMessage(fmt.Sprintf("unit %d stunned at %s", e.UnitID, e.Cell))
	case EventKnockback:
		g.pushMessage(fmt.Sprintf("unit %d knocked to %s", e.UnitID, e.Cell))
	case EventTurnChanged:
		g.pushMessage("phase: " + e.Phase.String())
	case EventOutcomeChanged:
		g.pushMessage("outcome: " + e.Outcome.String())
	}
}

// keyPressed is edge-triggered: true only on the frame the key goes down.
func (g *Game) keyPressed(k ebiten.Key) bool {
	down := ebiten.IsKeyPressed(k)
	was := g.prevKeys[k]
	g.prevKeys[k] = down
	return down && !was
}

// Update implements ebiten.Game.
func (g *Game) Update() error {
	if g.keyPressed(ebiten.KeyB) {
		g.bashMode = !g.bashMode
	}
	if g.keyPressed(ebiten.KeyC) {
		if err := clipboard.WriteAll(FormatReport(g.session, 20)); err == nil {
			g.pushMessage("report copied to clipboard")
		}
	}
	if g.keyPressed(ebiten.KeyR) {
		if err := g.loadLevel(g.levelIdx); err != nil {
			return err
		}
	}
	if g.keyPressed(ebiten.KeyN) && g.session.GetOutcome() == OutcomeWon {
		next := g.levelIdx + 1
		if next < len(g.levels) {
			if err := g.loadLevel(next); err != nil {
				return err
			}
		}
	}
	if g.keyPressed(ebiten.KeySpace) {
		g.clearAction()
		g.session.AdvanceIfIdle()
	}

	g.updateHover()
	g.updateClick()
	return nil
}

// updateHover recomputes the hovered enemy's threatened cells.
func (g *Game) updateHover() {
	g.threat = nil
	cell, ok := g.cellAtCursor()
	if !ok {
		return
	}
	u := g.session.Board().UnitAt(cell)
	if u != nil && u.Team == TeamEnemy {
		g.threat = ThreatenedCells(g.session.Board(), u)
	}
}

// updateClick drives the select → move → attack command flow.
func (g *Game) updateClick() {
	down := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	clicked := down && !g.prevMouseLeft
	g.prevMouseLeft = down
	if !clicked {
		return
	}
	cell, ok := g.cellAtCursor()
	if !ok {
		return
	}

	if g.selected >= 0 {
		for _, t := range g.targets {
			if t == cell {
				mode := AttackDirect
				if g.bashMode {
					mode = AttackBash
				}
				res := g.session.Attack(g.selected, cell, mode)
				if res.Valid {
					g.clearAction()
				}
				return
			}
		}
		if _, ok := g.reachable[cell]; ok {
			res := g.session.MoveUnit(g.selected, cell)
			if res.Valid {
				g.reachable = nil
				g.targets = res.Attackable
				if len(res.Attackable) == 0 {
					g.clearAction()
					g.session.AdvanceIfIdle()
				}
			}
			return
		}
	}

	sel := g.session.SelectUnit(cell)
	if sel.Valid {
		g.selected = sel.UnitID
		g.reachable = sel.Reachable
		g.targets = sel.Targets
	} else {
		g.clearAction()
	}
}

// cellAtCursor maps the mouse position onto the board grid.
func (g *Game) cellAtCursor() (Cell, bool) {
	mx, my := ebiten.CursorPosition()
	c := Cell{
		X: (mx - borderWidth) / tileSize,
		Y: (my - borderWidth) / tileSize,
	}
	if mx < borderWidth || my < borderWidth || !g.session.Board().InBounds(c) {
		return Cell{}, false
	}
	return c, true
}

// Layout implements ebiten.Game.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	b := g.session.Board()
	w := borderWidth*2 + b.Width()*tileSize
	h := borderWidth*2 + b.Height()*tileSize + hudHeight
	return w, h
}
