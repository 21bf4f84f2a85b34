package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// terrainColors maps each TerrainKind to its tile colour.
var terrainColors = [terrainKindCount]color.RGBA{
	TerrainPlains:   {R: 94, G: 138, B: 74, A: 255},  // grass green
	TerrainForest:   {R: 44, G: 92, B: 48, A: 255},   // deep green
	TerrainMountain: {R: 112, G: 104, B: 96, A: 255}, // grey rock
	TerrainWater:    {R: 52, G: 96, B: 160, A: 255},  // blue
}

var (
	reachableOverlay = color.RGBA{R: 60, G: 120, B: 255, A: 90}
	targetOverlay    = color.RGBA{R: 255, G: 60, B: 60, A: 120}
	threatOverlay    = color.RGBA{R: 255, G: 220, B: 0, A: 70}
	playerColor      = color.RGBA{R: 220, G: 60, B: 50, A: 255}
	enemyColor       = color.RGBA{R: 50, G: 90, B: 220, A: 255}
	stunRingColor    = color.RGBA{R: 255, G: 220, B: 0, A: 255}
	hpBackColor      = color.RGBA{R: 30, G: 30, B: 30, A: 200}
	hpFillColor      = color.RGBA{R: 70, G: 220, B: 70, A: 230}
)

// kindGlyph is the single-letter unit marker drawn on each sprite.
func kindGlyph(k UnitKind) string {
	switch k {
	case KindArcher:
		return "A"
	case KindShieldbearer:
		return "S"
	default:
		return "F"
	}
}

func tileRect(c Cell) (x, y float32) {
	return float32(borderWidth + c.X*tileSize), float32(borderWidth + c.Y*tileSize)
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	b := g.session.Board()

	for y := 0; y < b.Height(); y++ {
		for x := 0; x < b.Width(); x++ {
			c := Cell{X: x, Y: y}
			px, py := tileRect(c)
			vector.DrawFilledRect(screen, px, py, tileSize-1, tileSize-1,
				terrainColors[b.TerrainAt(c)], false)
		}
	}

	for c := range g.reachable {
		px, py := tileRect(c)
		vector.DrawFilledRect(screen, px, py, tileSize-1, tileSize-1, reachableOverlay, false)
	}
	for _, c := range g.threat {
		px, py := tileRect(c)
		vector.DrawFilledRect(screen, px, py, tileSize-1, tileSize-1, threatOverlay, false)
	}
	for _, c := range g.targets {
		px, py := tileRect(c)
		vector.DrawFilledRect(screen, px, py, tileSize-1, tileSize-1, targetOverlay, false)
	}

	for _, team := range []Team{TeamPlayer, TeamEnemy} {
		for _, u := range b.UnitsOfTeam(team) {
			g.drawUnit(screen, u)
		}
	}

	g.drawHUD(screen)
}

func (g *Game) drawUnit(screen *ebiten.Image, u *Unit) {
	px, py := tileRect(u.Pos)
	cx := px + tileSize/2
	cy := py + tileSize/2

	body := playerColor
	if u.Team == TeamEnemy {
		body = enemyColor
	}
	if u.Stunned {
		vector.DrawFilledCircle(screen, cx, cy, tileSize/2-3, stunRingColor, true)
	}
	vector.DrawFilledCircle(screen, cx, cy, tileSize/2-6, body, true)
	if u.ID == g.selected {
		vector.StrokeCircle(screen, cx, cy, tileSize/2-4, 2, color.White, true)
	}

	text.Draw(screen, kindGlyph(u.Kind), basicfont.Face7x13, int(cx)-3, int(cy)+4, color.White)

	// HP bar along the top edge of the tile.
	barW := float32(tileSize - 8)
	fill := barW * float32(u.HP) / float32(u.MaxHP)
	vector.DrawFilledRect(screen, px+4, py+2, barW, 4, hpBackColor, false)
	vector.DrawFilledRect(screen, px+4, py+2, fill, 4, hpFillColor, false)
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	b := g.session.Board()
	baseY := borderWidth*2 + b.Height()*tileSize

	mode := "direct"
	if g.bashMode {
		mode = "bash"
	}
	header := fmt.Sprintf("%s  turn=%d  phase=%s  outcome=%s  attack=%s",
		g.session.LevelName(), g.session.Turn(), g.session.Phase(), g.session.GetOutcome(), mode)
	text.Draw(screen, header, basicfont.Face7x13, borderWidth, baseY, color.White)
	text.Draw(screen, "click: select/move/attack  B: bash  SPACE: pass  C: copy report  R: restart  N: next",
		basicfont.Face7x13, borderWidth, baseY+14, color.RGBA{R: 180, G: 180, B: 180, A: 255})

	for i, msg := range g.messages {
		text.Draw(screen, msg, basicfont.Face7x13, borderWidth, baseY+32+i*13,
			color.RGBA{R: 210, G: 210, B: 160, A: 255})
	}
}
