package main

import (
	"log"

	"github.com/Garsondee/Shield-Bash/internal/game"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	g, err := game.NewGame()
	if err != nil {
		log.Fatal(err)
	}
	ebiten.SetWindowTitle("Shield Bash")
	ebiten.SetWindowSize(560, 700)
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
