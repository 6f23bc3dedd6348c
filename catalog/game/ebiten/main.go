package main

import (
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	screenWidth  = 800
	screenHeight = 600
	playerSpeed  = 4
	playerRadius = 16
)

type Game struct {
	x, y float64
}

func (g *Game) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	if ebiten.IsKeyPressed(ebiten.KeyLeft) || ebiten.IsKeyPressed(ebiten.KeyA) {
		g.x -= playerSpeed
	}
	if ebiten.IsKeyPressed(ebiten.KeyRight) || ebiten.IsKeyPressed(ebiten.KeyD) {
		g.x += playerSpeed
	}
	if ebiten.IsKeyPressed(ebiten.KeyUp) || ebiten.IsKeyPressed(ebiten.KeyW) {
		g.y -= playerSpeed
	}
	if ebiten.IsKeyPressed(ebiten.KeyDown) || ebiten.IsKeyPressed(ebiten.KeyS) {
		g.y += playerSpeed
	}

	// keep the player on screen
	if g.x < playerRadius {
		g.x = playerRadius
	}
	if g.x > screenWidth-playerRadius {
		g.x = screenWidth - playerRadius
	}
	if g.y < playerRadius {
		g.y = playerRadius
	}
	if g.y > screenHeight-playerRadius {
		g.y = screenHeight - playerRadius
	}

	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 24, G: 24, B: 32, A: 255})
	vector.DrawFilledCircle(screen, float32(g.x), float32(g.y), playerRadius, color.RGBA{R: 80, G: 200, B: 120, A: 255}, true)
	ebitenutil.DebugPrint(screen, "Move: WASD / arrows  Quit: ESC")
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

func main() {
	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("Game Starter")

	game := &Game{x: screenWidth / 2, y: screenHeight / 2}
	if err := ebiten.RunGame(game); err != nil {
		log.Fatalf("game: %v", err)
	}
}
