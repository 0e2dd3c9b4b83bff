package main

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/sarwarhridoy4/snake-go/config"
	"github.com/sarwarhridoy4/snake-go/game"
)

const separatorWidth = 1

func fillCell(screen *ebiten.Image, cellW float32, c game.Cell, clr config.Color) {
	vector.DrawFilledRect(screen, float32(c.X)*cellW, float32(c.Y)*cellW, cellW, cellW, clr, false)
}

func drawBoard(screen *ebiten.Image, cfg config.Config, snap game.Snapshot) {
	cellW := float32(cfg.CellW)
	screen.Fill(cfg.BackgroundColor)

	if snap.HasFood {
		fillCell(screen, cellW, snap.Food, cfg.FoodColor)
	}

	// Tail first so the head ends up on top.
	n := len(snap.Body)
	for i := n - 1; i >= 0; i-- {
		c := snap.Body[i]
		if !snap.Grid.Contains(c) {
			continue
		}
		fillCell(screen, cellW, c, cfg.SegmentColor(i, n))
	}

	for _, o := range snap.Obstacles {
		fillCell(screen, cellW, o, cfg.ObstacleColor)
	}

	w, h := float32(cfg.ScreenW), float32(cfg.ScreenH)
	for x := 1; x < snap.Grid.Width; x++ {
		px := float32(x) * cellW
		vector.StrokeLine(screen, px, 0, px, h, separatorWidth, cfg.SeparatorLineColor, false)
	}
	for y := 1; y < snap.Grid.Height; y++ {
		py := float32(y) * cellW
		vector.StrokeLine(screen, 0, py, w, py, separatorWidth, cfg.SeparatorLineColor, false)
	}
}

// drawHUD prints the score and status lines onto hud, then composites hud
// over screen tinted with the configured text color. The debug font only
// draws white, so the color comes from the color scale.
func drawHUD(screen, hud *ebiten.Image, cfg config.Config, snap game.Snapshot, paused bool) {
	const padding, lineHeight = 10, 16

	lines := []string{fmt.Sprintf("Score: %d | High Score: %d", snap.Score, snap.HighScore)}
	if snap.Turbo {
		lines = append(lines, "TURBO")
	}
	switch {
	case !snap.Alive:
		lines = append(lines, fmt.Sprintf("Game Over! Score: %d - Press R/Enter to restart, Esc to quit", snap.Score))
	case paused:
		lines = append(lines, "Paused - Press P to resume")
	}

	hud.Clear()
	for i, line := range lines {
		ebitenutil.DebugPrintAt(hud, line, padding, padding+i*lineHeight)
	}
	op := &ebiten.DrawImageOptions{}
	op.ColorScale.ScaleWithColor(cfg.TextColor)
	screen.DrawImage(hud, op)
}
