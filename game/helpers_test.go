package game

import (
	"math/rand"
	"strings"
	"testing"
	"time"
)

// dumpBoard renders a snapshot as text: head 'H', body 'o', food '*',
// obstacles '#'.
func dumpBoard(s Snapshot) string {
	rows := make([][]byte, s.Grid.Height)
	for y := range rows {
		rows[y] = []byte(strings.Repeat(".", s.Grid.Width))
	}
	put := func(c Cell, b byte) {
		if s.Grid.Contains(c) {
			rows[c.Y][c.X] = b
		}
	}
	for _, o := range s.Obstacles {
		put(o, '#')
	}
	if s.HasFood {
		put(s.Food, '*')
	}
	for i := len(s.Body) - 1; i >= 0; i-- {
		if i == 0 {
			put(s.Body[i], 'H')
		} else {
			put(s.Body[i], 'o')
		}
	}
	var sb strings.Builder
	for _, r := range rows {
		sb.Write(r)
		sb.WriteByte('\n')
	}
	return sb.String()
}

func testSettings() Settings {
	return Settings{
		Grid:          Grid{Width: 20, Height: 24},
		ObstacleCount: 0,
		MovementDelay: DefaultMovementDelay,
	}
}

func newTestGame(t *testing.T, settings Settings, seed int64) *Game {
	t.Helper()
	g, err := New(settings, WithRand(rand.New(rand.NewSource(seed))))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return g
}

// forceStep fires exactly one movement step.
func forceStep(g *Game) {
	g.Tick(g.snake.EffectiveDelay() + time.Millisecond)
}

// moveFoodAway parks the food where the test will not run into it.
func moveFoodAway(g *Game, c Cell) {
	g.food = c
	g.hasFood = true
}

func equalCells(a, b []Cell) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
