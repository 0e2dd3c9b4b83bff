package main

import (
	"math/rand"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/sarwarhridoy4/snake-go/config"
	"github.com/sarwarhridoy4/snake-go/game"
)

func newTestApp(t *testing.T, cfg config.Config) (*termApp, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(80, 30)

	g, err := game.New(cfg.Settings(), game.WithRand(rand.New(rand.NewSource(11))))
	if err != nil {
		t.Fatalf("game.New: %v", err)
	}
	return newTermApp(screen, cfg, g), screen
}

func runeAt(screen tcell.SimulationScreen, c game.Cell) rune {
	r, _, _, _ := screen.GetContent(c.X*cellCols, c.Y)
	return r
}

func TestDraw_Board(t *testing.T) {
	app, screen := newTestApp(t, config.Default())
	app.draw()
	snap := app.game.Snapshot()

	if r := runeAt(screen, snap.Body[0]); r != runeHead {
		t.Fatalf("head rune=%q want=%q", r, runeHead)
	}
	for _, c := range snap.Body[1:] {
		if r := runeAt(screen, c); r != runeBody {
			t.Fatalf("body %v rune=%q want=%q", c, r, runeBody)
		}
	}
	if r := runeAt(screen, snap.Food); r != runeFood {
		t.Fatalf("food rune=%q want=%q", r, runeFood)
	}
	for _, o := range snap.Obstacles {
		if r := runeAt(screen, o); r != runeObstacle {
			t.Fatalf("obstacle %v rune=%q want=%q", o, r, runeObstacle)
		}
	}
	if r, _, _, _ := screen.GetContent(0, snap.Grid.Height); r != 'S' {
		t.Fatalf("score line starts with %q", r)
	}
}

func TestDraw_TooSmall(t *testing.T) {
	app, screen := newTestApp(t, config.Default())
	screen.SetSize(20, 10)
	app.draw()

	if r, _, _, _ := screen.GetContent(0, 0); r != 'T' {
		t.Fatalf("got %q, want the size warning", r)
	}
}

func TestHandleKey(t *testing.T) {
	app, _ := newTestApp(t, config.Default())

	if app.handleKey(tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone)) {
		t.Fatal("arrow key quit")
	}
	if app.handleKey(tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone)) {
		t.Fatal("letter key quit")
	}
	if got := app.game.Snapshot().Pending; got != 2 {
		t.Fatalf("pending=%d want=2", got)
	}

	app.handleKey(tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone))
	if !app.game.Snapshot().Turbo {
		t.Fatal("space did not turn turbo on")
	}
	app.handleKey(tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone))
	if app.game.Snapshot().Turbo {
		t.Fatal("second space did not turn turbo off")
	}

	if !app.handleKey(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)) {
		t.Fatal("q did not quit")
	}
	if !app.handleKey(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)) {
		t.Fatal("escape did not quit")
	}
}

func TestPause(t *testing.T) {
	app, _ := newTestApp(t, config.Default())
	head := app.game.Snapshot().Body[0]

	app.handleKey(tcell.NewEventKey(tcell.KeyRune, 'p', tcell.ModNone))
	app.tick(time.Second)
	if got := app.game.Snapshot().Body[0]; got != head {
		t.Fatalf("paused game moved: head=%v want=%v", got, head)
	}
	app.handleKey(tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone))
	if got := app.game.Snapshot().Pending; got != 0 {
		t.Fatalf("pending=%d want=0 while paused", got)
	}

	app.handleKey(tcell.NewEventKey(tcell.KeyRune, 'p', tcell.ModNone))
	app.tick(time.Second)
	if got := app.game.Snapshot().Body[0]; got == head {
		t.Fatal("unpaused game did not move")
	}
}
