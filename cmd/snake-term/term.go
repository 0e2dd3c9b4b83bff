package main

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/sarwarhridoy4/snake-go/config"
	"github.com/sarwarhridoy4/snake-go/game"
)

const (
	frameInterval = 16 * time.Millisecond
	// Terminal cells are roughly twice as tall as wide; two columns per grid
	// cell keeps the board square.
	cellCols = 2
	hudRows  = 2
)

const (
	runeHead     = '@'
	runeBody     = 'o'
	runeFood     = '*'
	runeObstacle = '#'
)

type styles struct {
	background tcell.Style
	food       tcell.Style
	obstacle   tcell.Style
	text       tcell.Style
	head       tcell.Style
	cfg        config.Config
}

func tcellColor(c config.Color) tcell.Color {
	r, g, b := c.RGB8()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

func newStyles(cfg config.Config) styles {
	bg := tcell.StyleDefault.Background(tcellColor(cfg.BackgroundColor))
	return styles{
		background: bg,
		food:       bg.Foreground(tcellColor(cfg.FoodColor)).Bold(true),
		obstacle:   bg.Foreground(tcellColor(cfg.ObstacleColor)),
		text:       tcell.StyleDefault.Foreground(tcellColor(cfg.TextColor)),
		head:       bg.Foreground(tcellColor(cfg.SnakeHeadColor)).Bold(true),
		cfg:        cfg,
	}
}

func (s styles) segment(i, n int) tcell.Style {
	if i == 0 {
		return s.head
	}
	return s.background.Foreground(tcellColor(s.cfg.SegmentColor(i, n)))
}

// termApp runs the game on a terminal screen.
type termApp struct {
	screen tcell.Screen
	game   *game.Game
	styles styles
	paused bool
}

func newTermApp(screen tcell.Screen, cfg config.Config, g *game.Game) *termApp {
	return &termApp{screen: screen, game: g, styles: newStyles(cfg)}
}

// handleKey forwards a key to the game and reports whether the player quit.
//
// Terminals report presses only, so the turbo key toggles: each press sends
// the opposite of the current turbo state.
func (a *termApp) handleKey(ev *tcell.EventKey) (quit bool) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyEnter:
		a.game.HandleEvent(game.Event{Action: game.ActionRestart, Pressed: true})
		return false
	case tcell.KeyRune:
	default:
		if action, ok := arrowAction(ev.Key()); ok && !a.paused {
			a.game.HandleEvent(game.Event{Action: action, Pressed: true})
		}
		return false
	}

	switch r := ev.Rune(); r {
	case 'q', 'Q':
		return true
	case 'p', 'P':
		if a.game.State() == game.StateAlive {
			a.paused = !a.paused
		}
	case 'r', 'R':
		a.game.HandleEvent(game.Event{Action: game.ActionRestart, Pressed: true})
	case ' ':
		if !a.paused {
			a.game.HandleEvent(game.Event{Action: game.ActionTurbo, Pressed: !a.game.Snapshot().Turbo})
		}
	default:
		if action, ok := letterAction(r); ok && !a.paused {
			a.game.HandleEvent(game.Event{Action: action, Pressed: true})
		}
	}
	return false
}

func arrowAction(k tcell.Key) (game.Action, bool) {
	switch k {
	case tcell.KeyUp:
		return game.ActionUp, true
	case tcell.KeyDown:
		return game.ActionDown, true
	case tcell.KeyLeft:
		return game.ActionLeft, true
	case tcell.KeyRight:
		return game.ActionRight, true
	}
	return 0, false
}

func letterAction(r rune) (game.Action, bool) {
	switch r {
	case 'w', 'W':
		return game.ActionUp, true
	case 's', 'S':
		return game.ActionDown, true
	case 'a', 'A':
		return game.ActionLeft, true
	case 'd', 'D':
		return game.ActionRight, true
	}
	return 0, false
}

// tick advances the game by the wall-clock time since the last frame.
func (a *termApp) tick(dt time.Duration) {
	if a.game.State() == game.StateDead {
		a.paused = false
	}
	if !a.paused {
		a.game.Tick(dt)
	}
}

func (a *termApp) setCell(c game.Cell, r rune, style tcell.Style) {
	x := c.X * cellCols
	a.screen.SetContent(x, c.Y, r, nil, style)
	for i := 1; i < cellCols; i++ {
		a.screen.SetContent(x+i, c.Y, ' ', nil, style)
	}
}

func (a *termApp) text(x, y int, s string, style tcell.Style) {
	for _, r := range s {
		a.screen.SetContent(x, y, r, nil, style)
		x++
	}
}

func (a *termApp) draw() {
	snap := a.game.Snapshot()
	a.screen.Clear()

	w, h := a.screen.Size()
	needW, needH := snap.Grid.Width*cellCols, snap.Grid.Height+hudRows
	if w < needW || h < needH {
		a.text(0, 0, fmt.Sprintf("Terminal too small: need %dx%d, have %dx%d", needW, needH, w, h), a.styles.text)
		return
	}

	for y := 0; y < snap.Grid.Height; y++ {
		for x := 0; x < snap.Grid.Width; x++ {
			a.setCell(game.Cell{X: x, Y: y}, ' ', a.styles.background)
		}
	}
	for _, o := range snap.Obstacles {
		a.setCell(o, runeObstacle, a.styles.obstacle)
	}
	if snap.HasFood {
		a.setCell(snap.Food, runeFood, a.styles.food)
	}
	n := len(snap.Body)
	for i := n - 1; i >= 0; i-- {
		c := snap.Body[i]
		if !snap.Grid.Contains(c) {
			continue
		}
		r := runeBody
		if i == 0 {
			r = runeHead
		}
		a.setCell(c, r, a.styles.segment(i, n))
	}

	score := fmt.Sprintf("Score: %d  High Score: %d", snap.Score, snap.HighScore)
	if snap.Turbo {
		score += "  TURBO"
	}
	a.text(0, snap.Grid.Height, score, a.styles.text)

	status := "Arrows/WASD move, Space turbo, P pause, Q quit"
	switch {
	case !snap.Alive:
		status = "Game Over! R/Enter to restart, Q to quit"
	case a.paused:
		status = "Paused - P to resume"
	}
	a.text(0, snap.Grid.Height+1, status, a.styles.text)
}

// run drives the frame loop until the player quits or ctx is done.
func (a *termApp) run(ctx context.Context) error {
	events := make(chan tcell.Event, 16)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()
	last := time.Now()

	a.draw()
	a.screen.Show()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if a.handleKey(ev) {
					return nil
				}
			case *tcell.EventResize:
				a.screen.Sync()
			}
		case now := <-ticker.C:
			a.tick(now.Sub(last))
			last = now
			a.draw()
			a.screen.Show()
		}
	}
}
