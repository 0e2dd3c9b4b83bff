package main

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/sarwarhridoy4/snake-go/config"
	"github.com/sarwarhridoy4/snake-go/game"
)

// App adapts the simulation to ebiten's Update/Draw/Layout loop.
type App struct {
	cfg    config.Config
	game   *game.Game
	paused bool
	events []game.Event
	hud    *ebiten.Image
}

func NewApp(cfg config.Config, opts ...game.Option) (*App, error) {
	g, err := game.New(cfg.Settings(), opts...)
	if err != nil {
		return nil, err
	}
	return &App{
		cfg:  cfg,
		game: g,
		hud:  ebiten.NewImage(int(cfg.ScreenW), int(cfg.ScreenH)),
	}, nil
}

func (a *App) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		if ebiten.IsFullscreen() {
			ebiten.SetFullscreen(false)
			return nil
		}
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}

	alive := a.game.State() == game.StateAlive
	if !alive {
		a.paused = false
	} else if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		a.paused = !a.paused
	}

	a.events = pollEvents(a.events[:0])
	for _, ev := range a.events {
		// Releases still go through so turbo cannot stick across a pause.
		if a.paused && ev.Pressed {
			continue
		}
		a.game.HandleEvent(ev)
	}

	if !a.paused {
		a.game.Tick(frameDelta())
	}
	return nil
}

// frameDelta is the simulated time per Update call.
func frameDelta() time.Duration {
	tps := ebiten.TPS()
	if tps <= 0 {
		tps = ebiten.DefaultTPS
	}
	return time.Second / time.Duration(tps)
}

func (a *App) Draw(screen *ebiten.Image) {
	snap := a.game.Snapshot()
	drawBoard(screen, a.cfg, snap)
	drawHUD(screen, a.hud, a.cfg, snap, a.paused)
}

func (a *App) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return int(a.cfg.ScreenW), int(a.cfg.ScreenH)
}
