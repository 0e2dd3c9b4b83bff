package main

import (
	"errors"
	"flag"
	"log"
	"log/slog"
	"math/rand"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/sarwarhridoy4/snake-go/config"
	"github.com/sarwarhridoy4/snake-go/game"
)

func main() {
	configPath := flag.String("config", "config.json", "Path to an optional JSON config file")
	seed := flag.Int64("seed", 0, "Random seed for food and obstacle placement (0 = time based)")
	verbose := flag.Bool("v", false, "Log every food pickup")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	app, err := NewApp(cfg,
		game.WithRand(rand.New(rand.NewSource(*seed))),
		game.WithLogger(logger),
	)
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowSize(int(cfg.ScreenW), int(cfg.ScreenH))
	ebiten.SetWindowTitle("Snake")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	if err := ebiten.RunGame(app); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
