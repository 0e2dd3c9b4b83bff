// Command snake-term plays the game in a terminal.
package main

import (
	"context"
	"errors"
	"flag"
	"io"
	"log"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/sarwarhridoy4/snake-go/config"
	"github.com/sarwarhridoy4/snake-go/game"
)

func main() {
	configPath := flag.String("config", "config.json", "Path to an optional JSON config file")
	seed := flag.Int64("seed", 0, "Random seed for food and obstacle placement (0 = time based)")
	logPath := flag.String("log", "", "Write game logs to this file (the screen is busy)")
	verbose := flag.Bool("v", false, "Log every food pickup")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}

	var logOut io.Writer = io.Discard
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		logOut = f
	}
	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(logOut, &slog.HandlerOptions{Level: level}))

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	g, err := game.New(cfg.Settings(),
		game.WithRand(rand.New(rand.NewSource(*seed))),
		game.WithLogger(logger),
	)
	if err != nil {
		log.Fatal(err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatal(err)
	}
	if err := screen.Init(); err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err = newTermApp(screen, cfg, g).run(ctx)
	stop()
	screen.Fini()
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal(err)
	}
}
