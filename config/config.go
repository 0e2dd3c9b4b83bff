// Package config loads the game's settings and color theme.
//
// The file is optional JSON. Fields missing from it keep their defaults, so a
// file holding only {"food_color": [0, 1, 0, 1]} is a complete config.
package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math"
	"os"
	"time"

	"github.com/sarwarhridoy4/snake-go/game"
)

var ErrInvalidConfig = errors.New("config: invalid")

const (
	PolicyDrop = "drop"
	PolicySkip = "skip"
)

type Config struct {
	ScreenW             float64 `json:"screen_w"`
	ScreenH             float64 `json:"screen_h"`
	CellW               float64 `json:"cell_w"`
	RandomObstacleCount int     `json:"random_obstacle_count"`
	MovementDelayMs     int     `json:"movement_delay_ms"`
	ReversalPolicy      string  `json:"reversal_policy"`

	BackgroundColor    Color `json:"background_color"`
	SeparatorLineColor Color `json:"separator_line_color"`
	SnakeHeadColor     Color `json:"snake_head_color"`
	SnakeFirstColor    Color `json:"snake_first_color"`
	SnakeSecondColor   Color `json:"snake_second_color"`
	ObstacleColor      Color `json:"obstacle_color"`
	FoodColor          Color `json:"food_color"`
	TextColor          Color `json:"text_color"`
}

func Default() Config {
	return Config{
		ScreenW:             500,
		ScreenH:             600,
		CellW:               25,
		RandomObstacleCount: 10,
		MovementDelayMs:     int(game.DefaultMovementDelay / time.Millisecond),
		ReversalPolicy:      PolicyDrop,

		BackgroundColor:    Color{0.42, 0.0, 0.5, 1.0},
		SeparatorLineColor: Color{0.0, 0.0, 0.0, 1.0},
		SnakeHeadColor:     Color{0.0, 0.0, 0.0, 1.0},
		SnakeFirstColor:    Color{1.0, 0.0, 0.0, 1.0},
		SnakeSecondColor:   Color{0.0, 0.0, 1.0, 1.0},
		ObstacleColor:      Color{1.0, 0.0, 0.5, 1.0},
		FoodColor:          Color{1.0, 1.0, 0.0, 1.0},
		TextColor:          Color{0.0, 1.0, 0.0, 0.5},
	}
}

// Load reads the config at path. A missing file yields the defaults.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// file is the on-disk shape: every Config field plus the older
// "seperator_line_color" spelling, which is still accepted. The separator
// colors shadow the embedded field so Parse can tell which spelling was used.
type file struct {
	*Config
	SeparatorLineColor *Color `json:"separator_line_color"`
	SeperatorLineColor *Color `json:"seperator_line_color"`
}

// Parse decodes a single JSON object over the defaults and validates the
// result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	f := file{Config: &cfg}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&f); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("%w: trailing data after the config object", ErrInvalidConfig)
	}
	switch {
	case f.SeparatorLineColor != nil && f.SeperatorLineColor != nil:
		return Config{}, fmt.Errorf("%w: both separator_line_color and seperator_line_color are set", ErrInvalidConfig)
	case f.SeparatorLineColor != nil:
		cfg.SeparatorLineColor = *f.SeparatorLineColor
	case f.SeperatorLineColor != nil:
		cfg.SeparatorLineColor = *f.SeperatorLineColor
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// GridSize is the playfield in cells. Only meaningful on a valid config.
func (c Config) GridSize() game.Grid {
	return game.Grid{Width: int(c.ScreenW / c.CellW), Height: int(c.ScreenH / c.CellW)}
}

func (c Config) Validate() error {
	if c.ScreenW <= 0 || c.ScreenH <= 0 || c.CellW <= 0 {
		return fmt.Errorf("%w: screen %gx%g, cell %g must be positive", ErrInvalidConfig, c.ScreenW, c.ScreenH, c.CellW)
	}
	w, h := c.ScreenW/c.CellW, c.ScreenH/c.CellW
	if w != math.Trunc(w) || h != math.Trunc(h) {
		return fmt.Errorf("%w: screen %gx%g is not a whole number of %g px cells", ErrInvalidConfig, c.ScreenW, c.ScreenH, c.CellW)
	}
	if _, err := parsePolicy(c.ReversalPolicy); err != nil {
		return err
	}
	if err := c.Settings().Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

// Settings converts the config into what the simulation consumes.
func (c Config) Settings() game.Settings {
	policy, _ := parsePolicy(c.ReversalPolicy)
	return game.Settings{
		Grid:           c.GridSize(),
		ObstacleCount:  c.RandomObstacleCount,
		MovementDelay:  time.Duration(c.MovementDelayMs) * time.Millisecond,
		ReversalPolicy: policy,
	}
}

func parsePolicy(s string) (game.ReversalPolicy, error) {
	switch s {
	case "", PolicyDrop:
		return game.DropReversal, nil
	case PolicySkip:
		return game.SkipReversal, nil
	}
	return game.DropReversal, fmt.Errorf("%w: reversal_policy %q, want %q or %q", ErrInvalidConfig, s, PolicyDrop, PolicySkip)
}
