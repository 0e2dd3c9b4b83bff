package game

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/google/uuid"
)

// DefaultMovementDelay is the base time between steps.
const DefaultMovementDelay = 80 * time.Millisecond

// StartDirection is the heading of a fresh snake.
const StartDirection = Left

// StartBody is the body every round starts with, head first.
var StartBody = []Cell{{X: 10, Y: 10}, {X: 11, Y: 10}, {X: 12, Y: 10}}

var ErrInvalidSettings = errors.New("game: invalid settings")

type State uint8

const (
	StateAlive State = iota
	StateDead
)

func (s State) String() string {
	if s == StateDead {
		return "dead"
	}
	return "alive"
}

// Settings is everything the simulation needs from configuration.
type Settings struct {
	Grid           Grid
	ObstacleCount  int
	MovementDelay  time.Duration
	ReversalPolicy ReversalPolicy
}

// Validate checks that a round can be started with s.
func (s Settings) Validate() error {
	if s.Grid.Width <= 0 || s.Grid.Height <= 0 {
		return fmt.Errorf("%w: grid %dx%d", ErrInvalidSettings, s.Grid.Width, s.Grid.Height)
	}
	for _, c := range StartBody {
		if !s.Grid.Contains(c) {
			return fmt.Errorf("%w: grid %dx%d cannot hold the starting snake at %v",
				ErrInvalidSettings, s.Grid.Width, s.Grid.Height, c)
		}
	}
	if s.MovementDelay <= 0 {
		return fmt.Errorf("%w: movement delay %v", ErrInvalidSettings, s.MovementDelay)
	}
	// Room for the starting snake and one food.
	limit := s.Grid.Size() - len(StartBody) - 1
	if s.ObstacleCount < 0 || s.ObstacleCount >= limit {
		return fmt.Errorf("%w: obstacle count %d, must be in [0, %d)", ErrInvalidSettings, s.ObstacleCount, limit)
	}
	return nil
}

// Game runs one player's session: rounds of play separated by deaths and
// restarts. It is not safe for concurrent use; the frame loop owns it.
type Game struct {
	settings Settings
	rng      *rand.Rand
	placer   *Placer
	baseLog  *slog.Logger
	log      *slog.Logger

	snake     *Snake
	food      Cell
	hasFood   bool
	obstacles []Cell

	score     int
	highScore int
	round     string
}

type Option func(*Game)

// WithRand sets the random source used for placement.
func WithRand(rng *rand.Rand) Option {
	return func(g *Game) {
		g.rng = rng
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(g *Game) {
		g.baseLog = l
	}
}

// New validates settings and starts the first round.
func New(settings Settings, opts ...Option) (*Game, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	g := &Game{settings: settings}
	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		g.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if g.baseLog == nil {
		g.baseLog = slog.New(slog.DiscardHandler)
	}
	g.placer = NewPlacer(g.rng)
	g.Reset()
	return g, nil
}

// Reset starts a new round. The high score survives.
func (g *Game) Reset() {
	g.round = uuid.NewString()
	g.log = g.baseLog.With("round", g.round)

	g.snake = NewSnake(StartBody, StartDirection, g.settings.MovementDelay)
	g.score = 0
	g.hasFood = false
	g.obstacles = g.obstacles[:0]

	for i := 0; i < g.settings.ObstacleCount; i++ {
		c, err := g.placer.FindFreeCell(g.settings.Grid, g.snake.body, nil, g.obstacles)
		if err != nil {
			g.log.Warn("no free cell", "placing", "obstacle", "placed", len(g.obstacles))
			break
		}
		g.obstacles = append(g.obstacles, c)
	}
	g.placeFood()

	g.log.Info("round started", "obstacles", len(g.obstacles), "food", g.food, "high_score", g.highScore)
}

// placeFood puts new food on a free cell. Cells in also are treated as
// occupied on top of the snake, current food and obstacles.
func (g *Game) placeFood(also ...Cell) {
	var current *Cell
	if g.hasFood {
		current = &g.food
	}
	blocked := g.obstacles
	if len(also) > 0 {
		blocked = append(g.obstacles[:len(g.obstacles):len(g.obstacles)], also...)
	}
	c, err := g.placer.FindFreeCell(g.settings.Grid, g.snake.body, current, blocked)
	if err != nil {
		g.log.Warn("no free cell", "placing", "food")
		g.hasFood = false
		return
	}
	g.food = c
	g.hasFood = true
}

// HandleEvent applies one key event. Directional and turbo keys only act on a
// live snake; restart only acts on a dead one.
func (g *Game) HandleEvent(ev Event) {
	if ev.Action == ActionRestart {
		if ev.Pressed && !g.snake.alive {
			g.Reset()
		}
		return
	}
	if !g.snake.alive {
		return
	}
	if ev.Action == ActionTurbo {
		g.snake.SetTurbo(ev.Pressed)
		return
	}
	if d, ok := ev.Action.Direction(); ok && ev.Pressed {
		g.snake.Enqueue(d)
	}
}

// Tick advances the simulation by dt. The snake steps at most once per call
// regardless of how large dt is.
func (g *Game) Tick(dt time.Duration) {
	if !g.snake.alive {
		return
	}
	if !g.snake.advance(dt) {
		return
	}
	g.step()
}

func (g *Game) step() {
	s := g.snake
	s.resolveDirection(g.settings.ReversalPolicy)
	vacated := s.body[len(s.body)-1]
	s.Step(s.direction.Vector(), g.settings.Grid)

	head := s.Head()
	if s.BitSelf() {
		g.die("self")
		return
	}
	for _, o := range g.obstacles {
		if o == head {
			g.die("obstacle")
			return
		}
	}

	if g.hasFood && head == g.food {
		if s.turbo {
			g.score += 2
		} else {
			g.score++
		}
		s.Grow()
		g.log.Debug("food eaten", "cell", head, "score", g.score, "turbo", s.turbo)
		// Food never lands where the tail just left.
		g.placeFood(vacated)
	}
}

func (g *Game) die(cause string) {
	g.snake.alive = false
	if g.score > g.highScore {
		g.highScore = g.score
	}
	g.log.Info("snake died", "cause", cause, "score", g.score, "high_score", g.highScore)
}

func (g *Game) State() State {
	if g.snake.Alive() {
		return StateAlive
	}
	return StateDead
}

func (g *Game) Score() int {
	return g.score
}

func (g *Game) HighScore() int {
	return g.highScore
}
