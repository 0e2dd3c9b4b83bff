package game

import "time"

// placeholder is where a freshly grown tail segment sits until the next step
// moves it onto the grid.
var placeholder = Cell{X: -1, Y: -1}

// Snake is the player's body, head first, plus its movement state.
type Snake struct {
	body      []Cell
	direction Direction
	alive     bool
	turbo     bool

	delay   time.Duration
	elapsed time.Duration

	// pending holds direction requests in arrival order. They are validated
	// when consumed, not when queued.
	pending []Direction
}

// NewSnake returns a live snake with a copy of body. body must not be empty.
func NewSnake(body []Cell, dir Direction, delay time.Duration) *Snake {
	if len(body) == 0 {
		panic("game: snake needs at least one segment")
	}
	b := make([]Cell, len(body))
	copy(b, body)
	return &Snake{
		body:      b,
		direction: dir,
		alive:     true,
		delay:     delay,
	}
}

// Body returns a copy of the segments, head first.
func (s *Snake) Body() []Cell {
	b := make([]Cell, len(s.body))
	copy(b, s.body)
	return b
}

func (s *Snake) Head() Cell {
	return s.body[0]
}

func (s *Snake) Len() int {
	return len(s.body)
}

func (s *Snake) Direction() Direction {
	return s.direction
}

// SetDirection does not check for reversals; callers resolve input first.
func (s *Snake) SetDirection(d Direction) {
	s.direction = d
}

func (s *Snake) Alive() bool {
	return s.alive
}

func (s *Snake) Turbo() bool {
	return s.turbo
}

func (s *Snake) SetTurbo(on bool) {
	s.turbo = on
}

// EffectiveDelay is the time between steps, halved under turbo.
func (s *Snake) EffectiveDelay() time.Duration {
	if s.turbo {
		return s.delay / 2
	}
	return s.delay
}

// advance adds dt to the movement timer and reports whether a step is due.
// A due step resets the timer to zero, so a single large dt never yields more
// than one step.
func (s *Snake) advance(dt time.Duration) bool {
	s.elapsed += dt
	if s.elapsed <= s.EffectiveDelay() {
		return false
	}
	s.elapsed = 0
	return true
}

// Step moves the snake one cell by v. Every segment behind the head takes the
// position its predecessor had before the step, then the head moves and wraps.
func (s *Snake) Step(v Cell, grid Grid) {
	copy(s.body[1:], s.body[:len(s.body)-1])
	s.body[0] = grid.Wrap(s.body[0].Add(v))
}

// Grow appends a placeholder tail segment. The next Step puts it where the
// current tail is.
func (s *Snake) Grow() {
	s.body = append(s.body, placeholder)
}

// BitSelf reports whether the head shares a cell with any other segment.
func (s *Snake) BitSelf() bool {
	head := s.body[0]
	for _, c := range s.body[1:] {
		if c == head {
			return true
		}
	}
	return false
}

func (s *Snake) Occupies(c Cell) bool {
	for _, b := range s.body {
		if b == c {
			return true
		}
	}
	return false
}
