package game

import (
	"errors"
	"math/rand"
)

// maxSampleAttempts bounds random sampling before FindFreeCell falls back to
// scanning the whole grid.
const maxSampleAttempts = 1000

// ErrNoFreeCell is returned when every cell of the grid is taken.
var ErrNoFreeCell = errors.New("game: no free cell")

// Placer picks uniformly random unoccupied cells for food and obstacles.
type Placer struct {
	rng      *rand.Rand
	attempts int
}

func NewPlacer(rng *rand.Rand) *Placer {
	return &Placer{rng: rng, attempts: maxSampleAttempts}
}

// FindFreeCell returns a cell that is not part of snake, not food (when food
// is non-nil) and not an obstacle.
func (p *Placer) FindFreeCell(grid Grid, snake []Cell, food *Cell, obstacles []Cell) (Cell, error) {
	if grid.Width <= 0 || grid.Height <= 0 {
		return Cell{}, ErrNoFreeCell
	}

	occupied := make(map[Cell]struct{}, len(snake)+len(obstacles)+1)
	for _, c := range snake {
		occupied[c] = struct{}{}
	}
	if food != nil {
		occupied[*food] = struct{}{}
	}
	for _, c := range obstacles {
		occupied[c] = struct{}{}
	}

	for i := 0; i < p.attempts; i++ {
		c := Cell{X: p.rng.Intn(grid.Width), Y: p.rng.Intn(grid.Height)}
		if _, ok := occupied[c]; !ok {
			return c, nil
		}
	}

	// Sampling kept hitting occupied cells; the board is close to full.
	free := make([]Cell, 0, grid.Size())
	for y := 0; y < grid.Height; y++ {
		for x := 0; x < grid.Width; x++ {
			c := Cell{X: x, Y: y}
			if _, ok := occupied[c]; !ok {
				free = append(free, c)
			}
		}
	}
	if len(free) == 0 {
		return Cell{}, ErrNoFreeCell
	}
	return free[p.rng.Intn(len(free))], nil
}
