package game

// Snapshot is a read-only copy of what a renderer needs for one frame.
type Snapshot struct {
	Round     string
	Grid      Grid
	Body      []Cell // head first; may end in a placeholder outside the grid
	Direction Direction
	Alive     bool
	Turbo     bool
	Pending   int
	Food      Cell
	HasFood   bool
	Obstacles []Cell
	Score     int
	HighScore int
}

func (g *Game) Snapshot() Snapshot {
	obstacles := make([]Cell, len(g.obstacles))
	copy(obstacles, g.obstacles)
	return Snapshot{
		Round:     g.round,
		Grid:      g.settings.Grid,
		Body:      g.snake.Body(),
		Direction: g.snake.direction,
		Alive:     g.snake.alive,
		Turbo:     g.snake.turbo,
		Pending:   len(g.snake.pending),
		Food:      g.food,
		HasFood:   g.hasFood,
		Obstacles: obstacles,
		Score:     g.score,
		HighScore: g.highScore,
	}
}
