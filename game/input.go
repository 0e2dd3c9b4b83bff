package game

// Action is a key's meaning to the game. Frontends map physical keys to
// actions; keys without an action never reach the game.
type Action uint8

const (
	ActionUp Action = iota + 1
	ActionDown
	ActionLeft
	ActionRight
	ActionTurbo
	ActionRestart
)

func (a Action) String() string {
	switch a {
	case ActionUp:
		return "up"
	case ActionDown:
		return "down"
	case ActionLeft:
		return "left"
	case ActionRight:
		return "right"
	case ActionTurbo:
		return "turbo"
	case ActionRestart:
		return "restart"
	}
	return "none"
}

// Direction returns the movement an action requests, if it is directional.
func (a Action) Direction() (Direction, bool) {
	switch a {
	case ActionUp:
		return Up, true
	case ActionDown:
		return Down, true
	case ActionLeft:
		return Left, true
	case ActionRight:
		return Right, true
	}
	return 0, false
}

// Event is a key press or release.
type Event struct {
	Action  Action
	Pressed bool
}

// ReversalPolicy decides what happens to a queued direction that would turn
// the snake back onto its neck.
type ReversalPolicy uint8

const (
	// DropReversal discards the reversal and leaves the direction unchanged
	// for this step. Later queued entries wait for later steps.
	DropReversal ReversalPolicy = iota
	// SkipReversal discards reversals and applies the first legal entry in
	// the same step.
	SkipReversal
)

func (p ReversalPolicy) String() string {
	if p == SkipReversal {
		return "skip"
	}
	return "drop"
}

// Enqueue appends a direction request.
func (s *Snake) Enqueue(d Direction) {
	s.pending = append(s.pending, d)
}

// Pending is the number of queued direction requests.
func (s *Snake) Pending() int {
	return len(s.pending)
}

func (s *Snake) isReversal(d Direction) bool {
	return len(s.body) >= 2 && d == s.direction.Opposite()
}

// resolveDirection consumes queued input once per step.
func (s *Snake) resolveDirection(policy ReversalPolicy) {
	for len(s.pending) > 0 {
		d := s.pending[0]
		s.pending = s.pending[1:]
		if !s.isReversal(d) {
			s.SetDirection(d)
			return
		}
		if policy == DropReversal {
			return
		}
	}
}
