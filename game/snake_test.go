package game

import (
	"testing"
	"time"
)

func TestSnakeStep_SynchronizedShift(t *testing.T) {
	grid := Grid{Width: 20, Height: 24}
	a, b, c := Cell{X: 5, Y: 5}, Cell{X: 6, Y: 5}, Cell{X: 7, Y: 5}
	s := NewSnake([]Cell{a, b, c}, Left, DefaultMovementDelay)

	s.Step(Up.Vector(), grid)

	want := []Cell{{X: 5, Y: 4}, a, b}
	if got := s.Body(); !equalCells(got, want) {
		t.Fatalf("body=%v want=%v", got, want)
	}
}

func TestSnakeStep_HeadWraps(t *testing.T) {
	grid := Grid{Width: 20, Height: 24}
	s := NewSnake([]Cell{{X: 0, Y: 3}, {X: 1, Y: 3}, {X: 2, Y: 3}}, Left, DefaultMovementDelay)

	s.Step(Left.Vector(), grid)

	want := []Cell{{X: 19, Y: 3}, {X: 0, Y: 3}, {X: 1, Y: 3}}
	if got := s.Body(); !equalCells(got, want) {
		t.Fatalf("body=%v want=%v", got, want)
	}
}

func TestSnakeGrow_PlaceholderRealizedByNextStep(t *testing.T) {
	grid := Grid{Width: 20, Height: 24}
	s := NewSnake([]Cell{{X: 10, Y: 10}, {X: 11, Y: 10}, {X: 12, Y: 10}}, Left, DefaultMovementDelay)

	s.Grow()
	if s.Len() != 4 {
		t.Fatalf("len=%d want=4", s.Len())
	}
	before := s.Body()

	s.Step(Left.Vector(), grid)

	after := s.Body()
	if after[0] != (Cell{X: 9, Y: 10}) {
		t.Fatalf("head=%v want=(9,10)", after[0])
	}
	for i := 1; i < len(after); i++ {
		if after[i] != before[i-1] {
			t.Fatalf("segment %d=%v want=%v (pre-step segment %d)", i, after[i], before[i-1], i-1)
		}
		if after[i] == placeholder {
			t.Fatalf("segment %d still at placeholder", i)
		}
	}
}

func TestSnakeBitSelf(t *testing.T) {
	grid := Grid{Width: 20, Height: 24}
	// Head at (5,5) heading left, the body curls below it.
	s := NewSnake([]Cell{{X: 5, Y: 5}, {X: 6, Y: 5}, {X: 6, Y: 6}, {X: 5, Y: 6}, {X: 4, Y: 6}}, Left, DefaultMovementDelay)
	if s.BitSelf() {
		t.Fatal("fresh snake reports a self bite")
	}

	s.Step(Down.Vector(), grid)
	if !s.BitSelf() {
		t.Fatalf("moving down into own body not detected: %v", s.Body())
	}
}

func TestSnakeStep_FollowsOldTailWithoutBite(t *testing.T) {
	grid := Grid{Width: 20, Height: 24}
	// A 2x2 loop: the head moves into the cell the tail is leaving.
	s := NewSnake([]Cell{{X: 5, Y: 5}, {X: 6, Y: 5}, {X: 6, Y: 6}, {X: 5, Y: 6}}, Left, DefaultMovementDelay)

	s.Step(Down.Vector(), grid)
	if s.BitSelf() {
		t.Fatalf("chasing the tail counted as a bite: %v", s.Body())
	}
}

func TestSnakeAdvance(t *testing.T) {
	s := NewSnake(StartBody, Left, 80*time.Millisecond)

	if s.advance(40 * time.Millisecond) {
		t.Fatal("stepped after 40ms")
	}
	if s.advance(40 * time.Millisecond) {
		t.Fatal("stepped at exactly the delay")
	}
	if !s.advance(time.Millisecond) {
		t.Fatal("no step after crossing the delay")
	}
	if s.elapsed != 0 {
		t.Fatalf("elapsed=%v want=0 after a step", s.elapsed)
	}

	s.SetTurbo(true)
	if got := s.EffectiveDelay(); got != 40*time.Millisecond {
		t.Fatalf("turbo delay=%v want=40ms", got)
	}
	if !s.advance(41 * time.Millisecond) {
		t.Fatal("turbo: no step after 41ms")
	}
}
