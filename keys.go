package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/sarwarhridoy4/snake-go/game"
)

type binding struct {
	key    ebiten.Key
	action game.Action
}

// bindings is a slice, not a map, so keys that go down in the same frame are
// always forwarded in the same order.
var bindings = []binding{
	{ebiten.KeyArrowUp, game.ActionUp},
	{ebiten.KeyW, game.ActionUp},
	{ebiten.KeyArrowDown, game.ActionDown},
	{ebiten.KeyS, game.ActionDown},
	{ebiten.KeyArrowLeft, game.ActionLeft},
	{ebiten.KeyA, game.ActionLeft},
	{ebiten.KeyArrowRight, game.ActionRight},
	{ebiten.KeyD, game.ActionRight},
	{ebiten.KeySpace, game.ActionTurbo},
	{ebiten.KeyR, game.ActionRestart},
	{ebiten.KeyEnter, game.ActionRestart},
}

// pollEvents collects this frame's presses and releases of bound keys.
func pollEvents(events []game.Event) []game.Event {
	for _, b := range bindings {
		if inpututil.IsKeyJustPressed(b.key) {
			events = append(events, game.Event{Action: b.action, Pressed: true})
		}
		if inpututil.IsKeyJustReleased(b.key) {
			events = append(events, game.Event{Action: b.action, Pressed: false})
		}
	}
	return events
}
