package combat

import (
	"github.com/TheFirstLairron/Rusty-Rogues/pkg/entity"
	"github.com/TheFirstLairron/Rusty-Rogues/pkg/state"
)

// FOV is the external visibility oracle. The renderer recomputes it
// once per render pass; the combat and AI engines only ever read it.
type FOV interface {
	IsVisible(x, y int) bool
}

// EventKind classifies one polled input event during targeting.
type EventKind int

const (
	EventNone EventKind = iota
	EventLeftClick
	EventRightClick
	EventCancel
)

// InputEvent is one input sample from the targeting loop. X/Y are map
// cell coordinates for click events.
type InputEvent struct {
	Kind EventKind
	X    int
	Y    int
}

// TargetUI drives the interactive targeting protocol: the effects
// engine owns the loop but delegates drawing and input sampling to the
// frontend, one event per iteration.
type TargetUI interface {
	Render(entities entity.List, gs *state.GameState)
	PollEvent() InputEvent
}

// singleShot replays one pre-recorded event, then cancels forever.
type singleShot struct {
	ev   InputEvent
	done bool
}

func (s *singleShot) Render(entities entity.List, gs *state.GameState) {}

func (s *singleShot) PollEvent() InputEvent {
	if s.done {
		return InputEvent{Kind: EventCancel}
	}
	s.done = true
	return s.ev
}

// SingleShot adapts a pre-recorded input event to the TargetUI
// protocol. Frontends that cannot block on input (the HTTP API, or a
// console that already captured the click) collect the target choice
// up front and feed it through here; if the event does not resolve to
// a valid target, the loop cancels instead of blocking.
func SingleShot(ev InputEvent) TargetUI {
	return &singleShot{ev: ev}
}

// TargetTile blocks until the player left-clicks a visible tile
// (within maxRange of the player when maxRange > 0) or cancels with a
// right click or the cancel key. It returns the chosen cell and
// whether a choice was made.
func TargetTile(entities entity.List, gs *state.GameState, fov FOV, ui TargetUI, maxRange float64) (int, int, bool) {
	player := entities.Player()
	for {
		ui.Render(entities, gs)

		ev := ui.PollEvent()
		switch ev.Kind {
		case EventLeftClick:
			inFOV := gs.Map.InBounds(ev.X, ev.Y) && fov.IsVisible(ev.X, ev.Y)
			inRange := maxRange <= 0 || player.Distance(ev.X, ev.Y) <= maxRange
			if inFOV && inRange {
				return ev.X, ev.Y, true
			}
		case EventRightClick, EventCancel:
			return 0, 0, false
		}
	}
}

// TargetMonster blocks until a clicked tile resolves to a fightered
// entity other than the player, or the player cancels. It returns the
// entity index and whether a target was chosen.
func TargetMonster(entities entity.List, gs *state.GameState, fov FOV, ui TargetUI, maxRange float64) (int, bool) {
	for {
		x, y, ok := TargetTile(entities, gs, fov, ui, maxRange)
		if !ok {
			return 0, false
		}
		for i := range entities {
			e := &entities[i]
			if i != entity.PlayerIndex && e.Fighter != nil && e.X == x && e.Y == y {
				return i, true
			}
		}
	}
}

// ClosestMonster returns the index of the nearest visible hostile with
// both a fighter and an AI state within maxRange of the player, or
// false when none qualifies. Strictly nearest wins; equidistant
// entities resolve to the lowest index.
func ClosestMonster(maxRange int, entities entity.List, fov FOV) (int, bool) {
	player := entities.Player()

	closest := -1
	closestDist := float64(maxRange) + 1

	for i := range entities {
		e := &entities[i]
		if i == entity.PlayerIndex || e.Fighter == nil || e.AI == nil {
			continue
		}
		if !fov.IsVisible(e.X, e.Y) {
			continue
		}
		if dist := player.DistanceTo(e); dist < closestDist {
			closest = i
			closestDist = dist
		}
	}

	if closest < 0 {
		return 0, false
	}
	return closest, true
}
