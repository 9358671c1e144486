package ecs

import (
	"math/rand"

	"github.com/milk9111/skyhop/ecs/component"
	"github.com/milk9111/skyhop/prefabs"
)

// World is the complete simulation state of one game. Systems receive it by
// pointer every tick; nothing in the simulation lives outside it.
type World struct {
	Spec *prefabs.GameSpec

	Input     component.Input
	Player    component.Player
	Platforms *Pool[component.Platform]
	Pickups   *Pool[component.Pickup]
	Camera    component.Camera
	Session   component.Session

	pending *prefabs.GameSpec
	rng     *rand.Rand
	events  EventQueue
	sched   *Scheduler
}

// NewWorld creates an empty world sized by spec. A nil spec uses the defaults.
func NewWorld(spec *prefabs.GameSpec, seed int64) *World {
	if spec == nil {
		spec = prefabs.DefaultGameSpec()
	}
	w := &World{
		rng:   rand.New(rand.NewSource(seed)),
		sched: NewScheduler(),
	}
	w.applySpec(spec)
	return w
}

func (w *World) applySpec(spec *prefabs.GameSpec) {
	w.Spec = spec
	w.Platforms = NewPool[component.Platform](spec.Pools.PlatformCapacity)
	w.Pickups = NewPool[component.Pickup](spec.Pools.PickupCapacity)
}

// AddSystem appends a system to the update order.
func (w *World) AddSystem(s System) {
	if w == nil {
		return
	}
	w.sched.Add(s)
}

// Systems returns the update order.
func (w *World) Systems() []System {
	if w == nil {
		return nil
	}
	return w.sched.Systems()
}

// Update advances the input snapshot and runs every system once.
func (w *World) Update(buttons component.Buttons) {
	if w == nil {
		return
	}
	w.events.flush()
	w.Input.Advance(buttons)
	w.sched.Update(w)
}

// Events returns the world event queue.
func (w *World) Events() *EventQueue {
	if w == nil {
		return nil
	}
	return &w.events
}

// Rand returns the world's seeded random source.
func (w *World) Rand() *rand.Rand {
	if w == nil {
		return nil
	}
	return w.rng
}

// SetPendingSpec queues a spec to take effect at the next new-game reset.
func (w *World) SetPendingSpec(spec *prefabs.GameSpec) {
	if w == nil || spec == nil {
		return
	}
	w.pending = spec
}

// PendingSpec reports whether a spec is waiting for the next reset.
func (w *World) PendingSpec() bool {
	return w != nil && w.pending != nil
}

// ApplyPendingSpec swaps in a queued spec, rebuilding both pools. It must only be
// called while the pools are being reset.
func (w *World) ApplyPendingSpec() bool {
	if w == nil || w.pending == nil {
		return false
	}
	w.applySpec(w.pending)
	w.pending = nil
	return true
}

// Simulating reports whether gameplay systems should advance this tick.
func (w *World) Simulating() bool {
	if w == nil {
		return false
	}
	s := &w.Session
	return s.Mode == component.ModePlaying && !s.Paused && !s.GameOver && !s.NewGame
}
