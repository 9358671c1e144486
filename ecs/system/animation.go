package system

import (
	"github.com/milk9111/skyhop/ecs"
	"github.com/milk9111/skyhop/ecs/component"
)

// AnimationSystem advances sprite frame counters. It shares the simulation
// gate so visuals freeze with the game.
type AnimationSystem struct{}

func NewAnimationSystem() *AnimationSystem {
	return &AnimationSystem{}
}

func (a *AnimationSystem) Update(w *ecs.World) {
	if w == nil || !w.Simulating() {
		return
	}
	w.Player.Anim.Advance()
	w.Pickups.Each(func(_ int, p *component.Pickup) {
		p.Anim.Advance()
	})
}
