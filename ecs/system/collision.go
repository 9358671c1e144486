package system

import (
	"github.com/milk9111/skyhop/ecs"
	"github.com/milk9111/skyhop/ecs/component"
)

// CollisionSystem lands the player on platforms. A jumping player passes
// through platforms from below.
type CollisionSystem struct{}

func NewCollisionSystem() *CollisionSystem {
	return &CollisionSystem{}
}

func (s *CollisionSystem) Update(w *ecs.World) {
	if w == nil || !w.Simulating() {
		return
	}
	p := &w.Player
	if p.State == component.Jumping {
		return
	}

	slot, ok := platformUnderFeet(w, p)
	if !ok {
		p.State = component.Falling
		return
	}

	wasFalling := p.State == component.Falling
	p.Land(w.Platforms.Get(slot).Y)
	if wasFalling {
		w.Events().Push(ecs.EventLanded, slot)
	}
}

// platformUnderFeet returns the first live platform, in slot order, containing
// either bottom corner of the player's hitbox.
func platformUnderFeet(w *ecs.World, p *component.Player) (int, bool) {
	left, right := p.Hitbox.BottomLeft(), p.Hitbox.BottomRight()
	return w.Platforms.First(func(plat *component.Platform) bool {
		return plat.Hitbox.Contains(left) || plat.Hitbox.Contains(right)
	})
}
