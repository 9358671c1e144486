package entity

import (
	"github.com/milk9111/skyhop/ecs"
	"github.com/milk9111/skyhop/ecs/component"
	"github.com/milk9111/skyhop/prefabs"
)

// NewPickup centers a pickup horizontally on plat, hovering above its top edge.
func NewPickup(kind component.PickupKind, plat *component.Platform, spec *prefabs.PickupSpec) component.Pickup {
	frames := spec.CoinFrames
	switch kind {
	case component.Coin:
	case component.Star:
		frames = spec.StarFrames
	default:
		panic("pickup: invalid kind " + kind.String())
	}

	p := component.Pickup{
		Kind:   kind,
		X:      plat.X + (plat.Width-spec.Width)/2,
		Y:      plat.Y - spec.Hover - spec.Height,
		Width:  spec.Width,
		Height: spec.Height,
	}
	p.Anim.Delay = spec.Delay
	p.Anim.Reset(frames)
	p.UpdateHitbox()
	return p
}

// SpawnPickup places a pickup above plat. A full pool is reported as
// ecs.ErrPoolFull and leaves the world unchanged.
func SpawnPickup(w *ecs.World, kind component.PickupKind, plat *component.Platform) (int, error) {
	return w.Pickups.Spawn(NewPickup(kind, plat, &w.Spec.Pickups))
}
