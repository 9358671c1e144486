package system

import (
	"github.com/milk9111/skyhop/ecs"
	"github.com/milk9111/skyhop/ecs/component"
)

// PickupCollectSystem collects at most one overlapping pickup per tick.
type PickupCollectSystem struct{}

func NewPickupCollectSystem() *PickupCollectSystem { return &PickupCollectSystem{} }

func (s *PickupCollectSystem) Update(w *ecs.World) {
	if w == nil || !w.Simulating() {
		return
	}

	hitbox := w.Player.Hitbox
	slot, ok := w.Pickups.First(func(pk *component.Pickup) bool {
		return pk.Hitbox.Overlaps(hitbox)
	})
	if !ok {
		return
	}

	pk := w.Pickups.Get(slot)
	kind := pk.Kind
	sess := &w.Session
	switch kind {
	case component.Coin:
		sess.Score += w.Spec.Scoring.CoinScore
		sess.Coins++
	case component.Star:
		sess.Stars++
	default:
		panic("pickup collect system: invalid kind " + kind.String())
	}
	w.Pickups.Kill(slot)
	w.Events().Push(ecs.EventPickupCollected, kind)
}
