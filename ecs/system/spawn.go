package system

import (
	"errors"

	"github.com/milk9111/skyhop/ecs"
	"github.com/milk9111/skyhop/ecs/component"
	"github.com/milk9111/skyhop/ecs/entity"
)

// SpawnSystem keeps the level endless: it evicts platforms and pickups that fell
// below the view and refills every free platform slot above the spawn cursor.
type SpawnSystem struct{}

func NewSpawnSystem() *SpawnSystem {
	return &SpawnSystem{}
}

func (s *SpawnSystem) Update(w *ecs.World) {
	if w == nil || !w.Simulating() {
		return
	}
	evict(w)

	for i := 0; i < w.Platforms.Cap(); i++ {
		if w.Platforms.Alive(i) {
			continue
		}
		plat := nextPlatform(w)
		if err := w.Platforms.SpawnAt(i, plat); err != nil {
			panic("spawn system: " + err.Error())
		}
		rollPickup(w, &plat)
	}
}

// evict kills everything whose top edge is more than the despawn margin below
// the view.
func evict(w *ecs.World) {
	limit := w.Camera.Bottom() + w.Spec.Spawner.DespawnMargin
	w.Platforms.Each(func(i int, p *component.Platform) {
		if p.Y > limit {
			w.Platforms.Kill(i)
		}
	})
	w.Pickups.Each(func(i int, p *component.Pickup) {
		if p.Y > limit {
			w.Pickups.Kill(i)
		}
	})
}

// nextPlatform moves the spawn cursor up one step and builds a platform there.
func nextPlatform(w *ecs.World) component.Platform {
	sp := &w.Spec.Spawner
	rng := w.Rand()

	width := float64(sp.Widths[rng.Intn(len(sp.Widths))])
	if sp.WidthJitter > 0 {
		width -= float64(rng.Intn(sp.WidthJitter))
	}

	w.Session.SpawnCursor -= sp.PlatformIncrement * w.Session.Difficulty

	lane := rng.Intn(sp.Lanes)
	x := float64(lane)*(w.Spec.Screen.Width/float64(sp.Lanes)) - width/2 + sp.LaneOffset
	return component.NewPlatform(x, w.Session.SpawnCursor, width, sp.PlatformHeight)
}

// rollPickup maybe attaches a coin or star to a freshly spawned platform.
func rollPickup(w *ecs.World, plat *component.Platform) {
	sp := &w.Spec.Spawner
	r := w.Rand().Intn(100)

	var kind component.PickupKind
	switch {
	case r < sp.CoinChance:
		kind = component.Coin
	case r < sp.CoinChance+sp.StarChance:
		kind = component.Star
	default:
		return
	}
	if _, err := entity.SpawnPickup(w, kind, plat); err != nil && !errors.Is(err, ecs.ErrPoolFull) {
		panic("spawn system: " + err.Error())
	}
}
