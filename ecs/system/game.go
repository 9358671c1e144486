package system

import (
	"github.com/milk9111/skyhop/ecs"
	"github.com/milk9111/skyhop/prefabs"
)

// NewGameWorld builds a world with every system in tick order and a run
// already laid out behind the menu.
func NewGameWorld(spec *prefabs.GameSpec, seed int64) *ecs.World {
	w := ecs.NewWorld(spec, seed)
	for _, s := range []ecs.System{
		NewSessionSystem(),
		NewGameOverSystem(),
		NewNewGameSystem(),
		NewBackgroundSystem(),
		NewSpawnSystem(),
		NewPlayerSystem(),
		NewCollisionSystem(),
		NewPickupCollectSystem(),
		NewCameraSystem(),
		NewProgressSystem(),
		NewHealthSystem(),
		NewAnimationSystem(),
	} {
		w.AddSystem(s)
	}
	if err := ResetWorld(w); err != nil {
		panic("new game world: " + err.Error())
	}
	return w
}
