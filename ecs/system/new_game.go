package system

import (
	"fmt"

	"github.com/milk9111/skyhop/ecs"
	"github.com/milk9111/skyhop/ecs/component"
	"github.com/milk9111/skyhop/ecs/entity"
)

// NewGameSystem applies a pending new-game request. It runs before any
// gameplay system so no tick observes a half-reset world.
type NewGameSystem struct{}

func NewNewGameSystem() *NewGameSystem {
	return &NewGameSystem{}
}

func (s *NewGameSystem) Update(w *ecs.World) {
	if w == nil || !w.Session.NewGame {
		return
	}
	if err := ResetWorld(w); err != nil {
		panic("new game system: " + err.Error())
	}
}

// ResetWorld starts a fresh run: queued tuning is applied, pools are cleared,
// player, camera and session are rebuilt and the opening platforms spawned.
// The session mode is kept.
func ResetWorld(w *ecs.World) error {
	w.ApplyPendingSpec()
	w.Platforms.Clear()
	w.Pickups.Clear()

	spec := w.Spec
	w.Player = entity.NewPlayer(&spec.Player)
	w.Camera = entity.NewCamera(&spec.Screen)
	w.Session = component.Session{
		Mode:        w.Session.Mode,
		Health:      spec.Player.Health,
		Difficulty:  1,
		ScrollSpeed: 1,
	}

	top, err := entity.SpawnStartingPlatforms(w)
	if err != nil {
		return fmt.Errorf("reset world: %w", err)
	}
	w.Session.SpawnCursor = top

	// the press that started the run must not also act inside it
	w.Input.Previous = w.Input.Current
	w.Events().Push(ecs.EventNewGame, nil)
	return nil
}
