package entity

import (
	"fmt"

	"github.com/milk9111/skyhop/ecs"
	"github.com/milk9111/skyhop/ecs/component"
	"github.com/milk9111/skyhop/prefabs"
)

// startingOffsets are the staggered platforms above the ground, as
// (x, height above the screen bottom, width).
var startingOffsets = [][3]float64{
	{0, 175, 100},
	{125, 250, 100},
	{250, 325, 100},
}

// StartingPlatforms returns the fixed opening layout: a full-width ground
// followed by three staggered ledges, lowest first.
func StartingPlatforms(spec *prefabs.GameSpec) []component.Platform {
	h := spec.Spawner.PlatformHeight
	out := []component.Platform{
		component.NewPlatform(0, spec.Screen.Height-h, spec.Screen.Width, h),
	}
	for _, o := range startingOffsets {
		out = append(out, component.NewPlatform(o[0], spec.Screen.Height-o[1], o[2], h))
	}
	return out
}

// SpawnStartingPlatforms fills the first slots of an empty platform pool with the
// opening layout and returns the y of the topmost platform.
func SpawnStartingPlatforms(w *ecs.World) (float64, error) {
	top := w.Spec.Screen.Height
	for i, p := range StartingPlatforms(w.Spec) {
		if err := w.Platforms.SpawnAt(i, p); err != nil {
			return 0, fmt.Errorf("platform: spawn starting layout: %w", err)
		}
		if p.Y < top {
			top = p.Y
		}
	}
	return top, nil
}
