package system

import (
	"testing"

	"github.com/milk9111/skyhop/ecs"
	"github.com/milk9111/skyhop/ecs/component"
	"github.com/milk9111/skyhop/prefabs"
)

// isolatedSpec leaves room for the starting layout only, so the spawner never
// adds platforms that could catch the player.
func isolatedSpec() *prefabs.GameSpec {
	spec := prefabs.DefaultGameSpec()
	spec.Pools.PlatformCapacity = 4
	return spec
}

func newPlayingWorld(t *testing.T, spec *prefabs.GameSpec) *ecs.World {
	t.Helper()
	if spec == nil {
		spec = prefabs.DefaultGameSpec()
	}
	w := NewGameWorld(spec, 1)
	w.Session.Mode = component.ModePlaying
	return w
}

func tick(w *ecs.World, n int, buttons component.Buttons) {
	for i := 0; i < n; i++ {
		w.Update(buttons)
	}
}

// tap presses a button for one tick and releases it the next.
func tap(w *ecs.World, btn component.Button) {
	w.Update(component.Press(btn))
	w.Update(0)
}

func hasEvent(w *ecs.World, kind ecs.EventKind) (ecs.Event, bool) {
	for _, e := range w.Events().Peek() {
		if e.Kind == kind {
			return e, true
		}
	}
	return ecs.Event{}, false
}

func approx(a, b float64) bool {
	d := a - b
	return d < 1e-9 && d > -1e-9
}
