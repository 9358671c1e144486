package system

import (
	"github.com/milk9111/skyhop/common"
	"github.com/milk9111/skyhop/ecs"
)

// BackgroundSystem scrolls the backdrop by the camera's last movement.
type BackgroundSystem struct{}

func NewBackgroundSystem() *BackgroundSystem {
	return &BackgroundSystem{}
}

func (s *BackgroundSystem) Update(w *ecs.World) {
	if w == nil || !w.Simulating() {
		return
	}
	c := &w.Camera
	delta := (c.LastY - c.Y) * w.Spec.Camera.BackgroundParallax
	c.BackgroundOffset = common.Wrap(c.BackgroundOffset+delta, c.Height)
}
