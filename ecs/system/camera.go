package system

import (
	"math"

	"github.com/milk9111/skyhop/ecs"
)

// CameraSystem raises the view while the player is near the top of the screen.
// The first time that happens the view starts scrolling on its own for the
// rest of the run.
type CameraSystem struct{}

func NewCameraSystem() *CameraSystem {
	return &CameraSystem{}
}

func (cs *CameraSystem) Update(w *ecs.World) {
	if w == nil || !w.Simulating() {
		return
	}
	c := &w.Camera
	sess := &w.Session
	c.LastX, c.LastY = c.X, c.Y

	_, screenY := c.ToScreen(w.Player.X, w.Player.Y)
	threshold := c.Height * w.Spec.Camera.ScrollThreshold
	if screenY < threshold {
		c.Y -= math.Max(1, (threshold-screenY)*w.Spec.Camera.Smooth)
		if !sess.Scrolling {
			sess.Scrolling = true
			w.Events().Push(ecs.EventScrollStarted, nil)
		}
	}
	if sess.Scrolling {
		c.Y -= sess.ScrollSpeed
	}
}
