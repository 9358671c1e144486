package system

import "github.com/milk9111/skyhop/ecs"

// HealthSystem ends the run once the player drops out of the view or runs out of
// health.
type HealthSystem struct{}

func NewHealthSystem() *HealthSystem {
	return &HealthSystem{}
}

func (s *HealthSystem) Update(w *ecs.World) {
	if w == nil || !w.Simulating() {
		return
	}
	sess := &w.Session
	_, screenY := w.Camera.ToScreen(w.Player.X, w.Player.Y)
	if screenY > w.Camera.Height+w.Spec.Camera.DeathMargin {
		sess.Health = 0
	}
	if sess.Health > 0 {
		return
	}
	sess.Health = 0
	sess.GameOver = true
	w.Events().Push(ecs.EventGameOver, sess.Report())
}
