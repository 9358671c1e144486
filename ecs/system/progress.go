package system

import (
	"github.com/milk9111/skyhop/ecs"
	"github.com/milk9111/skyhop/prefabs"
)

// ProgressSystem tracks the highest altitude, awards distance points and
// advances the difficulty and scroll-speed curves.
type ProgressSystem struct {
	spec       *prefabs.GameSpec
	difficulty Curve
	scroll     Curve
}

func NewProgressSystem() *ProgressSystem {
	return &ProgressSystem{}
}

func (s *ProgressSystem) Update(w *ecs.World) {
	if w == nil || !w.Simulating() {
		return
	}
	if s.spec != w.Spec {
		s.spec = w.Spec
		s.difficulty = NewCurve(w.Spec.Curves.Difficulty)
		s.scroll = NewCurve(w.Spec.Curves.Scroll)
	}

	sess := &w.Session
	sess.Ticks++

	if alt := w.Spec.Player.StartY - w.Player.Y; alt > sess.Highest {
		sess.Highest = alt
	}
	if per := w.Spec.Scoring.DistancePerPoint; per > 0 {
		if pts := int(sess.Highest / per); pts > sess.DistancePoints {
			sess.Score += pts - sess.DistancePoints
			sess.DistancePoints = pts
		}
	}

	// curves only ever ratchet upward within a run
	if d := s.difficulty.Value(sess.Highest); d > sess.Difficulty {
		sess.Difficulty = d
	}
	if v := s.scroll.Value(sess.Highest); v > sess.ScrollSpeed {
		sess.ScrollSpeed = v
	}
}
