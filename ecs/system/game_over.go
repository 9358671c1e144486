package system

import (
	"github.com/milk9111/skyhop/ecs"
	"github.com/milk9111/skyhop/ecs/component"
)

// GameOverSystem drives the screens after a run ends: the fade, the summary and
// the optional initials entry.
type GameOverSystem struct{}

func NewGameOverSystem() *GameOverSystem {
	return &GameOverSystem{}
}

func (s *GameOverSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	sess := &w.Session
	if !sess.GameOver || sess.NewGame {
		return
	}

	if !sess.SummaryShown {
		sess.GameOverFade += w.Spec.GameOver.FadeStep
		if sess.GameOverFade >= component.FadeMax {
			sess.GameOverFade = component.FadeMax
			sess.SummaryShown = true
		}
		return
	}

	in := &w.Input
	entry := &sess.Entry
	if !entry.Active {
		switch {
		case in.JustPressed(component.ButtonConfirm):
			sess.NewGame = true
		case in.JustPressed(component.ButtonSubmit):
			entry.Active = true
		}
		return
	}

	switch {
	case in.JustPressed(component.ButtonUp):
		entry.Cycle(1)
	case in.JustPressed(component.ButtonDown):
		entry.Cycle(-1)
	case in.JustPressed(component.ButtonLeft):
		entry.Move(-1)
	case in.JustPressed(component.ButtonRight):
		entry.Move(1)
	case in.JustPressed(component.ButtonConfirm):
		// scores are not stored anywhere; committing just starts over
		w.Events().Push(ecs.EventNameEntered, entry.Name())
		sess.NewGame = true
	}
}
