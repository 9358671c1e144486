package system

import (
	"github.com/milk9111/skyhop/ecs"
	"github.com/milk9111/skyhop/ecs/component"
)

// SessionSystem handles the run-level buttons: starting from the menu,
// restarting and pausing.
type SessionSystem struct{}

func NewSessionSystem() *SessionSystem {
	return &SessionSystem{}
}

func (s *SessionSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	sess := &w.Session
	in := &w.Input

	if sess.Mode == component.ModeMenu {
		if in.JustPressed(component.ButtonConfirm) || in.JustPressed(component.ButtonJump) {
			sess.Mode = component.ModePlaying
			sess.NewGame = true
		}
		return
	}

	if in.JustPressed(component.ButtonRestart) {
		sess.NewGame = true
		return
	}
	if sess.GameOver {
		return
	}
	if in.JustPressed(component.ButtonPause) {
		SetPaused(w, !sess.Paused)
	}
}

// SetPaused freezes or resumes the simulation.
func SetPaused(w *ecs.World, paused bool) {
	if w == nil || w.Session.Paused == paused {
		return
	}
	w.Session.Paused = paused
	if paused {
		w.Events().Push(ecs.EventPaused, nil)
	} else {
		w.Events().Push(ecs.EventResumed, nil)
	}
}

// RequestNewGame asks for a reset at the start of the next tick.
func RequestNewGame(w *ecs.World) {
	if w == nil {
		return
	}
	w.Session.Mode = component.ModePlaying
	w.Session.NewGame = true
}
