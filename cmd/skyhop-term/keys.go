package main

import (
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/milk9111/skyhop/ecs/component"
)

// Terminals only report key presses, so each press holds its button for a short
// window. Auto-repeat refreshes the window while the key stays down.
const holdWindow = 180 * time.Millisecond

type keyHolds struct {
	until map[component.Button]time.Time
}

func newKeyHolds() *keyHolds {
	return &keyHolds{until: make(map[component.Button]time.Time)}
}

// Press holds btn until now+holdWindow.
func (h *keyHolds) Press(btn component.Button, now time.Time) {
	h.until[btn] = now.Add(holdWindow)
}

// Buttons returns every button still inside its window and forgets the rest.
func (h *keyHolds) Buttons(now time.Time) component.Buttons {
	var b component.Buttons
	for btn, until := range h.until {
		if now.Before(until) {
			b = b.With(btn)
		} else {
			delete(h.until, btn)
		}
	}
	return b
}

// buttonForKey maps a key event to a button. ok is false for unbound keys.
func buttonForKey(ev *tcell.EventKey) (component.Button, bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		return component.ButtonUp, true
	case tcell.KeyDown:
		return component.ButtonDown, true
	case tcell.KeyLeft:
		return component.ButtonLeft, true
	case tcell.KeyRight:
		return component.ButtonRight, true
	case tcell.KeyEscape:
		return component.ButtonPause, true
	case tcell.KeyEnter:
		return component.ButtonConfirm, true
	case tcell.KeyTab:
		return component.ButtonSubmit, true
	case tcell.KeyRune:
	default:
		return 0, false
	}

	switch ev.Rune() {
	case 'x', 'X', ' ':
		return component.ButtonJump, true
	case 'z', 'Z':
		return component.ButtonZ, true
	case 'p', 'P':
		return component.ButtonPause, true
	case 'r', 'R':
		return component.ButtonRestart, true
	case 'w', 'W':
		return component.ButtonUp, true
	case 's', 'S':
		return component.ButtonDown, true
	case 'a', 'A':
		return component.ButtonLeft, true
	case 'd', 'D':
		return component.ButtonRight, true
	}
	return 0, false
}

func isQuit(ev *tcell.EventKey) bool {
	if ev.Key() == tcell.KeyCtrlC {
		return true
	}
	return ev.Key() == tcell.KeyRune && (ev.Rune() == 'q' || ev.Rune() == 'Q')
}
