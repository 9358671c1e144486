package component

// Button is a logical input, independent of the physical key bound to it.
type Button uint16

const (
	ButtonUp Button = 1 << iota
	ButtonDown
	ButtonLeft
	ButtonRight
	ButtonJump
	ButtonZ
	ButtonPause
	ButtonConfirm
	ButtonRestart
	ButtonSubmit
)

// Buttons is a snapshot of every held button.
type Buttons uint16

func (b Buttons) Has(btn Button) bool { return uint16(b)&uint16(btn) != 0 }

func (b Buttons) With(btn Button) Buttons { return b | Buttons(btn) }

// Press returns a snapshot with every given button held.
func Press(btns ...Button) Buttons {
	var b Buttons
	for _, btn := range btns {
		b = b.With(btn)
	}
	return b
}

// Input stores this tick's and last tick's button snapshots.
type Input struct {
	Current  Buttons
	Previous Buttons
}

// Advance shifts Current into Previous and records a new snapshot.
func (in *Input) Advance(b Buttons) {
	in.Previous = in.Current
	in.Current = b
}

func (in *Input) Held(btn Button) bool { return in.Current.Has(btn) }

func (in *Input) JustPressed(btn Button) bool {
	return in.Current.Has(btn) && !in.Previous.Has(btn)
}

func (in *Input) JustReleased(btn Button) bool {
	return !in.Current.Has(btn) && in.Previous.Has(btn)
}

// MoveX returns -1, 0 or 1 for the held horizontal direction. Left wins when
// both are held.
func (in *Input) MoveX() int {
	switch {
	case in.Held(ButtonLeft):
		return -1
	case in.Held(ButtonRight):
		return 1
	default:
		return 0
	}
}
