package component

import "fmt"

// AnimationID selects one of the player's sprite strips.
type AnimationID int

const (
	AnimStand AnimationID = iota
	AnimRun
	AnimSkid
	AnimJump
	animCount
)

var animationNames = [...]string{"stand", "run", "skid", "jump"}

func (a AnimationID) Valid() bool { return a >= 0 && a < animCount }

func (a AnimationID) String() string {
	if !a.Valid() {
		return fmt.Sprintf("AnimationID(%d)", int(a))
	}
	return animationNames[a]
}

// Animation holds frame counters for a looping sprite strip. Frames is the strip
// length and Delay the number of ticks each frame is shown.
type Animation struct {
	Frame      int
	FrameCount int
	Frames     int
	Delay      int
}

// Reset restarts the strip at frame zero with a new length.
func (a *Animation) Reset(frames int) {
	a.Frame = 0
	a.FrameCount = 0
	a.Frames = frames
}

// Advance moves the counters forward one tick.
func (a *Animation) Advance() {
	if a.Frames <= 0 {
		return
	}
	a.FrameCount++
	if a.FrameCount < a.Delay {
		return
	}
	a.FrameCount = 0
	a.Frame++
	if a.Frame >= a.Frames {
		a.Frame = 0
	}
}
