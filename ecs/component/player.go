package component

import (
	"fmt"

	"github.com/milk9111/skyhop/common"
)

// MoveState is the player's physics phase.
type MoveState int

const (
	Walking MoveState = iota
	Falling
	Jumping
)

func (s MoveState) String() string {
	switch s {
	case Walking:
		return "walking"
	case Falling:
		return "falling"
	case Jumping:
		return "jumping"
	default:
		return fmt.Sprintf("MoveState(%d)", int(s))
	}
}

type Facing int

const (
	FacingRight Facing = iota
	FacingLeft
)

func (f Facing) String() string {
	if f == FacingLeft {
		return "left"
	}
	return "right"
}

type Player struct {
	X, Y          float64
	Width, Height float64
	Speed         float64
	YVelocity     float64

	MaxSpeed       float64
	Acceleration   float64
	Deceleration   float64
	Gravity        float64
	JumpPower      float64
	JumpHoldFrames int

	State  MoveState
	Facing Facing

	Animation AnimationID
	Anim      Animation
	// Frames is the strip length per AnimationID.
	Frames [animCount]int

	Hitbox common.Rect

	// Launched is set by a jump and cleared on landing. Walking off a ledge
	// leaves it unset, so no double jump is available.
	Launched        bool
	DoubleJumpArmed bool
	DoubleJumpUsed  bool
	JumpHeldTicks   int
}

// Land puts the player on a surface at y, ending any airborne phase.
func (p *Player) Land(surfaceY float64) {
	p.State = Walking
	p.YVelocity = 0
	p.Y = surfaceY - p.Height
	p.Launched = false
	p.DoubleJumpArmed = false
	p.DoubleJumpUsed = false
	p.JumpHeldTicks = 0
	p.UpdateHitbox()
}

// UpdateHitbox recomputes the hitbox from position and size.
func (p *Player) UpdateHitbox() {
	p.Hitbox = common.NewRect(p.X, p.Y, p.Width, p.Height)
}

// ChangeAnimation switches strips. A hard change always restarts the frame
// counters; a soft change only does so when the strip differs.
func (p *Player) ChangeAnimation(a AnimationID, hard bool) {
	frames := p.MustFrames(a)
	if hard || p.Animation != a {
		p.Animation = a
		p.Anim.Reset(frames)
	}
}

// MustFrames returns the strip length of a, panicking on an unknown id.
func (p *Player) MustFrames(a AnimationID) int {
	if !a.Valid() {
		panic("player: invalid animation " + a.String())
	}
	return p.Frames[a]
}

// Bottom returns the world y of the player's feet.
func (p *Player) Bottom() float64 { return p.Y + p.Height }
