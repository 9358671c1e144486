package entity

import (
	"github.com/milk9111/skyhop/ecs/component"
	"github.com/milk9111/skyhop/prefabs"
)

// NewPlayer builds a standing player at the configured start position.
func NewPlayer(spec *prefabs.PlayerSpec) component.Player {
	p := component.Player{
		X:              spec.StartX,
		Y:              spec.StartY,
		Width:          spec.Width,
		Height:         spec.Height,
		MaxSpeed:       spec.MaxSpeed,
		Acceleration:   spec.Acceleration,
		Deceleration:   spec.Deceleration,
		Gravity:        spec.Gravity,
		JumpPower:      spec.JumpPower,
		JumpHoldFrames: spec.JumpHoldFrames,
		State:          component.Walking,
		Facing:         component.FacingRight,
	}
	p.Frames[component.AnimStand] = spec.Animation.Stand
	p.Frames[component.AnimRun] = spec.Animation.Run
	p.Frames[component.AnimSkid] = spec.Animation.Skid
	p.Frames[component.AnimJump] = spec.Animation.Jump
	p.Anim.Delay = spec.Animation.Delay
	p.ChangeAnimation(component.AnimStand, true)
	p.UpdateHitbox()
	return p
}
