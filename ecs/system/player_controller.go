package system

import (
	"math"

	"github.com/milk9111/skyhop/ecs"
	"github.com/milk9111/skyhop/ecs/component"
)

// PlayerSystem runs the player state machine, horizontal motion and position
// integration. Collision is resolved afterwards by CollisionSystem.
type PlayerSystem struct{}

func NewPlayerSystem() *PlayerSystem {
	return &PlayerSystem{}
}

func (s *PlayerSystem) Update(w *ecs.World) {
	if w == nil || !w.Simulating() {
		return
	}

	p := &w.Player
	ctx := newPlayerStateContext(&w.Input, p, &w.Session, func(double bool) {
		kind := ecs.EventJumped
		if double {
			kind = ecs.EventDoubleJumped
		}
		w.Events().Push(kind, nil)
	})
	stepPlayerState(ctx)

	passes := 1
	if w.Spec.LegacyDoubleAccel {
		passes = 2
	}
	move := w.Input.MoveX()
	for i := 0; i < passes; i++ {
		applyHorizontal(p, move)
	}

	p.X += p.Speed
	p.Y += p.YVelocity
	wrapPlayer(p, w.Spec.Screen.Width)
	p.UpdateHitbox()
}

func newPlayerStateContext(in *component.Input, p *component.Player, sess *component.Session, jumped func(double bool)) *component.PlayerStateContext {
	ctx := &component.PlayerStateContext{
		Input:   in,
		Player:  p,
		Session: sess,
		Jumped:  jumped,
	}
	ctx.ChangeState = func(next component.PlayerState) {
		playerStateFor(p.State).Exit(ctx)
		p.State = next.Kind()
		next.Enter(ctx)
	}
	return ctx
}

// stepPlayerState lets the current state react to input, then runs the update
// of whichever state is current afterwards.
func stepPlayerState(ctx *component.PlayerStateContext) {
	playerStateFor(ctx.Player.State).HandleInput(ctx)
	playerStateFor(ctx.Player.State).Update(ctx)
}

// applyHorizontal runs one pass of the horizontal speed rule. Turning against
// the current speed brakes at Deceleration; otherwise speed grows by
// Acceleration up to MaxSpeed. Without input speed decays to zero.
func applyHorizontal(p *component.Player, move int) {
	switch move {
	case -1:
		p.Facing = component.FacingLeft
		if p.Speed <= 0 {
			p.Speed -= p.Acceleration
		} else {
			p.Speed -= p.Deceleration
		}
		if p.Speed < -p.MaxSpeed {
			p.Speed = -p.MaxSpeed
		}
	case 1:
		p.Facing = component.FacingRight
		if p.Speed >= 0 {
			p.Speed += p.Acceleration
		} else {
			p.Speed += p.Deceleration
		}
		if p.Speed > p.MaxSpeed {
			p.Speed = p.MaxSpeed
		}
	default:
		if math.Abs(p.Speed) < p.Deceleration {
			p.Speed = 0
			return
		}
		if p.Speed < 0 {
			p.Speed += p.Deceleration
		} else if p.Speed > 0 {
			p.Speed -= p.Deceleration
		}
	}
}

func wrapPlayer(p *component.Player, screenWidth float64) {
	if p.X < -p.Width {
		p.X = screenWidth
	}
	if p.X > screenWidth {
		p.X = -p.Width
	}
}
