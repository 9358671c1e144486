package system

import "github.com/milk9111/skyhop/ecs/component"

// Player state singletons (avoid allocations on transitions).
var (
	playerStateWalk component.PlayerState = &playerWalkingState{}
	playerStateJump component.PlayerState = &playerJumpingState{}
	playerStateFall component.PlayerState = &playerFallingState{}
)

type playerWalkingState struct{}

type playerJumpingState struct{}

type playerFallingState struct{}

func playerStateFor(s component.MoveState) component.PlayerState {
	switch s {
	case component.Walking:
		return playerStateWalk
	case component.Jumping:
		return playerStateJump
	case component.Falling:
		return playerStateFall
	default:
		panic("player: invalid move state " + s.String())
	}
}

func (playerWalkingState) Name() string                             { return "walking" }
func (playerWalkingState) Kind() component.MoveState                { return component.Walking }
func (playerWalkingState) Enter(ctx *component.PlayerStateContext)  {}
func (playerWalkingState) Exit(ctx *component.PlayerStateContext)   {}
func (playerWalkingState) Update(ctx *component.PlayerStateContext) {}
func (playerWalkingState) HandleInput(ctx *component.PlayerStateContext) {
	if ctx == nil || ctx.Input == nil || ctx.Player == nil {
		return
	}
	p := ctx.Player
	switch ctx.Input.MoveX() {
	case -1:
		p.Facing = component.FacingLeft
		if p.Speed > 0 {
			p.ChangeAnimation(component.AnimSkid, false)
		} else {
			p.ChangeAnimation(component.AnimRun, false)
		}
	case 1:
		p.Facing = component.FacingRight
		if p.Speed < 0 {
			p.ChangeAnimation(component.AnimSkid, false)
		} else {
			p.ChangeAnimation(component.AnimRun, false)
		}
	default:
		p.ChangeAnimation(component.AnimStand, false)
	}

	if ctx.Input.JustPressed(component.ButtonJump) && ctx.ChangeState != nil {
		ctx.ChangeState(playerStateJump)
		if ctx.Jumped != nil {
			ctx.Jumped(false)
		}
	}
}

func (playerJumpingState) Name() string              { return "jumping" }
func (playerJumpingState) Kind() component.MoveState { return component.Jumping }
func (playerJumpingState) Enter(ctx *component.PlayerStateContext) {
	if ctx == nil || ctx.Player == nil {
		return
	}
	p := ctx.Player
	p.YVelocity = -p.JumpPower
	p.JumpHeldTicks = 0
	p.Launched = true
	p.ChangeAnimation(component.AnimJump, false)
}
func (playerJumpingState) Exit(ctx *component.PlayerStateContext)        {}
func (playerJumpingState) HandleInput(ctx *component.PlayerStateContext) {}
func (playerJumpingState) Update(ctx *component.PlayerStateContext) {
	if ctx == nil || ctx.Input == nil || ctx.Player == nil {
		return
	}
	p := ctx.Player
	p.ChangeAnimation(component.AnimJump, false)

	// no gravity while the jump is held
	if jumpHeld(ctx) {
		p.JumpHeldTicks++
		return
	}
	if !ctx.Input.Held(component.ButtonJump) {
		armDoubleJump(ctx)
	}
	applyGravity(p)
	if p.YVelocity >= 0 && ctx.ChangeState != nil {
		ctx.ChangeState(playerStateFall)
	}
}

func (playerFallingState) Name() string                            { return "falling" }
func (playerFallingState) Kind() component.MoveState               { return component.Falling }
func (playerFallingState) Enter(ctx *component.PlayerStateContext) {}
func (playerFallingState) Exit(ctx *component.PlayerStateContext)  {}
func (playerFallingState) HandleInput(ctx *component.PlayerStateContext) {
	if ctx == nil || ctx.Input == nil || ctx.Player == nil || ctx.Session == nil {
		return
	}
	p := ctx.Player
	if !ctx.Input.Held(component.ButtonJump) {
		armDoubleJump(ctx)
		return
	}
	if !ctx.Input.JustPressed(component.ButtonJump) || !canDoubleJump(ctx) {
		return
	}
	ctx.Session.Stars--
	p.DoubleJumpUsed = true
	p.DoubleJumpArmed = false
	if ctx.ChangeState != nil {
		ctx.ChangeState(playerStateJump)
	}
	if ctx.Jumped != nil {
		ctx.Jumped(true)
	}
}
func (playerFallingState) Update(ctx *component.PlayerStateContext) {
	if ctx == nil || ctx.Player == nil {
		return
	}
	applyGravity(ctx.Player)
}

func jumpHeld(ctx *component.PlayerStateContext) bool {
	p := ctx.Player
	if !ctx.Input.Held(component.ButtonJump) {
		return false
	}
	return p.JumpHoldFrames <= 0 || p.JumpHeldTicks < p.JumpHoldFrames
}

// applyGravity accelerates the player downward by one unit, capped at Gravity.
func applyGravity(p *component.Player) {
	if p.YVelocity < p.Gravity {
		p.YVelocity++
		if p.YVelocity > p.Gravity {
			p.YVelocity = p.Gravity
		}
	}
}

func armDoubleJump(ctx *component.PlayerStateContext) {
	p := ctx.Player
	if ctx.Session == nil || !p.Launched || p.DoubleJumpUsed {
		return
	}
	if ctx.Session.Stars >= 1 {
		p.DoubleJumpArmed = true
	}
}

func canDoubleJump(ctx *component.PlayerStateContext) bool {
	p := ctx.Player
	return p.DoubleJumpArmed && !p.DoubleJumpUsed && ctx.Session.Stars > 0
}
