package system

import (
	"testing"

	"github.com/milk9111/skyhop/ecs"
	"github.com/milk9111/skyhop/ecs/component"
	"github.com/milk9111/skyhop/ecs/entity"
	"github.com/milk9111/skyhop/prefabs"
)

func TestWalkRightStaysGrounded(t *testing.T) {
	w := newPlayingWorld(t, isolatedSpec())
	w.Update(0)
	if w.Player.State != component.Walking {
		t.Fatalf("expected to start walking, got %s", w.Player.State)
	}

	y0 := w.Player.Y
	prevX := w.Player.X
	prevSpeed := w.Player.Speed
	for i := 0; i < 10; i++ {
		w.Update(component.Press(component.ButtonRight))
		p := w.Player
		if p.State != component.Walking {
			t.Fatalf("tick %d: state %s, want walking", i, p.State)
		}
		if p.Y != y0 {
			t.Fatalf("tick %d: y moved from %v to %v", i, y0, p.Y)
		}
		if p.X <= prevX {
			t.Fatalf("tick %d: x did not increase (%v -> %v)", i, prevX, p.X)
		}
		if p.Speed < prevSpeed || p.Speed > p.MaxSpeed {
			t.Fatalf("tick %d: speed %v out of order (prev %v, max %v)", i, p.Speed, prevSpeed, p.MaxSpeed)
		}
		if p.Animation != component.AnimRun || p.Facing != component.FacingRight {
			t.Fatalf("tick %d: animation %s facing %s", i, p.Animation, p.Facing)
		}
		prevX, prevSpeed = p.X, p.Speed
	}
	if want := 10 * w.Spec.Player.Acceleration; w.Player.Speed != want {
		t.Fatalf("speed after 10 ticks = %v, want %v", w.Player.Speed, want)
	}
}

func TestJumpHeldThenReleased(t *testing.T) {
	w := newPlayingWorld(t, isolatedSpec())
	w.Update(0)
	jump := component.Press(component.ButtonJump)
	power := w.Spec.Player.JumpPower

	w.Update(jump)
	if w.Player.State != component.Jumping || w.Player.YVelocity != -power {
		t.Fatalf("after press: state %s vy %v", w.Player.State, w.Player.YVelocity)
	}
	if _, ok := hasEvent(w, ecs.EventJumped); !ok {
		t.Fatalf("expected jumped event")
	}
	for i := 0; i < 4; i++ {
		w.Update(jump)
		if w.Player.State != component.Jumping || w.Player.YVelocity != -power {
			t.Fatalf("held tick %d: state %s vy %v", i, w.Player.State, w.Player.YVelocity)
		}
	}

	for want := -power + 1; ; want++ {
		w.Update(0)
		if w.Player.YVelocity != want {
			t.Fatalf("vy = %v, want %v", w.Player.YVelocity, want)
		}
		if want < 0 {
			if w.Player.State != component.Jumping {
				t.Fatalf("vy %v: state %s, want jumping", want, w.Player.State)
			}
			continue
		}
		if w.Player.State != component.Falling {
			t.Fatalf("vy reached 0 but state is %s", w.Player.State)
		}
		break
	}

	gravity := w.Spec.Player.Gravity
	for i := 0; i < int(gravity)+3; i++ {
		w.Update(0)
		if w.Player.YVelocity > gravity {
			t.Fatalf("vy %v exceeds gravity %v", w.Player.YVelocity, gravity)
		}
	}
	if w.Player.YVelocity != gravity {
		t.Fatalf("expected terminal vy %v, got %v", gravity, w.Player.YVelocity)
	}
}

func TestJumpHoldFramesCap(t *testing.T) {
	spec := isolatedSpec()
	spec.Player.JumpHoldFrames = 3
	w := newPlayingWorld(t, spec)
	w.Update(0)

	jump := component.Press(component.ButtonJump)
	tick(w, 3, jump)
	if w.Player.YVelocity != -spec.Player.JumpPower {
		t.Fatalf("vy changed inside the hold window: %v", w.Player.YVelocity)
	}
	w.Update(jump)
	if w.Player.YVelocity != -spec.Player.JumpPower+1 {
		t.Fatalf("gravity should resume once the hold cap is reached, vy %v", w.Player.YVelocity)
	}
}

func TestRestingOnPlatformIsStable(t *testing.T) {
	w := newPlayingWorld(t, isolatedSpec())
	w.Update(0)
	ground := w.Platforms.Get(0)
	if w.Player.Y != ground.Y-w.Player.Height {
		t.Fatalf("player not resting on ground: y %v", w.Player.Y)
	}

	y := w.Player.Y
	for i := 0; i < 30; i++ {
		w.Update(0)
		if w.Player.Y != y || w.Player.State != component.Walking {
			t.Fatalf("tick %d: y %v state %s", i, w.Player.Y, w.Player.State)
		}
	}
}

func TestPlayerStateTransitions(t *testing.T) {
	jump := component.Press(component.ButtonJump)
	cases := []struct {
		name      string
		state     component.MoveState
		input     component.Input
		yVelocity float64
		stars     int
		armed     bool
		used      bool
		want      component.MoveState
		wantStars int
	}{
		{name: "walk_idle", state: component.Walking, want: component.Walking},
		{name: "walk_jump_edge", state: component.Walking, input: component.Input{Current: jump}, want: component.Jumping},
		{name: "walk_jump_held", state: component.Walking, input: component.Input{Current: jump, Previous: jump}, want: component.Walking},
		{name: "jump_held", state: component.Jumping, input: component.Input{Current: jump, Previous: jump}, yVelocity: -20, want: component.Jumping},
		{name: "jump_rising", state: component.Jumping, yVelocity: -5, want: component.Jumping},
		{name: "jump_apex", state: component.Jumping, yVelocity: -1, want: component.Falling},
		{name: "fall_idle", state: component.Falling, yVelocity: 3, want: component.Falling},
		{name: "fall_double_jump", state: component.Falling, input: component.Input{Current: jump}, stars: 1, armed: true, want: component.Jumping},
		{name: "fall_no_stars", state: component.Falling, input: component.Input{Current: jump}, armed: true, want: component.Falling},
		{name: "fall_unarmed", state: component.Falling, input: component.Input{Current: jump}, stars: 1, want: component.Falling, wantStars: 1},
		{name: "fall_used", state: component.Falling, input: component.Input{Current: jump}, stars: 2, armed: true, used: true, want: component.Falling, wantStars: 2},
		{name: "fall_jump_held", state: component.Falling, input: component.Input{Current: jump, Previous: jump}, stars: 1, armed: true, want: component.Falling, wantStars: 1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p := entity.NewPlayer(&prefabs.DefaultGameSpec().Player)
			p.State = c.state
			p.YVelocity = c.yVelocity
			p.Launched = c.state != component.Walking
			p.DoubleJumpArmed = c.armed
			p.DoubleJumpUsed = c.used
			sess := &component.Session{Stars: c.stars}
			in := c.input

			jumps := 0
			ctx := newPlayerStateContext(&in, &p, sess, func(bool) { jumps++ })
			stepPlayerState(ctx)

			if p.State != c.want {
				t.Fatalf("state = %s, want %s", p.State, c.want)
			}
			if sess.Stars != c.wantStars {
				t.Fatalf("stars = %d, want %d", sess.Stars, c.wantStars)
			}
			entered := c.state != component.Jumping && c.want == component.Jumping
			if entered != (jumps == 1) {
				t.Fatalf("jump callbacks = %d, entered jumping %v", jumps, entered)
			}
			if entered && p.YVelocity != -p.JumpPower {
				t.Fatalf("vy = %v after entering jump", p.YVelocity)
			}
		})
	}
}

func TestDoubleJumpConsumesStar(t *testing.T) {
	w := newPlayingWorld(t, isolatedSpec())
	w.Update(0)
	w.Session.Stars = 1

	w.Update(component.Press(component.ButtonJump))
	for i := 0; i < 100 && w.Player.State != component.Falling; i++ {
		w.Update(0)
	}
	if w.Player.State != component.Falling {
		t.Fatalf("never reached the apex")
	}
	if !w.Player.DoubleJumpArmed {
		t.Fatalf("releasing jump with a star should arm the double jump")
	}

	w.Update(component.Press(component.ButtonJump))
	p := w.Player
	if p.State != component.Jumping || p.YVelocity != -p.JumpPower {
		t.Fatalf("double jump did not fire: state %s vy %v", p.State, p.YVelocity)
	}
	if w.Session.Stars != 0 || !p.DoubleJumpUsed || p.DoubleJumpArmed {
		t.Fatalf("double jump bookkeeping: stars %d used %v armed %v", w.Session.Stars, p.DoubleJumpUsed, p.DoubleJumpArmed)
	}
	if _, ok := hasEvent(w, ecs.EventDoubleJumped); !ok {
		t.Fatalf("expected double jump event")
	}
}

func TestWalkingOffLedgeHasNoDoubleJump(t *testing.T) {
	w := newPlayingWorld(t, isolatedSpec())
	w.Update(0)
	w.Session.Stars = 3

	// drop the player into open air
	w.Player.X = 200
	w.Player.Y = 100
	w.Player.UpdateHitbox()
	w.Update(0)
	w.Update(0)
	if w.Player.State != component.Falling {
		t.Fatalf("expected falling, got %s", w.Player.State)
	}
	w.Update(component.Press(component.ButtonJump))
	if w.Player.State != component.Falling || w.Session.Stars != 3 {
		t.Fatalf("unexpected double jump: state %s stars %d", w.Player.State, w.Session.Stars)
	}
}

func TestHorizontalRule(t *testing.T) {
	cases := []struct {
		name   string
		speed  float64
		move   int
		passes int
		want   float64
	}{
		{"accelerate_right", 0, 1, 1, 0.25},
		{"accelerate_left", 0, -1, 1, -0.25},
		{"brake_when_turning", 2, -1, 1, 1.8},
		{"clamp_right", 4.9, 1, 1, 5},
		{"clamp_left", -4.9, -1, 1, -5},
		{"decay", 1, 0, 1, 0.8},
		{"decay_negative", -1, 0, 1, -0.8},
		{"snap_to_zero", 0.1, 0, 1, 0},
		{"snap_negative", -0.15, 0, 1, 0},
		{"legacy_double_pass", 0, 1, 2, 0.5},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p := entity.NewPlayer(&prefabs.DefaultGameSpec().Player)
			p.Speed = c.speed
			for i := 0; i < c.passes; i++ {
				applyHorizontal(&p, c.move)
			}
			if !approx(p.Speed, c.want) {
				t.Fatalf("speed = %v, want %v", p.Speed, c.want)
			}
		})
	}
}

func TestLegacyDoubleAccel(t *testing.T) {
	spec := isolatedSpec()
	spec.LegacyDoubleAccel = true
	w := newPlayingWorld(t, spec)
	w.Update(0)
	w.Update(component.Press(component.ButtonRight))
	if want := 2 * spec.Player.Acceleration; w.Player.Speed != want {
		t.Fatalf("speed = %v, want %v", w.Player.Speed, want)
	}
}

func TestWrapAround(t *testing.T) {
	cases := []struct {
		name  string
		x     float64
		wantX float64
	}{
		{"off_left", -33, 400},
		{"edge_left", -32, -32},
		{"off_right", 401, -32},
		{"edge_right", 400, 400},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p := entity.NewPlayer(&prefabs.DefaultGameSpec().Player)
			p.X = c.x
			wrapPlayer(&p, 400)
			if p.X != c.wantX {
				t.Fatalf("x = %v, want %v", p.X, c.wantX)
			}
		})
	}
}

func TestWalkingAnimation(t *testing.T) {
	w := newPlayingWorld(t, isolatedSpec())
	w.Update(0)

	right := component.Press(component.ButtonRight)
	tick(w, 6, right)
	if w.Player.Animation != component.AnimRun || w.Player.Anim.Frame != 1 {
		t.Fatalf("after 6 ticks: %s frame %d", w.Player.Animation, w.Player.Anim.Frame)
	}
	tick(w, 6, right)
	if w.Player.Anim.Frame != 0 {
		t.Fatalf("run strip should loop, frame %d", w.Player.Anim.Frame)
	}

	w.Update(component.Press(component.ButtonLeft))
	if w.Player.Animation != component.AnimSkid || w.Player.Facing != component.FacingLeft {
		t.Fatalf("turning should skid: %s facing %s", w.Player.Animation, w.Player.Facing)
	}
	w.Update(0)
	if w.Player.Animation != component.AnimStand {
		t.Fatalf("no input should stand, got %s", w.Player.Animation)
	}
}
