package component

// PlayerState is one phase of the player state machine. Each state owns its
// enter/exit, input handling and update logic.
type PlayerState interface {
	Name() string
	Kind() MoveState
	Enter(ctx *PlayerStateContext)
	Exit(ctx *PlayerStateContext)
	HandleInput(ctx *PlayerStateContext)
	Update(ctx *PlayerStateContext)
}

// PlayerStateContext gives a state access to the data it may touch.
type PlayerStateContext struct {
	Input       *Input
	Player      *Player
	Session     *Session
	ChangeState func(state PlayerState)
	Jumped      func(double bool)
}
