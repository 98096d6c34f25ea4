package systems

import (
	"math"

	"github.com/spinyflannel/society/components"
	cfg "github.com/spinyflannel/society/config"
	"github.com/spinyflannel/society/rig"
	"github.com/spinyflannel/society/tags"
	"github.com/yohamta/donburi/ecs"
)

// dt is the fixed simulation step. Ebitengine ticks at 60 TPS.
const dt = 1.0 / 60.0

// walkThreshold is the speed below which the rig settles back to idle.
const walkThreshold = 0.3

// UpdatePlayer handles movement input and drives the player rig's base
// state and reactions from what the body is doing.
func UpdatePlayer(e *ecs.ECS) {
	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	input := getOrCreateInput(e)
	player := components.Player.Get(playerEntry)
	physics := components.Physics.Get(playerEntry)
	animator := components.Rig.Get(playerEntry).Animator

	if input.Pressed(cfg.ActionMoveLeft) {
		physics.SpeedX -= cfg.Player.Acceleration
		player.Direction.X = cfg.DirectionLeft
	}
	if input.Pressed(cfg.ActionMoveRight) {
		physics.SpeedX += cfg.Player.Acceleration
		player.Direction.X = cfg.DirectionRight
	}

	grounded := physics.OnGround != nil
	if grounded {
		player.CoyoteFrames = cfg.Player.CoyoteFrames
	} else if player.CoyoteFrames > 0 {
		player.CoyoteFrames--
	}

	if input.JustPressed(cfg.ActionJump) && player.CoyoteFrames > 0 {
		physics.SpeedY = -cfg.Player.JumpSpeed
		physics.OnGround = nil
		player.CoyoteFrames = 0
		animator.StartReaction(rig.StateJump, cfg.Rig.JumpDuration)
	}

	// Landing after a real fall gets the impact squash.
	if grounded && !player.WasGrounded && !animator.IsReacting() {
		animator.StartReaction(rig.StateLand, cfg.Rig.LandDuration)
	}
	player.WasGrounded = grounded

	speed := math.Abs(physics.SpeedX)
	var target rig.StateID
	switch {
	case !grounded:
		target = rig.StateAirborne
	case speed > cfg.Player.RunThreshold:
		target = rig.StateRun
	case speed > walkThreshold:
		target = rig.StateWalk
	default:
		target = rig.StateIdle
	}
	if cur := animator.CurrentState(rig.LayerBase); cur == nil || cur.ID != target {
		animator.TransitionTo(animator.NewState(target), rig.LayerBase, cfg.Rig.BlendTime)
	}
}
