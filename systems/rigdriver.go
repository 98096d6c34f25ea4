package systems

import (
	"math"

	"github.com/spinyflannel/society/components"
	cfg "github.com/spinyflannel/society/config"
	"github.com/spinyflannel/society/rig"
	"github.com/spinyflannel/society/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateRigs feeds every animator its per-tick context and advances it.
// Runs after movement and collision so the context reflects this frame's
// resolved motion.
func UpdateRigs(e *ecs.ECS) {
	motionScale := 1.0
	if entry, ok := components.Settings.First(e.World); ok {
		settings := components.Settings.Get(entry)
		if settings.MotionScaleIndex >= 0 && settings.MotionScaleIndex < len(cfg.SettingsMenu.MotionScales) {
			motionScale = cfg.SettingsMenu.MotionScales[settings.MotionScaleIndex]
		}
	}

	var companionX, companionY float64
	hasCompanion := false
	if entry, ok := tags.Companion.First(e.World); ok {
		obj := components.Object.Get(entry)
		companionX, companionY = obj.X, obj.Y
		hasCompanion = true
	}

	components.Rig.Each(e.World, func(entry *donburi.Entry) {
		animator := components.Rig.Get(entry).Animator
		animator.SetMotionScale(motionScale)

		var ctx rig.Context
		if entry.HasComponent(components.Physics) {
			physics := components.Physics.Get(entry)
			ctx.Grounded = physics.OnGround != nil
			ctx.VerticalVelocity = physics.SpeedY
			ctx.Speed = math.Abs(physics.SpeedX)
			if physics.SpeedX != 0 {
				ctx.MoveDir = rig.Vec3{X: math.Copysign(1, physics.SpeedX)}
			}
		}
		if hasCompanion && entry.HasComponent(components.Object) {
			obj := components.Object.Get(entry)
			dx := obj.X - companionX
			dy := obj.Y - companionY
			ctx.CompanionNearby = math.Hypot(dx, dy) < cfg.NPC.CompanionRadius
		}

		animator.Update(dt, ctx)
	})
}
