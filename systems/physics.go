package systems

import (
	"github.com/spinyflannel/society/components"
	cfg "github.com/spinyflannel/society/config"
	"github.com/spinyflannel/society/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func UpdatePhysics(ecs *ecs.ECS) {
	components.Physics.Each(ecs.World, func(e *donburi.Entry) {
		physics := components.Physics.Get(e)

		if physics.SpeedX > physics.Friction {
			physics.SpeedX -= physics.Friction
		} else if physics.SpeedX < -physics.Friction {
			physics.SpeedX += physics.Friction
		} else {
			physics.SpeedX = 0
		}

		if physics.SpeedX > physics.MaxSpeed {
			physics.SpeedX = physics.MaxSpeed
		} else if physics.SpeedX < -physics.MaxSpeed {
			physics.SpeedX = -physics.MaxSpeed
		}

		physics.SpeedY += physics.Gravity
		if physics.SpeedY > cfg.Physics.MaxFallSpeed {
			physics.SpeedY = cfg.Physics.MaxFallSpeed
		}

		// Track last safe ground position for player respawn
		if e.HasComponent(components.Player) && physics.OnGround != nil {
			obj := components.Object.Get(e)
			if obj.Check(0, 0, tags.ResolvDeadZone) == nil {
				player := components.Player.Get(e)
				player.LastSafeX = obj.X
				player.LastSafeY = obj.Y
			}
		}
	})
}
