package systems

import (
	"math"

	"github.com/spinyflannel/society/components"
	cfg "github.com/spinyflannel/society/config"
	"github.com/spinyflannel/society/rig"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const npcAcceleration = 0.25

// frame counter for periodic antagonist effects
var npcTick int

// UpdateNPCs runs patrol routines for walking characters and drift motion
// for antagonists.
func UpdateNPCs(e *ecs.ECS) {
	npcTick++

	components.NPC.Each(e.World, func(entry *donburi.Entry) {
		npc := components.NPC.Get(entry)
		obj := components.Object.Get(entry)

		if npc.Kind == components.KindAntagonist {
			updateAntagonist(e, entry, npc)
			return
		}

		physics := components.Physics.Get(entry)
		animator := components.Rig.Get(entry).Animator

		patrolling := npc.PatrolMaxX > npc.PatrolMinX
		if patrolling {
			if obj.X <= npc.PatrolMinX+cfg.NPC.TurnMargin {
				npc.Dir = 1
			} else if obj.X >= npc.PatrolMaxX-cfg.NPC.TurnMargin {
				npc.Dir = -1
			}
			physics.SpeedX += npc.Dir * npcAcceleration
		}

		var target rig.StateID
		if math.Abs(physics.SpeedX) > walkThreshold {
			target = rig.StateWalk
		} else {
			target = rig.StateIdle
		}
		if cur := animator.CurrentState(rig.LayerBase); cur == nil || cur.ID != target {
			animator.TransitionTo(animator.NewState(target), rig.LayerBase, cfg.Rig.BlendTime)
		}
	})
}

// updateAntagonist drifts a manifestation along its patrol line. It has no
// physics body; the slow slide plus the rig's pattern motion is all of it.
func updateAntagonist(e *ecs.ECS, entry *donburi.Entry, npc *components.NPCData) {
	obj := components.Object.Get(entry)
	animator := components.Rig.Get(entry).Animator

	if npc.PatrolMaxX > npc.PatrolMinX {
		if obj.X <= npc.PatrolMinX {
			npc.Dir = 1
		} else if obj.X >= npc.PatrolMaxX {
			npc.Dir = -1
		}
		obj.X += npc.Dir * cfg.NPC.AntagonistSpeed * animator.DriftIntensity()
	}

	// The beast's footfalls carry into the camera when it is fully present.
	if npc.Pattern == rig.StateNoiseBeast && animator.DriftIntensity() > 0.7 && npcTick%40 == 0 {
		TriggerScreenShake(e, cfg.ScreenShake.StompIntensity, cfg.ScreenShake.StompDuration)
	}
}

// UpdateKeepsakes advances the collectible bobbing phase.
func UpdateKeepsakes(e *ecs.ECS) {
	components.Keepsake.Each(e.World, func(entry *donburi.Entry) {
		keepsake := components.Keepsake.Get(entry)
		keepsake.Phase += dt * 0.8
	})
}
