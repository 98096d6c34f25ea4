package systems

import (
	"math"

	"github.com/spinyflannel/society/components"
	cfg "github.com/spinyflannel/society/config"
	"github.com/spinyflannel/society/rig"
	"github.com/spinyflannel/society/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func UpdateCollisions(e *ecs.ECS) {
	tags.Player.Each(e.World, func(entry *donburi.Entry) {
		physics := components.Physics.Get(entry)
		obj := components.Object.Get(entry)

		resolveHorizontal(physics, obj.Object)
		resolveVertical(physics, obj.Object)

		checkKeepsakes(e, entry, obj.Object)
		checkTriggers(e, obj.Object)
		checkAntagonistContact(e, entry, obj.Object)
		if obj.Check(0, 0, tags.ResolvDeadZone) != nil {
			handleDeadZoneHit(e, entry)
		}
	})

	// Walking NPCs share the player's collision resolution.
	components.NPC.Each(e.World, func(entry *donburi.Entry) {
		if !entry.HasComponent(components.Physics) {
			return
		}
		physics := components.Physics.Get(entry)
		obj := components.Object.Get(entry)
		resolveHorizontal(physics, obj.Object)
		resolveVertical(physics, obj.Object)
	})
}

func resolveHorizontal(physics *components.PhysicsData, object *resolv.Object) {
	dx := physics.SpeedX
	if dx == 0 {
		return
	}

	if check := object.Check(dx, 0, tags.ResolvSolid); check != nil {
		if solids := check.ObjectsByTags(tags.ResolvSolid); len(solids) > 0 {
			dx = check.ContactWithObject(solids[0]).X()
			physics.SpeedX = 0
		}
	}
	object.X += dx
}

func resolveVertical(physics *components.PhysicsData, object *resolv.Object) {
	physics.OnGround = nil
	dy := math.Max(math.Min(physics.SpeedY, cfg.Physics.VerticalSpeedClamp), -cfg.Physics.VerticalSpeedClamp)

	checkDistance := dy
	if dy >= 0 {
		checkDistance++
	}

	if check := object.Check(0, checkDistance, tags.ResolvSolid); check != nil {
		if solids := check.ObjectsByTags(tags.ResolvSolid); len(solids) > 0 {
			contact := check.ContactWithObject(solids[0]).Y()
			if dy >= 0 {
				physics.OnGround = solids[0]
			}
			dy = contact
			physics.SpeedY = 0
		}
	}
	object.Y += dy
}

func checkKeepsakes(e *ecs.ECS, playerEntry *donburi.Entry, object *resolv.Object) {
	check := object.Check(0, 0, tags.ResolvKeepsake)
	if check == nil {
		return
	}
	for _, o := range check.ObjectsByTags(tags.ResolvKeepsake) {
		keepsakeEntry, ok := o.Data.(*donburi.Entry)
		if !ok || !keepsakeEntry.Valid() {
			continue
		}
		keepsake := components.Keepsake.Get(keepsakeEntry)
		if keepsake.Collected {
			continue
		}
		keepsake.Collected = true

		player := components.Player.Get(playerEntry)
		player.Keepsakes++
		animator := components.Rig.Get(playerEntry).Animator
		animator.StartReaction(rig.StateCollect, cfg.Rig.CollectDuration)

		removeFromSpace(e, o)
		keepsakeEntry.Remove()
	}
}

func checkTriggers(e *ecs.ECS, object *resolv.Object) {
	check := object.Check(0, 0, tags.ResolvTrigger)
	if check == nil {
		return
	}
	for _, o := range check.ObjectsByTags(tags.ResolvTrigger) {
		triggerEntry, ok := o.Data.(*donburi.Entry)
		if !ok || !triggerEntry.Valid() {
			continue
		}
		trigger := components.StoryTriggerPoint.Get(triggerEntry)
		if trigger.Fired {
			continue
		}
		trigger.Fired = true
		AdvanceStory(e, trigger.Beat)
	}
}

// checkAntagonistContact pushes the player away from a manifestation that
// is present enough to hurt. The damage reaction doubles as the
// invulnerability window.
func checkAntagonistContact(e *ecs.ECS, playerEntry *donburi.Entry, object *resolv.Object) {
	animator := components.Rig.Get(playerEntry).Animator
	if animator.IsReacting() {
		return
	}
	check := object.Check(0, 0, tags.ResolvNPC)
	if check == nil {
		return
	}
	for _, o := range check.ObjectsByTags(tags.ResolvNPC) {
		npcEntry, ok := o.Data.(*donburi.Entry)
		if !ok || !npcEntry.Valid() || !npcEntry.HasComponent(components.NPC) {
			continue
		}
		npc := components.NPC.Get(npcEntry)
		if npc.Kind != components.KindAntagonist {
			continue
		}
		// A becalmed manifestation is harmless scenery.
		if components.Rig.Get(npcEntry).Animator.DriftIntensity() < 0.3 {
			continue
		}

		physics := components.Physics.Get(playerEntry)
		away := 1.0
		if object.X < o.X {
			away = -1
		}
		physics.SpeedX = away * cfg.NPC.DamageKnockback
		physics.SpeedY = -cfg.NPC.DamageKnockback

		animator.StartReaction(rig.StateDamage, cfg.Rig.DamageDuration)
		TriggerScreenShake(e, cfg.NPC.DamageShakeValue, cfg.ScreenShake.DamageDuration)
		return
	}
}

// handleDeadZoneHit knocks the player back to safe ground with a damage
// flinch and a camera shake.
func handleDeadZoneHit(e *ecs.ECS, playerEntry *donburi.Entry) {
	physics := components.Physics.Get(playerEntry)
	player := components.Player.Get(playerEntry)
	obj := components.Object.Get(playerEntry)

	obj.X = player.LastSafeX
	obj.Y = player.LastSafeY
	physics.SpeedX = 0
	physics.SpeedY = 0

	animator := components.Rig.Get(playerEntry).Animator
	animator.StartReaction(rig.StateDamage, cfg.Rig.DamageDuration)
	TriggerScreenShake(e, cfg.ScreenShake.DamageIntensity, cfg.ScreenShake.DamageDuration)
}

func removeFromSpace(e *ecs.ECS, obj *resolv.Object) {
	if spaceEntry, ok := components.Space.First(e.World); ok {
		components.Space.Get(spaceEntry).Remove(obj)
	}
}
