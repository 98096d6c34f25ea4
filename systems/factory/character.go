package factory

import (
	"github.com/spinyflannel/society/archetypes"
	"github.com/spinyflannel/society/components"
	cfg "github.com/spinyflannel/society/config"
	"github.com/spinyflannel/society/rig"
	"github.com/spinyflannel/society/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Silhouette tints per profile. Unknown profiles render in linen.
var profileTints = map[string][3]uint8{
	"dazie":       {230, 170, 90},
	"june":        {120, 200, 140},
	"winton":      {190, 190, 230},
	"member":      {160, 150, 140},
	"echo_form":   {110, 100, 150},
	"distortion":  {90, 130, 160},
	"noise_beast": {140, 70, 70},
}

func tintFor(profile string) (uint8, uint8, uint8) {
	if t, ok := profileTints[profile]; ok {
		return t[0], t[1], t[2]
	}
	return 235, 222, 200
}

func newAnimator(profile string) *rig.Animator {
	a := rig.New(cfg.MustBuildProfile(profile))
	a.SetToneTransitionTime(cfg.Rig.ToneTransitionTime)
	return a
}

func CreatePlayer(ecs *ecs.ECS, x, y float64, profile string) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	obj := resolv.NewObject(x, y, cfg.Player.CollisionWidth, cfg.Player.CollisionHeight)
	obj.AddTags("character", tags.ResolvPlayer)
	obj.SetShape(resolv.NewRectangle(0, 0, cfg.Player.CollisionWidth, cfg.Player.CollisionHeight))
	obj.Data = player
	components.Object.SetValue(player, components.ObjectData{Object: obj})

	components.Player.SetValue(player, components.PlayerData{
		Direction: components.Vector{X: 1, Y: 0},
		LastSafeX: x,
		LastSafeY: y,
	})
	components.Physics.SetValue(player, components.PhysicsData{
		Gravity:  cfg.Player.Gravity,
		Friction: cfg.Player.Friction,
		MaxSpeed: cfg.Player.MaxSpeed,
	})

	r, g, b := tintFor(profile)
	components.Rig.SetValue(player, components.RigData{
		Animator: newAnimator(profile),
		TintR:    r,
		TintG:    g,
		TintB:    b,
	})

	addToSpace(ecs, obj)
	return player
}

// CreateCompanion spawns the guide character who walks alongside the
// player and teaches by pausing.
func CreateCompanion(e *ecs.ECS, x, y, patrol float64, profile string) *donburi.Entry {
	npc := archetypes.Companion.Spawn(e)
	initWalker(e, npc, components.KindCompanion, x, y, patrol, cfg.NPC.CompanionSpeed, profile)
	return npc
}

// CreateSocietyMember spawns a background character going about a routine.
func CreateSocietyMember(e *ecs.ECS, x, y, patrol float64, profile string) *donburi.Entry {
	npc := archetypes.SocietyMember.Spawn(e)
	initWalker(e, npc, components.KindSocietyMember, x, y, patrol, cfg.NPC.MemberSpeed, profile)
	return npc
}

func initWalker(e *ecs.ECS, npc *donburi.Entry, kind components.NPCKind, x, y, patrol, speed float64, profile string) {
	obj := resolv.NewObject(x, y, cfg.NPC.CollisionWidth, cfg.NPC.CollisionHeight)
	obj.AddTags("character", tags.ResolvNPC)
	obj.SetShape(resolv.NewRectangle(0, 0, cfg.NPC.CollisionWidth, cfg.NPC.CollisionHeight))
	obj.Data = npc
	components.Object.SetValue(npc, components.ObjectData{Object: obj})

	components.NPC.SetValue(npc, components.NPCData{
		Kind:       kind,
		PatrolMinX: x - patrol,
		PatrolMaxX: x + patrol,
		Dir:        1,
	})
	components.Physics.SetValue(npc, components.PhysicsData{
		Gravity:  cfg.Physics.Gravity,
		Friction: cfg.Player.Friction,
		MaxSpeed: speed,
	})

	r, g, b := tintFor(profile)
	components.Rig.SetValue(npc, components.RigData{
		Animator: newAnimator(profile),
		TintR:    r,
		TintG:    g,
		TintB:    b,
	})

	addToSpace(e, obj)
}

// antagonistSeed varies the noise stream between manifestations so they
// never move in lockstep.
var antagonistSeed uint64 = 3

// CreateAntagonist spawns a drift manifestation animating with the named
// pattern state. Antagonists float: no physics component, their motion is
// entirely the rig's.
func CreateAntagonist(e *ecs.ECS, x, y, patrol float64, profile, pattern string) *donburi.Entry {
	npc := archetypes.Antagonist.Spawn(e)

	obj := resolv.NewObject(x, y, cfg.NPC.CollisionWidth, cfg.NPC.CollisionHeight)
	obj.AddTags("character", tags.ResolvNPC)
	obj.SetShape(resolv.NewRectangle(0, 0, cfg.NPC.CollisionWidth, cfg.NPC.CollisionHeight))
	obj.Data = npc
	components.Object.SetValue(npc, components.ObjectData{Object: obj})

	id, ok := rig.ParseStateID(pattern)
	if !ok || !id.Pattern() {
		id = rig.StateEchoForm
	}

	animator := newAnimator(profile)
	antagonistSeed++
	state := rig.NewPatternState(id, animator.Profile().ParamsFor(id), rig.ValueNoise(antagonistSeed))
	animator.SetStateImmediate(state, rig.LayerBase)

	components.NPC.SetValue(npc, components.NPCData{
		Kind:       components.KindAntagonist,
		PatrolMinX: x - patrol,
		PatrolMaxX: x + patrol,
		Dir:        1,
		Pattern:    id,
	})

	r, g, b := tintFor(profile)
	components.Rig.SetValue(npc, components.RigData{
		Animator: animator,
		TintR:    r,
		TintG:    g,
		TintB:    b,
	})

	addToSpace(e, obj)
	return npc
}

func addToSpace(e *ecs.ECS, obj *resolv.Object) {
	if spaceEntry, ok := components.Space.First(e.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}
}
