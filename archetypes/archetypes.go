package archetypes

import (
	"github.com/spinyflannel/society/components"
	cfg "github.com/spinyflannel/society/config"
	"github.com/spinyflannel/society/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Object,
		components.Physics,
		components.Rig,
	)
	Companion = newArchetype(
		tags.Companion,
		components.NPC,
		components.Object,
		components.Physics,
		components.Rig,
	)
	SocietyMember = newArchetype(
		tags.SocietyMember,
		components.NPC,
		components.Object,
		components.Physics,
		components.Rig,
	)
	Antagonist = newArchetype(
		tags.Antagonist,
		components.NPC,
		components.Object,
		components.Rig,
	)
	Keepsake = newArchetype(
		tags.Keepsake,
		components.Keepsake,
		components.Object,
	)
	StoryTrigger = newArchetype(
		tags.StoryTrigger,
		components.StoryTriggerPoint,
		components.Object,
	)
	Wall = newArchetype(
		tags.Wall,
		components.Object,
	)
	Platform = newArchetype(
		tags.Platform,
		components.Object,
	)
	FloatingPlatform = newArchetype(
		tags.Platform,
		components.Object,
		components.Tween,
	)
	Space = newArchetype(
		components.Space,
	)
	Level = newArchetype(
		components.Level,
	)
	Camera = newArchetype(
		components.Camera,
	)
	Story = newArchetype(
		components.Story,
	)
	Audio = newArchetype(
		components.Audio,
	)
	Settings = newArchetype(
		components.Settings,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
