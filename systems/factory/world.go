package factory

import (
	"github.com/spinyflannel/society/archetypes"
	"github.com/spinyflannel/society/components"
	"github.com/spinyflannel/society/tags"
	"github.com/solarlune/resolv"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateWall(e *ecs.ECS, x, y, w, h float64) *donburi.Entry {
	wall := archetypes.Wall.Spawn(e)

	obj := resolv.NewObject(x, y, w, h, tags.ResolvSolid)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = wall

	components.Object.SetValue(wall, components.ObjectData{Object: obj})
	addToSpace(e, obj)
	return wall
}

func CreatePlatform(e *ecs.ECS, x, y, w, h float64) *donburi.Entry {
	platform := archetypes.Platform.Spawn(e)

	obj := resolv.NewObject(x, y, w, h, tags.ResolvSolid)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = platform

	components.Object.SetValue(platform, components.ObjectData{Object: obj})
	addToSpace(e, obj)
	return platform
}

// CreateFloatingPlatform drifts a platform up and back on a looping tween
// sequence.
func CreateFloatingPlatform(e *ecs.ECS, x, y, w, h float64) *donburi.Entry {
	platform := archetypes.FloatingPlatform.Spawn(e)

	obj := resolv.NewObject(x, y, w, h, tags.ResolvSolid)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = platform
	components.Object.SetValue(platform, components.ObjectData{Object: obj})

	tw := gween.NewSequence()
	tw.Add(
		gween.New(float32(y), float32(y-24), 3, ease.InOutSine),
		gween.New(float32(y-24), float32(y), 3, ease.InOutSine),
	)
	tw.SetLoop(-1)
	components.Tween.Set(platform, tw)

	addToSpace(e, obj)
	return platform
}

func CreateKeepsake(e *ecs.ECS, x, y float64) *donburi.Entry {
	keepsake := archetypes.Keepsake.Spawn(e)

	obj := resolv.NewObject(x, y, 10, 10, tags.ResolvKeepsake)
	obj.Data = keepsake
	components.Object.SetValue(keepsake, components.ObjectData{Object: obj})
	components.Keepsake.SetValue(keepsake, components.KeepsakeData{})

	addToSpace(e, obj)
	return keepsake
}

func CreateStoryTrigger(e *ecs.ECS, x, y, w, h float64, beat int) *donburi.Entry {
	trigger := archetypes.StoryTrigger.Spawn(e)

	obj := resolv.NewObject(x, y, w, h, tags.ResolvTrigger)
	obj.Data = trigger
	components.Object.SetValue(trigger, components.ObjectData{Object: obj})
	components.StoryTriggerPoint.SetValue(trigger, components.StoryTriggerData{Beat: beat})

	addToSpace(e, obj)
	return trigger
}

func CreateDeadZone(e *ecs.ECS, x, y, w, h float64) *donburi.Entry {
	zone := archetypes.Wall.Spawn(e)

	obj := resolv.NewObject(x, y, w, h, tags.ResolvDeadZone)
	obj.Data = zone
	components.Object.SetValue(zone, components.ObjectData{Object: obj})

	addToSpace(e, obj)
	return zone
}
