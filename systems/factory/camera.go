package factory

import (
	"github.com/spinyflannel/society/archetypes"
	"github.com/spinyflannel/society/components"
	"github.com/yohamta/donburi/ecs"
)

func CreateCamera(ecs *ecs.ECS) {
	camera := archetypes.Camera.Spawn(ecs)
	components.Camera.Set(camera, &components.CameraData{})
}
