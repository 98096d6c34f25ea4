package systems

import (
	"github.com/spinyflannel/society/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateFloatingPlatforms drives platforms that ride a looping tween
// sequence up and down.
func UpdateFloatingPlatforms(e *ecs.ECS) {
	components.Tween.Each(e.World, func(entry *donburi.Entry) {
		seq := components.Tween.Get(entry)
		obj := components.Object.Get(entry)
		y, _, _ := seq.Update(float32(dt))
		obj.Y = float64(y)
	})
}
