// Package leveldata provides TMX level parsing for the world scenes. It has
// no dependencies on ebitengine, donburi, or resolv — pure data only.
package leveldata

// Rect is an axis-aligned region in level pixels.
type Rect struct {
	X, Y, W, H float64
}

// Spawn places a character in the level.
type Spawn struct {
	X, Y    float64
	Kind    string // "player", "companion", "member", "antagonist"
	Profile string // animation profile name
	Pattern string // drift pattern state for antagonists
	Patrol  float64
}

// Keepsake places a collectible.
type Keepsake struct {
	X, Y float64
}

// Trigger marks a region that advances the story to a beat.
type Trigger struct {
	Rect
	Beat int
}

// Level holds everything parsed from one TMX file.
type Level struct {
	Name   string
	Width  int // pixels
	Height int

	Walls     []Rect
	Platforms []Rect
	DeadZones []Rect
	Spawns    []Spawn
	Keepsakes []Keepsake
	Triggers  []Trigger
}
