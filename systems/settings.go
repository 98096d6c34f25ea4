package systems

import (
	"fmt"

	"github.com/spinyflannel/society/components"
	cfg "github.com/spinyflannel/society/config"
	"github.com/spinyflannel/society/rig"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// GetOrCreateSettings returns the singleton settings component, creating
// it with defaults if needed.
func GetOrCreateSettings(e *ecs.ECS) *components.SettingsData {
	if entry, ok := components.Settings.First(e.World); ok {
		return components.Settings.Get(entry)
	}
	entry := e.World.Entry(e.Create(cfg.Default, components.Settings))
	components.Settings.SetValue(entry, components.SettingsData{
		MotionScaleIndex: cfg.SettingsMenu.DefaultMotionScaleIdx,
		ResolutionIndex:  cfg.SettingsMenu.DefaultResolutionIndex,
		Fullscreen:       ebiten.IsFullscreen(),
	})
	return components.Settings.Get(entry)
}

// OpenSettings shows the settings overlay.
func OpenSettings(e *ecs.ECS) {
	s := GetOrCreateSettings(e)
	s.MenuOpen = true
	s.Fullscreen = ebiten.IsFullscreen()
}

// CloseSettings hides the overlay and saves the current values.
func CloseSettings(e *ecs.ECS) {
	s := GetOrCreateSettings(e)
	s.MenuOpen = false
	SaveCurrentSettings(s)
}

// IsSettingsOpen reports whether the settings overlay is showing.
func IsSettingsOpen(e *ecs.ECS) bool {
	return GetOrCreateSettings(e).MenuOpen
}

// CycleMotionScale steps through the reduced-motion presets. Takes effect
// on the next rig update; no restart needed.
func CycleMotionScale(s *components.SettingsData, direction int) {
	n := len(cfg.SettingsMenu.MotionScales)
	s.MotionScaleIndex = (s.MotionScaleIndex + direction + n) % n
}

// CycleLockedTone steps the pinned tone. Enables the lock if it was off.
func CycleLockedTone(s *components.SettingsData, direction int) {
	if !s.ToneLocked {
		s.ToneLocked = true
		return
	}
	s.LockedTone = rig.Tone((int(s.LockedTone) + direction + rig.ToneCount) % rig.ToneCount)
}

// ToggleToneLock switches between story-driven tone and a pinned one.
func ToggleToneLock(s *components.SettingsData) {
	s.ToneLocked = !s.ToneLocked
}

// ToggleFullscreen flips fullscreen mode.
func ToggleFullscreen(s *components.SettingsData) {
	s.Fullscreen = !s.Fullscreen
	ebiten.SetFullscreen(s.Fullscreen)
}

// CycleResolution steps through the windowed resolutions.
func CycleResolution(s *components.SettingsData, direction int) {
	n := len(cfg.SettingsMenu.Resolutions)
	s.ResolutionIndex = (s.ResolutionIndex + direction + n) % n
	res := cfg.SettingsMenu.Resolutions[s.ResolutionIndex]
	ebiten.SetWindowSize(res.Width, res.Height)
}

// MotionScaleLabel returns the display text for the current motion preset.
func MotionScaleLabel(s *components.SettingsData) string {
	if s.MotionScaleIndex >= 0 && s.MotionScaleIndex < len(cfg.SettingsMenu.MotionScaleLabels) {
		return cfg.SettingsMenu.MotionScaleLabels[s.MotionScaleIndex]
	}
	return "Unknown"
}

// ToneLockLabel returns the display text for the tone lock setting.
func ToneLockLabel(s *components.SettingsData) string {
	if !s.ToneLocked {
		return "Story"
	}
	return fmt.Sprintf("Locked: %s", s.LockedTone)
}

// ResolutionLabel returns the display text for the current resolution.
func ResolutionLabel(s *components.SettingsData) string {
	if s.ResolutionIndex >= 0 && s.ResolutionIndex < len(cfg.SettingsMenu.Resolutions) {
		return cfg.SettingsMenu.Resolutions[s.ResolutionIndex].Label
	}
	return "Unknown"
}
