package systems

import (
	"encoding/json"
	"log"

	"github.com/spinyflannel/society/components"
	cfg "github.com/spinyflannel/society/config"
	"github.com/spinyflannel/society/rig"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata"
	"github.com/yohamta/donburi/ecs"
)

// SavedSettings represents the settings data stored on disk.
type SavedSettings struct {
	MotionScaleIndex int  `json:"motionScaleIndex"`
	ToneLocked       bool `json:"toneLocked"`
	LockedToneIndex  int  `json:"lockedToneIndex"`
	Fullscreen       bool `json:"fullscreen"`
	ResolutionIndex  int  `json:"resolutionIndex"`
}

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for settings storage.
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "spinyflannel-society",
	})
	if err != nil {
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadSettings loads settings from disk. Returns nil when nothing is
// saved yet.
func LoadSettings() (*SavedSettings, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem("settings")
	if err != nil {
		log.Printf("Warning: Could not load settings: %v", err)
		return nil, nil
	}
	if len(data) == 0 {
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Printf("Warning: Could not parse saved settings: %v", err)
		return nil, err
	}
	return &settings, nil
}

// SaveSettings saves settings to disk.
func SaveSettings(s *SavedSettings) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		log.Printf("Warning: Could not serialize settings: %v", err)
		return err
	}
	if err := gdataManager.SaveItem("settings", data); err != nil {
		log.Printf("Warning: Could not save settings: %v", err)
		return err
	}
	return nil
}

// SaveCurrentSettings persists the live settings component.
func SaveCurrentSettings(s *components.SettingsData) {
	_ = SaveSettings(&SavedSettings{
		MotionScaleIndex: s.MotionScaleIndex,
		ToneLocked:       s.ToneLocked,
		LockedToneIndex:  int(s.LockedTone),
		Fullscreen:       s.Fullscreen,
		ResolutionIndex:  s.ResolutionIndex,
	})
}

// ApplySavedSettings applies loaded settings to the settings component
// and the window.
func ApplySavedSettings(e *ecs.ECS, saved *SavedSettings) {
	if saved == nil {
		return
	}

	s := GetOrCreateSettings(e)
	if saved.MotionScaleIndex >= 0 && saved.MotionScaleIndex < len(cfg.SettingsMenu.MotionScales) {
		s.MotionScaleIndex = saved.MotionScaleIndex
	}
	s.ToneLocked = saved.ToneLocked
	if saved.LockedToneIndex >= 0 && saved.LockedToneIndex < rig.ToneCount {
		s.LockedTone = rig.Tone(saved.LockedToneIndex)
	}
	s.Fullscreen = saved.Fullscreen
	if saved.ResolutionIndex >= 0 && saved.ResolutionIndex < len(cfg.SettingsMenu.Resolutions) {
		s.ResolutionIndex = saved.ResolutionIndex
	}

	ApplyWindowSettings(saved)
}

// ApplyWindowSettings applies display settings without needing an ECS
// reference. Used during startup before scenes exist.
func ApplyWindowSettings(saved *SavedSettings) {
	if saved == nil {
		return
	}
	ebiten.SetFullscreen(saved.Fullscreen)
	if !saved.Fullscreen && saved.ResolutionIndex >= 0 && saved.ResolutionIndex < len(cfg.SettingsMenu.Resolutions) {
		res := cfg.SettingsMenu.Resolutions[saved.ResolutionIndex]
		ebiten.SetWindowSize(res.Width, res.Height)
	}
}
