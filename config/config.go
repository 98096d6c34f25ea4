package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// Default is the ECS layer everything spawns and renders on.
var Default = ecs.LayerID(0)

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Movement
	JumpSpeed    float64
	Acceleration float64
	MaxSpeed     float64
	RunThreshold float64 // Speed above which the rig switches from walk to run
	CoyoteFrames int     // Jump grace frames after stepping off a ledge

	// Physics
	Gravity  float64
	Friction float64

	// Dimensions
	CollisionWidth  float64
	CollisionHeight float64
}

// PhysicsConfig contains physics-related configuration values
type PhysicsConfig struct {
	Gravity            float64
	MaxFallSpeed       float64
	VerticalSpeedClamp float64
}

// NPCConfig contains non-player character behavior configuration
type NPCConfig struct {
	CompanionSpeed   float64
	MemberSpeed      float64
	AntagonistSpeed  float64
	CompanionRadius  float64 // Distance at which the companion counts as nearby
	TurnMargin       float64 // Distance from patrol edge at which to turn
	CollisionWidth   float64
	CollisionHeight  float64
	MemberActivity   float64 // ActivityModifier scale for background members
	DamageKnockback  float64
	DamageShakeValue float64
}

// RigConfig contains animator wiring configuration
type RigConfig struct {
	BlendTime          float64 // Base-layer transition blend time in seconds
	ReactionBlendTime  float64
	ToneTransitionTime float64
	JumpDuration       float64
	LandDuration       float64
	DamageDuration     float64
	CollectDuration    float64
	DeathDuration      float64
	OffsetPixels       float64 // World pixels per rig offset unit
}

// CameraConfig contains camera behavior configuration
type CameraConfig struct {
	FollowSmoothing         float64
	LookAheadDistanceX      float64
	LookAheadSmoothing      float64
	LookAheadSpeedThreshold float64
}

// ScreenShakeConfig contains screen shake effect configuration
type ScreenShakeConfig struct {
	DamageIntensity float64 // pixels
	DamageDuration  int     // frames
	StompIntensity  float64 // NoiseBeast footfall rumble
	StompDuration   int
}

// MenuConfig contains main menu configuration values
type MenuConfig struct {
	BackgroundColor   color.RGBA
	TitleColor        color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	TitleY            float64
	MenuStartY        float64
	MenuItemHeight    float64
	MenuOptions       []string
}

// FinaleConfig contains resolution screen configuration values
type FinaleConfig struct {
	BackgroundColor color.RGBA
	TitleColor      color.RGBA
	TextColor       color.RGBA
	TitleY          float64
	MessageY        float64
	Title           string
	Message         string
	ContinueHint    string
}

// HUDConfig contains HUD configuration values
type HUDConfig struct {
	Margin          float64
	CaptionColor    color.RGBA
	CaptionBgColor  color.RGBA
	KeepsakeColor   color.RGBA
	CaptionDuration int // frames
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	SkipMenu bool
}

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Physics PhysicsConfig
var NPC NPCConfig
var Rig RigConfig
var Camera CameraConfig
var ScreenShake ScreenShakeConfig
var Menu MenuConfig
var Finale FinaleConfig
var HUD HUDConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255} // Selected menu items
	DarkBlue     = color.RGBA{R: 60, G: 100, B: 160, A: 255}  // Unselected menu items
	DuskPurple   = color.RGBA{R: 38, G: 30, B: 54, A: 255}
	WarmLinen    = color.RGBA{R: 235, G: 222, B: 200, A: 255}
)

// Direction constants for player facing
const (
	DirectionLeft  = -1.0
	DirectionRight = 1.0
)

func init() {
	C = &Config{
		Width:  640,
		Height: 360,
	}

	Physics = PhysicsConfig{
		Gravity:            0.5,
		MaxFallSpeed:       9.0,
		VerticalSpeedClamp: 9.0,
	}

	Player = PlayerConfig{
		JumpSpeed:    10.0,
		Acceleration: 0.6,
		MaxSpeed:     4.2,
		RunThreshold: 2.6,
		CoyoteFrames: 6,

		Gravity:  0.5,
		Friction: 0.4,

		CollisionWidth:  14,
		CollisionHeight: 34,
	}

	NPC = NPCConfig{
		CompanionSpeed:   1.4,
		MemberSpeed:      0.8,
		AntagonistSpeed:  0.6,
		CompanionRadius:  72,
		TurnMargin:       4,
		CollisionWidth:   14,
		CollisionHeight:  34,
		MemberActivity:   0.7,
		DamageKnockback:  3.0,
		DamageShakeValue: 3.5,
	}

	Rig = RigConfig{
		BlendTime:          0.22,
		ReactionBlendTime:  0.1,
		ToneTransitionTime: 1.2,
		JumpDuration:       0.35,
		LandDuration:       0.25,
		DamageDuration:     0.4,
		CollectDuration:    0.5,
		DeathDuration:      1.6,
		OffsetPixels:       48,
	}

	Camera = CameraConfig{
		FollowSmoothing:         0.08,
		LookAheadDistanceX:      48,
		LookAheadSmoothing:      0.06,
		LookAheadSpeedThreshold: 0.4,
	}

	ScreenShake = ScreenShakeConfig{
		DamageIntensity: 3.5,
		DamageDuration:  18,
		StompIntensity:  2.0,
		StompDuration:   10,
	}

	Menu = MenuConfig{
		BackgroundColor:   DuskPurple,
		TitleColor:        WarmLinen,
		TextColorNormal:   DarkBlue,
		TextColorSelected: LightBlue,
		TitleY:            90,
		MenuStartY:        170,
		MenuItemHeight:    26,
		MenuOptions:       []string{"Begin", "Settings", "Quit"},
	}

	Finale = FinaleConfig{
		BackgroundColor: DuskPurple,
		TitleColor:      WarmLinen,
		TextColor:       White,
		TitleY:          110,
		MessageY:        170,
		Title:           "The Commons, at dusk",
		Message:         "What was carried is kept.",
		ContinueHint:    "Press Enter",
	}

	HUD = HUDConfig{
		Margin:          10,
		CaptionColor:    WarmLinen,
		CaptionBgColor:  BlackOverlay,
		KeepsakeColor:   White,
		CaptionDuration: 240,
	}
}
