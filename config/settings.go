package config

// Resolution represents a display resolution option
type Resolution struct {
	Width  int
	Height int
	Label  string
}

// SettingsMenuConfig contains settings screen configuration
type SettingsMenuConfig struct {
	Resolutions            []Resolution
	DefaultResolutionIndex int

	// MotionScales are the reduced-motion steps: 1.0 is full animation,
	// lower values damp every rig's spatial output.
	MotionScales           []float64
	MotionScaleLabels      []string
	DefaultMotionScaleIdx  int
}

// SettingsMenu is the global settings menu configuration
var SettingsMenu SettingsMenuConfig

func init() {
	SettingsMenu = SettingsMenuConfig{
		Resolutions: []Resolution{
			{Width: 1280, Height: 720, Label: "1280 x 720"},
			{Width: 1600, Height: 900, Label: "1600 x 900"},
			{Width: 1920, Height: 1080, Label: "1920 x 1080"},
		},
		DefaultResolutionIndex: 0,
		MotionScales:           []float64{1.0, 0.6, 0.3},
		MotionScaleLabels:      []string{"Full", "Reduced", "Minimal"},
		DefaultMotionScaleIdx:  0,
	}
}
