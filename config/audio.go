package config

// AudioConfig contains the music cue layering tables. The mix is a set of
// named layers whose levels crossfade as the story's tone moves.
type AudioConfig struct {
	Layers []string

	// CueLevels maps a rig tone name to target layer levels. Layers not
	// listed fade to zero.
	CueLevels map[string]map[string]float64

	// FadePerSecond bounds how fast a layer level may move.
	FadePerSecond float64
}

// Audio is the global audio configuration
var Audio AudioConfig

func init() {
	Audio = AudioConfig{
		Layers:        []string{"ambient", "strings", "low", "percussion"},
		FadePerSecond: 0.5,
		CueLevels: map[string]map[string]float64{
			"neutral":     {"ambient": 0.8},
			"gentle":      {"ambient": 0.6, "strings": 0.5},
			"hopeful":     {"ambient": 0.7, "strings": 0.8},
			"melancholic": {"low": 0.8, "strings": 0.3},
			"grounded":    {"ambient": 0.4, "percussion": 0.7},
			"tender":      {"strings": 0.7},
			"resolute":    {"percussion": 0.9, "strings": 0.5},
		},
	}
}
