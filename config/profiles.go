package config

import (
	_ "embed"
	"fmt"
	"sort"

	"github.com/spinyflannel/society/rig"
	"gopkg.in/yaml.v3"
)

//go:embed profiles.yaml
var profilesYAML []byte

type profileSpec struct {
	SpeedScale float64              `yaml:"speed_scale"`
	Hooks      []string             `yaml:"hooks"`
	States     map[string]yaml.Node `yaml:"states"`
}

type profileFile struct {
	Profiles map[string]profileSpec `yaml:"profiles"`
}

var profileSpecs map[string]profileSpec

func init() {
	var file profileFile
	if err := yaml.Unmarshal(profilesYAML, &file); err != nil {
		panic(fmt.Sprintf("parse profiles.yaml: %v", err))
	}
	profileSpecs = file.Profiles
}

// ProfileNames returns the available profile names, sorted.
func ProfileNames() []string {
	names := make([]string, 0, len(profileSpecs))
	for name := range profileSpecs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// BuildProfile resolves a named character profile from the embedded table.
// State entries are decoded over the rig defaults, so a profile only lists
// what it changes.
func BuildProfile(name string) (*rig.Profile, error) {
	spec, ok := profileSpecs[name]
	if !ok {
		return nil, fmt.Errorf("unknown profile %q", name)
	}

	p := rig.DefaultProfile(name)
	if spec.SpeedScale > 0 {
		p.SpeedScale = spec.SpeedScale
	}

	if len(spec.States) > 0 {
		p.Overrides = make(map[rig.StateID]rig.Params, len(spec.States))
		for stateName, node := range spec.States {
			id, ok := rig.ParseStateID(stateName)
			if !ok {
				return nil, fmt.Errorf("profile %q: unknown state %q", name, stateName)
			}
			params := rig.DefaultParams(id)
			if err := node.Decode(&params); err != nil {
				return nil, fmt.Errorf("profile %q state %q: %w", name, stateName, err)
			}
			p.Overrides[id] = params
		}
	}

	for _, hookName := range spec.Hooks {
		hook, err := hookByName(hookName)
		if err != nil {
			return nil, fmt.Errorf("profile %q: %w", name, err)
		}
		p.Hooks = append(p.Hooks, hook)
	}

	return p, nil
}

// MustBuildProfile is BuildProfile for startup paths where a broken profile
// table is unrecoverable.
func MustBuildProfile(name string) *rig.Profile {
	p, err := BuildProfile(name)
	if err != nil {
		panic(err.Error())
	}
	return p
}

func hookByName(name string) (rig.Hook, error) {
	switch name {
	case "stillness":
		return rig.StillnessMoment(1.5, 0.8), nil
	case "teaching_gesture":
		return rig.TeachingGesture(2.5, 4), nil
	case "alpha_pulse":
		return rig.AlphaPulse(0.45, 3), nil
	case "glitch":
		return rig.GlitchFlourish(rig.ValueNoise(11), 0.06), nil
	case "activity":
		return rig.ActivityModifier(NPC.MemberActivity), nil
	}
	return nil, fmt.Errorf("unknown hook %q", name)
}
