package config

import (
	"testing"

	"github.com/spinyflannel/society/rig"
)

func TestAllProfilesBuild(t *testing.T) {
	names := ProfileNames()
	if len(names) == 0 {
		t.Fatal("no profiles in embedded table")
	}
	for _, name := range names {
		p, err := BuildProfile(name)
		if err != nil {
			t.Errorf("BuildProfile(%q): %v", name, err)
			continue
		}
		if p.SpeedScale <= 0 {
			t.Errorf("profile %q has non-positive speed scale %v", name, p.SpeedScale)
		}
	}
}

func TestBuildProfileUnknownName(t *testing.T) {
	if _, err := BuildProfile("nobody"); err == nil {
		t.Error("unknown profile name did not error")
	}
}

func TestProfileOverridesMergeOverDefaults(t *testing.T) {
	p, err := BuildProfile("dazie")
	if err != nil {
		t.Fatal(err)
	}
	idle := p.ParamsFor(rig.StateIdle)
	if idle.Amplitude != 0.035 {
		t.Errorf("idle amplitude = %v, want yaml override 0.035", idle.Amplitude)
	}
	// Fields the yaml leaves out keep the rig defaults.
	def := rig.DefaultParams(rig.StateIdle)
	if idle.Speed != def.Speed {
		t.Errorf("idle speed = %v, want default %v preserved", idle.Speed, def.Speed)
	}

	// States the profile never mentions fall back entirely.
	walkDef := rig.DefaultParams(rig.StateWalk)
	if got := p.ParamsFor(rig.StateWalk); got.BobAmplitude != walkDef.BobAmplitude {
		t.Errorf("walk bob = %v, want default %v", got.BobAmplitude, walkDef.BobAmplitude)
	}
}

func TestStoryBeatsResolve(t *testing.T) {
	if len(Story.Beats) == 0 {
		t.Fatal("empty story beat table")
	}
	for _, beat := range Story.Beats {
		if _, ok := rig.ParseTone(beat.Tone); !ok {
			t.Errorf("beat %q names unknown tone %q", beat.Name, beat.Tone)
		}
		if beat.Drift < 0 || beat.Drift > 1 {
			t.Errorf("beat %q drift %v out of range", beat.Name, beat.Drift)
		}
	}
}

func TestCueLevelsNameKnownLayersAndTones(t *testing.T) {
	known := map[string]bool{}
	for _, l := range Audio.Layers {
		known[l] = true
	}
	for tone, levels := range Audio.CueLevels {
		if _, ok := rig.ParseTone(tone); !ok {
			t.Errorf("cue table names unknown tone %q", tone)
		}
		for layer, level := range levels {
			if !known[layer] {
				t.Errorf("tone %q cues unknown layer %q", tone, layer)
			}
			if level < 0 || level > 1 {
				t.Errorf("tone %q layer %q level %v out of range", tone, layer, level)
			}
		}
	}
}
