package leveldata

import (
	"os"
	"testing"
)

func TestLoadLevelParsesObjectGroups(t *testing.T) {
	fsys := os.DirFS("../assets")
	level, err := LoadLevel(fsys, "levels/commons.tmx")
	if err != nil {
		t.Fatal(err)
	}

	if level.Name != "commons" {
		t.Errorf("name = %q, want commons", level.Name)
	}
	if level.Width != 1280 || level.Height != 368 {
		t.Errorf("size = %dx%d, want 1280x368", level.Width, level.Height)
	}
	if len(level.Walls) == 0 {
		t.Error("no walls parsed")
	}
	if len(level.Keepsakes) == 0 {
		t.Error("no keepsakes parsed")
	}
	if len(level.Triggers) == 0 {
		t.Error("no triggers parsed")
	}
	for _, tr := range level.Triggers {
		if tr.Beat <= 0 {
			t.Errorf("trigger at x=%v has beat %d, want > 0", tr.X, tr.Beat)
		}
	}

	spawn := level.PlayerSpawn()
	if spawn.Kind != "player" || spawn.Profile == "" {
		t.Errorf("player spawn = %+v, want kind player with a profile", spawn)
	}

	var sawAntagonist bool
	for _, s := range level.Spawns {
		if s.Kind == "antagonist" {
			sawAntagonist = true
			if s.Pattern == "" {
				t.Errorf("antagonist spawn at x=%v has no pattern", s.X)
			}
		}
	}
	if !sawAntagonist {
		t.Error("no antagonist spawns parsed")
	}
}

func TestLoadAllLevelsSorted(t *testing.T) {
	fsys := os.DirFS("../assets")
	levels, err := LoadAllLevels(fsys, "levels")
	if err != nil {
		t.Fatal(err)
	}
	for i := 1; i < len(levels); i++ {
		if levels[i-1].Name > levels[i].Name {
			t.Errorf("levels out of order: %q before %q", levels[i-1].Name, levels[i].Name)
		}
	}
}
