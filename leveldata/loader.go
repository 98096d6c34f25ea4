package leveldata

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
)

// LoadLevel parses a TMX file into a Level. Geometry and placements come
// from object groups; the renderer draws everything procedurally so no
// tilesets are involved. It takes an fs.FS so callers can pass embed.FS or
// os.DirFS.
func LoadLevel(fsys fs.FS, tmxPath string) (*Level, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	level := &Level{
		Name:   strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
		Width:  levelMap.Width * levelMap.TileWidth,
		Height: levelMap.Height * levelMap.TileHeight,
	}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case "Walls":
			for _, o := range og.Objects {
				level.Walls = append(level.Walls, Rect{X: o.X, Y: o.Y, W: o.Width, H: o.Height})
			}
		case "Platforms":
			for _, o := range og.Objects {
				level.Platforms = append(level.Platforms, Rect{X: o.X, Y: o.Y, W: o.Width, H: o.Height})
			}
		case "DeadZones":
			for _, o := range og.Objects {
				level.DeadZones = append(level.DeadZones, Rect{X: o.X, Y: o.Y, W: o.Width, H: o.Height})
			}
		case "Spawns":
			for _, o := range og.Objects {
				level.Spawns = append(level.Spawns, Spawn{
					X:       o.X,
					Y:       o.Y,
					Kind:    o.Properties.GetString("kind"),
					Profile: o.Properties.GetString("profile"),
					Pattern: o.Properties.GetString("pattern"),
					Patrol:  float64(o.Properties.GetInt("patrol")),
				})
			}
		case "Keepsakes":
			for _, o := range og.Objects {
				level.Keepsakes = append(level.Keepsakes, Keepsake{X: o.X, Y: o.Y})
			}
		case "Triggers":
			for _, o := range og.Objects {
				level.Triggers = append(level.Triggers, Trigger{
					Rect: Rect{X: o.X, Y: o.Y, W: o.Width, H: o.Height},
					Beat: o.Properties.GetInt("beat"),
				})
			}
		}
	}

	if len(level.Spawns) == 0 {
		return nil, fmt.Errorf("level %s: no spawns", level.Name)
	}

	return level, nil
}

// LoadAllLevels discovers all .tmx files in levelsDir within fsys and loads
// each, sorted by name.
func LoadAllLevels(fsys fs.FS, levelsDir string) ([]Level, error) {
	pattern := levelsDir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("no .tmx files found in %s", levelsDir)
	}
	sort.Strings(matches)

	levels := make([]Level, 0, len(matches))
	for _, path := range matches {
		level, err := LoadLevel(fsys, path)
		if err != nil {
			return nil, err
		}
		levels = append(levels, *level)
	}

	return levels, nil
}

// PlayerSpawn finds the player spawn, falling back to the first spawn.
func (l *Level) PlayerSpawn() Spawn {
	for _, s := range l.Spawns {
		if s.Kind == "player" {
			return s
		}
	}
	return l.Spawns[0]
}
