// Package assets embeds the level files shipped with the game.
package assets

import (
	"embed"

	"github.com/spinyflannel/society/leveldata"
)

//go:embed levels
var LevelFS embed.FS

// MustLoadLevels loads every embedded level, panicking on a broken asset.
func MustLoadLevels() []leveldata.Level {
	levels, err := leveldata.LoadAllLevels(LevelFS, "levels")
	if err != nil {
		panic("load levels: " + err.Error())
	}
	return levels
}
