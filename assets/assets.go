// Package assets embeds the level documents shipped with the game.
package assets

import (
	"embed"
	"io/fs"
)

//go:embed levels
var content embed.FS

// Levels returns the embedded level directory as an fs.FS rooted at the
// level files, ready for leveldata.LoadAll.
func Levels() fs.FS {
	sub, err := fs.Sub(content, "levels")
	if err != nil {
		panic(err)
	}
	return sub
}
