package assets

import (
	"embed"
	"io/fs"
)

var (
	//go:embed all:arenas
	arenaFS embed.FS

	//go:embed tuning.yaml
	tuningFS embed.FS
)

const (
	ArenaDir     = "arenas"
	TuningFile   = "tuning.yaml"
	DefaultArena = "pit"
)

// Arenas returns the embedded arena files.
func Arenas() fs.FS {
	return arenaFS
}

// Tuning returns the embedded default tuning file.
func Tuning() fs.FS {
	return tuningFS
}
