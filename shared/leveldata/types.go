// Package leveldata parses arena TMX files into plain geometry. It has no
// dependencies on donburi or resolv.
package leveldata

// ArenaData holds everything the simulation needs from an arena file.
type ArenaData struct {
	Walls  []WallRect
	Spawns []SpawnPoint
	Width  int
	Height int
}

// WallRect is a solid rectangle with its top-left corner at X, Y.
type WallRect struct {
	X, Y, W, H float64
}

// SpawnPoint is a named spawn location ("player" or "enemy").
type SpawnPoint struct {
	Kind  string
	X, Y  float64
	Index int
}

const (
	SpawnPlayer = "player"
	SpawnEnemy  = "enemy"
)

// SpawnsOf returns the spawn points of the given kind in file order.
func (a *ArenaData) SpawnsOf(kind string) []SpawnPoint {
	var out []SpawnPoint
	for _, s := range a.Spawns {
		if s.Kind == kind {
			out = append(out, s)
		}
	}
	return out
}
