package leveldata

import (
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"path"
	"slices"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
)

var (
	ErrNoPlayerSpawn = errors.New("arena has no player spawn")
	ErrNoArenas      = errors.New("no .tmx arenas found")
	ErrUnknownArena  = errors.New("unknown arena")
)

// LoadArena parses a TMX file into arena geometry. Solid rectangles come
// from the "Walls" object group and from every tile of the "walls" tile
// layer; spawn points come from the "Spawns" object group, keyed by object
// name. It takes an fs.FS so callers can pass embed.FS or os.DirFS.
func LoadArena(fsys fs.FS, tmxPath string) (*ArenaData, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	data := &ArenaData{
		Width:  levelMap.Width * levelMap.TileWidth,
		Height: levelMap.Height * levelMap.TileHeight,
	}

	tileW := float64(levelMap.TileWidth)
	tileH := float64(levelMap.TileHeight)
	for _, layer := range levelMap.Layers {
		if layer.Name != "walls" {
			continue
		}
		for y := 0; y < levelMap.Height; y++ {
			for x := 0; x < levelMap.Width; x++ {
				tile := layer.Tiles[y*levelMap.Width+x]
				if tile.IsNil() {
					continue
				}
				data.Walls = append(data.Walls, WallRect{
					X: float64(x) * tileW,
					Y: float64(y) * tileH,
					W: tileW,
					H: tileH,
				})
			}
		}
		break
	}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case "Walls":
			for _, o := range og.Objects {
				data.Walls = append(data.Walls, WallRect{X: o.X, Y: o.Y, W: o.Width, H: o.Height})
			}
		case "Spawns":
			for _, o := range og.Objects {
				data.Spawns = append(data.Spawns, SpawnPoint{
					Kind:  strings.ToLower(o.Name),
					X:     o.X,
					Y:     o.Y,
					Index: o.Properties.GetInt("spawnIndex"),
				})
			}
		}
	}

	// Keep spawn order stable per kind for consistent assignment
	sort.SliceStable(data.Spawns, func(i, j int) bool {
		return data.Spawns[i].Index < data.Spawns[j].Index
	})

	if len(data.SpawnsOf(SpawnPlayer)) == 0 {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, ErrNoPlayerSpawn)
	}

	return data, nil
}

// Catalog holds every arena of one directory, keyed by file stem.
type Catalog struct {
	arenas map[string]*ArenaData
}

// LoadCatalog parses each .tmx file directly inside dir. A single bad arena
// fails the whole catalog.
func LoadCatalog(fsys fs.FS, dir string) (*Catalog, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("read arena dir %s: %w", dir, err)
	}

	c := &Catalog{arenas: make(map[string]*ArenaData)}
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || path.Ext(name) != ".tmx" {
			continue
		}
		arena, err := LoadArena(fsys, path.Join(dir, name))
		if err != nil {
			return nil, err
		}
		c.arenas[strings.TrimSuffix(name, ".tmx")] = arena
	}
	if len(c.arenas) == 0 {
		return nil, fmt.Errorf("%s: %w", dir, ErrNoArenas)
	}
	return c, nil
}

// Names returns the arena names in sorted order.
func (c *Catalog) Names() []string {
	return slices.Sorted(maps.Keys(c.arenas))
}

// Arena looks up an arena by name.
func (c *Catalog) Arena(name string) (*ArenaData, error) {
	arena, ok := c.arenas[name]
	if !ok {
		return nil, fmt.Errorf("%q (have %s): %w", name, strings.Join(c.Names(), ", "), ErrUnknownArena)
	}
	return arena, nil
}
