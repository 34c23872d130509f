package leveldata

import (
	"errors"
	"io/fs"
	"os"
	"slices"
	"testing"
	"testing/fstest"

	"github.com/automoto/brawlcore/assets"
)

func TestLoadArena(t *testing.T) {
	arena, err := LoadArena(os.DirFS("testdata"), "small.tmx")
	if err != nil {
		t.Fatalf("LoadArena: %v", err)
	}

	if arena.Width != 320 || arena.Height != 256 {
		t.Fatalf("size = %dx%d, want 320x256", arena.Width, arena.Height)
	}

	wantWalls := []WallRect{
		{X: 0, Y: 0, W: 320, H: 16},
		{X: 0, Y: 240, W: 320, H: 16},
	}
	if len(arena.Walls) != len(wantWalls) {
		t.Fatalf("got %d walls, want %d", len(arena.Walls), len(wantWalls))
	}
	for i, w := range wantWalls {
		if arena.Walls[i] != w {
			t.Fatalf("wall %d = %+v, want %+v", i, arena.Walls[i], w)
		}
	}

	players := arena.SpawnsOf(SpawnPlayer)
	if len(players) != 1 || players[0].X != 160 || players[0].Y != 128 {
		t.Fatalf("player spawns = %+v", players)
	}

	enemies := arena.SpawnsOf(SpawnEnemy)
	if len(enemies) != 2 {
		t.Fatalf("got %d enemy spawns, want 2", len(enemies))
	}
	if enemies[0].Index != 1 || enemies[1].Index != 2 {
		t.Fatalf("enemy spawns not ordered by index: %+v", enemies)
	}
}

func TestLoadArenaErrors(t *testing.T) {
	cases := []struct {
		name    string
		path    string
		wantErr error
	}{
		{"missing_file", "absent.tmx", nil},
		{"no_player_spawn", "nospawn.tmx", ErrNoPlayerSpawn},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := LoadArena(os.DirFS("testdata"), c.path)
			if err == nil {
				t.Fatalf("expected error")
			}
			if c.wantErr != nil && !errors.Is(err, c.wantErr) {
				t.Fatalf("error = %v, want %v", err, c.wantErr)
			}
		})
	}
}

func TestLoadCatalog(t *testing.T) {
	catalog, err := LoadCatalog(assets.Arenas(), assets.ArenaDir)
	if err != nil {
		t.Fatalf("LoadCatalog: %v", err)
	}
	names := catalog.Names()
	if !slices.Contains(names, assets.DefaultArena) {
		t.Fatalf("names = %v, want %q among them", names, assets.DefaultArena)
	}
	for _, name := range names {
		arena, err := catalog.Arena(name)
		if err != nil {
			t.Fatalf("Arena(%q): %v", name, err)
		}
		if len(arena.SpawnsOf(SpawnPlayer)) == 0 {
			t.Fatalf("arena %s has no player spawn", name)
		}
	}

	if _, err := catalog.Arena("nowhere"); !errors.Is(err, ErrUnknownArena) {
		t.Fatalf("Arena(nowhere) error = %v, want %v", err, ErrUnknownArena)
	}
}

func TestLoadCatalogErrors(t *testing.T) {
	smallTMX, err := os.ReadFile("testdata/small.tmx")
	if err != nil {
		t.Fatalf("read fixture: %v", err)
	}

	cases := []struct {
		name    string
		fsys    fs.FS
		dir     string
		wantErr error
	}{
		{"missing_dir", os.DirFS("testdata"), "empty", nil},
		{"bad_arena", os.DirFS("testdata"), ".", ErrNoPlayerSpawn},
		{"no_arenas", fstest.MapFS{
			"arenas/readme.txt":      {Data: []byte("not an arena")},
			"arenas/nested/deep.tmx": {Data: smallTMX},
		}, "arenas", ErrNoArenas},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := LoadCatalog(c.fsys, c.dir)
			if err == nil {
				t.Fatalf("expected error")
			}
			if c.wantErr != nil && !errors.Is(err, c.wantErr) {
				t.Fatalf("error = %v, want %v", err, c.wantErr)
			}
		})
	}
}
