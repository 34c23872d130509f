package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/automoto/brawlcore/assets"
	cfg "github.com/automoto/brawlcore/config"
	"github.com/automoto/brawlcore/shared/leveldata"
	"github.com/automoto/brawlcore/sim"
	"github.com/automoto/brawlcore/systems"
	"github.com/yohamta/donburi"
)

func main() {
	arenaName := flag.String("arena", assets.DefaultArena, "Built-in arena name")
	arenaPath := flag.String("arena-file", "", "Arena TMX file on disk, overrides -arena")
	tuningPath := flag.String("tuning", "", "Tuning YAML file on disk, reloaded on change (empty = built-in tuning)")
	tickRate := flag.Int("tickrate", cfg.Arena.TickRate, "Simulation tick rate (steps per second)")
	duration := flag.Duration("duration", 0, "Stop after this much simulated time (0 = run until interrupted)")
	logEvery := flag.Int("log-every", 60, "Log a snapshot every N ticks (0 = never)")
	flag.Parse()

	if err := loadTuning(*tuningPath); err != nil {
		log.Fatalf("Failed to load tuning: %v", err)
	}

	arena, err := loadArena(*arenaName, *arenaPath)
	if err != nil {
		log.Fatalf("Failed to load arena: %v", err)
	}
	log.Printf("Arena loaded: %dx%d, %d walls, %d spawns", arena.Width, arena.Height, len(arena.Walls), len(arena.Spawns))

	s := sim.NewFromArena(arena)
	subscribe(s)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Println("Shutting down arena...")
		cancel()
	}()

	var reload <-chan string
	if *tuningPath != "" {
		watcher, err := cfg.NewWatcher(filepath.Dir(*tuningPath))
		if err != nil {
			log.Fatalf("Failed to watch tuning: %v", err)
		}
		defer watcher.Close()
		reload = watcher.Events
		go func() {
			for err := range watcher.Errors {
				log.Printf("Tuning watch error: %v", err)
			}
		}()
	}

	pilot := newPilot(s)
	loop := sim.NewGameLoop(s, *tickRate)
	loop.BeforeTick = func(s *sim.Simulation) {
		select {
		case name, ok := <-reload:
			if ok && filepath.Base(name) == filepath.Base(*tuningPath) {
				retune(s, *tuningPath)
			}
		default:
		}
		pilot.drive()
	}
	loop.AfterTick = func(s *sim.Simulation) {
		if *logEvery > 0 && s.Ticks()%uint64(*logEvery) == 0 {
			logSnapshot(s)
		}
		if *duration > 0 && s.Elapsed() >= *duration {
			cancel()
		}
	}

	log.Printf("Starting arena (tick rate: %d/s)", *tickRate)
	loop.Run(ctx)
	logSnapshot(s)
}

func loadTuning(path string) error {
	if path == "" {
		return cfg.LoadTuning(assets.Tuning(), assets.TuningFile)
	}
	return cfg.LoadTuning(os.DirFS(filepath.Dir(path)), filepath.Base(path))
}

func retune(s *sim.Simulation, path string) {
	if err := loadTuning(path); err != nil {
		log.Printf("Tuning reload failed, keeping previous values: %v", err)
		return
	}
	s.Retune()
	log.Printf("Tuning reloaded from %s", path)
}

func loadArena(name, path string) (*leveldata.ArenaData, error) {
	if path != "" {
		return leveldata.LoadArena(os.DirFS(filepath.Dir(path)), filepath.Base(path))
	}

	catalog, err := leveldata.LoadCatalog(assets.Arenas(), assets.ArenaDir)
	if err != nil {
		return nil, err
	}
	log.Printf("Built-in arenas: %s", strings.Join(catalog.Names(), ", "))
	return catalog.Arena(name)
}

func subscribe(s *sim.Simulation) {
	w := s.World()
	systems.Died.Subscribe(w, func(_ donburi.World, ev systems.DiedEvent) {
		log.Printf("Entity %v died at (%.0f, %.0f)", ev.Entity, ev.Position.X, ev.Position.Y)
	})
	systems.DashStateChanged.Subscribe(w, func(_ donburi.World, ev systems.DashStateChangedEvent) {
		log.Printf("Dash %v: %s -> %s", ev.Entity, ev.From, ev.To)
	})
}

func logSnapshot(s *sim.Simulation) {
	for _, e := range s.Snapshot() {
		if e.Kind == "zone" {
			continue
		}
		log.Printf("t=%v %s %v pos=(%.1f, %.1f) hp=%.0f/%.0f (%.0f%%) dash=%s",
			s.Elapsed().Round(time.Millisecond), e.Kind, e.Entity,
			e.Position.X, e.Position.Y, e.Health, e.MaxHealth, e.HealthPercentage()*100, e.Dash)
	}
}
