package sim

import (
	"context"
	"log"
	"time"
)

type GameLoop struct {
	sim      *Simulation
	tickRate int
	stopChan chan struct{}

	// BeforeTick runs on the loop goroutine ahead of every step. Input
	// sources and tuning reloads hook in here.
	BeforeTick func(s *Simulation)
	// AfterTick runs after every step.
	AfterTick func(s *Simulation)
}

func NewGameLoop(sim *Simulation, tickRate int) *GameLoop {
	return &GameLoop{
		sim:      sim,
		tickRate: tickRate,
		stopChan: make(chan struct{}),
	}
}

// Run steps the simulation at the loop's tick rate until ctx is cancelled
// or Stop is called.
func (g *GameLoop) Run(ctx context.Context) {
	interval := time.Second / time.Duration(g.tickRate)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	log.Printf("Game loop started at %d ticks/second", g.tickRate)

	for {
		select {
		case <-ctx.Done():
			log.Println("Game loop stopped")
			return
		case <-g.stopChan:
			log.Println("Game loop stopped")
			return
		case <-ticker.C:
			g.tick(interval)
		}
	}
}

func (g *GameLoop) Stop() {
	close(g.stopChan)
}

func (g *GameLoop) tick(dt time.Duration) {
	if g.BeforeTick != nil {
		g.BeforeTick(g.sim)
	}
	g.sim.Step(dt)
	if g.AfterTick != nil {
		g.AfterTick(g.sim)
	}
}
