// Package sim drives the combat-movement systems one fixed step at a time.
package sim

import (
	"time"

	"github.com/automoto/brawlcore/components"
	cfg "github.com/automoto/brawlcore/config"
	"github.com/automoto/brawlcore/shared/leveldata"
	"github.com/automoto/brawlcore/systems"
	"github.com/automoto/brawlcore/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// phases run in order every step. Each phase only reads what earlier phases
// (or earlier steps) wrote.
var phases = []func(*systems.Tick){
	// input
	systems.UpdateIntents,

	// narrow phase and kinematic response
	systems.SyncObjects,
	systems.GenerateContacts,
	systems.ResolveKinematicContacts,
	systems.Integrate,
	systems.SyncObjects,

	// abilities
	systems.UpdateDash,

	// damage zones
	systems.SpawnAttackZones,
	systems.UpdateDamageZones,
	systems.UpdateContactDamage,
	systems.UpdateSwings,

	// damage and death
	systems.ApplyDamage,
	systems.SweepDeaths,

	systems.LatchIntents,
	systems.DeliverEvents,
}

// Simulation owns the world and its broadphase space.
type Simulation struct {
	world  donburi.World
	player donburi.Entity
	ticks  uint64
	clock  time.Duration
}

// New creates an empty simulation with a space sized from config.Arena.
func New() *Simulation {
	return newSimulation(cfg.Arena.Width, cfg.Arena.Height)
}

// NewFromArena builds the arena's walls, its player and one enemy per
// enemy spawn.
func NewFromArena(arena *leveldata.ArenaData) *Simulation {
	s := newSimulation(arena.Width, arena.Height)

	for _, wall := range arena.Walls {
		factory.CreateWall(s.world, wall.X, wall.Y, wall.W, wall.H)
	}
	if spawns := arena.SpawnsOf(leveldata.SpawnPlayer); len(spawns) > 0 {
		s.player = factory.CreatePlayer(s.world, spawns[0].X, spawns[0].Y).Entity()
	}
	for _, spawn := range arena.SpawnsOf(leveldata.SpawnEnemy) {
		factory.CreateEnemy(s.world, spawn.X, spawn.Y, s.player)
	}

	return s
}

func newSimulation(width, height int) *Simulation {
	world := donburi.NewWorld()
	factory.CreateSpace(world, width, height, cfg.Arena.CellSize, cfg.Arena.CellSize)
	return &Simulation{
		world:  world,
		player: donburi.Null,
	}
}

// World exposes the underlying world so collaborators can spawn entities
// and subscribe to the systems' events.
func (s *Simulation) World() donburi.World {
	return s.world
}

// Player returns the player spawned from the arena, or donburi.Null.
func (s *Simulation) Player() donburi.Entity {
	return s.player
}

// Ticks returns the number of completed steps.
func (s *Simulation) Ticks() uint64 {
	return s.ticks
}

// Elapsed returns the accumulated simulated time.
func (s *Simulation) Elapsed() time.Duration {
	return s.clock
}

// SetIntent records the held input state of e for the next step. Entities
// without an Intent are ignored.
func (s *Simulation) SetIntent(e donburi.Entity, move, look math.Vec2, dash, attack bool) {
	if !s.world.Valid(e) {
		return
	}
	entry := s.world.Entry(e)
	if !entry.HasComponent(components.Intent) {
		return
	}
	intent := components.Intent.Get(entry)
	intent.Move = move
	intent.Look = look
	intent.Current[components.ActionDash] = dash
	intent.Current[components.ActionAttack] = attack
}

// Step advances the simulation by dt.
func (s *Simulation) Step(dt time.Duration) {
	t := systems.NewTick(s.world, dt)
	for _, phase := range phases {
		phase(t)
	}
	s.ticks++
	s.clock += dt
}

// Retune copies the current config values onto existing entities.
func (s *Simulation) Retune() {
	systems.ApplyTuning(s.world)
}
