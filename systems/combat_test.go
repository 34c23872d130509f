package systems

import (
	"testing"

	"github.com/automoto/brawlcore/components"
	"github.com/automoto/brawlcore/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

func TestApplyDamage(t *testing.T) {
	w := newTestWorld(t)
	player := factory.CreatePlayer(w, 100, 100)
	enemy := factory.CreateEnemy(w, 400, 400, player.Entity())
	wall := factory.CreateWall(w, 600, 600, 50, 50)
	gone := factory.CreateEnemy(w, 800, 800, player.Entity())
	goneID := gone.Entity()
	Destroy(NewTick(w, 0), goneID)

	var damaged []DamagedEvent
	Damaged.Subscribe(w, func(_ donburi.World, ev DamagedEvent) {
		damaged = append(damaged, ev)
	})

	tick := NewTick(w, tickLen)
	tick.Damage = []DamageEvent{
		{Amount: 10, Target: enemy.Entity(), Source: player.Entity()},
		{Amount: 2.5, Target: enemy.Entity(), Source: player.Entity()},
		{Amount: 7, Target: goneID, Source: player.Entity()},
		{Amount: 5, Target: wall.Entity(), Source: player.Entity()},
	}
	ApplyDamage(tick)
	DeliverEvents(tick)

	assert.Empty(t, tick.Damage)
	assert.Equal(t, 17.5, components.Health.Get(enemy).Current)
	require.Len(t, damaged, 2)
	assert.Equal(t, 20.0, damaged[0].Remaining)
	assert.Equal(t, 17.5, damaged[1].Remaining)
	assert.Equal(t, enemy.Entity(), damaged[1].Target)
}

func TestSweepDeaths(t *testing.T) {
	tests := []struct {
		name   string
		health float64
		dies   bool
	}{
		{"negative", -1, true},
		{"zero", 0, true},
		{"positive", 0.01, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWorld(t)
			player := factory.CreatePlayer(w, 100, 100)
			enemy := factory.CreateEnemy(w, 400, 400, player.Entity())
			enemyID := enemy.Entity()
			hurtboxID := components.Children.Get(enemy).Entities[0]
			components.Health.Get(enemy).Current = tt.health

			var died []DiedEvent
			Died.Subscribe(w, func(_ donburi.World, ev DiedEvent) {
				died = append(died, ev)
			})

			tick := NewTick(w, tickLen)
			SweepDeaths(tick)
			DeliverEvents(tick)

			assert.Equal(t, !tt.dies, w.Valid(enemyID))
			assert.Equal(t, !tt.dies, w.Valid(hurtboxID))
			assert.True(t, w.Valid(player.Entity()))
			if !tt.dies {
				assert.Empty(t, died)
				return
			}
			require.Len(t, died, 1)
			assert.Equal(t, enemyID, died[0].Entity)
			vecNear(t, math.Vec2{X: 400, Y: 400}, died[0].Position)
		})
	}
}

func TestDestroyedHurtboxLeavesSpace(t *testing.T) {
	w := newTestWorld(t)
	player := factory.CreatePlayer(w, 100, 100)
	enemy := factory.CreateEnemy(w, 400, 400, player.Entity())
	components.Health.Get(enemy).Current = 0
	SweepDeaths(NewTick(w, tickLen))

	newTestZone(w, player.Entity(), math.Vec2{X: 400, Y: 400})
	tick := NewTick(w, tickLen)
	UpdateDamageZones(tick)
	assert.Empty(t, tick.Damage)
}
