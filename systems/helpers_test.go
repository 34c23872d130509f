package systems

import (
	"testing"
	"time"

	"github.com/automoto/brawlcore/components"
	cfg "github.com/automoto/brawlcore/config"
	"github.com/automoto/brawlcore/shared/gamemath"
	"github.com/automoto/brawlcore/systems/factory"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

const tickLen = 16 * time.Millisecond

func newTestWorld(t *testing.T) donburi.World {
	t.Helper()
	cfg.Reset()
	w := donburi.NewWorld()
	factory.CreateSpace(w, 1000, 1000, 32, 32)
	return w
}

func body(e *donburi.Entry) *components.BodyData {
	return components.Body.Get(e)
}

func vecNear(t *testing.T, want, got math.Vec2, msgAndArgs ...any) {
	t.Helper()
	require.InDelta(t, want.X, got.X, 1e-6, msgAndArgs...)
	require.InDelta(t, want.Y, got.Y, 1e-6, msgAndArgs...)
}

// newTestZone places a zone with the player's attack settings at centre.
func newTestZone(w donburi.World, emitter donburi.Entity, centre math.Vec2) *donburi.Entry {
	attack := &components.AttackData{
		Facing:   gamemath.Right,
		Damage:   10,
		Lifetime: 180 * time.Millisecond,
		Radius:   32,
		Layers: components.Layers{
			Member: cfg.LayerPlayerHitbox,
			Filter: cfg.LayerEnemies,
		},
	}
	return factory.CreateDamageZone(w, emitter, centre, 0, attack)
}
