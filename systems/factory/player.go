package factory

import (
	"github.com/automoto/brawlcore/archetypes"
	"github.com/automoto/brawlcore/components"
	cfg "github.com/automoto/brawlcore/config"
	"github.com/automoto/brawlcore/shared/gamemath"
	"github.com/automoto/brawlcore/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// CreatePlayer spawns the dashing, attacking character centred at x, y.
func CreatePlayer(w donburi.World, x, y float64) *donburi.Entry {
	player := archetypes.Player.Spawn(w)

	components.Body.SetValue(player, components.BodyData{
		Position: math.Vec2{X: x, Y: y},
		Kind:     components.Kinematic,
		Shape:    gamemath.Circle(cfg.Body.PlayerRadius),
		Layers: components.Layers{
			Member: cfg.LayerPlayerMovement,
			Filter: cfg.LayerLevelBounds,
		},
	})
	attachObject(w, player, tags.ResolvBody)

	components.Movement.SetValue(player, components.MovementData{
		Enabled: true,
		Speed:   cfg.Movement.PlayerSpeed,
	})
	components.Health.SetValue(player, components.HealthData{
		Current: cfg.Combat.PlayerHealth,
		Max:     cfg.Combat.PlayerHealth,
	})
	components.Dash.SetValue(player, components.DashData{
		State:           components.DashState{Phase: components.DashReady},
		Speed:           cfg.Dash.Speed,
		Duration:        cfg.Dash.Duration,
		LandingDuration: cfg.Dash.LandingDuration,
		Cooldown:        cfg.Dash.Cooldown,
		TurnRate:        cfg.Dash.TurnRate,
		LastDirection:   gamemath.Right,
	})
	components.Attack.SetValue(player, components.AttackData{
		Facing:   gamemath.Right,
		Damage:   cfg.Combat.AttackDamage,
		Lifetime: cfg.Combat.AttackLifetime,
		Radius:   cfg.Combat.AttackRadius,
		Reach:    cfg.Combat.AttackReach,
		Layers: components.Layers{
			Member: cfg.LayerPlayerHitbox,
			Filter: cfg.LayerEnemies,
		},
	})

	hurtbox := CreateHurtbox(w, player, cfg.Body.HurtboxRadius, components.Layers{
		Member: cfg.LayerPlayerHitbox,
		Filter: cfg.LayerEnemies,
	})
	components.Children.SetValue(player, components.ChildrenData{
		Entities: []donburi.Entity{hurtbox.Entity()},
	})

	return player
}
