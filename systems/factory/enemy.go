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

// CreateEnemy spawns a melee enemy at x, y that chases target and hurts
// whatever player hurtbox it touches.
func CreateEnemy(w donburi.World, x, y float64, target donburi.Entity) *donburi.Entry {
	enemy := archetypes.Enemy.Spawn(w)

	components.Body.SetValue(enemy, components.BodyData{
		Position: math.Vec2{X: x, Y: y},
		Kind:     components.Kinematic,
		Shape:    gamemath.Circle(cfg.Body.EnemyRadius),
		Layers: components.Layers{
			Member: cfg.LayerEnemies,
			Filter: cfg.LayerLevelBounds,
		},
	})
	attachObject(w, enemy, tags.ResolvBody)

	components.Movement.SetValue(enemy, components.MovementData{
		Enabled: true,
		Speed:   cfg.Movement.EnemySpeed,
	})
	components.Health.SetValue(enemy, components.HealthData{
		Current: cfg.Combat.EnemyHealth,
		Max:     cfg.Combat.EnemyHealth,
	})
	components.Follow.SetValue(enemy, components.FollowData{
		Target:        target,
		UntilDistance: cfg.Combat.FollowUntilDistance,
	})
	components.ContactDamage.SetValue(enemy, components.ContactDamageData{
		PerSecond: cfg.Combat.ContactDamagePerSecond,
		Layers: components.Layers{
			Member: cfg.LayerEnemies,
			Filter: cfg.LayerPlayerHitbox,
		},
	})

	hurtbox := CreateHurtbox(w, enemy, cfg.Body.HurtboxRadius, components.Layers{
		Member: cfg.LayerEnemies,
		Filter: cfg.LayerPlayerHitbox,
	})
	components.Children.SetValue(enemy, components.ChildrenData{
		Entities: []donburi.Entity{hurtbox.Entity()},
	})

	return enemy
}
