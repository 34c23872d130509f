package systems

import (
	"github.com/automoto/brawlcore/components"
	cfg "github.com/automoto/brawlcore/config"
	"github.com/automoto/brawlcore/tags"
	"github.com/yohamta/donburi"
)

// ApplyTuning copies the current config values onto entities that already
// exist. Running timers and health are left alone.
func ApplyTuning(w donburi.World) {
	tags.Player.Each(w, func(e *donburi.Entry) {
		components.Movement.Get(e).Speed = cfg.Movement.PlayerSpeed
		setMaxHealth(components.Health.Get(e), cfg.Combat.PlayerHealth)

		dash := components.Dash.Get(e)
		dash.Speed = cfg.Dash.Speed
		dash.Duration = cfg.Dash.Duration
		dash.LandingDuration = cfg.Dash.LandingDuration
		dash.Cooldown = cfg.Dash.Cooldown
		dash.TurnRate = cfg.Dash.TurnRate

		attack := components.Attack.Get(e)
		attack.Damage = cfg.Combat.AttackDamage
		attack.Lifetime = cfg.Combat.AttackLifetime
		attack.Radius = cfg.Combat.AttackRadius
		attack.Reach = cfg.Combat.AttackReach
	})

	tags.Enemy.Each(w, func(e *donburi.Entry) {
		components.Movement.Get(e).Speed = cfg.Movement.EnemySpeed
		setMaxHealth(components.Health.Get(e), cfg.Combat.EnemyHealth)
		components.Follow.Get(e).UntilDistance = cfg.Combat.FollowUntilDistance
		components.ContactDamage.Get(e).PerSecond = cfg.Combat.ContactDamagePerSecond
	})
}

func setMaxHealth(hp *components.HealthData, max float64) {
	hp.Max = max
	hp.Current = min(hp.Current, max)
}
