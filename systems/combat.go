package systems

import (
	"github.com/automoto/brawlcore/components"
	"github.com/yohamta/donburi"
)

// DamageEvent is a request to remove Amount health from Target. It only
// lives inside the tick that produced it.
type DamageEvent struct {
	Amount float64
	Target donburi.Entity
	Source donburi.Entity
}

// ApplyDamage drains the tick's damage queue in order. Events whose target
// is gone or has no health are dropped.
func ApplyDamage(t *Tick) {
	for _, dmg := range t.Damage {
		e := t.entry(dmg.Target)
		if e == nil || !e.HasComponent(components.Health) {
			continue
		}
		hp := components.Health.Get(e)
		hp.Current -= dmg.Amount

		Damaged.Publish(t.World, DamagedEvent{
			Target:    dmg.Target,
			Source:    dmg.Source,
			Amount:    dmg.Amount,
			Remaining: hp.Current,
		})
	}
	t.Damage = t.Damage[:0]
}
