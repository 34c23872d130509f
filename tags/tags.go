package tags

import "github.com/yohamta/donburi"

var (
	Player     = donburi.NewTag().SetName("Player")
	Enemy      = donburi.NewTag().SetName("Enemy")
	Wall       = donburi.NewTag().SetName("Wall")
	Hurtbox    = donburi.NewTag().SetName("Hurtbox")
	DamageZone = donburi.NewTag().SetName("DamageZone")
)

// Resolv tags for broadphase queries
const (
	ResolvSolid   = "solid"
	ResolvBody    = "body"
	ResolvHurtbox = "hurtbox"
	ResolvZone    = "zone"
)
