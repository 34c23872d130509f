package components

import "github.com/yohamta/donburi"

type FollowData struct {
	Target donburi.Entity
	// UntilDistance is compared against the squared distance to the target.
	UntilDistance float64
}

var Follow = donburi.NewComponentType[FollowData]()
