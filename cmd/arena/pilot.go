package main

import (
	"github.com/automoto/brawlcore/shared/gamemath"
	"github.com/automoto/brawlcore/sim"
	"github.com/yohamta/donburi/features/math"
)

const (
	attackRange = 80.0
	dashRange   = 240.0
	orbitRange  = 60.0
)

// pilot plays the arena's player so the runner has something to show: it
// chases the nearest enemy, dashes to close long gaps and swings when in
// range.
type pilot struct {
	s *sim.Simulation
}

func newPilot(s *sim.Simulation) *pilot {
	return &pilot{s: s}
}

func (p *pilot) drive() {
	snapshot := p.s.Snapshot()

	var self *sim.EntityState
	for i := range snapshot {
		if snapshot[i].Entity == p.s.Player() {
			self = &snapshot[i]
			break
		}
	}
	if self == nil {
		return
	}

	target, found := nearestEnemy(self.Position, snapshot)
	if !found {
		p.s.SetIntent(self.Entity, math.Vec2{}, math.Vec2{}, false, false)
		return
	}

	toTarget := target.Sub(self.Position)
	dist := gamemath.Length(toTarget)
	dir := gamemath.NormalizeOrZero(toTarget)

	move := dir
	if dist < orbitRange {
		// Circle the target instead of standing on it.
		move = gamemath.Rotate(dir, 1.2)
	}

	tick := p.s.Ticks()
	attack := dist < attackRange && tick%20 < 10
	dash := dist > dashRange && tick%90 < 2

	p.s.SetIntent(self.Entity, move, dir, dash, attack)
}

func nearestEnemy(from math.Vec2, snapshot []sim.EntityState) (math.Vec2, bool) {
	var best math.Vec2
	bestDist := -1.0
	for _, e := range snapshot {
		if e.Kind != "enemy" {
			continue
		}
		d := gamemath.LengthSquared(e.Position.Sub(from))
		if bestDist < 0 || d < bestDist {
			best, bestDist = e.Position, d
		}
	}
	return best, bestDist >= 0
}
