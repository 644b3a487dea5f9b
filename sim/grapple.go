package sim

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/strafesim/strafesim/game"
)

// tickGrapple handles attach on press, the swing while held, and the release
// boost on let-go. The swing force is applied once per tick, not per
// sub-step.
func (s *Simulation) tickGrapple(input *InputSnapshot, dt float32) {
	g := &s.Combat.Grapple
	pressed := input.Grapple && !s.prevGrapple
	released := !input.Grapple && s.prevGrapple
	s.prevGrapple = input.Grapple

	if pressed && !g.Active {
		s.tryAttachGrapple()
	}
	if g.Active && released {
		s.releaseGrapple()
		return
	}
	if g.Active {
		s.applyGrappleForce(dt)
	}
}

// tryAttachGrapple picks the nearest registered anchor inside the view cone
// and range; with no anchor candidate it falls back to a straight ray into
// level geometry.
func (s *Simulation) tryAttachGrapple() {
	g := &s.Combat.Grapple
	conf := s.conf.Grapple

	eye := s.eyePos()
	aim := s.Player.AimDir()

	bestDist := conf.MaxDistance
	found := false
	var bestAnchor mgl32.Vec3
	for _, anchor := range s.anchors {
		to := anchor.Sub(eye)
		dist := to.Len()
		if dist > conf.MaxDistance || dist < game.Epsilon {
			continue
		}
		if to.Mul(1/dist).Dot(aim) < conf.ViewConeDot {
			continue
		}
		if dist < bestDist || !found {
			bestDist = dist
			bestAnchor = anchor
			found = true
		}
	}

	if !found {
		hit, ok := s.world.CastRay(eye, aim, conf.MaxDistance)
		if !ok {
			return
		}
		bestAnchor = hit.Position
		bestDist = hit.Distance
	}

	g.Active = true
	g.Anchor = bestAnchor
	g.RopeLength = bestDist
	s.endWallRun()
	s.effects.PlaySound(SoundGrappleAttach, 1)
	s.dbg("grapple attached at %v, rope %.2f", bestAnchor, bestDist)
}

// applyGrappleForce pulls the player toward the anchor and constrains them to
// the rope length: any radial velocity past the rope end is projected onto
// the sphere around the anchor, which is what converts falls into swings.
func (s *Simulation) applyGrappleForce(dt float32) {
	g := &s.Combat.Grapple
	p := &s.Player

	center := p.Center()
	toAnchor := g.Anchor.Sub(center)
	dist := toAnchor.Len()
	if dist < game.Epsilon {
		return
	}
	dir := toAnchor.Mul(1 / dist)

	p.Vel = p.Vel.Add(dir.Mul(s.conf.Grapple.SpringAccel * dt))

	if dist >= g.RopeLength {
		// Remove the velocity component stretching the rope.
		radial := p.Vel.Dot(dir)
		if radial < 0 {
			p.Vel = p.Vel.Sub(dir.Mul(radial))
		}
	}
}

// releaseGrapple detaches and pays out the momentum boost. The boost only
// ever scales speed up; a speed already above the boosted value is kept.
func (s *Simulation) releaseGrapple() {
	g := &s.Combat.Grapple
	g.Active = false

	boost := s.conf.Grapple.ReleaseBoost
	if boost > 1 {
		s.Player.Vel = s.Player.Vel.Mul(boost)
	}
	s.effects.PlaySound(SoundGrappleRelease, 1)
}
