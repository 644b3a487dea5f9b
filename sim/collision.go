package sim

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/strafesim/strafesim/game"
)

// integrate moves the player through the world for one tick. Fast movement is
// split into equal sub-steps so no single step translates farther than the
// configured displacement cap, which keeps the collider from tunnelling
// through thin geometry.
func (s *Simulation) integrate(dt float32) {
	p := &s.Player
	p.Contacts.reset()

	wasGrounded := p.Grounded
	grounded := false
	var normals []mgl32.Vec3

	translation := p.Vel.Mul(dt)
	if dist := translation.Len(); dist >= game.Epsilon {
		steps := int(math32.Ceil(dist / s.conf.Movement.MaxDisplacementPerStep))
		if steps < 1 {
			steps = 1
		}
		if steps > s.conf.Movement.MaxSubSteps {
			steps = s.conf.Movement.MaxSubSteps
		}
		subDt := dt / float32(steps)

		for i := 0; i < steps; i++ {
			bb := p.BoundingBox(s.conf.Movement.ColliderWidth)
			res := s.world.MoveAndSlide(bb, p.Vel.Mul(subDt))
			p.Pos = p.Pos.Add(res.Movement)
			grounded = grounded || res.Grounded
			normals = append(normals, res.Normals...)
		}
	}

	// A grounded player moving flat never translates downward, so the move
	// above cannot re-detect the floor. Probe a short snap distance down;
	// if the floor is within reach the player stays glued to it, otherwise
	// they walked off an edge and gravity takes over next tick.
	if wasGrounded && !grounded && p.Vel.Y() <= 0 {
		bb := p.BoundingBox(s.conf.Movement.ColliderWidth)
		res := s.world.MoveAndSlide(bb, mgl32.Vec3{0, -GroundSnapDist, 0})
		if res.Grounded {
			p.Pos = p.Pos.Add(res.Movement)
			grounded = true
			normals = append(normals, res.Normals...)
		}
	}

	s.resolveContacts(grounded, normals)
}

// resolveContacts zeroes the velocity components the world pushed back
// against, updates grounded state, and records near-vertical wall contacts
// for wall-run detection.
func (s *Simulation) resolveContacts(grounded bool, normals []mgl32.Vec3) {
	p := &s.Player

	wasGrounded := p.Grounded
	p.Grounded = grounded

	for _, n := range normals {
		switch {
		case n.Y() > WallNormalMaxY:
			// Floor.
			if p.Vel.Y() < 0 {
				p.Vel[1] = 0
			}
		case n.Y() < -WallNormalMaxY:
			// Ceiling. During the first few ticks after takeoff an overhang
			// right above the head would otherwise kill the jump instantly.
			if p.Vel.Y() > 0 && p.takeoffTicks == 0 {
				p.Vel[1] = 0
			}
		default:
			s.recordWallContact(n)
			// Kill the velocity component into the wall.
			into := p.Vel.Dot(n)
			if into < 0 {
				p.Vel = p.Vel.Sub(n.Mul(into))
			}
		}
	}

	if p.Grounded {
		if p.Vel.Y() < 0 {
			p.Vel[1] = 0
		}
		if !wasGrounded {
			p.Jumping = false
			p.JumpHoldTicks = 0
		}
		// Landing mid-move ends the wall run in the same tick; grounded and
		// wall-running are never both true.
		if p.WallRun.Active {
			s.endWallRun()
		}
	}
}

// recordWallContact files a near-vertical contact normal on the player's left
// or right. Normals too close to the player's facing plane are ignored so
// head-on collisions never read as runnable walls.
func (s *Simulation) recordWallContact(n mgl32.Vec3) {
	right := game.FlatRight(s.Player.Yaw)
	d := n.Dot(right)
	switch {
	case d > WallSideMinDot:
		// Normal points toward the player's right, so the wall is on the left.
		s.Player.Contacts.Left = true
		s.Player.Contacts.LeftNormal = n
	case d < -WallSideMinDot:
		s.Player.Contacts.Right = true
		s.Player.Contacts.RightNormal = n
	}
}
