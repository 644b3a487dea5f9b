package sim

import "github.com/chewxy/math32"

// tickWallRun runs the wall-run state machine after acceleration and before
// gravity. While a wall-run is active gravity is scaled down and horizontal
// speed decays very slowly, letting the player carry momentum along walls.
func (s *Simulation) tickWallRun(input *InputSnapshot) {
	p := &s.Player
	wr := &p.WallRun

	if wr.Cooldown > 0 {
		wr.Cooldown--
	}

	if wr.Active {
		wr.Ticks++
		if s.wallRunShouldEnd(input) {
			s.endWallRun()
			return
		}
		// Hold speed along the wall; the retention factor bleeds only a
		// fraction of a percent per tick.
		p.Vel[0] *= s.conf.WallRun.SpeedRetention
		p.Vel[2] *= s.conf.WallRun.SpeedRetention
		if p.Vel.Y() < 0 {
			p.Vel[1] *= s.conf.WallRun.SpeedRetention
		}
		s.applyWallStick()
		return
	}

	if s.wallRunCanStart(input) {
		s.startWallRun()
	}
}

func (s *Simulation) wallRunShouldEnd(input *InputSnapshot) bool {
	p := &s.Player
	wr := &p.WallRun

	if p.Grounded || s.Combat.Grapple.Active {
		return true
	}
	if wr.Ticks > s.conf.WallRun.MaxTicks {
		return true
	}
	if p.HorizontalSpeed() < s.conf.WallRun.MinSpeed {
		return true
	}
	switch wr.Side {
	case WallSideLeft:
		if !p.Contacts.Left || !input.Left {
			return true
		}
		wr.Normal = p.Contacts.LeftNormal
	case WallSideRight:
		if !p.Contacts.Right || !input.Right {
			return true
		}
		wr.Normal = p.Contacts.RightNormal
	}
	return false
}

// wallRunCanStart requires airborne flight at speed, a fresh cooldown, no
// grapple, and the strafe key pressed toward a wall the controller touched
// this tick.
func (s *Simulation) wallRunCanStart(input *InputSnapshot) bool {
	p := &s.Player
	if p.Grounded || s.Combat.Grapple.Active || p.WallRun.Cooldown > 0 {
		return false
	}
	if p.HorizontalSpeed() < s.conf.WallRun.MinSpeed {
		return false
	}
	return (input.Left && p.Contacts.Left) || (input.Right && p.Contacts.Right)
}

func (s *Simulation) startWallRun() {
	p := &s.Player
	wr := &p.WallRun

	wr.Active = true
	wr.Ticks = 0
	if p.Contacts.Left {
		wr.Side = WallSideLeft
		wr.Normal = p.Contacts.LeftNormal
	} else {
		wr.Side = WallSideRight
		wr.Normal = p.Contacts.RightNormal
	}
	// Stop falling into the wall run; preserve upward motion.
	p.Vel[1] = math32.Max(p.Vel.Y(), 0)
	s.applyWallStick()
	s.dbg("wall run start, side=%d", wr.Side)
}

// applyWallStick pushes the controller slightly into the wall so the next
// integration step clips against it and refreshes the contact. Contact
// resolution removes the component again, so it never accumulates.
func (s *Simulation) applyWallStick() {
	p := &s.Player
	p.Vel = p.Vel.Sub(p.WallRun.Normal.Mul(WallStickSpeed))
}

func (s *Simulation) endWallRun() {
	wr := &s.Player.WallRun
	wr.Active = false
	wr.Ticks = 0
	wr.Side = WallSideNone
	wr.Cooldown = s.conf.WallRun.CooldownTicks
}

// wallJump kicks the player away from the wall and upward, ending the
// wall-run. The upward impulse is a floor, never a reduction.
func (s *Simulation) wallJump() {
	p := &s.Player
	n := p.WallRun.Normal

	p.Vel = p.Vel.Add(n.Mul(s.conf.WallRun.JumpAwayImpulse))
	p.Vel[1] = math32.Max(p.Vel.Y(), s.conf.WallRun.JumpUpImpulse)
	p.JumpBufferTicks = 0
	p.Jumping = true
	p.takeoffTicks = JumpTakeoffTicks
	s.endWallRun()
	s.effects.PlaySound(SoundWallJump, 1)
}
