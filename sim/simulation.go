package sim

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/strafesim/strafesim/game"
)

// Tick advances the simulation by exactly one fixed step. The order inside is
// load-bearing: respawn and zone events resolve before movement so pad
// impulses and anchor teleports feed into the same tick's integration, and
// combat resolves after movement so rays originate from the settled position.
func (s *Simulation) Tick(input *InputSnapshot) TickResult {
	if s.world == nil {
		if s.log != nil {
			s.log.Debug("tick skipped, no world attached")
		}
		return TickResult{Outcome: TickOutcomeNoWorld}
	}

	s.tick++
	outcome := TickOutcomeNormal

	s.applyAim(input)

	if s.consumeRespawn() {
		outcome = TickOutcomeRespawn
	}

	s.drainZoneEvents()
	s.tickWeaponSwap(input)

	jumped := s.tickMovement(input)
	s.tickCombat(input, TickDelta)
	s.advanceProjectiles(TickDelta)
	s.updateRun(jumped)

	hudUpdated := s.tick%uint64(s.hudInterval) == 0
	if hudUpdated {
		s.publishHUD()
	}
	input.drainEdges()

	return TickResult{
		Position:    s.Player.Pos,
		Velocity:    s.Player.Vel,
		Grounded:    s.Player.Grounded,
		WallRunning: s.Player.WallRun.Active,
		Outcome:     outcome,
		HUDUpdated:  hudUpdated,
	}
}

// applyAim folds the tick's mouse deltas into yaw and pitch. Yaw wraps; pitch
// clamps short of straight up and down.
func (s *Simulation) applyAim(input *InputSnapshot) {
	sens := s.conf.Movement.MouseSensitivity
	if s.Combat.Zoomed {
		sens *= ZoomSensitivityScale
	}
	p := &s.Player
	p.Yaw = game.WrapRadians(p.Yaw - input.MouseDeltaX*sens)
	p.Pitch = game.ClampFloat(p.Pitch+input.MouseDeltaY*sens, -PitchLimit, PitchLimit)
}

// tickMovement runs the whole movement pipeline for one tick and reports
// whether the player left the ground by jumping.
func (s *Simulation) tickMovement(input *InputSnapshot) bool {
	p := &s.Player

	if p.GraceTicks > 0 {
		// Respawn grace: no gravity, no movement, no physics queries. The
		// collider re-registers while the player holds still.
		p.GraceTicks--
		return false
	}

	s.tickCrouch(input)

	dt := TickDelta
	wishDir := WishDir(input.Forward, input.Backward, input.Left, input.Right, p.Yaw)

	if p.Grounded {
		s.applyGroundMovement(wishDir, dt)
	} else {
		mv := s.conf.Movement
		p.Vel = ApplyAirAcceleration(p.Vel, wishDir, mv.GroundMaxSpeed, mv.AirAccel, mv.AirSpeedCap, dt)
	}

	jumped := s.tickJump(input)
	s.tickWallRun(input)
	s.tickGrapple(input, dt)
	s.applyGravity(input, dt)

	if s.Combat.KnifeLungeTicks > 0 {
		// The lunge overrides the velocity outright for its duration.
		s.Combat.KnifeLungeTicks--
		p.Vel = s.Combat.KnifeLungeDir.Mul(s.conf.Combat.Knife.LungeSpeed)
	}

	s.integrate(dt)
	return jumped
}

// applyGroundMovement is friction then acceleration, with the friction scale
// and wish speed modulated by sliding, crouching and the plasma beam.
func (s *Simulation) applyGroundMovement(wishDir mgl32.Vec3, dt float32) {
	p := &s.Player
	mv := s.conf.Movement

	friction := mv.Friction
	switch {
	case p.Sliding:
		friction *= mv.SlideFrictionScale
	case s.Combat.PlasmaActive:
		friction *= s.conf.Combat.Plasma.FrictionScale
	}
	p.Vel = ApplyFriction(p.Vel, friction, mv.StopSpeed, dt)

	if p.Sliding {
		// A slide keeps its momentum; directional input does not steer it.
		return
	}

	maxSpeed := mv.GroundMaxSpeed
	if p.Crouching {
		maxSpeed *= CrouchSpeedScale
	}
	p.Vel = ApplyGroundAcceleration(p.Vel, wishDir, maxSpeed, mv.GroundAccel, dt)
}

// tickCrouch toggles the collider height and runs the slide state machine.
// Crouching at speed on the ground converts into a slide that preserves
// momentum under heavily reduced friction.
func (s *Simulation) tickCrouch(input *InputSnapshot) {
	p := &s.Player
	mv := s.conf.Movement

	if input.Crouch {
		p.Crouching = true
		p.HalfHeight = mv.CrouchHeight / 2
	} else {
		p.Crouching = false
		p.HalfHeight = mv.StandHeight / 2
	}

	if p.Sliding {
		p.SlideTicks++
		if !input.Crouch || !p.Grounded ||
			p.SlideTicks > mv.SlideMaxTicks ||
			p.HorizontalSpeed() < mv.SlideMinSpeed/2 {
			p.Sliding = false
			p.SlideTicks = 0
			// Holding crouch past the end of a slide does not chain straight
			// into the next one; the key has to come up first.
			p.slideLatch = input.Crouch
		}
		return
	}

	if !input.Crouch {
		p.slideLatch = false
	}
	if input.Crouch && !p.slideLatch && p.Grounded && p.HorizontalSpeed() >= mv.SlideMinSpeed {
		p.Sliding = true
		p.SlideTicks = 0
	}
}

// tickJump handles the jump buffer, coyote time and wall jumps. Returns true
// when a jump actually fired this tick.
func (s *Simulation) tickJump(input *InputSnapshot) bool {
	p := &s.Player
	mv := s.conf.Movement

	if input.Jump && !s.prevJump {
		p.JumpBufferTicks = mv.JumpBufferTicks
	} else if p.JumpBufferTicks > 0 {
		p.JumpBufferTicks--
	}
	s.prevJump = input.Jump

	if p.Grounded {
		p.CoyoteTicks = mv.CoyoteTicks
	} else if p.CoyoteTicks > 0 {
		p.CoyoteTicks--
	}
	if p.takeoffTicks > 0 {
		p.takeoffTicks--
	}

	if p.JumpBufferTicks == 0 {
		return false
	}

	if p.WallRun.Active {
		s.wallJump()
		return true
	}

	if !p.Grounded && p.CoyoteTicks == 0 {
		return false
	}

	p.Vel[1] = mv.JumpVelocity
	p.Grounded = false
	p.Jumping = true
	p.Sliding = false
	p.JumpBufferTicks = 0
	p.CoyoteTicks = 0
	p.JumpHoldTicks = mv.JumpHoldTicks
	p.takeoffTicks = JumpTakeoffTicks
	s.effects.PlaySound(SoundJump, 1)
	return true
}

// applyGravity pulls the player down, scaled while wall-running and during a
// held variable-height jump.
func (s *Simulation) applyGravity(input *InputSnapshot, dt float32) {
	p := &s.Player
	if p.Grounded {
		return
	}

	scale := float32(1)
	switch {
	case p.WallRun.Active:
		scale = s.conf.WallRun.GravityScale
	case p.Jumping && input.Jump && p.JumpHoldTicks > 0:
		scale = s.conf.Movement.JumpHoldGravityScale
		p.JumpHoldTicks--
	}
	p.Vel[1] -= s.conf.Movement.Gravity * scale * dt
}
