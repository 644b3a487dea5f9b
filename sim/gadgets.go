package sim

import "github.com/strafesim/strafesim/game"

// drainZoneEvents consumes every queued zone event in arrival order. Runs at
// the top of the tick so pad impulses feed into the same tick's movement.
func (s *Simulation) drainZoneEvents() {
	for ev := range s.zoneEvents.Drain() {
		s.applyZoneEvent(ev)
	}
}

func (s *Simulation) applyZoneEvent(ev ZoneEvent) {
	p := &s.Player
	switch z := ev.(type) {
	case BoostPad:
		dir := game.SafeNormalize(z.Direction)
		if dir.Len() < game.Epsilon {
			return
		}
		p.Vel = dir.Mul(z.Speed)
		s.dbg("boost pad -> %.2f u/s", z.Speed)

	case LaunchPad:
		dir := game.SafeNormalize(z.Direction)
		if dir.Len() < game.Epsilon {
			return
		}
		p.Vel = dir.Mul(z.Speed)
		p.Grounded = false
		p.takeoffTicks = JumpTakeoffTicks
		s.dbg("launch pad -> %.2f u/s", z.Speed)

	case SpeedGate:
		if p.HorizontalSpeed() < z.MinSpeed {
			return
		}
		p.Vel = p.Vel.Mul(z.Multiplier)

	case AmmoPickup:
		if z.Weapon >= weaponCount || z.Amount <= 0 {
			return
		}
		ammo := &s.Combat.weapons[z.Weapon].Ammo
		ammo.Current += z.Amount
		if ammo.Current > ammo.Max {
			ammo.Current = ammo.Max
		}

	case StartZone:
		s.startRun()

	case CheckpointZone:
		s.hitCheckpoint(z.Index, z.Pos, z.Yaw)

	case FinishZone:
		s.finishRun()
	}
}
