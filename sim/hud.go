package sim

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/strafesim/strafesim/game"
)

// HUDSnapshot is the read-only view published for display. It refreshes every
// few ticks rather than every tick, so hosts polling it between refreshes see
// the same values.
type HUDSnapshot struct {
	Tick uint64

	Speed    float32
	Position mgl32.Vec3
	Grounded bool

	Health       float32
	ActiveWeapon WeaponType
	Ammo         AmmoRecord

	Phase     RunPhase
	ElapsedMs int64
	Splits    []Split
}

// HUD returns the most recently published snapshot.
func (s *Simulation) HUD() HUDSnapshot {
	return s.hud
}

// publishHUD copies live state into the snapshot. Splits are cloned so the
// snapshot stays stable while the live slice keeps growing.
func (s *Simulation) publishHUD() {
	splits := make([]Split, len(s.Run.Splits))
	copy(splits, s.Run.Splits)

	s.hud = HUDSnapshot{
		Tick: s.tick,

		Speed:    game.Round32(s.Player.HorizontalSpeed(), 2),
		Position: s.Player.Pos,
		Grounded: s.Player.Grounded,

		Health:       s.Combat.Health,
		ActiveWeapon: s.Combat.Active,
		Ammo:         s.Combat.Ammo(s.Combat.Active),

		Phase:     s.Run.Phase,
		ElapsedMs: s.ElapsedMs(),
		Splits:    splits,
	}
}
