package sim

import "github.com/go-gl/mathgl/mgl32"

// ZoneEvent is a typed event pushed by external collision sensors. Events are
// queued by the host and drained by the core exactly once per tick, in arrival
// order; sensor callbacks never mutate player or combat state directly.
type ZoneEvent interface {
	zoneEvent()
}

// BoostPad redirects the player's velocity along a direction at a set speed.
type BoostPad struct {
	Direction mgl32.Vec3
	Speed     float32
}

// LaunchPad is a boost pad that additionally unsticks the player from the
// ground so the impulse is not swallowed by the next landing correction.
type LaunchPad struct {
	Direction mgl32.Vec3
	Speed     float32
}

// SpeedGate multiplies the player's velocity, but only when they pass through
// it fast enough.
type SpeedGate struct {
	Multiplier float32
	MinSpeed   float32
}

// AmmoPickup grants reserve ammo for one weapon, clamped to its maximum.
type AmmoPickup struct {
	Weapon WeaponType
	Amount int
}

// StartZone begins the run when the player is in the READY phase.
type StartZone struct{}

// CheckpointZone records a split and moves the respawn anchor when hit in
// index order while the run is RUNNING.
type CheckpointZone struct {
	Index int
	Pos   mgl32.Vec3
	Yaw   float32
}

// FinishZone ends the run when it is RUNNING.
type FinishZone struct{}

func (BoostPad) zoneEvent()       {}
func (LaunchPad) zoneEvent()      {}
func (SpeedGate) zoneEvent()      {}
func (AmmoPickup) zoneEvent()     {}
func (StartZone) zoneEvent()      {}
func (CheckpointZone) zoneEvent() {}
func (FinishZone) zoneEvent()     {}
