package sim

import (
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/strafesim/strafesim/game"
)

// WallSide tells which side of the player a wall contact is on, relative to the
// player's right vector.
type WallSide uint8

const (
	WallSideNone WallSide = iota
	WallSideLeft
	WallSideRight
)

// WallRunState is the wall-run slice of PlayerState. It persists across ticks
// and resets on respawn.
type WallRunState struct {
	Active bool
	Ticks  int
	Normal mgl32.Vec3
	Side   WallSide
	// Cooldown blocks re-entry for a short window after a wall-run ends.
	Cooldown int
}

// WallContacts holds the near-vertical wall contacts detected by the character
// controller during the last move, used to seed wall-run detection next tick.
type WallContacts struct {
	Left        bool
	Right       bool
	LeftNormal  mgl32.Vec3
	RightNormal mgl32.Vec3
}

func (c *WallContacts) reset() {
	*c = WallContacts{}
}

// GrappleState tracks the single allowed active grapple.
type GrappleState struct {
	Active     bool
	Anchor     mgl32.Vec3
	RopeLength float32
}

// PlayerState is the movement state of the player capsule. It is owned
// exclusively by the simulation and mutated only inside the tick.
type PlayerState struct {
	Pos mgl32.Vec3
	Vel mgl32.Vec3

	Yaw   float32
	Pitch float32

	Grounded  bool
	Crouching bool
	Sliding   bool
	Jumping   bool

	JumpBufferTicks int
	CoyoteTicks     int
	JumpHoldTicks   int
	takeoffTicks    int
	SlideTicks      int

	// slideLatch blocks a new slide while crouch is still held from a slide
	// that already ran out; releasing the key re-arms it.
	slideLatch bool

	// HalfHeight is half the collider height; it toggles with crouch.
	HalfHeight float32

	WallRun  WallRunState
	Contacts WallContacts

	// GraceTicks suppresses gravity and physics queries briefly after respawn
	// so the collider re-registers without falling through geometry.
	GraceTicks int
}

// BoundingBox returns the player's collider translated to the current position.
// The position is the center of the capsule's footprint at foot level.
func (p *PlayerState) BoundingBox(width float32) cube.BBox {
	return game.AABBFromDimensions(width, p.HalfHeight*2).Translate(p.Pos)
}

// Center returns the middle of the player collider, used as the explosion
// knockback reference point.
func (p *PlayerState) Center() mgl32.Vec3 {
	return p.Pos.Add(mgl32.Vec3{0, p.HalfHeight, 0})
}

// AimDir returns the view direction for the current yaw and pitch.
func (p *PlayerState) AimDir() mgl32.Vec3 {
	return game.DirectionVector(p.Yaw, p.Pitch)
}

// HorizontalSpeed returns the player's speed on the XZ plane.
func (p *PlayerState) HorizontalSpeed() float32 {
	return game.HorizontalSpeed(p.Vel)
}
