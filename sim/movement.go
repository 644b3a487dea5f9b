package sim

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/strafesim/strafesim/game"
)

// The movement model is a set of total functions over a velocity vector. None
// of them panic; a zero wish direction is a valid no-op input.

// ApplyFriction bleeds horizontal speed while grounded. Horizontal speed below
// SpeedDeadzone snaps to a full stop; the vertical component is untouched.
func ApplyFriction(vel mgl32.Vec3, friction, stopSpeed, dt float32) mgl32.Vec3 {
	speed := game.HorizontalSpeed(vel)
	if speed < SpeedDeadzone {
		vel[0] = 0
		vel[2] = 0
		return vel
	}

	drop := math32.Max(speed, stopSpeed) * friction * dt
	scale := math32.Max(speed-drop, 0) / speed
	vel[0] *= scale
	vel[2] *= scale
	return vel
}

// ApplyGroundAcceleration accelerates along wishDir up to maxSpeed. Projection
// against the current velocity means it can never push speed past maxSpeed when
// wishDir is parallel to the velocity.
func ApplyGroundAcceleration(vel, wishDir mgl32.Vec3, maxSpeed, accel, dt float32) mgl32.Vec3 {
	projection := vel.Dot(wishDir)
	addSpeed := maxSpeed - projection
	if addSpeed <= 0 {
		return vel
	}

	accelSpeed := math32.Min(accel*maxSpeed*dt, addSpeed)
	return vel.Add(wishDir.Mul(accelSpeed))
}

// ApplyAirAcceleration is the same shape as ground acceleration with the wish
// speed clamped to the air cap. The projection is recomputed against the
// current velocity every tick, so repeated strafing perpendicular to the
// velocity keeps adding speed past the ground cap. That is the air-strafe
// mechanic; do not cap the result.
func ApplyAirAcceleration(vel, wishDir mgl32.Vec3, maxSpeed, accel, speedCap, dt float32) mgl32.Vec3 {
	wishSpeed := math32.Min(maxSpeed, speedCap)
	projection := vel.Dot(wishDir)
	addSpeed := wishSpeed - projection
	if addSpeed <= 0 {
		return vel
	}

	accelSpeed := math32.Min(accel*wishSpeed*dt, addSpeed)
	return vel.Add(wishDir.Mul(accelSpeed))
}

// WishDir rotates the input-space movement direction by the given yaw and
// normalizes it. No input yields the zero vector.
func WishDir(forward, backward, left, right bool, yaw float32) mgl32.Vec3 {
	var fwd, side float32
	if forward {
		fwd++
	}
	if backward {
		fwd--
	}
	if right {
		side++
	}
	if left {
		side--
	}
	if fwd == 0 && side == 0 {
		return mgl32.Vec3{}
	}

	wish := game.FlatForward(yaw).Mul(fwd).Add(game.FlatRight(yaw).Mul(side))
	return game.SafeNormalize(wish)
}
