package game

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Epsilon is the threshold under which a length or speed is treated as zero to
// avoid NaN propagation through normalization and division.
const Epsilon = float32(1e-5)

// DirectionVector returns the view direction for the given yaw and pitch, both
// in radians. Pitch is positive looking down.
func DirectionVector(yaw, pitch float32) mgl32.Vec3 {
	m := math32.Cos(pitch)

	return mgl32.Vec3{
		-m * math32.Sin(yaw),
		-math32.Sin(pitch),
		m * math32.Cos(yaw),
	}
}

// FlatForward returns the horizontal forward vector for the given yaw in radians.
func FlatForward(yaw float32) mgl32.Vec3 {
	return mgl32.Vec3{-math32.Sin(yaw), 0, math32.Cos(yaw)}
}

// FlatRight returns the horizontal right vector for the given yaw in radians.
func FlatRight(yaw float32) mgl32.Vec3 {
	return mgl32.Vec3{math32.Cos(yaw), 0, math32.Sin(yaw)}
}

// SafeNormalize normalizes the given vector, returning the zero vector if its
// length is below Epsilon instead of dividing by near-zero.
func SafeNormalize(v mgl32.Vec3) mgl32.Vec3 {
	l := v.Len()
	if l < Epsilon {
		return mgl32.Vec3{}
	}
	return v.Mul(1 / l)
}

// HorizontalSpeed returns the speed of the vector on the XZ plane.
func HorizontalSpeed(v mgl32.Vec3) float32 {
	return math32.Sqrt(Vec3HzDistSqr(v))
}

// Vec3HzDistSqr returns the squared horizontal distance in a vector.
func Vec3HzDistSqr(v mgl32.Vec3) float32 {
	return v.X()*v.X() + v.Z()*v.Z()
}

// ClampFloat clamps the given value to the given range.
func ClampFloat(num, min, max float32) float32 {
	if num < min {
		return min
	}
	return math32.Min(num, max)
}

// Round32 will round a float32 to a given precision.
func Round32(val float32, precision int) float32 {
	pwr := math32.Pow(10, float32(precision))
	return math32.Round(val*pwr) / pwr
}

// Float32ApproxEq determines whether two floating point numbers are close enough
// to each other by a threshold of 1e-5.
func Float32ApproxEq(a, b float32) bool {
	return math32.Abs(a-b) <= 1e-5
}

// Reflect mirrors v about the plane with the given unit normal.
func Reflect(v, normal mgl32.Vec3) mgl32.Vec3 {
	return v.Sub(normal.Mul(2 * v.Dot(normal)))
}

// WrapRadians wraps an angle to the (-pi, pi] range.
func WrapRadians(angle float32) float32 {
	wrapped := math32.Mod(angle, 2*math32.Pi)
	if wrapped > math32.Pi {
		wrapped -= 2 * math32.Pi
	} else if wrapped <= -math32.Pi {
		wrapped += 2 * math32.Pi
	}
	return wrapped
}
