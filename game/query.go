package game

import "github.com/go-gl/mathgl/mgl32"

// RayHit is the result of a ray cast against level geometry.
type RayHit struct {
	Position mgl32.Vec3
	Normal   mgl32.Vec3
	Distance float32
}

// MoveResult is the outcome of a move-and-slide query: the corrected translation
// that was actually possible, whether the mover ended up standing on ground, and
// the normals of every surface the mover was clipped against.
type MoveResult struct {
	Movement mgl32.Vec3
	Grounded bool
	Normals  []mgl32.Vec3
}
