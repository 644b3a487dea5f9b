package world

import (
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/ethaniccc/float32-cube/cube/trace"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/strafesim/strafesim/game"
)

// World is a static level built from axis-aligned colliders. It implements the
// geometry queries the simulation core needs: ray casts and move-and-slide.
type World struct {
	colliders []cube.BBox
}

// New returns an empty world.
func New() *World {
	return &World{}
}

// AddCollider adds a static level collider.
func (w *World) AddCollider(bb cube.BBox) {
	w.colliders = append(w.colliders, bb)
}

// AddBox is a convenience wrapper building a collider from min/max corners.
func (w *World) AddBox(minX, minY, minZ, maxX, maxY, maxZ float32) {
	w.AddCollider(cube.Box(minX, minY, minZ, maxX, maxY, maxZ))
}

// NearbyBBoxes returns all colliders intersecting the given bounding box.
func (w *World) NearbyBBoxes(bb cube.BBox) []cube.BBox {
	boxes := make([]cube.BBox, 0, 8)
	for _, c := range w.colliders {
		if c.IntersectsWith(bb) {
			boxes = append(boxes, c)
		}
	}
	return boxes
}

// CastRay casts a ray against all level colliders and returns the closest hit.
// Zero-length directions and non-positive distances report no hit.
func (w *World) CastRay(origin, dir mgl32.Vec3, maxDist float32) (game.RayHit, bool) {
	dir = game.SafeNormalize(dir)
	if dir == (mgl32.Vec3{}) || maxDist <= 0 {
		return game.RayHit{}, false
	}

	end := origin.Add(dir.Mul(maxDist))
	closest := game.RayHit{Distance: maxDist + 1}
	found := false

	for _, c := range w.colliders {
		hit, ok := trace.BBoxIntercept(c, origin, end)
		if !ok {
			continue
		}
		dist := hit.Position().Sub(origin).Len()
		if dist < closest.Distance {
			closest = game.RayHit{
				Position: hit.Position(),
				Normal:   faceNormal(hit.Face()),
				Distance: dist,
			}
			found = true
		}
	}
	return closest, found
}

// MoveAndSlide clips the desired translation of the given bounding box against
// the level, axis by axis (Y first, then X and Z), and reports the corrected
// movement, whether the mover landed on ground, and the contact normals.
func (w *World) MoveAndSlide(bb cube.BBox, translation mgl32.Vec3) game.MoveResult {
	nearby := w.NearbyBBoxes(bb.Extend(translation))
	result := game.MoveResult{Movement: translation}
	if len(nearby) == 0 {
		return result
	}

	moved := bb
	dy := translation.Y()
	for _, box := range nearby {
		dy = axisOffset(box, moved, dy, axisY)
	}
	moved = moved.Translate(mgl32.Vec3{0, dy, 0})

	dx := translation.X()
	for _, box := range nearby {
		dx = axisOffset(box, moved, dx, axisX)
	}
	moved = moved.Translate(mgl32.Vec3{dx, 0, 0})

	dz := translation.Z()
	for _, box := range nearby {
		dz = axisOffset(box, moved, dz, axisZ)
	}

	if dy != translation.Y() {
		if translation.Y() < 0 {
			result.Grounded = true
			result.Normals = append(result.Normals, mgl32.Vec3{0, 1, 0})
		} else {
			result.Normals = append(result.Normals, mgl32.Vec3{0, -1, 0})
		}
	}
	if dx != translation.X() {
		if translation.X() > 0 {
			result.Normals = append(result.Normals, mgl32.Vec3{-1, 0, 0})
		} else {
			result.Normals = append(result.Normals, mgl32.Vec3{1, 0, 0})
		}
	}
	if dz != translation.Z() {
		if translation.Z() > 0 {
			result.Normals = append(result.Normals, mgl32.Vec3{0, 0, -1})
		} else {
			result.Normals = append(result.Normals, mgl32.Vec3{0, 0, 1})
		}
	}

	result.Movement = mgl32.Vec3{dx, dy, dz}
	return result
}

func faceNormal(f cube.Face) mgl32.Vec3 {
	switch f {
	case cube.FaceDown:
		return mgl32.Vec3{0, -1, 0}
	case cube.FaceUp:
		return mgl32.Vec3{0, 1, 0}
	case cube.FaceNorth:
		return mgl32.Vec3{0, 0, -1}
	case cube.FaceSouth:
		return mgl32.Vec3{0, 0, 1}
	case cube.FaceWest:
		return mgl32.Vec3{-1, 0, 0}
	default:
		return mgl32.Vec3{1, 0, 0}
	}
}
