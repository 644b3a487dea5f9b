package game

import (
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
)

// AABBFromDimensions returns a bounding box centered on the XZ origin from the
// given dimensions.
func AABBFromDimensions(width, height float32) cube.BBox {
	h := width / 2
	return cube.Box(
		-h, 0, -h,
		h, height, h,
	)
}

// AABBVectorDistance calculates the distance between an AABB and a vector,
// zero when the vector is inside the box.
func AABBVectorDistance(a cube.BBox, v mgl32.Vec3) float32 {
	return ClosestPointToBBox(v, a).Sub(v).Len()
}

// ClosestPointToBBox returns the point within the bounding box closest to the
// given point.
func ClosestPointToBBox(v mgl32.Vec3, bb cube.BBox) mgl32.Vec3 {
	return mgl32.Vec3{
		ClampFloat(v.X(), bb.Min().X(), bb.Max().X()),
		ClampFloat(v.Y(), bb.Min().Y(), bb.Max().Y()),
		ClampFloat(v.Z(), bb.Min().Z(), bb.Max().Z()),
	}
}
