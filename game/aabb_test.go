package game

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestAABBFromDimensions(t *testing.T) {
	bb := AABBFromDimensions(0.8, 1.8)
	if bb.Min() != (mgl32.Vec3{-0.4, 0, -0.4}) || bb.Max() != (mgl32.Vec3{0.4, 1.8, 0.4}) {
		t.Fatalf("box = %v .. %v", bb.Min(), bb.Max())
	}
}

func TestClosestPointToBBoxClampsEachAxis(t *testing.T) {
	bb := AABBFromDimensions(2, 2)
	got := ClosestPointToBBox(mgl32.Vec3{5, -3, 0.5}, bb)
	if got != (mgl32.Vec3{1, 0, 0.5}) {
		t.Fatalf("closest point = %v, want {1 0 0.5}", got)
	}
}

func TestAABBVectorDistance(t *testing.T) {
	bb := AABBFromDimensions(2, 2)

	if d := AABBVectorDistance(bb, mgl32.Vec3{0, 1, 0}); d != 0 {
		t.Fatalf("distance from an interior point = %v, want 0", d)
	}
	if d := AABBVectorDistance(bb, mgl32.Vec3{4, 1, 0}); d != 3 {
		t.Fatalf("face distance = %v, want 3", d)
	}
	// Corner distance: 3 along x, 4 below the base.
	if d := AABBVectorDistance(bb, mgl32.Vec3{4, -4, 0}); d != 5 {
		t.Fatalf("corner distance = %v, want 5", d)
	}
}
