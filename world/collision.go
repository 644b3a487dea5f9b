package world

import (
	"github.com/chewxy/math32"
	"github.com/ethaniccc/float32-cube/cube"
)

const (
	axisX = 0
	axisY = 1
	axisZ = 2

	// contactEpsilon kills float jitter on faces that are flush with each other.
	contactEpsilon = float32(1e-7)
)

// axisOffset clips the movement delta of a moving bounding box along one axis
// against a stationary collider. The other two axes must overlap for the
// collider to be in the way at all.
func axisOffset(stationary, moving cube.BBox, delta float32, axis int) float32 {
	if delta == 0 || bbHasZeroVolume(stationary) {
		return delta
	}

	for i := range 3 {
		if i == axis {
			continue
		}
		if stationary.Min()[i] >= moving.Max()[i]-contactEpsilon ||
			stationary.Max()[i] <= moving.Min()[i]+contactEpsilon {
			return delta
		}
	}

	if delta > 0 && stationary.Min()[axis] >= moving.Max()[axis]-contactEpsilon {
		gap := stationary.Min()[axis] - moving.Max()[axis]
		if math32.Abs(gap) <= contactEpsilon {
			gap = 0
		}
		if gap < delta {
			delta = gap
		}
	} else if delta < 0 && stationary.Max()[axis] <= moving.Min()[axis]+contactEpsilon {
		gap := stationary.Max()[axis] - moving.Min()[axis]
		if math32.Abs(gap) <= contactEpsilon {
			gap = 0
		}
		if gap > delta {
			delta = gap
		}
	}
	return delta
}

func bbHasZeroVolume(bb cube.BBox) bool {
	return bb.Min() == bb.Max()
}
