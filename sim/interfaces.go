package sim

import (
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/strafesim/strafesim/game"
)

// WorldProvider bridges the external physics engine for geometry queries. The
// queries are synchronous and expected to return within the tick budget; a
// query that never returns stalls the whole tick, which is a host bug rather
// than a recoverable error.
type WorldProvider interface {
	CastRay(origin, dir mgl32.Vec3, maxDist float32) (game.RayHit, bool)
	MoveAndSlide(bb cube.BBox, translation mgl32.Vec3) game.MoveResult
}
