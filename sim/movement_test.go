package sim

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/strafesim/strafesim/game"
)

func TestApplyFrictionDeadzoneSnapsToZero(t *testing.T) {
	vel := ApplyFriction(mgl32.Vec3{0.05, -3, 0.05}, 6, 2, TickDelta)
	if vel.X() != 0 || vel.Z() != 0 {
		t.Fatalf("expected horizontal stop, got %v", vel)
	}
	if vel.Y() != -3 {
		t.Fatalf("friction must not touch vertical velocity, got %v", vel)
	}
}

func TestApplyFrictionBleedsSpeed(t *testing.T) {
	vel := ApplyFriction(mgl32.Vec3{10, 0, 0}, 6, 2, TickDelta)
	// drop = 10 * 6 / 128
	want := float32(10 - 0.46875)
	if !game.Float32ApproxEq(vel.X(), want) {
		t.Fatalf("got %v, want x=%v", vel, want)
	}
}

func TestGroundAccelerationFromRest(t *testing.T) {
	vel := ApplyGroundAcceleration(mgl32.Vec3{}, mgl32.Vec3{0, 0, 1}, 10, 10, TickDelta)
	// accel * maxSpeed * dt = 100/128, exact in float32.
	if vel.Z() != 0.78125 {
		t.Fatalf("got %v, want z=0.78125", vel)
	}
}

func TestGroundAccelerationCapsAtMaxSpeed(t *testing.T) {
	vel := mgl32.Vec3{10, 0, 0}
	got := ApplyGroundAcceleration(vel, mgl32.Vec3{1, 0, 0}, 10, 10, TickDelta)
	if got != vel {
		t.Fatalf("at max speed the velocity must be unchanged, got %v", got)
	}
}

func TestAirAccelerationStrafesPastGroundCap(t *testing.T) {
	vel := mgl32.Vec3{10, 0, 0}
	prev := game.HorizontalSpeed(vel)
	// Wish perpendicular to the velocity, the way an air strafe does it.
	for i := 0; i < 10; i++ {
		vel = ApplyAirAcceleration(vel, game.SafeNormalize(mgl32.Vec3{-vel.Z(), 0, vel.X()}), 10, 80, 1.0, TickDelta)
		speed := game.HorizontalSpeed(vel)
		if speed <= prev {
			t.Fatalf("tick %d: speed %v did not grow past %v", i, speed, prev)
		}
		prev = speed
	}
	if prev <= 10 {
		t.Fatalf("air strafing never passed the ground cap, speed %v", prev)
	}
}

func TestAirAccelerationParallelIsCapped(t *testing.T) {
	vel := mgl32.Vec3{0, 0, 5}
	got := ApplyAirAcceleration(vel, mgl32.Vec3{0, 0, 1}, 10, 80, 1.0, TickDelta)
	// Projection already exceeds the air speed cap.
	if got != vel {
		t.Fatalf("parallel wish past the cap must be a no-op, got %v", got)
	}
}

func TestWishDirNormalizesDiagonals(t *testing.T) {
	dir := WishDir(true, false, false, true, 0)
	if !game.Float32ApproxEq(dir.Len(), 1) {
		t.Fatalf("diagonal wish dir not normalized: %v (len %v)", dir, dir.Len())
	}
	if WishDir(false, false, false, false, 0) != (mgl32.Vec3{}) {
		t.Fatal("no input must yield the zero vector")
	}
	if WishDir(true, true, true, true, 1.3) != (mgl32.Vec3{}) {
		t.Fatal("cancelling input must yield the zero vector")
	}
}
