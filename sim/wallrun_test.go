package sim

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/strafesim/strafesim/config"
	"github.com/strafesim/strafesim/world"
)

// wallSim spawns the player airborne next to a tall wall on their left while
// they face +Z.
func wallSim(t *testing.T) *Simulation {
	t.Helper()
	w := world.New()
	w.AddBox(-2, 0, -200, -1, 40, 200)
	s := New(Options{
		Conf:     config.Default(),
		World:    w,
		SpawnPos: mgl32.Vec3{-0.55, 8, 0},
	})
	s.Player.Vel = mgl32.Vec3{-1, 0, 12}
	return s
}

func runIntoWall(s *Simulation, ticks int) {
	in := &InputSnapshot{Forward: true, Left: true}
	for i := 0; i < ticks; i++ {
		s.Tick(in)
		if s.Player.WallRun.Active {
			return
		}
	}
}

func TestWallRunStartsOnLeftWall(t *testing.T) {
	s := wallSim(t)
	runIntoWall(s, 40)
	if !s.Player.WallRun.Active {
		t.Fatalf("wall run never started, pos %v contacts %+v", s.Player.Pos, s.Player.Contacts)
	}
	if s.Player.WallRun.Side != WallSideLeft {
		t.Fatalf("side = %v, want left", s.Player.WallRun.Side)
	}
	// Entry clears downward velocity; scaled gravity still pulls on the same
	// tick, so allow exactly that much.
	if s.Player.Vel.Y() < -s.conf.Movement.Gravity*TickDelta*s.conf.WallRun.GravityScale-0.001 {
		t.Fatalf("wall run entry kept downward velocity %v", s.Player.Vel)
	}
}

func TestWallRunScalesGravity(t *testing.T) {
	s := wallSim(t)
	runIntoWall(s, 40)
	if !s.Player.WallRun.Active {
		t.Fatal("wall run never started")
	}

	in := &InputSnapshot{Forward: true, Left: true}
	before := s.Player.Vel.Y()
	s.Tick(in)
	perTick := s.conf.Movement.Gravity * TickDelta
	if fall := before - s.Player.Vel.Y(); fall > perTick*s.conf.WallRun.GravityScale+0.001 {
		t.Fatalf("fell %v in one wall-run tick, want at most the scaled gravity %v",
			fall, perTick*s.conf.WallRun.GravityScale)
	}
}

func TestWallRunEndsWhenKeyReleased(t *testing.T) {
	s := wallSim(t)
	runIntoWall(s, 40)
	if !s.Player.WallRun.Active {
		t.Fatal("wall run never started")
	}

	s.Tick(&InputSnapshot{Forward: true})
	if s.Player.WallRun.Active {
		t.Fatal("wall run survived the strafe key release")
	}
	if s.Player.WallRun.Cooldown == 0 {
		t.Fatal("ending a wall run did not start the re-entry cooldown")
	}
}

func TestWallJumpKicksAwayAndUp(t *testing.T) {
	s := wallSim(t)
	runIntoWall(s, 40)
	if !s.Player.WallRun.Active {
		t.Fatal("wall run never started")
	}

	s.Tick(&InputSnapshot{Forward: true, Left: true, Jump: true})
	if s.Player.WallRun.Active {
		t.Fatal("wall jump did not end the wall run")
	}
	// The wall is on the left, so the kick goes toward +X.
	if s.Player.Vel.X() <= 0 {
		t.Fatalf("wall jump did not push away from the wall: %v", s.Player.Vel)
	}
	// Gravity already pulled on the jump tick, so allow one tick's worth.
	if s.Player.Vel.Y() < s.conf.WallRun.JumpUpImpulse-s.conf.Movement.Gravity*TickDelta-0.01 {
		t.Fatalf("wall jump vertical velocity %v, want at least %v",
			s.Player.Vel.Y(), s.conf.WallRun.JumpUpImpulse)
	}
}

// TestGroundedAndWallRunNeverOverlap drives a full run-jump-wallrun-land
// sequence and checks on every tick that the two states exclude each other,
// including the tick the player lands while still on the wall.
func TestGroundedAndWallRunNeverOverlap(t *testing.T) {
	w := world.New()
	w.AddBox(-50, -1, -50, 50, 0, 300)
	w.AddBox(-2, 0, -50, -1, 40, 300)
	s := New(Options{
		Conf:     config.Default(),
		World:    w,
		SpawnPos: mgl32.Vec3{-0.2, 0.5, 0},
	})

	sawWallRun := false
	landedAfter := false
	for tick := 1; tick <= 400; tick++ {
		in := &InputSnapshot{}
		switch {
		case tick <= 40:
			in.Forward = true
		case tick == 41:
			in.Forward = true
			in.Jump = true
		default:
			in.Left = true
		}

		res := s.Tick(in)
		if res.Grounded && res.WallRunning {
			t.Fatalf("tick %d: grounded and wall-running at once", tick)
		}
		if s.Player.Grounded && s.Player.WallRun.Active {
			t.Fatalf("tick %d: state flags grounded and wall-running at once", tick)
		}
		if res.WallRunning {
			sawWallRun = true
		}
		if sawWallRun && res.Grounded {
			landedAfter = true
		}
	}
	if !sawWallRun {
		t.Fatal("the sequence never entered a wall run")
	}
	if !landedAfter {
		t.Fatal("the sequence never landed after the wall run")
	}
}

func TestWallRunRequiresSpeed(t *testing.T) {
	s := wallSim(t)
	s.Player.Vel = mgl32.Vec3{-1, 0, 1}
	in := &InputSnapshot{Forward: true, Left: true}
	for i := 0; i < 20; i++ {
		s.Tick(in)
	}
	if s.Player.WallRun.Active {
		t.Fatal("wall run started below the minimum speed")
	}
}
