package sim

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func startTestRun(t *testing.T, s *Simulation) {
	t.Helper()
	if err := s.PushZoneEvent(StartZone{}); err != nil {
		t.Fatal(err)
	}
	s.Tick(&InputSnapshot{})
	if s.Run.Phase != RunRunning {
		t.Fatalf("phase = %v after start zone, want running", s.Run.Phase)
	}
}

func TestStartZoneOnlyFiresFromReady(t *testing.T) {
	s := testSim(t)
	settle(s)
	startTestRun(t, s)

	start := s.Run.StartTick
	if err := s.PushZoneEvent(StartZone{}); err != nil {
		t.Fatal(err)
	}
	s.Tick(&InputSnapshot{})
	if s.Run.StartTick != start {
		t.Fatal("re-entering the start zone restarted the clock")
	}
}

func TestCheckpointsEnforceOrder(t *testing.T) {
	s := testSim(t)
	settle(s)
	startTestRun(t, s)

	// Out of order: checkpoint 1 before 0 must be ignored.
	if err := s.PushZoneEvent(CheckpointZone{Index: 1, Pos: mgl32.Vec3{0, 0, 20}}); err != nil {
		t.Fatal(err)
	}
	s.Tick(&InputSnapshot{})
	if len(s.Run.Splits) != 0 {
		t.Fatalf("out-of-order checkpoint recorded a split: %+v", s.Run.Splits)
	}

	if err := s.PushZoneEvent(CheckpointZone{Index: 0, Pos: mgl32.Vec3{0, 0, 10}}); err != nil {
		t.Fatal(err)
	}
	s.Tick(&InputSnapshot{})
	if len(s.Run.Splits) != 1 || s.Run.Splits[0].Index != 0 {
		t.Fatalf("splits = %+v, want exactly checkpoint 0", s.Run.Splits)
	}

	// Repeating checkpoint 0 is a no-op.
	if err := s.PushZoneEvent(CheckpointZone{Index: 0, Pos: mgl32.Vec3{0, 0, 10}}); err != nil {
		t.Fatal(err)
	}
	s.Tick(&InputSnapshot{})
	if len(s.Run.Splits) != 1 {
		t.Fatalf("repeated checkpoint recorded again: %+v", s.Run.Splits)
	}
	if s.Run.Anchor.Pos != (mgl32.Vec3{0, 0, 10}) {
		t.Fatalf("respawn anchor = %v, want checkpoint position", s.Run.Anchor.Pos)
	}
}

func TestFinishFreezesClock(t *testing.T) {
	s := testSim(t)
	settle(s)
	startTestRun(t, s)

	for i := 0; i < 64; i++ {
		s.Tick(&InputSnapshot{})
	}
	if err := s.PushZoneEvent(FinishZone{}); err != nil {
		t.Fatal(err)
	}
	s.Tick(&InputSnapshot{})
	if s.Run.Phase != RunFinished {
		t.Fatalf("phase = %v, want finished", s.Run.Phase)
	}

	frozen := s.ElapsedMs()
	for i := 0; i < 64; i++ {
		s.Tick(&InputSnapshot{})
	}
	if s.ElapsedMs() != frozen {
		t.Fatalf("clock moved after finish: %d -> %d", frozen, s.ElapsedMs())
	}
}

func TestFinishWithoutRunIsNoOp(t *testing.T) {
	s := testSim(t)
	settle(s)
	if err := s.PushZoneEvent(FinishZone{}); err != nil {
		t.Fatal(err)
	}
	s.Tick(&InputSnapshot{})
	if s.Run.Phase != RunReady {
		t.Fatalf("finish zone outside a run changed phase to %v", s.Run.Phase)
	}
}

func TestKillZoneRespawnConsumedOnce(t *testing.T) {
	s := testSim(t)
	settle(s)

	s.Player.Pos = mgl32.Vec3{0, s.conf.Run.KillZoneY - 10, 0}
	s.Player.Vel = mgl32.Vec3{5, -30, 5}
	s.Tick(&InputSnapshot{})

	res := s.Tick(&InputSnapshot{})
	if res.Outcome != TickOutcomeRespawn {
		t.Fatalf("outcome = %v, want respawn", res.Outcome)
	}
	if s.Player.Pos != s.Run.Anchor.Pos {
		t.Fatalf("respawned at %v, want anchor %v", s.Player.Pos, s.Run.Anchor.Pos)
	}
	if s.Player.Vel != (mgl32.Vec3{}) {
		t.Fatalf("respawn kept velocity %v", s.Player.Vel)
	}
	if s.Player.GraceTicks == 0 {
		t.Fatal("respawn did not start the grace window")
	}

	if next := s.Tick(&InputSnapshot{}); next.Outcome == TickOutcomeRespawn {
		t.Fatal("respawn consumed twice")
	}
}

func TestGraceSuppressesGravity(t *testing.T) {
	s := testSim(t)
	settle(s)
	s.RequestRespawn()
	s.Tick(&InputSnapshot{})

	for i := 0; i < s.conf.Run.RespawnGraceTicks-1; i++ {
		s.Tick(&InputSnapshot{})
		if s.Player.Vel != (mgl32.Vec3{}) {
			t.Fatalf("tick %d of grace: velocity %v, want zero", i, s.Player.Vel)
		}
	}
}

func TestResetRunReturnsToSpawn(t *testing.T) {
	s := testSim(t)
	settle(s)
	startTestRun(t, s)
	s.Player.Pos = mgl32.Vec3{4, 0, 40}

	s.ResetRun()
	s.Tick(&InputSnapshot{})
	if s.Run.Phase != RunReady {
		t.Fatalf("phase = %v after reset, want ready", s.Run.Phase)
	}
	if s.Player.Pos != s.spawnPos {
		t.Fatalf("player at %v after reset, want spawn %v", s.Player.Pos, s.spawnPos)
	}
}

func TestRunStatsAccumulate(t *testing.T) {
	s := testSim(t)
	settle(s)
	startTestRun(t, s)

	in := &InputSnapshot{Forward: true}
	for i := 0; i < 256; i++ {
		s.Tick(in)
	}
	st := s.Run.Stats
	if st.MaxSpeed <= 0 || st.Distance <= 0 {
		t.Fatalf("stats did not accumulate: %+v", st)
	}
	if st.MaxSpeed > s.conf.Movement.GroundMaxSpeed+0.01 {
		t.Fatalf("ground running exceeded max speed: %v", st.MaxSpeed)
	}

	if err := s.PushZoneEvent(FinishZone{}); err != nil {
		t.Fatal(err)
	}
	s.Tick(in)
	fin := s.Run.Stats
	if fin.AvgSpeed <= 0 || fin.AvgSpeed > fin.MaxSpeed+0.01 {
		t.Fatalf("average speed %v not finalized sensibly (max %v)", fin.AvgSpeed, fin.MaxSpeed)
	}
	if fin.MedianSpeed <= 0 {
		t.Fatalf("median speed %v not finalized", fin.MedianSpeed)
	}
	// The run ramps from standstill to max speed, so the samples must spread.
	if fin.SpeedStdDev <= 0 || fin.SpeedStdDev > fin.MaxSpeed {
		t.Fatalf("speed deviation %v not finalized sensibly (max %v)", fin.SpeedStdDev, fin.MaxSpeed)
	}
}
