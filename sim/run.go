package sim

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/strafesim/strafesim/game"
)

// RunPhase is the run lifecycle. Transitions only go forward until a reset.
type RunPhase uint8

const (
	RunReady RunPhase = iota
	RunRunning
	RunFinished
)

// String ...
func (p RunPhase) String() string {
	switch p {
	case RunReady:
		return "ready"
	case RunRunning:
		return "running"
	case RunFinished:
		return "finished"
	}
	return "unknown"
}

// Split records the elapsed time at one checkpoint.
type Split struct {
	Index     int
	ElapsedMs int64
}

// RespawnAnchor is where the player reappears after death: the start pad, or
// the last checkpoint reached.
type RespawnAnchor struct {
	Pos mgl32.Vec3
	Yaw float32
}

// RunStats accumulates while a run is live. Speed is sampled at the HUD
// cadence; the aggregates are filled in when the run finishes.
type RunStats struct {
	MaxSpeed    float32
	AvgSpeed    float32
	MedianSpeed float32
	SpeedStdDev float32
	Distance    float32
	Jumps       int

	speedSamples []float64
}

// RunState is the timer, checkpoint progression and statistics for the
// current attempt.
type RunState struct {
	Phase          RunPhase
	StartTick      uint64
	FinishTick     uint64
	NextCheckpoint int
	Splits         []Split
	Anchor         RespawnAnchor
	Stats          RunStats

	respawnPending bool
}

func newRunState(spawnPos mgl32.Vec3, spawnYaw float32) RunState {
	return RunState{
		Anchor: RespawnAnchor{Pos: spawnPos, Yaw: spawnYaw},
	}
}

// ElapsedMs returns the run clock in milliseconds: zero while ready, frozen
// once finished.
func (s *Simulation) ElapsedMs() int64 {
	switch s.Run.Phase {
	case RunRunning:
		return ticksToMs(s.tick - s.Run.StartTick)
	case RunFinished:
		return ticksToMs(s.Run.FinishTick - s.Run.StartTick)
	}
	return 0
}

func ticksToMs(ticks uint64) int64 {
	return int64(ticks) * 1000 / TicksPerSecond
}

// startRun arms the timer. Only fires from ready; re-entering the start zone
// mid-run does nothing.
func (s *Simulation) startRun() {
	if s.Run.Phase != RunReady {
		return
	}
	s.Run.Phase = RunRunning
	s.Run.StartTick = s.tick
	s.Run.NextCheckpoint = 0
	s.Run.Splits = s.Run.Splits[:0]
	s.Run.Stats = RunStats{}
	s.dbg("run started at tick %d", s.tick)
}

// hitCheckpoint records a split and moves the respawn anchor. Checkpoints
// reached out of order, repeated, or outside a live run are silent no-ops.
func (s *Simulation) hitCheckpoint(index int, pos mgl32.Vec3, yaw float32) {
	if s.Run.Phase != RunRunning || index != s.Run.NextCheckpoint {
		return
	}
	s.Run.Splits = append(s.Run.Splits, Split{Index: index, ElapsedMs: s.ElapsedMs()})
	s.Run.NextCheckpoint++
	s.Run.Anchor = RespawnAnchor{Pos: pos, Yaw: yaw}
	s.effects.PlaySound(SoundCheckpoint, 1)
	s.dbg("checkpoint %d at %dms", index, s.ElapsedMs())
}

// finishRun freezes the clock. Ignored unless a run is live.
func (s *Simulation) finishRun() {
	if s.Run.Phase != RunRunning {
		return
	}
	s.Run.FinishTick = s.tick
	s.Run.Phase = RunFinished
	s.finalizeStats()
	s.effects.PlaySound(SoundFinish, 1)
	s.dbg("run finished in %dms", s.ElapsedMs())
}

// ResetRun puts the attempt back to ready and teleports the player to the
// original spawn. Hosts call this for restart binds.
func (s *Simulation) ResetRun() {
	s.Run = newRunState(s.spawnPos, s.spawnYaw)
	s.RequestRespawn()
}

// RequestRespawn queues a respawn; it is consumed at the top of the next tick.
func (s *Simulation) RequestRespawn() {
	s.Run.respawnPending = true
}

// consumeRespawn applies a pending respawn exactly once: position and view
// snap to the anchor, all motion state clears, and the grace window starts.
func (s *Simulation) consumeRespawn() bool {
	if !s.Run.respawnPending {
		return false
	}
	s.Run.respawnPending = false

	p := &s.Player
	p.Pos = s.Run.Anchor.Pos
	p.Yaw = s.Run.Anchor.Yaw
	p.Pitch = 0
	p.Vel = mgl32.Vec3{}
	p.Grounded = false
	p.Crouching = false
	p.Sliding = false
	p.Jumping = false
	p.SlideTicks = 0
	p.slideLatch = false
	p.JumpBufferTicks = 0
	p.CoyoteTicks = 0
	p.JumpHoldTicks = 0
	p.HalfHeight = s.conf.Movement.StandHeight / 2
	p.WallRun = WallRunState{}
	p.Contacts.reset()
	p.GraceTicks = s.conf.Run.RespawnGraceTicks

	c := &s.Combat
	c.Health = s.conf.Combat.HealthMax
	c.Grapple = GrappleState{}
	c.KnifeLungeTicks = 0
	c.PlasmaActive = false
	c.plasmaDrain = 0
	c.Zoomed = false

	s.prevPos = p.Pos
	s.effects.PlaySound(SoundRespawn, 1)
	return true
}

// updateRun checks the kill zone and accumulates run statistics after
// movement has resolved for the tick.
func (s *Simulation) updateRun(jumped bool) {
	if s.Player.Pos.Y() < s.conf.Run.KillZoneY {
		s.RequestRespawn()
	}

	if s.Run.Phase != RunRunning {
		s.prevPos = s.Player.Pos
		return
	}

	st := &s.Run.Stats
	speed := s.Player.HorizontalSpeed()
	st.MaxSpeed = math32.Max(st.MaxSpeed, speed)
	if s.tick%uint64(s.hudInterval) == 0 {
		st.speedSamples = append(st.speedSamples, float64(speed))
	}
	st.Distance += s.Player.Pos.Sub(s.prevPos).Len()
	if jumped {
		st.Jumps++
	}
	s.prevPos = s.Player.Pos
}

func (s *Simulation) finalizeStats() {
	st := &s.Run.Stats
	st.AvgSpeed = float32(game.Mean(st.speedSamples))
	st.MedianSpeed = float32(game.Median(st.speedSamples))
	st.SpeedStdDev = float32(game.StandardDeviation(st.speedSamples))
	st.speedSamples = nil
}
