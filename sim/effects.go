package sim

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/strafesim/strafesim/worker"
)

// SoundID identifies an audio cue request. Playback is entirely the host's
// problem; the core only asks.
type SoundID uint8

const (
	SoundAssaultFire SoundID = iota
	SoundSniperFire
	SoundShotgunFire
	SoundRocketFire
	SoundGrenadeThrow
	SoundKnifeSwing
	SoundPlasmaLoop
	SoundExplosion
	SoundGrappleAttach
	SoundGrappleRelease
	SoundJump
	SoundWallJump
	SoundCheckpoint
	SoundRespawn
	SoundFinish
)

// EffectSink receives fire-and-forget side-effect requests from the tick.
// Implementations must never block and must never feed anything back into the
// simulation; a failing sink cannot affect simulation state.
type EffectSink interface {
	PlaySound(id SoundID, gain float32)
	SpawnExplosion(pos mgl32.Vec3, color mgl32.Vec3, scale float32)
	CameraShake(intensity float32)
}

// NopSink discards all effect requests.
type NopSink struct{}

func (NopSink) PlaySound(SoundID, float32)                     {}
func (NopSink) SpawnExplosion(mgl32.Vec3, mgl32.Vec3, float32) {}
func (NopSink) CameraShake(float32)                            {}

// AsyncSink forwards effect requests to the wrapped sink on the worker pool so
// a slow or panicking receiver never stalls the tick.
type AsyncSink struct {
	Sink EffectSink
}

func (a AsyncSink) PlaySound(id SoundID, gain float32) {
	worker.Submit(func() { a.Sink.PlaySound(id, gain) })
}

func (a AsyncSink) SpawnExplosion(pos mgl32.Vec3, color mgl32.Vec3, scale float32) {
	worker.Submit(func() { a.Sink.SpawnExplosion(pos, color, scale) })
}

func (a AsyncSink) CameraShake(intensity float32) {
	worker.Submit(func() { a.Sink.CameraShake(intensity) })
}
