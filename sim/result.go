package sim

import "github.com/go-gl/mathgl/mgl32"

// TickOutcome describes which path the simulation took for the current tick.
type TickOutcome uint8

const (
	TickOutcomeNormal TickOutcome = iota
	// TickOutcomeNoWorld means no geometry provider is attached yet; the tick
	// was a no-op. Expected during setup.
	TickOutcomeNoWorld
	// TickOutcomeRespawn means a queued respawn was consumed this tick.
	TickOutcomeRespawn
)

// TickResult captures the outcome of a single simulation tick.
type TickResult struct {
	Position mgl32.Vec3
	Velocity mgl32.Vec3

	Grounded    bool
	WallRunning bool

	Outcome TickOutcome

	// HUDUpdated is true on ticks where the throttled HUD snapshot was
	// republished.
	HUDUpdated bool
}
