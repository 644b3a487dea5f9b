package sim

const (
	// TicksPerSecond is the fixed simulation rate. The tick is driven by the
	// host scheduler; the core never sleeps or spins on its own.
	TicksPerSecond = 128
	TickDelta      = float32(1.0) / TicksPerSecond

	// DefaultHUDInterval publishes the HUD snapshot every 4th tick (32 Hz).
	DefaultHUDInterval = 4

	// SpeedDeadzone is the horizontal speed under which friction snaps the
	// player to a full stop.
	SpeedDeadzone = float32(0.1)

	// WallNormalMaxY is the |Y| bound under which a contact normal counts as a
	// near-vertical wall.
	WallNormalMaxY = float32(0.3)
	// WallSideMinDot classifies a wall contact as left or right of the player.
	WallSideMinDot = float32(0.3)

	// SweepEpsilon pads projectile sweep rays so a surface exactly at the
	// integration boundary is still hit.
	SweepEpsilon = float32(0.01)

	// WallStickSpeed is the small into-wall velocity held during a wall run so
	// the contact regenerates every tick. The controller clips it back out.
	WallStickSpeed = float32(1.0)

	// CrouchSpeedScale caps ground wish speed while crouched and not sliding.
	CrouchSpeedScale = float32(0.5)

	// JumpTakeoffTicks is the window right after a jump during which ceiling
	// contact does not zero upward velocity.
	JumpTakeoffTicks = 3

	// GroundSnapDist is how far below the feet the grounded probe reaches. A
	// grounded move with no downward component never clips the floor on its
	// own, so the probe is what keeps grounded state stable on flat ground.
	GroundSnapDist = float32(0.05)

	// MuzzleOffset pushes projectile spawn positions forward of the eye.
	MuzzleOffset = float32(0.5)

	PitchLimit = float32(1.55)

	// ZoomSensitivityScale reduces mouse sensitivity while the sniper scope is
	// held up.
	ZoomSensitivityScale = float32(0.4)
)
