package sim

// InputSnapshot represents a single tick's player input. It is produced by an
// external input collector once per tick; the tick consumes it read-only except
// for the edge-triggered fields, which it drains to zero after use.
type InputSnapshot struct {
	Forward  bool
	Backward bool
	Left     bool
	Right    bool

	Jump    bool
	Crouch  bool
	Fire    bool
	AltFire bool
	Grapple bool
	Reload  bool

	// WeaponSlot requests a direct swap to the given slot; zero means no
	// request. Drained after consumption.
	WeaponSlot int

	ScrollDelta float32
	MouseDeltaX float32
	MouseDeltaY float32
}

// drainEdges zeroes the edge-triggered fields once the tick has consumed them,
// so a host that reuses the snapshot across ticks does not replay them.
func (in *InputSnapshot) drainEdges() {
	in.MouseDeltaX = 0
	in.MouseDeltaY = 0
	in.ScrollDelta = 0
	in.WeaponSlot = 0
}
