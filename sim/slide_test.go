package sim

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func runUpToSpeed(s *Simulation) {
	in := &InputSnapshot{Forward: true}
	for i := 0; i < 256; i++ {
		s.Tick(in)
	}
}

func TestCrouchAtSpeedStartsSlide(t *testing.T) {
	s := testSim(t)
	settle(s)
	runUpToSpeed(s)

	s.Tick(&InputSnapshot{Crouch: true})
	if !s.Player.Sliding {
		t.Fatalf("no slide at %v u/s", s.Player.HorizontalSpeed())
	}
	if s.Player.HalfHeight*2 != s.conf.Movement.CrouchHeight {
		t.Fatalf("collider height = %v while crouched, want %v",
			s.Player.HalfHeight*2, s.conf.Movement.CrouchHeight)
	}
}

func TestSlidePreservesMomentum(t *testing.T) {
	s := testSim(t)
	settle(s)
	runUpToSpeed(s)
	entry := s.Player.HorizontalSpeed()

	in := &InputSnapshot{Crouch: true}
	for i := 0; i < 32; i++ {
		s.Tick(in)
	}
	// A quarter second of sliding should bleed far less than plain friction
	// would (full friction quarters this speed in roughly that window).
	if got := s.Player.HorizontalSpeed(); got < entry*0.72 {
		t.Fatalf("slide bled %v -> %v, more than the reduced friction allows", entry, got)
	}
}

func TestSlideEndsOnCrouchRelease(t *testing.T) {
	s := testSim(t)
	settle(s)
	runUpToSpeed(s)

	s.Tick(&InputSnapshot{Crouch: true})
	if !s.Player.Sliding {
		t.Fatal("slide never started")
	}
	s.Tick(&InputSnapshot{})
	if s.Player.Sliding {
		t.Fatal("slide survived the crouch release")
	}
	if s.Player.HalfHeight*2 != s.conf.Movement.StandHeight {
		t.Fatal("collider did not return to standing height")
	}
}

func TestSlowCrouchDoesNotSlide(t *testing.T) {
	s := testSim(t)
	settle(s)

	in := &InputSnapshot{Crouch: true, Forward: true}
	for i := 0; i < 64; i++ {
		s.Tick(in)
	}
	if s.Player.Sliding {
		t.Fatalf("slide started at crouch-walk speed %v", s.Player.HorizontalSpeed())
	}
	max := s.conf.Movement.GroundMaxSpeed * CrouchSpeedScale
	if got := s.Player.HorizontalSpeed(); got > max+0.01 {
		t.Fatalf("crouch walk speed %v exceeds the crouch cap %v", got, max)
	}
}

func TestSlideExpiresAfterMaxTicks(t *testing.T) {
	s := testSim(t)
	settle(s)
	runUpToSpeed(s)

	in := &InputSnapshot{Crouch: true}
	for i := 0; i < s.conf.Movement.SlideMaxTicks+8; i++ {
		s.Tick(in)
	}
	if s.Player.Sliding {
		t.Fatal("slide outlived its duration cap")
	}
}

func TestSlideDoesNotChainWhileCrouchHeld(t *testing.T) {
	s := testSim(t)
	settle(s)
	s.Player.Vel = mgl32.Vec3{0, 0, 30}

	in := &InputSnapshot{Crouch: true}
	s.Tick(in)
	if !s.Player.Sliding {
		t.Fatal("slide never started")
	}
	for i := 0; i < s.conf.Movement.SlideMaxTicks+1; i++ {
		s.Tick(in)
	}
	if s.Player.Sliding {
		t.Fatal("slide outlived its duration cap")
	}

	// Still fast enough to slide, so only the held key blocks the restart.
	for i := 0; i < 8; i++ {
		s.Tick(in)
		if got := s.Player.HorizontalSpeed(); got < s.conf.Movement.SlideMinSpeed {
			t.Fatalf("speed fell to %v, the restart condition is no longer met", got)
		}
		if s.Player.Sliding {
			t.Fatal("slide restarted while crouch stayed held")
		}
	}

	// Releasing the key re-arms the next slide.
	s.Tick(&InputSnapshot{})
	s.Player.Vel = mgl32.Vec3{0, 0, 30}
	s.Tick(in)
	if !s.Player.Sliding {
		t.Fatal("slide did not re-arm after the crouch release")
	}
}
