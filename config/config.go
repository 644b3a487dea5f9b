package config

import (
	"os"

	"github.com/restartfu/gophig"
)

// Config carries every gameplay magnitude the simulation uses. None of these
// values are invariants of the core; hosts are expected to retune them.
type Config struct {
	Movement MovementConfig
	WallRun  WallRunConfig
	Grapple  GrappleConfig
	Combat   CombatConfig
	Run      RunConfig
}

type MovementConfig struct {
	Gravity   float32
	Friction  float32
	StopSpeed float32

	GroundMaxSpeed float32
	GroundAccel    float32
	AirAccel       float32
	AirSpeedCap    float32

	JumpVelocity    float32
	JumpBufferTicks int
	CoyoteTicks     int
	// JumpHoldTicks is how long holding jump after takeoff keeps gravity scaled
	// down by JumpHoldGravityScale for a variable-height jump.
	JumpHoldTicks        int
	JumpHoldGravityScale float32

	ColliderWidth     float32
	StandHeight       float32
	CrouchHeight      float32
	EyeHeightStanding float32
	EyeHeightCrouched float32

	MouseSensitivity float32

	// SlideMinSpeed is the horizontal speed required for crouching on the
	// ground to start a slide rather than a plain crouch.
	SlideMinSpeed      float32
	SlideFrictionScale float32
	SlideMaxTicks      int

	MaxDisplacementPerStep float32
	MaxSubSteps            int
}

type WallRunConfig struct {
	MinSpeed       float32
	GravityScale   float32
	SpeedRetention float32
	MaxTicks       int
	CooldownTicks  int

	JumpAwayImpulse float32
	JumpUpImpulse   float32
}

type GrappleConfig struct {
	MaxDistance  float32
	ViewConeDot  float32
	SpringAccel  float32
	ReleaseBoost float32
}

type CombatConfig struct {
	HealthMax float32
	// SelfDamageScale scales explosion damage the player deals to themselves.
	SelfDamageScale float32
	SwapTicks       int

	Assault WeaponConfig
	Sniper  WeaponConfig
	Shotgun ShotgunConfig
	Rocket  RocketConfig
	Grenade GrenadeConfig
	Knife   KnifeConfig
	Plasma  PlasmaConfig
}

type WeaponConfig struct {
	Damage        float32
	CooldownTicks int
	ReloadTicks   int
	AmmoMax       int
	MagSize       int
	Range         float32
	SelfKnockback float32
}

type ShotgunConfig struct {
	WeaponConfig
	Pellets int
	// SpreadRadians is the half-angle of the pellet cone.
	SpreadRadians float32
	// MinUpKick is the upward velocity guaranteed when firing while grounded,
	// which is what makes shotgun jumps work.
	MinUpKick float32
}

type RocketConfig struct {
	CooldownTicks int
	AmmoMax       int
	LaunchSpeed   float32
	Explosion     ExplosionConfig
}

type GrenadeConfig struct {
	CooldownTicks int
	AmmoMax       int
	LaunchSpeed   float32
	// UpwardBias is added to the launch velocity's Y component for the arc.
	UpwardBias    float32
	Gravity       float32
	FuseSeconds   float32
	BounceDamping float32
	// MaxBounces is the surface contact count at which the grenade detonates.
	MaxBounces int
	Explosion  ExplosionConfig
}

type ExplosionConfig struct {
	Radius     float32
	BaseDamage float32
	// Force is the knockback velocity applied at zero distance; it scales
	// linearly down to zero at the edge of the radius.
	Force float32
}

type KnifeConfig struct {
	Damage        float32
	CooldownTicks int
	LungeTicks    int
	LungeSpeed    float32
}

type PlasmaConfig struct {
	AmmoMax       int
	DrainPerSec   float32
	DamagePerSec  float32
	Range         float32
	PushbackAccel float32
	// FrictionScale reduces ground friction while the beam is held, which is
	// what makes plasma surfing work.
	FrictionScale float32
}

type RunConfig struct {
	KillZoneY         float32
	RespawnGraceTicks int
	// ProjectileMaxAge is the safety-net lifetime for projectiles in seconds.
	ProjectileMaxAge float32
}

// Default returns the stock tuning. Tests rely on these values being stable.
func Default() Config {
	return Config{
		Movement: MovementConfig{
			Gravity:   22.0,
			Friction:  6.0,
			StopSpeed: 2.0,

			GroundMaxSpeed: 10.0,
			GroundAccel:    10.0,
			AirAccel:       80.0,
			AirSpeedCap:    1.0,

			JumpVelocity:         8.0,
			JumpBufferTicks:      13,
			CoyoteTicks:          26,
			JumpHoldTicks:        30,
			JumpHoldGravityScale: 0.6,

			ColliderWidth:     0.8,
			StandHeight:       1.8,
			CrouchHeight:      1.2,
			EyeHeightStanding: 1.62,
			EyeHeightCrouched: 1.0,

			MouseSensitivity: 0.0022,

			SlideMinSpeed:      7.0,
			SlideFrictionScale: 0.2,
			SlideMaxTicks:      90,

			MaxDisplacementPerStep: 0.5,
			MaxSubSteps:            8,
		},
		WallRun: WallRunConfig{
			MinSpeed:       6.0,
			GravityScale:   0.25,
			SpeedRetention: 0.995,
			MaxTicks:       230,
			CooldownTicks:  38,

			JumpAwayImpulse: 6.0,
			JumpUpImpulse:   7.0,
		},
		Grapple: GrappleConfig{
			MaxDistance:  30.0,
			ViewConeDot:  0.3,
			SpringAccel:  35.0,
			ReleaseBoost: 1.15,
		},
		Combat: CombatConfig{
			HealthMax:       100,
			SelfDamageScale: 0.45,
			SwapTicks:       38,

			Assault: WeaponConfig{
				Damage:        8,
				CooldownTicks: 12,
				ReloadTicks:   192,
				AmmoMax:       150,
				MagSize:       30,
				Range:         100,
				SelfKnockback: 0.4,
			},
			Sniper: WeaponConfig{
				Damage:        70,
				CooldownTicks: 154,
				ReloadTicks:   320,
				AmmoMax:       15,
				MagSize:       5,
				Range:         300,
				SelfKnockback: 1.2,
			},
			Shotgun: ShotgunConfig{
				WeaponConfig: WeaponConfig{
					Damage:        9,
					CooldownTicks: 102,
					ReloadTicks:   256,
					AmmoMax:       32,
					MagSize:       8,
					Range:         40,
					SelfKnockback: 9.0,
				},
				Pellets:       8,
				SpreadRadians: 0.06,
				MinUpKick:     4.5,
			},
			Rocket: RocketConfig{
				CooldownTicks: 115,
				AmmoMax:       20,
				LaunchSpeed:   45,
				Explosion: ExplosionConfig{
					Radius:     6.0,
					BaseDamage: 90,
					Force:      13.5,
				},
			},
			Grenade: GrenadeConfig{
				CooldownTicks: 77,
				AmmoMax:       12,
				LaunchSpeed:   25,
				UpwardBias:    6.0,
				Gravity:       18.0,
				FuseSeconds:   2.5,
				BounceDamping: 0.45,
				MaxBounces:    2,
				Explosion: ExplosionConfig{
					Radius:     5.5,
					BaseDamage: 80,
					Force:      12.0,
				},
			},
			Knife: KnifeConfig{
				Damage:        35,
				CooldownTicks: 64,
				LungeTicks:    26,
				LungeSpeed:    18.0,
			},
			Plasma: PlasmaConfig{
				AmmoMax:       120,
				DrainPerSec:   12.0,
				DamagePerSec:  28.0,
				Range:         60.0,
				PushbackAccel: 15.0,
				FrictionScale: 0.35,
			},
		},
		Run: RunConfig{
			KillZoneY:         -50,
			RespawnGraceTicks: 16,
			ProjectileMaxAge:  10.0,
		},
	}
}

// Load reads the tuning file at path, creating it with defaults if it does not
// exist, and writes back the merged result so new fields show up on disk.
func Load(path string) (Config, error) {
	c := Default()
	g := gophig.NewGophig[Config](path, gophig.TOMLMarshaler{}, 0644)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := g.SaveConf(c); err != nil {
			return c, err
		}
		return c, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return c, err
	}
	if err := (gophig.TOMLMarshaler{}).Unmarshal(data, &c); err != nil {
		return c, err
	}
	if err := g.SaveConf(c); err != nil {
		return c, err
	}
	return c, nil
}
