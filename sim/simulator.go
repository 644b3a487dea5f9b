package sim

import (
	"github.com/elliotchance/orderedmap/v2"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/sirupsen/logrus"

	"github.com/strafesim/strafesim/config"
	"github.com/strafesim/strafesim/utils"
)

const defaultZoneQueueSize = 64

// Options configure a Simulation at construction time.
type Options struct {
	Conf config.Config

	// World may be nil until the host attaches one; ticks are no-ops until
	// then.
	World   WorldProvider
	Effects EffectSink
	Log     *logrus.Logger

	SpawnPos mgl32.Vec3
	SpawnYaw float32

	// HUDInterval is the tick divisor for HUD snapshot publication. Zero means
	// DefaultHUDInterval.
	HUDInterval int
	// ZoneQueueSize bounds the zone-event FIFO. Zero means the default.
	ZoneQueueSize int

	// Debugf receives internal simulation trace logs for callers that need
	// deep diagnostics.
	Debugf func(format string, args ...any)
}

// Simulation owns the full player, combat and run state for one independent
// simulation instance. The host that calls Tick has exclusive mutable access
// for its duration; nothing else may touch the state concurrently.
type Simulation struct {
	conf    config.Config
	world   WorldProvider
	effects EffectSink
	log     *logrus.Logger
	debugf  func(format string, args ...any)

	hudInterval int

	Player PlayerState
	Combat CombatState
	Run    RunState

	anchors    []mgl32.Vec3
	zoneEvents *utils.CircularQueue[ZoneEvent]

	tick     uint64
	hud      HUDSnapshot
	spawnPos mgl32.Vec3
	spawnYaw float32
	prevPos  mgl32.Vec3

	prevJump    bool
	prevGrapple bool
	prevFire    bool
}

// New returns a Simulation ready to tick.
func New(opts Options) *Simulation {
	if opts.Effects == nil {
		opts.Effects = NopSink{}
	}
	if opts.HUDInterval <= 0 {
		opts.HUDInterval = DefaultHUDInterval
	}
	if opts.ZoneQueueSize <= 0 {
		opts.ZoneQueueSize = defaultZoneQueueSize
	}

	s := &Simulation{
		conf:        opts.Conf,
		world:       opts.World,
		effects:     opts.Effects,
		log:         opts.Log,
		debugf:      opts.Debugf,
		hudInterval: opts.HUDInterval,
		zoneEvents:  utils.NewCircularQueue[ZoneEvent](opts.ZoneQueueSize),
		spawnPos:    opts.SpawnPos,
		spawnYaw:    opts.SpawnYaw,
	}

	s.Player = PlayerState{
		Pos:        opts.SpawnPos,
		Yaw:        opts.SpawnYaw,
		HalfHeight: opts.Conf.Movement.StandHeight / 2,
	}
	s.Combat = newCombatState(opts.Conf.Combat)
	s.Run = newRunState(opts.SpawnPos, opts.SpawnYaw)
	s.prevPos = opts.SpawnPos
	return s
}

// AttachWorld hands the simulation its geometry provider. Until this is called
// every tick is a recorded no-op.
func (s *Simulation) AttachWorld(w WorldProvider) {
	s.world = w
}

// RegisterGrappleAnchor adds a grapple anchor point to the registry searched on
// grapple activation.
func (s *Simulation) RegisterGrappleAnchor(p mgl32.Vec3) {
	s.anchors = append(s.anchors, p)
}

// PushZoneEvent queues a zone event from an external collision sensor. The
// queue is single-producer/single-consumer: the caller must not race the tick.
func (s *Simulation) PushZoneEvent(ev ZoneEvent) error {
	return s.zoneEvents.Append(ev)
}

// CurrentTick returns the number of completed ticks.
func (s *Simulation) CurrentTick() uint64 {
	return s.tick
}

func (s *Simulation) dbg(format string, args ...any) {
	if s.debugf != nil {
		s.debugf(format, args...)
	}
}

// newCombatState builds combat state with every weapon at full ammo.
func newCombatState(conf config.CombatConfig) CombatState {
	c := CombatState{
		Health:      conf.HealthMax,
		Active:      WeaponAssault,
		projectiles: orderedmap.NewOrderedMap[uint64, *Projectile](),
	}

	set := func(w WeaponType, ammoMax, magSize int) {
		c.weapons[w] = weaponState{Ammo: AmmoRecord{
			Current:  ammoMax,
			Max:      ammoMax,
			Magazine: magSize,
			MagSize:  magSize,
		}}
	}
	set(WeaponAssault, conf.Assault.AmmoMax, conf.Assault.MagSize)
	set(WeaponSniper, conf.Sniper.AmmoMax, conf.Sniper.MagSize)
	set(WeaponShotgun, conf.Shotgun.AmmoMax, conf.Shotgun.MagSize)
	set(WeaponRocket, conf.Rocket.AmmoMax, 0)
	set(WeaponGrenade, conf.Grenade.AmmoMax, 0)
	set(WeaponPlasma, conf.Plasma.AmmoMax, 0)
	// The knife never runs dry; fire resolution skips its ammo record.
	set(WeaponKnife, 1, 0)
	return c
}
