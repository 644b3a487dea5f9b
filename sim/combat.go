package sim

import (
	"github.com/chewxy/math32"
	"github.com/elliotchance/orderedmap/v2"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/strafesim/strafesim/config"
	"github.com/strafesim/strafesim/game"
)

// CombatState holds health, per-weapon records, the active grapple, the knife
// lunge, the plasma beam and every live projectile. Owned exclusively by the
// simulation; mutated only inside the tick.
type CombatState struct {
	Health float32

	Active       WeaponType
	SwapCooldown int

	weapons [weaponCount]weaponState

	KnifeLungeTicks int
	KnifeLungeDir   mgl32.Vec3

	PlasmaActive bool
	plasmaDrain  float32

	// Zoomed is true while the sniper scope is held up; it scales down aim
	// sensitivity on the following ticks.
	Zoomed bool

	Grapple GrappleState

	projectiles      *orderedmap.OrderedMap[uint64, *Projectile]
	nextProjectileID uint64
}

// Ammo returns a copy of the ammo record for the given weapon.
func (c *CombatState) Ammo(w WeaponType) AmmoRecord {
	return c.weapons[w].Ammo
}

// ProjectileCount returns the number of live projectiles.
func (c *CombatState) ProjectileCount() int {
	return c.projectiles.Len()
}

// tickCooldowns decrements every weapon cooldown and the swap cooldown
// uniformly, once per tick.
func (s *Simulation) tickCooldowns() {
	c := &s.Combat
	for i := range c.weapons {
		if c.weapons[i].Cooldown > 0 {
			c.weapons[i].Cooldown--
		}
	}
	if c.SwapCooldown > 0 {
		c.SwapCooldown--
	}
}

// tickWeaponSwap resolves direct slot requests and scroll cycling. Swapping
// while the swap cooldown runs is silently rejected.
func (s *Simulation) tickWeaponSwap(input *InputSnapshot) {
	c := &s.Combat

	target := c.Active
	if w, ok := weaponFromSlot(input.WeaponSlot); ok {
		target = w
	} else if input.ScrollDelta > 0 {
		target = (c.Active + 1) % weaponCount
	} else if input.ScrollDelta < 0 {
		target = (c.Active + weaponCount - 1) % weaponCount
	}

	if target == c.Active || c.SwapCooldown > 0 {
		return
	}
	c.Active = target
	c.SwapCooldown = s.conf.Combat.SwapTicks
	c.PlasmaActive = false
	c.Zoomed = false
	s.dbg("weapon swap -> %s", target)
}

// tickCombat runs cooldowns, reload, fire resolution and the plasma beam.
func (s *Simulation) tickCombat(input *InputSnapshot, dt float32) {
	s.tickCooldowns()

	if input.Reload {
		s.reloadActive()
	}

	// Alt fire raises the sniper scope while held. Zoom changes nothing about
	// the shot itself, it only slows the aim.
	s.Combat.Zoomed = input.AltFire && s.Combat.Active == WeaponSniper && s.Combat.SwapCooldown == 0

	firePressed := input.Fire && !s.prevFire
	if s.Combat.Active == WeaponPlasma {
		s.tickPlasma(input, firePressed, dt)
	} else {
		s.Combat.PlasmaActive = false
		if input.Fire {
			s.fireActive()
		}
	}
	s.prevFire = input.Fire
}

// reloadActive refills the active weapon's magazine from its reserve. A no-op
// for weapons without magazines, full magazines, empty reserves, or while the
// weapon is cooling down.
func (s *Simulation) reloadActive() {
	conf, ok := s.hitscanConf(s.Combat.Active)
	if !ok {
		return
	}
	ws := &s.Combat.weapons[s.Combat.Active]
	if ws.Cooldown > 0 || ws.Ammo.MagSize == 0 || ws.Ammo.Magazine == ws.Ammo.MagSize || ws.Ammo.Current == 0 {
		return
	}

	moved := ws.Ammo.MagSize - ws.Ammo.Magazine
	if moved > ws.Ammo.Current {
		moved = ws.Ammo.Current
	}
	ws.Ammo.Magazine += moved
	ws.Ammo.Current -= moved
	ws.Cooldown = conf.ReloadTicks
}

// fireActive resolves one fire action for the active weapon. Empty ammo or an
// active cooldown is a silent no-op, not an error.
func (s *Simulation) fireActive() {
	c := &s.Combat
	ws := &c.weapons[c.Active]
	if ws.Cooldown > 0 {
		return
	}
	if c.Active != WeaponKnife && !ws.canFeed() {
		return
	}

	switch c.Active {
	case WeaponAssault:
		s.fireHitscan(ws, s.conf.Combat.Assault, SoundAssaultFire)
	case WeaponSniper:
		s.fireHitscan(ws, s.conf.Combat.Sniper, SoundSniperFire)
	case WeaponShotgun:
		s.fireShotgun(ws)
	case WeaponRocket:
		s.fireRocket(ws)
	case WeaponGrenade:
		s.fireGrenade(ws)
	case WeaponKnife:
		s.fireKnife(ws)
	}
}

// fireHitscan casts a single ray and applies the weapon's self-knockback
// opposite the aim direction.
func (s *Simulation) fireHitscan(ws *weaponState, conf config.WeaponConfig, sound SoundID) {
	ws.consume()
	ws.Cooldown = conf.CooldownTicks

	aim := s.Player.AimDir()
	s.castHitscanRay(aim, conf.Range)
	s.Player.Vel = s.Player.Vel.Sub(aim.Mul(conf.SelfKnockback))
	s.effects.PlaySound(sound, 1)
}

// fireShotgun casts every pellet in a fixed ring pattern within the spread
// cone. The large self-knockback plus the guaranteed upward kick while
// grounded is what makes shotgun jumps work.
func (s *Simulation) fireShotgun(ws *weaponState) {
	conf := s.conf.Combat.Shotgun
	ws.consume()
	ws.Cooldown = conf.CooldownTicks

	p := &s.Player
	for i := 0; i < conf.Pellets; i++ {
		angle := 2 * math32.Pi * float32(i) / float32(conf.Pellets)
		yawOff := math32.Cos(angle) * conf.SpreadRadians
		pitchOff := math32.Sin(angle) * conf.SpreadRadians
		dir := game.DirectionVector(p.Yaw+yawOff, p.Pitch+pitchOff)
		s.castHitscanRay(dir, conf.Range)
	}

	aim := p.AimDir()
	p.Vel = p.Vel.Sub(aim.Mul(conf.SelfKnockback))
	if p.Grounded {
		p.Vel[1] = math32.Max(p.Vel[1], conf.MinUpKick)
		p.Grounded = false
	}
	s.effects.PlaySound(SoundShotgunFire, 1)
}

func (s *Simulation) fireRocket(ws *weaponState) {
	conf := s.conf.Combat.Rocket
	ws.consume()
	ws.Cooldown = conf.CooldownTicks

	aim := s.Player.AimDir()
	s.spawnProjectile(WeaponRocket, s.muzzlePos(aim), aim.Mul(conf.LaunchSpeed))
	s.effects.PlaySound(SoundRocketFire, 1)
}

func (s *Simulation) fireGrenade(ws *weaponState) {
	conf := s.conf.Combat.Grenade
	ws.consume()
	ws.Cooldown = conf.CooldownTicks

	aim := s.Player.AimDir()
	vel := aim.Mul(conf.LaunchSpeed).Add(mgl32.Vec3{0, conf.UpwardBias, 0})
	s.spawnProjectile(WeaponGrenade, s.muzzlePos(aim), vel)
	s.effects.PlaySound(SoundGrenadeThrow, 1)
}

// fireKnife starts the lunge. While the lunge timer runs, movement integration
// is overridden with the lunge velocity.
func (s *Simulation) fireKnife(ws *weaponState) {
	conf := s.conf.Combat.Knife
	ws.Cooldown = conf.CooldownTicks

	s.Combat.KnifeLungeTicks = conf.LungeTicks
	s.Combat.KnifeLungeDir = s.Player.AimDir()
	s.effects.PlaySound(SoundKnifeSwing, 1)
}

// tickPlasma runs the continuous beam: per-second ammo drain, continuous
// self-pushback opposite aim, and reduced ground friction while active.
func (s *Simulation) tickPlasma(input *InputSnapshot, firePressed bool, dt float32) {
	c := &s.Combat
	conf := s.conf.Combat.Plasma
	ws := &c.weapons[WeaponPlasma]

	if !input.Fire || ws.Ammo.Current <= 0 {
		c.PlasmaActive = false
		c.plasmaDrain = 0
		return
	}

	if firePressed {
		s.effects.PlaySound(SoundPlasmaLoop, 1)
	}
	c.PlasmaActive = true

	c.plasmaDrain += conf.DrainPerSec * dt
	for c.plasmaDrain >= 1 && ws.Ammo.Current > 0 {
		c.plasmaDrain--
		ws.Ammo.Current--
	}

	aim := s.Player.AimDir()
	s.castHitscanRay(aim, conf.Range)
	s.Player.Vel = s.Player.Vel.Sub(aim.Mul(conf.PushbackAccel * dt))
}

// castHitscanRay resolves a single hitscan ray against level geometry and
// emits an impact spark where it lands.
func (s *Simulation) castHitscanRay(dir mgl32.Vec3, maxRange float32) {
	hit, ok := s.world.CastRay(s.eyePos(), dir, maxRange)
	if !ok {
		return
	}
	s.effects.SpawnExplosion(hit.Position, mgl32.Vec3{1, 0.9, 0.4}, 0.15)
}

func (s *Simulation) eyePos() mgl32.Vec3 {
	eye := s.conf.Movement.EyeHeightStanding
	if s.Player.Crouching {
		eye = s.conf.Movement.EyeHeightCrouched
	}
	return s.Player.Pos.Add(mgl32.Vec3{0, eye, 0})
}

func (s *Simulation) muzzlePos(aim mgl32.Vec3) mgl32.Vec3 {
	return s.eyePos().Add(aim.Mul(MuzzleOffset))
}

// damagePlayer clamps health into [0, max] and queues a respawn on death.
func (s *Simulation) damagePlayer(dmg float32) {
	if dmg <= 0 {
		return
	}
	s.Combat.Health = game.ClampFloat(s.Combat.Health-dmg, 0, s.conf.Combat.HealthMax)
	if s.Combat.Health == 0 {
		s.RequestRespawn()
	}
}

// hitscanConf returns the magazine-bearing weapon tuning for w. Only the
// hitscan weapons use magazines; everything else feeds straight from reserve.
func (s *Simulation) hitscanConf(w WeaponType) (config.WeaponConfig, bool) {
	switch w {
	case WeaponAssault:
		return s.conf.Combat.Assault, true
	case WeaponSniper:
		return s.conf.Combat.Sniper, true
	case WeaponShotgun:
		return s.conf.Combat.Shotgun.WeaponConfig, true
	}
	return config.WeaponConfig{}, false
}
