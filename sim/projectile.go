package sim

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/strafesim/strafesim/assert"
	"github.com/strafesim/strafesim/config"
	"github.com/strafesim/strafesim/game"
)

// Projectile is a live rocket or grenade. Position and velocity are advanced
// with a swept ray once per tick; projectiles never collide with the player
// who fired them, only with level geometry.
type Projectile struct {
	ID     uint64
	Weapon WeaponType

	Pos mgl32.Vec3
	Vel mgl32.Vec3

	SpawnTick uint64
	Bounces   int
}

// SpawnProjectile registers a projectile with an explicit id, for hosts that
// replicate projectiles from elsewhere. Duplicate ids are a programmer error.
func (s *Simulation) SpawnProjectile(p *Projectile) {
	_, dup := s.Combat.projectiles.Get(p.ID)
	assert.IsTrue(!dup, "projectile id %d already registered", p.ID)
	s.Combat.projectiles.Set(p.ID, p)
}

// RemoveProjectile drops the projectile with the given id. Removing an unknown
// id is a no-op so hosts can clear replicated projectiles idempotently.
func (s *Simulation) RemoveProjectile(id uint64) {
	s.Combat.projectiles.Delete(id)
}

func (s *Simulation) spawnProjectile(w WeaponType, pos, vel mgl32.Vec3) *Projectile {
	s.Combat.nextProjectileID++
	p := &Projectile{
		ID:        s.Combat.nextProjectileID,
		Weapon:    w,
		Pos:       pos,
		Vel:       vel,
		SpawnTick: s.tick,
	}
	s.SpawnProjectile(p)
	return p
}

// advanceProjectiles steps every live projectile by dt in registration order.
// Iteration works over a snapshot of the keys because explosions remove
// entries mid-pass.
func (s *Simulation) advanceProjectiles(dt float32) {
	keys := s.Combat.projectiles.Keys()
	for _, id := range keys {
		p, ok := s.Combat.projectiles.Get(id)
		if !ok {
			continue
		}
		if s.stepProjectile(p, dt) {
			s.Combat.projectiles.Delete(id)
		}
	}
}

// stepProjectile advances one projectile and reports whether it should be
// removed this tick.
func (s *Simulation) stepProjectile(p *Projectile, dt float32) bool {
	age := float32(s.tick-p.SpawnTick) * TickDelta

	if p.Weapon == WeaponGrenade {
		// The fuse pops regardless of what the grenade is doing.
		if age >= s.conf.Combat.Grenade.FuseSeconds {
			s.Explode(p.Pos, s.conf.Combat.Grenade.Explosion)
			return true
		}
		p.Vel[1] -= s.conf.Combat.Grenade.Gravity * dt
	}

	speed := p.Vel.Len()
	if speed > game.Epsilon {
		dir := p.Vel.Mul(1 / speed)
		sweep := speed*dt + SweepEpsilon
		if hit, ok := s.world.CastRay(p.Pos, dir, sweep); ok {
			return s.projectileContact(p, hit)
		}
	}
	p.Pos = p.Pos.Add(p.Vel.Mul(dt))

	if p.Pos.Y() < s.conf.Run.KillZoneY || age > s.conf.Run.ProjectileMaxAge {
		return true
	}
	return false
}

// projectileContact resolves a geometry hit: rockets detonate immediately,
// grenades bounce until their contact budget runs out.
func (s *Simulation) projectileContact(p *Projectile, hit game.RayHit) bool {
	switch p.Weapon {
	case WeaponRocket:
		s.Explode(hit.Position, s.conf.Combat.Rocket.Explosion)
		return true
	case WeaponGrenade:
		p.Bounces++
		if p.Bounces >= s.conf.Combat.Grenade.MaxBounces {
			s.Explode(hit.Position, s.conf.Combat.Grenade.Explosion)
			return true
		}
		p.Pos = hit.Position.Add(hit.Normal.Mul(SweepEpsilon))
		p.Vel = game.Reflect(p.Vel, hit.Normal).Mul(s.conf.Combat.Grenade.BounceDamping)
		s.effects.PlaySound(SoundExplosion, 0.2)
		return false
	}
	return true
}

// Explode applies an explosion at center: self-damage and radial knockback
// with linear falloff from full force at the center to zero at the edge of
// the radius. Outside the radius nothing happens at all.
func (s *Simulation) Explode(center mgl32.Vec3, conf config.ExplosionConfig) {
	s.effects.SpawnExplosion(center, mgl32.Vec3{1, 0.55, 0.1}, conf.Radius*0.4)
	s.effects.PlaySound(SoundExplosion, 1)

	// Falloff distance is measured to the player's collider, not its center,
	// so a blast at the feet counts as a direct hit.
	playerCenter := s.Player.Center()
	bb := s.Player.BoundingBox(s.conf.Movement.ColliderWidth)
	dist := game.AABBVectorDistance(bb, center)
	falloff := game.ClampFloat(1-dist/conf.Radius, 0, 1)
	if falloff <= 0 {
		return
	}

	s.damagePlayer(conf.BaseDamage * falloff * s.conf.Combat.SelfDamageScale)

	dir := game.SafeNormalize(playerCenter.Sub(center))
	if dir.Len() < game.Epsilon {
		// Standing exactly on the center; all the force goes straight up.
		dir = mgl32.Vec3{0, 1, 0}
	}
	s.Player.Vel = s.Player.Vel.Add(dir.Mul(conf.Force * falloff))
	if s.Player.Vel.Y() > 0 {
		s.Player.Grounded = false
	}
	s.effects.CameraShake(math32.Min(falloff*1.5, 1))
}
