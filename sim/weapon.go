package sim

// WeaponType enumerates the weapons the combat component can resolve.
type WeaponType uint8

const (
	WeaponAssault WeaponType = iota
	WeaponShotgun
	WeaponSniper
	WeaponRocket
	WeaponGrenade
	WeaponPlasma
	WeaponKnife

	weaponCount
)

// String ...
func (w WeaponType) String() string {
	switch w {
	case WeaponAssault:
		return "assault"
	case WeaponShotgun:
		return "shotgun"
	case WeaponSniper:
		return "sniper"
	case WeaponRocket:
		return "rocket"
	case WeaponGrenade:
		return "grenade"
	case WeaponPlasma:
		return "plasma"
	case WeaponKnife:
		return "knife"
	}
	return "unknown"
}

// AmmoRecord tracks the reserve pool and, for magazine weapons, the loaded
// magazine. MagSize of zero means the weapon feeds straight from the reserve.
type AmmoRecord struct {
	Current  int
	Max      int
	Magazine int
	MagSize  int
}

// weaponState is the per-weapon slice of CombatState: its cooldown timer and
// ammo record.
type weaponState struct {
	Cooldown int
	Ammo     AmmoRecord
}

// weaponFromSlot maps a 1-based HUD slot request to a weapon.
func weaponFromSlot(slot int) (WeaponType, bool) {
	if slot < 1 || slot > int(weaponCount) {
		return 0, false
	}
	return WeaponType(slot - 1), true
}

// canFeed reports whether a round can be consumed, and consume takes it.
func (ws *weaponState) canFeed() bool {
	if ws.Ammo.MagSize > 0 {
		return ws.Ammo.Magazine > 0
	}
	return ws.Ammo.Current > 0
}

func (ws *weaponState) consume() {
	if ws.Ammo.MagSize > 0 {
		ws.Ammo.Magazine--
		return
	}
	ws.Ammo.Current--
}
