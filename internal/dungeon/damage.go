package dungeon

// DamageType distinguishes the three ways a monster can take damage,
// since several classes react differently to each (spec.md §4.4).
type DamageType int

const (
	DmgNormal DamageType = iota
	DmgWeapon
	DmgBomb
)
