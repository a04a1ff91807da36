// Package classdata holds the compile-time-fixed tables a loaded dungeon
// indexes into: monster classes, tile classes, trap classes, and the
// per-monster-class behavior/stat records (ClassInfos). Numeric tags are
// deliberately sparse and mirror the dungeon-XML type codes a loader would
// see on disk; they must never be renumbered.
package classdata

// MonsterClass is the tagged enumeration of every monster (and the player
// and bomb pseudo-monsters) the simulator knows about. Tags are grouped
// into bands the way the dungeon format itself groups them: Z1 (basic
// dungeon denizens) at 0-16, Z2 at 100+, Z3 at 200+, Z4 at 44+, minibosses
// at 144+, a sarcophagus sub-band at 150+, and three fixed special tags
// (SHOPKEEPER=88, PLAYER=89, BOMB=90).
type MonsterClass int

const (
	// Z1 band: 0-16.
	GreenSlime   MonsterClass = 0
	Bat          MonsterClass = 1
	BlackBat     MonsterClass = 2
	Skeleton1    MonsterClass = 3
	Skeleton2    MonsterClass = 4
	Skeleton3    MonsterClass = 5
	Headless     MonsterClass = 6
	Pixie        MonsterClass = 7
	ConfMonkey   MonsterClass = 8
	Mole         MonsterClass = 9
	Ghost        MonsterClass = 10
	TarMonster   MonsterClass = 11
	WallMimic    MonsterClass = 12
	Crate1       MonsterClass = 13
	Crate2       MonsterClass = 14
	LightShroom  MonsterClass = 15
	FirePot      MonsterClass = 16

	// Z4 band: 44+. Sparse on purpose - only the members this simulator
	// actually spawns are named.
	DireWolfZ4      MonsterClass = 44
	StoneGuardianZ4 MonsterClass = 45

	// Special fixed tags.
	Shopkeeper MonsterClass = 88
	Player     MonsterClass = 89
	Bomb       MonsterClass = 90

	// Z2 band: 100+.
	Rider1           MonsterClass = 100
	Rider2           MonsterClass = 101
	Rider3           MonsterClass = 102
	Skeletank1       MonsterClass = 103
	Skeletank2       MonsterClass = 104
	Skeletank3       MonsterClass = 105
	BladeNovice      MonsterClass = 106
	BladeMaster      MonsterClass = 107
	SeekStatue       MonsterClass = 108
	FireMimic        MonsterClass = 109
	IceMimic         MonsterClass = 110
	Shove1           MonsterClass = 111
	Shove2           MonsterClass = 112
	Monkey2          MonsterClass = 113
	TeleMonkey       MonsterClass = 114
	Assassin2        MonsterClass = 115
	Banshee1         MonsterClass = 116
	Banshee2         MonsterClass = 117
	IceBeetle        MonsterClass = 118
	FireBeetle       MonsterClass = 119
	Goolem           MonsterClass = 120
	MineStatue       MonsterClass = 121
	WindStatue       MonsterClass = 122
	BombStatue       MonsterClass = 123
	BombShroom       MonsterClass = 124
	BombShroomPrimed MonsterClass = 125

	// Z3 band: 200+.
	Warlock1   MonsterClass = 200
	Warlock2   MonsterClass = 201
	IceSlime   MonsterClass = 202
	Yeti       MonsterClass = 203
	FireSlime  MonsterClass = 204
	HellHound  MonsterClass = 205
	Ghoul      MonsterClass = 206
	Mummy      MonsterClass = 207
	Bomber     MonsterClass = 208
	Armadillo1 MonsterClass = 209
	Armadillo2 MonsterClass = 210
	Armadildo  MonsterClass = 211
	Harpy      MonsterClass = 212
	FreeSpider MonsterClass = 213
	Spider     MonsterClass = 214

	// Miniboss band: 144+.
	DireBat1 MonsterClass = 144
	DireBat2 MonsterClass = 145
	Ogre     MonsterClass = 146

	// Sarcophagus sub-band: 150+.
	Sarco1 MonsterClass = 150
	Sarco2 MonsterClass = 151
	Sarco3 MonsterClass = 152
)

// IsRider reports whether c is one of the three rider classes, which are
// always knocked back and promoted to the matching skeletank on any hit.
func IsRider(c MonsterClass) bool {
	return c >= Rider1 && c <= Rider3
}

// RiderToSkeletank maps a rider class to the skeletank it promotes into.
func RiderToSkeletank(c MonsterClass) MonsterClass {
	return c - Rider1 + Skeletank1
}

// IsSkeletank reports whether c is one of the three skeletank classes.
func IsSkeletank(c MonsterClass) bool {
	return c >= Skeletank1 && c <= Skeletank3
}

// SkeletankToSkeleton maps a skeletank class to the skeleton it demotes
// into when hit from the wrong side for lethal damage.
func SkeletankToSkeleton(c MonsterClass) MonsterClass {
	return c - Skeletank1 + Skeleton1
}

// IsSkeleton reports whether c is one of the three plain skeleton classes.
func IsSkeleton(c MonsterClass) bool {
	return c >= Skeleton1 && c <= Skeleton3
}

// IsMiniboss reports whether c falls in the miniboss band.
func IsMiniboss(c MonsterClass) bool {
	return c >= DireBat1 && c <= Ogre
}

// IsSarcophagus reports whether c falls in the sarcophagus sub-band.
func IsSarcophagus(c MonsterClass) bool {
	return c >= Sarco1 && c <= Sarco3
}

// IsHiddenMimic reports whether c is one of the classes that only takes
// damage while revealed (state == 2) or from a bomb.
func IsHiddenMimic(c MonsterClass) bool {
	switch c {
	case TarMonster, WallMimic, SeekStatue, FireMimic, IceMimic:
		return true
	default:
		return false
	}
}

// IsArmadillo reports whether c is one of the three armadillo variants.
func IsArmadillo(c MonsterClass) bool {
	switch c {
	case Armadillo1, Armadillo2, Armadildo:
		return true
	default:
		return false
	}
}
