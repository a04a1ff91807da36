package classdata

import "strconv"

// BehaviorKind is the tagged sum type standing in for the C source's
// function-pointer `act` dispatch (see spec.md's design notes: "Function-
// pointer dispatch in ClassInfos -> tagged behavior"). The beat driver
// switches on this value; internal/ai implements one function per kind.
type BehaviorKind int

const (
	Nop BehaviorKind = iota
	BasicSeek
	DiagonalSeek
	MooreSeek
	BatBehavior
	BlackBatBehavior
	Parry
	// BombTick is the planted-bomb pseudo-behavior: when its fuse (the
	// monster's own Delay field, not BeatDelay) reaches zero and the
	// generic enemy loop invokes it, it detonates instead of moving.
	BombTick
	// Todo marks a class whose original behavior was left unimplemented
	// (a C source stub). Per spec.md's open question, every Todo class is
	// pinned to behave exactly like Nop; the distinct tag exists so tests
	// can assert the pinning explicitly instead of accidentally relying on
	// Nop's zero value.
	Todo
)

// ClassInfo is the immutable per-class record spec.md §3 calls
// "ClassInfos": stats plus a behavior tag, never mutated at runtime.
type ClassInfo struct {
	MaxHP      int
	BeatDelay  int
	Radius2    int // squared aggro radius
	Flying     bool
	Dig        int // digging power; -1 means "cannot dig", 4 means "trample"
	Priority   uint32
	Glyph      rune
	Behavior   BehaviorKind
}

// classInfos is the compile-time-fixed table. It is intentionally a plain
// map literal, not YAML-loaded: spec.md §3 calls ClassInfos
// "compile-time-fixed", and the numeric MonsterClass tags must stay stable
// for loader compatibility, so there is no runtime reconfiguration surface
// to justify a config file.
var classInfos = map[MonsterClass]ClassInfo{
	GreenSlime:  {MaxHP: 4, BeatDelay: 3, Radius2: 36, Dig: -1, Priority: 100, Glyph: 'g', Behavior: Nop},
	Bat:         {MaxHP: 1, BeatDelay: 1, Radius2: 25, Flying: true, Dig: -1, Priority: 20, Glyph: 'b', Behavior: BatBehavior},
	BlackBat:    {MaxHP: 2, BeatDelay: 1, Radius2: 25, Flying: true, Dig: -1, Priority: 21, Glyph: 'B', Behavior: BlackBatBehavior},
	Skeleton1:   {MaxHP: 1, BeatDelay: 1, Radius2: 49, Dig: -1, Priority: 30, Glyph: 's', Behavior: BasicSeek},
	Skeleton2:   {MaxHP: 1, BeatDelay: 1, Radius2: 49, Dig: -1, Priority: 31, Glyph: 's', Behavior: BasicSeek},
	Skeleton3:   {MaxHP: 1, BeatDelay: 1, Radius2: 49, Dig: -1, Priority: 32, Glyph: 's', Behavior: BasicSeek},
	Headless:    {MaxHP: 1, BeatDelay: 1, Radius2: 49, Dig: -1, Priority: 33, Glyph: 'h', Behavior: BasicSeek},
	Pixie:       {MaxHP: 1, BeatDelay: 2, Radius2: 36, Flying: true, Dig: -1, Priority: 10, Glyph: 'p', Behavior: BasicSeek},
	ConfMonkey:  {MaxHP: 2, BeatDelay: 2, Radius2: 36, Dig: -1, Priority: 40, Glyph: 'm', Behavior: BasicSeek},
	Mole:        {MaxHP: 2, BeatDelay: 2, Radius2: 25, Dig: -1, Priority: 41, Glyph: 'o', Behavior: Todo},
	Ghost:       {MaxHP: 2, BeatDelay: 2, Radius2: 36, Flying: true, Dig: -1, Priority: 42, Glyph: 'G', Behavior: Todo},
	TarMonster:  {MaxHP: 3, BeatDelay: 3, Radius2: 16, Dig: -1, Priority: 50, Glyph: 't', Behavior: Todo},
	WallMimic:   {MaxHP: 3, BeatDelay: 3, Radius2: 16, Dig: -1, Priority: 51, Glyph: 'w', Behavior: Todo},
	Crate1:      {MaxHP: 1, BeatDelay: 0, Radius2: 0, Dig: -1, Priority: 200, Glyph: 'c', Behavior: Nop},
	Crate2:      {MaxHP: 2, BeatDelay: 0, Radius2: 0, Dig: -1, Priority: 201, Glyph: 'c', Behavior: Nop},
	LightShroom: {MaxHP: 1, BeatDelay: 0, Radius2: 0, Dig: -1, Priority: 210, Glyph: 'l', Behavior: Nop},
	FirePot:     {MaxHP: 1, BeatDelay: 0, Radius2: 0, Dig: -1, Priority: 211, Glyph: 'f', Behavior: Nop},

	DireWolfZ4:      {MaxHP: 6, BeatDelay: 1, Radius2: 64, Dig: -1, Priority: 60, Glyph: 'W', Behavior: BasicSeek},
	StoneGuardianZ4: {MaxHP: 10, BeatDelay: 2, Radius2: 49, Dig: 3, Priority: 61, Glyph: 'S', Behavior: BasicSeek},

	Shopkeeper: {MaxHP: 20, BeatDelay: 0, Radius2: 0, Dig: -1, Priority: 220, Glyph: 'K', Behavior: Nop},
	Player:     {MaxHP: 10, BeatDelay: 0, Radius2: 0, Dig: 2, Priority: 0, Glyph: '@', Behavior: Nop},
	Bomb:       {MaxHP: 1, BeatDelay: 0, Radius2: 0, Dig: -1, Priority: 5, Glyph: '*', Behavior: BombTick},

	Rider1:      {MaxHP: 3, BeatDelay: 1, Radius2: 64, Dig: -1, Priority: 70, Glyph: 'r', Behavior: BasicSeek},
	Rider2:      {MaxHP: 3, BeatDelay: 1, Radius2: 64, Dig: -1, Priority: 71, Glyph: 'r', Behavior: BasicSeek},
	Rider3:      {MaxHP: 3, BeatDelay: 1, Radius2: 64, Dig: -1, Priority: 72, Glyph: 'r', Behavior: BasicSeek},
	Skeletank1:  {MaxHP: 2, BeatDelay: 1, Radius2: 64, Dig: -1, Priority: 73, Glyph: 'k', Behavior: BasicSeek},
	Skeletank2:  {MaxHP: 2, BeatDelay: 1, Radius2: 64, Dig: -1, Priority: 74, Glyph: 'k', Behavior: BasicSeek},
	Skeletank3:  {MaxHP: 2, BeatDelay: 1, Radius2: 64, Dig: -1, Priority: 75, Glyph: 'k', Behavior: BasicSeek},
	BladeNovice: {MaxHP: 4, BeatDelay: 1, Radius2: 64, Dig: -1, Priority: 80, Glyph: 'n', Behavior: Parry},
	BladeMaster: {MaxHP: 6, BeatDelay: 1, Radius2: 64, Dig: -1, Priority: 81, Glyph: 'N', Behavior: Parry},
	SeekStatue:  {MaxHP: 5, BeatDelay: 0, Radius2: 0, Dig: -1, Priority: 230, Glyph: 'q', Behavior: Todo},
	FireMimic:   {MaxHP: 4, BeatDelay: 3, Radius2: 16, Dig: -1, Priority: 52, Glyph: 'F', Behavior: Todo},
	IceMimic:    {MaxHP: 4, BeatDelay: 3, Radius2: 16, Dig: -1, Priority: 53, Glyph: 'I', Behavior: Todo},
	Shove1:      {MaxHP: 3, BeatDelay: 1, Radius2: 64, Dig: -1, Priority: 82, Glyph: 'v', Behavior: BasicSeek},
	Shove2:      {MaxHP: 3, BeatDelay: 1, Radius2: 64, Dig: -1, Priority: 83, Glyph: 'v', Behavior: BasicSeek},
	Monkey2:     {MaxHP: 3, BeatDelay: 2, Radius2: 36, Dig: -1, Priority: 43, Glyph: 'M', Behavior: BasicSeek},
	TeleMonkey:  {MaxHP: 3, BeatDelay: 2, Radius2: 36, Dig: -1, Priority: 44, Glyph: 'T', Behavior: BasicSeek},
	Assassin2:   {MaxHP: 3, BeatDelay: 1, Radius2: 64, Dig: -1, Priority: 84, Glyph: 'a', Behavior: BasicSeek},
	Banshee1:    {MaxHP: 2, BeatDelay: 2, Radius2: 49, Flying: true, Dig: -1, Priority: 22, Glyph: 'e', Behavior: BasicSeek},
	Banshee2:    {MaxHP: 2, BeatDelay: 2, Radius2: 49, Flying: true, Dig: -1, Priority: 23, Glyph: 'E', Behavior: BasicSeek},
	IceBeetle:   {MaxHP: 3, BeatDelay: 1, Radius2: 49, Dig: -1, Priority: 85, Glyph: 'i', Behavior: BasicSeek},
	FireBeetle:  {MaxHP: 3, BeatDelay: 1, Radius2: 49, Dig: -1, Priority: 86, Glyph: 'j', Behavior: BasicSeek},
	Goolem:      {MaxHP: 8, BeatDelay: 2, Radius2: 64, Dig: 2, Priority: 90, Glyph: 'O', Behavior: BasicSeek},
	MineStatue:  {MaxHP: 3, BeatDelay: 0, Radius2: 0, Dig: -1, Priority: 231, Glyph: 'x', Behavior: Nop},
	WindStatue:  {MaxHP: 3, BeatDelay: 0, Radius2: 0, Dig: -1, Priority: 232, Glyph: 'x', Behavior: Nop},
	BombStatue:  {MaxHP: 3, BeatDelay: 0, Radius2: 0, Dig: -1, Priority: 233, Glyph: 'x', Behavior: Nop},

	BombShroom:       {MaxHP: 2, BeatDelay: 0, Radius2: 0, Dig: -1, Priority: 212, Glyph: 'u', Behavior: Nop},
	BombShroomPrimed: {MaxHP: 2, BeatDelay: 0, Radius2: 0, Dig: -1, Priority: 6, Glyph: 'U', Behavior: BombTick},

	Warlock1:   {MaxHP: 1, BeatDelay: 2, Radius2: 81, Dig: -1, Priority: 91, Glyph: 'W', Behavior: BasicSeek},
	Warlock2:   {MaxHP: 2, BeatDelay: 2, Radius2: 81, Dig: -1, Priority: 92, Glyph: 'W', Behavior: BasicSeek},
	IceSlime:   {MaxHP: 4, BeatDelay: 3, Radius2: 36, Dig: -1, Priority: 101, Glyph: 'c', Behavior: BasicSeek},
	Yeti:       {MaxHP: 8, BeatDelay: 2, Radius2: 64, Dig: -1, Priority: 102, Glyph: 'Y', Behavior: BasicSeek},
	FireSlime:  {MaxHP: 4, BeatDelay: 3, Radius2: 36, Dig: -1, Priority: 103, Glyph: 'c', Behavior: BasicSeek},
	HellHound:  {MaxHP: 6, BeatDelay: 1, Radius2: 81, Dig: -1, Priority: 104, Glyph: 'h', Behavior: MooreSeek},
	Ghoul:      {MaxHP: 5, BeatDelay: 1, Radius2: 64, Dig: -1, Priority: 105, Glyph: 'g', Behavior: MooreSeek},
	Mummy:      {MaxHP: 6, BeatDelay: 2, Radius2: 64, Dig: -1, Priority: 106, Glyph: 'M', Behavior: MooreSeek},
	Bomber:     {MaxHP: 3, BeatDelay: 2, Radius2: 64, Dig: -1, Priority: 107, Glyph: 'X', Behavior: DiagonalSeek},
	Armadillo1: {MaxHP: 4, BeatDelay: 1, Radius2: 64, Dig: -1, Priority: 108, Glyph: 'd', Behavior: BasicSeek},
	Armadillo2: {MaxHP: 5, BeatDelay: 1, Radius2: 64, Dig: -1, Priority: 109, Glyph: 'D', Behavior: BasicSeek},
	Armadildo:  {MaxHP: 10, BeatDelay: 1, Radius2: 81, Dig: -1, Priority: 110, Glyph: 'A', Behavior: BasicSeek},
	Harpy:      {MaxHP: 4, BeatDelay: 1, Radius2: 81, Flying: true, Dig: -1, Priority: 111, Glyph: 'H', Behavior: BasicSeek},
	FreeSpider: {MaxHP: 2, BeatDelay: 1, Radius2: 36, Dig: -1, Priority: 45, Glyph: 'x', Behavior: BasicSeek},
	Spider:     {MaxHP: 2, BeatDelay: 1, Radius2: 36, Dig: -1, Priority: 46, Glyph: 'x', Behavior: BasicSeek},

	DireBat1: {MaxHP: 12, BeatDelay: 1, Radius2: 100, Flying: true, Dig: -1, Priority: 150, Glyph: 'V', Behavior: BatBehavior},
	DireBat2: {MaxHP: 16, BeatDelay: 1, Radius2: 100, Flying: true, Dig: -1, Priority: 151, Glyph: 'V', Behavior: BatBehavior},
	Ogre:     {MaxHP: 30, BeatDelay: 2, Radius2: 100, Dig: 4, Priority: 152, Glyph: 'P', Behavior: BasicSeek},

	Sarco1: {MaxHP: 14, BeatDelay: 2, Radius2: 64, Dig: -1, Priority: 160, Glyph: 'Z', Behavior: MooreSeek},
	Sarco2: {MaxHP: 18, BeatDelay: 2, Radius2: 64, Dig: -1, Priority: 161, Glyph: 'Z', Behavior: MooreSeek},
	Sarco3: {MaxHP: 22, BeatDelay: 2, Radius2: 64, Dig: -1, Priority: 162, Glyph: 'Z', Behavior: MooreSeek},
}

// Info returns the immutable class record for c. It panics on an unknown
// class: an unmapped MonsterClass reaching this point is a loader bug, not
// a runtime condition callers should branch on (see internal/invariant).
func Info(c MonsterClass) ClassInfo {
	info, ok := classInfos[c]
	if !ok {
		panic(unknownClassMessage(c))
	}
	return info
}

// Known reports whether c has a class record, for loader validation.
func Known(c MonsterClass) bool {
	_, ok := classInfos[c]
	return ok
}

func unknownClassMessage(c MonsterClass) string {
	return "classdata: unknown monster class " + strconv.Itoa(int(c))
}
