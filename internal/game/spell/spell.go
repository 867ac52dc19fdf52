// Package spell implements the static spell catalog and the two numeric
// heuristics built on it: effective cast cost and strategic value. The
// catalog is compiled-in and read-only; concurrent reads are safe.
package spell

// Spell is a dense integer spell identifier indexing the static catalog.
type Spell int

// Spell identifiers. The order is the catalog order and is part of the
// persisted layout; identifiers serialize as their integer value.
const (
	None Spell = iota
	Fireball
	Fireblast
	LightningBolt
	ChainLightning
	Teleport
	Cure
	MassCure
	Resurrect
	ResurrectTrue
	Haste
	MassHaste
	Slow
	MassSlow
	Blind
	Bless
	MassBless
	Stoneskin
	Steelskin
	Curse
	MassCurse
	HolyWord
	HolyShout
	AntiMagic
	Dispel
	MassDispel
	Arrow
	Berserker
	Armageddon
	ElementalStorm
	MeteorShower
	Paralyze
	Hypnotize
	ColdRay
	ColdRing
	DisruptingRay
	DeathRipple
	DeathWave
	DragonSlayer
	BloodLust
	AnimateDead
	MirrorImage
	Shield
	MassShield
	SummonEElement
	SummonAElement
	SummonFElement
	SummonWElement
	Earthquake
	ViewMines
	ViewResources
	ViewArtifacts
	ViewTowns
	ViewHeroes
	ViewAll
	IdentifyHero
	SummonBoat
	DimensionDoor
	TownGate
	TownPortal
	Visions
	Haunt
	SetEGuardian
	SetAGuardian
	SetFGuardian
	SetWGuardian

	// Random placeholders reserve identifier slots for map objects that
	// draft a spell at runtime; they never resolve to a castable spell.
	Random
	Random1
	Random2
	Random3
	Random4
	Random5

	// Petrify is the non-selectable terminal entry.
	Petrify

	spellCount
)

// IsValid reports whether s names a concrete or placeholder spell other
// than None.
func (s Spell) IsValid() bool {
	return s != None && s < spellCount
}

// IsPlaceholder reports whether s is a reserved identifier (a random
// draft slot or the terminal entry) rather than a castable spell.
func (s Spell) IsPlaceholder() bool {
	return s >= Random && s <= Petrify
}

// School is the elemental school of magic a spell belongs to, used for
// cost discount matching.
type School int

// Schools of magic.
const (
	NoSchool School = iota
	FireMagic
	AirMagic
	EarthMagic
	WaterMagic
)
