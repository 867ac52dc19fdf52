package spell

import (
	"strings"

	"github.com/jerbear1235/fheroes2/internal/game/race"
)

// descriptor is one immutable catalog record. discounts and modifiers are
// indexed by the caster's tier in the matching school of magic; index 0
// (no tier) is always zero.
type descriptor struct {
	name        string
	school      School
	cost        uint32
	discounts   [4]uint32
	modifiers   [4]uint32
	movePoints  uint32
	minMove     uint32
	spriteIndex uint32
	extraValue  uint32
	description string
}

// catalog is the compiled-in spell table, indexed by Spell. Mass spell
// sprite indexes start from 60; the original assets lack most of them.
var catalog = [spellCount]descriptor{
	None:          {"Unknown", NoSchool, 0, [4]uint32{}, [4]uint32{}, 0, 0, 0, 0, "Unknown spell."},
	Fireball:      {"Fireball", FireMagic, 9, [4]uint32{0, 2, 2, 2}, [4]uint32{0, 10, 20, 50}, 0, 0, 8, 10, "Causes a giant fireball to strike the selected area, damaging all nearby creatures."},
	Fireblast:     {"Fireblast", FireMagic, 15, [4]uint32{0, 3, 3, 3}, [4]uint32{0, 15, 30, 60}, 0, 0, 9, 10, "An improved version of fireball, fireblast affects two hexes around the center point of the spell, rather than one."},
	LightningBolt: {"Lightning Bolt", AirMagic, 10, [4]uint32{0, 3, 3, 3}, [4]uint32{0, 10, 20, 50}, 0, 0, 4, 25, "Causes a bolt of electrical energy to strike the selected creature."},
	ChainLightning: {"Chain Lightning", AirMagic, 24, [4]uint32{0, 4, 4, 4}, [4]uint32{0, 25, 50, 100}, 0, 0, 5, 40,
		"Causes a bolt of electrical energy to strike a selected creature, then strike the nearest creature with half damage, then strike the NEXT nearest creature with half again damage, and so on, until it becomes too weak to be harmful. Warning: This spell can hit your own creatures!"},
	Teleport:      {"Teleport", WaterMagic, 15, [4]uint32{0, 3, 9, 12}, [4]uint32{}, 0, 0, 10, 0, "Teleports the creature you select to any open position on the battlefield."},
	Cure:          {"Cure", WaterMagic, 6, [4]uint32{0, 1, 1, 1}, [4]uint32{0, 10, 20, 30}, 0, 0, 6, 5, "Removes all negative spells cast upon one of your units, and restores up to %{count} HP per level of spell power."},
	MassCure:      {"Mass Cure", WaterMagic, 15, [4]uint32{0, 5, 5, 5}, [4]uint32{0, 6, 14, 24}, 0, 0, 60, 5, "Removes all negative spells cast upon your forces, and restores up to %{count} HP per level of spell power, per creature."},
	Resurrect:     {"Resurrect", EarthMagic, 12, [4]uint32{0, 4, 4, 4}, [4]uint32{0, 10, 20, 30}, 0, 0, 13, 50, "Resurrects creatures from a damaged or dead unit until end of combat."},
	ResurrectTrue: {"Resurrect True", EarthMagic, 20, [4]uint32{0, 4, 4, 4}, [4]uint32{0, 20, 40, 50}, 0, 0, 12, 50, "Resurrects creatures from a damaged or dead unit permanently."},
	Haste:         {"Haste", AirMagic, 6, [4]uint32{0, 1, 1, 1}, [4]uint32{0, 1, 1, 2}, 0, 0, 14, 2, "Increases the speed of any creature by %{count}."},
	MassHaste:     {"Mass Haste", AirMagic, 10, [4]uint32{0, 2, 2, 2}, [4]uint32{0, 0, 1, 1}, 0, 0, 61, 2, "Increases the speed of all of your creatures by %{count}."},
	Slow:          {"Slow", EarthMagic, 6, [4]uint32{0, 1, 1, 1}, [4]uint32{0, 0, 1, 2}, 0, 0, 1, 0, "Slows target to half movement rate."},
	MassSlow:      {"Mass Slow", EarthMagic, 15, [4]uint32{0, 3, 3, 3}, [4]uint32{0, 0, 1, 1}, 0, 0, 62, 0, "Slows all enemies to half movement rate."},
	Blind:         {"Blind", FireMagic, 10, [4]uint32{0, 2, 2, 2}, [4]uint32{}, 0, 0, 21, 0, "Clouds the affected creatures' eyes, preventing them from moving."},
	Bless:         {"Bless", WaterMagic, 5, [4]uint32{0, 1, 1, 1}, [4]uint32{0, 0, 1, 2}, 0, 0, 7, 0, "Causes the selected creatures to inflict maximum damage."},
	MassBless:     {"Mass Bless", WaterMagic, 12, [4]uint32{0, 3, 3, 3}, [4]uint32{0, 0, 1, 1}, 0, 0, 63, 0, "Causes all of your units to inflict maximum damage."},
	Stoneskin:     {"Stoneskin", EarthMagic, 3, [4]uint32{0, 1, 1, 1}, [4]uint32{0, 0, 1, 2}, 0, 0, 31, 3, "Magically increases the defense skill of the selected creatures."},
	Steelskin:     {"Steelskin", EarthMagic, 6, [4]uint32{0, 2, 2, 2}, [4]uint32{0, 0, 2, 3}, 0, 0, 30, 5, "Increases the defense skill of the targeted creatures. This is an improved version of Stoneskin."},
	Curse:         {"Curse", FireMagic, 6, [4]uint32{0, 1, 1, 1}, [4]uint32{0, 0, 1, 2}, 0, 0, 3, 0, "Causes the selected creatures to inflict minimum damage."},
	MassCurse:     {"Mass Curse", FireMagic, 12, [4]uint32{0, 2, 2, 2}, [4]uint32{0, 0, 1, 1}, 0, 0, 64, 0, "Causes all enemy troops to inflict minimum damage."},
	HolyWord:      {"Holy Word", AirMagic, 12, [4]uint32{0, 3, 3, 3}, [4]uint32{0, 3, 3, 3}, 0, 0, 22, 10, "Damages all undead in the battle."},
	HolyShout:     {"Holy Shout", AirMagic, 15, [4]uint32{0, 3, 3, 3}, [4]uint32{0, 3, 3, 3}, 0, 0, 23, 20, "Damages all undead in the battle. This is an improved version of Holy Word."},
	AntiMagic:     {"Anti-Magic", EarthMagic, 15, [4]uint32{0, 3, 3, 3}, [4]uint32{0, 0, 1, 2}, 0, 0, 17, 0, "Prevents harmful magic against the selected creatures."},
	Dispel:        {"Dispel Magic", WaterMagic, 5, [4]uint32{0, 1, 1, 1}, [4]uint32{}, 0, 0, 18, 0, "Removes all magic spells from a single target."},
	MassDispel:    {"Mass Dispel", WaterMagic, 12, [4]uint32{0, 3, 3, 3}, [4]uint32{}, 0, 0, 18, 0, "Removes all magic spells from all creatures."},
	Arrow:         {"Magic Arrow", AirMagic, 3, [4]uint32{0, 1, 1, 1}, [4]uint32{0, 10, 20, 30}, 0, 0, 38, 10, "Causes a magic arrow to strike the selected target."},
	Berserker:     {"Berserker", FireMagic, 12, [4]uint32{0, 4, 4, 4}, [4]uint32{}, 0, 0, 19, 0, "Causes a creature to attack its nearest neighbor."},
	Armageddon:    {"Armageddon", FireMagic, 24, [4]uint32{0, 4, 4, 4}, [4]uint32{0, 10, 40, 80}, 0, 0, 16, 50, "Holy terror strikes the battlefield, causing severe damage to all creatures."},
	ElementalStorm: {"Elemental Storm", FireMagic, 20, [4]uint32{0, 5, 5, 5}, [4]uint32{0, 20, 50, 60}, 0, 0, 11, 25,
		"Magical elements pour down on the battlefield, damaging all creatures."},
	MeteorShower: {"Meteor Shower", EarthMagic, 16, [4]uint32{0, 4, 4, 4}, [4]uint32{0, 20, 40, 70}, 0, 0, 24, 25, "A rain of rocks strikes an area of the battlefield, damaging all nearby creatures."},
	Paralyze:     {"Paralyze", FireMagic, 9, [4]uint32{0, 3, 3, 3}, [4]uint32{}, 0, 0, 20, 0, "The targeted creatures are paralyzed, unable to move or retaliate."},
	Hypnotize: {"Hypnotize", AirMagic, 18, [4]uint32{0, 3, 3, 3}, [4]uint32{0, 10, 20, 50}, 0, 0, 37, 25,
		"Brings a single enemy unit under your control if its hits are less than %{count} times the caster's spell power."},
	ColdRay:       {"Cold Ray", WaterMagic, 8, [4]uint32{0, 2, 2, 2}, [4]uint32{0, 10, 20, 50}, 0, 0, 36, 20, "Drains body heat from a single enemy unit."},
	ColdRing:      {"Cold Ring", WaterMagic, 9, [4]uint32{0, 3, 3, 3}, [4]uint32{0, 15, 30, 60}, 0, 0, 35, 10, "Drains body heat from all units surrounding the center point, but not including the center point."},
	DisruptingRay: {"Disrupting Ray", EarthMagic, 7, [4]uint32{0, 2, 2, 2}, [4]uint32{0, 0, 1, 2}, 0, 0, 34, 3, "Reduces the defense rating of an enemy unit by three."},
	DeathRipple:   {"Death Ripple", EarthMagic, 6, [4]uint32{0, 1, 1, 1}, [4]uint32{0, 0, 5, 10}, 0, 0, 29, 5, "Damages all living (non-undead) units in the battle."},
	DeathWave: {"Death Wave", EarthMagic, 10, [4]uint32{0, 2, 2, 2}, [4]uint32{0, 10, 20, 30}, 0, 0, 28, 10,
		"Damages all living (non-undead) units in the battle. This spell is an improved version of Death Ripple."},
	DragonSlayer: {"Dragon Slayer", FireMagic, 6, [4]uint32{0, 1, 1, 1}, [4]uint32{0, 10, 20, 30}, 0, 0, 32, 5, "Greatly increases a unit's attack skill vs. Dragons."},
	BloodLust:    {"Blood Lust", FireMagic, 5, [4]uint32{0, 1, 1, 1}, [4]uint32{0, 0, 1, 2}, 0, 0, 27, 3, "Increases a unit's attack skill."},
	AnimateDead:  {"Animate Dead", EarthMagic, 15, [4]uint32{0, 3, 3, 3}, [4]uint32{0, 10, 40, 70}, 0, 0, 25, 50, "Resurrects creatures from a damaged or dead undead unit permanently."},
	MirrorImage: {"Mirror Image", WaterMagic, 25, [4]uint32{0, 5, 5, 5}, [4]uint32{0, 4, 5, 6}, 0, 0, 26, 0,
		"Creates an illusionary unit that duplicates one of your existing units. This illusionary unit does the same damages as the original, but will vanish if it takes any damage."},
	Shield: {"Shield", EarthMagic, 5, [4]uint32{0, 2, 2, 2}, [4]uint32{0, 1, 2, 2}, 0, 0, 15, 2,
		"Halves damage received from ranged attacks for a single unit. Does not affect damage received from Turrets or Ballistae."},
	MassShield: {"Mass Shield", EarthMagic, 7, [4]uint32{0, 2, 2, 2}, [4]uint32{0, 0, 1, 1}, 0, 0, 65, 0,
		"Halves damage received from ranged attacks for all of your units. Does not affect damage received from Turrets or Ballistae."},
	SummonEElement: {"Summon Earth Elemental", EarthMagic, 30, [4]uint32{0, 10, 10, 10}, [4]uint32{0, 20, 50, 80}, 0, 0, 56, 3, "Summons Earth Elementals to fight for your army."},
	SummonAElement: {"Summon Air Elemental", AirMagic, 30, [4]uint32{0, 10, 10, 10}, [4]uint32{0, 20, 50, 80}, 0, 0, 57, 3, "Summons Air Elementals to fight for your army."},
	SummonFElement: {"Summon Fire Elemental", FireMagic, 30, [4]uint32{0, 10, 10, 10}, [4]uint32{0, 20, 50, 80}, 0, 0, 58, 3, "Summons Fire Elementals to fight for your army."},
	SummonWElement: {"Summon Water Elemental", WaterMagic, 30, [4]uint32{0, 10, 10, 10}, [4]uint32{0, 20, 50, 80}, 0, 0, 59, 3, "Summons Water Elementals to fight for your army."},
	Earthquake:     {"Earthquake", EarthMagic, 15, [4]uint32{0, 5, 5, 5}, [4]uint32{0, 0, 1, 2}, 0, 0, 33, 0, "Damages castle walls."},
	ViewMines:      {"View Mines", EarthMagic, 1, [4]uint32{0, 1, 1, 1}, [4]uint32{}, 0, 0, 39, 0, "Causes all mines across the land to become visible."},
	ViewResources:  {"View Resources", EarthMagic, 1, [4]uint32{0, 1, 1, 1}, [4]uint32{}, 0, 0, 40, 0, "Causes all resources across the land to become visible."},
	ViewArtifacts:  {"View Artifacts", AirMagic, 2, [4]uint32{0, 1, 1, 1}, [4]uint32{}, 0, 0, 41, 0, "Causes all artifacts across the land to become visible."},
	ViewTowns:      {"View Towns", AirMagic, 2, [4]uint32{0, 1, 1, 1}, [4]uint32{}, 0, 0, 42, 0, "Causes all towns and castles across the land to become visible."},
	ViewHeroes:     {"View Heroes", AirMagic, 2, [4]uint32{0, 1, 1, 1}, [4]uint32{}, 0, 0, 43, 0, "Causes all Heroes across the land to become visible."},
	ViewAll:        {"View All", AirMagic, 3, [4]uint32{0, 1, 1, 1}, [4]uint32{}, 0, 0, 44, 0, "Causes the entire land to become visible."},
	IdentifyHero:   {"Identify Hero", WaterMagic, 3, [4]uint32{0, 2, 2, 2}, [4]uint32{}, 0, 0, 45, 0, "Allows the caster to view detailed information on enemy Heroes."},
	SummonBoat: {"Summon Boat", WaterMagic, 5, [4]uint32{0, 3, 3, 3}, [4]uint32{}, 0, 0, 46, 0,
		"Summons the nearest unoccupied, friendly boat to an adjacent shore location. A friendly boat is one which you just built or were the most recent player to occupy."},
	DimensionDoor: {"Dimension Door", AirMagic, 10, [4]uint32{}, [4]uint32{}, 225, 69, 47, 0, "Allows the caster to magically transport to a nearby location."},
	TownGate:      {"Town Gate", EarthMagic, 10, [4]uint32{}, [4]uint32{}, 225, 69, 48, 0, "Returns the caster to any town or castle currently owned."},
	TownPortal:    {"Town Portal", EarthMagic, 20, [4]uint32{}, [4]uint32{}, 225, 69, 49, 0, "Returns the hero to the town or castle of choice, provided it is controlled by you."},
	Visions:       {"Visions", AirMagic, 6, [4]uint32{}, [4]uint32{}, 0, 0, 50, 3, "Visions predicts the likely outcome of an encounter with a neutral army camp."},
	Haunt: {"Haunt", NoSchool, 8, [4]uint32{}, [4]uint32{}, 0, 0, 51, 4,
		"Haunts a mine you control with Ghosts. This mine stops producing resources. (If I can't keep it, nobody will!)"},
	SetEGuardian: {"Set Earth Guardian", EarthMagic, 15, [4]uint32{0, 5, 5, 5}, [4]uint32{0, 40, 60, 90}, 0, 0, 52, 4, "Sets Earth Elementals to guard a mine against enemy armies."},
	SetAGuardian: {"Set Air Guardian", AirMagic, 15, [4]uint32{0, 5, 5, 5}, [4]uint32{0, 40, 60, 90}, 0, 0, 53, 4, "Sets Air Elementals to guard a mine against enemy armies."},
	SetFGuardian: {"Set Fire Guardian", FireMagic, 15, [4]uint32{0, 5, 5, 5}, [4]uint32{0, 40, 60, 90}, 0, 0, 54, 4, "Sets Fire Elementals to guard a mine against enemy armies."},
	SetWGuardian: {"Set Water Guardian", WaterMagic, 15, [4]uint32{0, 5, 5, 5}, [4]uint32{0, 40, 60, 90}, 0, 0, 55, 4, "Sets Water Elementals to guard a mine against enemy armies."},
	Random:       {"Random", NoSchool, 1, [4]uint32{}, [4]uint32{}, 0, 0, 0, 0, "Random"},
	Random1:      {"Random 1", NoSchool, 1, [4]uint32{}, [4]uint32{}, 0, 0, 0, 0, "Random 1"},
	Random2:      {"Random 2", NoSchool, 1, [4]uint32{}, [4]uint32{}, 0, 0, 0, 0, "Random 2"},
	Random3:      {"Random 3", NoSchool, 1, [4]uint32{}, [4]uint32{}, 0, 0, 0, 0, "Random 3"},
	Random4:      {"Random 4", NoSchool, 1, [4]uint32{}, [4]uint32{}, 0, 0, 0, 0, "Random 4"},
	Random5:      {"Random 5", NoSchool, 1, [4]uint32{}, [4]uint32{}, 0, 0, 0, 0, "Random 5"},
	Petrify: {"Petrification", NoSchool, 1, [4]uint32{}, [4]uint32{}, 0, 0, 66, 0,
		"Turns the affected creature into stone. A petrified creature receives half damage from a direct attack."},
}

// record returns the catalog entry for s.
//
// Precondition: s must be a declared identifier; out-of-range lookups are
// caller bugs.
func record(s Spell) *descriptor {
	if s < None || s >= spellCount {
		panic("spell: record: precondition violated: spell identifier out of range")
	}
	return &catalog[s]
}

// Name returns the display name key of s.
func (s Spell) Name() string { return record(s).name }

// Description returns the description key of s.
func (s Spell) Description() string { return record(s).description }

// SchoolOfMagic returns the school s belongs to.
func (s Spell) SchoolOfMagic() School { return record(s).school }

// BaseCost returns the unmodified spell point cost of s.
func (s Spell) BaseCost() uint32 { return record(s).cost }

// Discounts returns the per-school-tier spell point discounts for s.
// Index 0 (no tier) is always zero.
func (s Spell) Discounts() [4]uint32 { return record(s).discounts }

// Modifiers returns the per-school-tier effect modifiers for s. Index 0
// (no tier) is always zero.
func (s Spell) Modifiers() [4]uint32 { return record(s).modifiers }

// MovePoints returns the movement points consumed by casting s.
func (s Spell) MovePoints() uint32 { return record(s).movePoints }

// MinMovePoints returns the minimum movement points required to cast s.
func (s Spell) MinMovePoints() uint32 { return record(s).minMove }

// SpriteIndex returns the spell book sprite index of s.
func (s Spell) SpriteIndex() uint32 { return record(s).spriteIndex }

// ExtraValue returns the raw polymorphic catalog value. Prefer the typed
// Damage, Restore, and Resurrect accessors.
func (s Spell) ExtraValue() uint32 { return record(s).extraValue }

// ParseName resolves a display name to a spell identifier. Matching is
// case-insensitive; the second result is false when no spell carries the
// name.
func ParseName(name string) (Spell, bool) {
	want := strings.ToLower(strings.TrimSpace(name))
	if want == "" {
		return None, false
	}
	for s := None; s < spellCount; s++ {
		if strings.ToLower(catalog[s].name) == want {
			return s, true
		}
	}
	return None, false
}

// WeightForRace returns the drafting weight of s for race r: 0 for spells
// unsuitable for the race (undead-damage spells for necromancers,
// undead-only spells for everyone else) and for adventure effects that are
// never drafted, 10 for everything else.
func (s Spell) WeightForRace(r race.Race) uint32 {
	switch s {
	case HolyWord, HolyShout:
		if r == race.Necromancer {
			return 0
		}
	case DeathRipple, DeathWave:
		if r != race.Necromancer {
			return 0
		}
	case SummonEElement, SummonAElement, SummonFElement, SummonWElement,
		TownPortal, Visions, Haunt,
		SetEGuardian, SetAGuardian, SetFGuardian, SetWGuardian:
		return 0
	}
	return 10
}
