// Package skill implements hero ability progression: the four primary
// ability counters, the fixed-capacity secondary skill set, the seeded
// level-up selection algorithms, and the necromancy-derived bonuses.
//
// All randomized decisions accept a caller-supplied seed and are pure
// functions of (current state, seed); the package never reads a global
// random source.
package skill

// SecondarySkill identifies one of the 28 learnable secondary skills.
// Unknown is the sentinel for "no skill".
type SecondarySkill int

// Secondary skill identifiers. The declaration order is the canonical
// catalog order used for weighted level-up tables.
const (
	Unknown SecondarySkill = iota
	Pathfinding
	Archery
	Logistics
	Scouting
	Diplomacy
	Navigation
	Leadership
	Wisdom
	Mysticism
	Luck
	Ballistics
	EagleEye
	Necromancy
	Estates
	Offense
	AirMagic
	Armorer
	Artillery
	EarthMagic
	FireMagic
	FirstAid
	Intelligence
	Learning
	Resistance
	Scholar
	Sorcery
	Tactics
	WaterMagic
)

// AllSecondary lists every secondary skill in canonical catalog order.
// Weighted selections always push in this order so that cumulative-weight
// boundaries are identical across game instances.
var AllSecondary = []SecondarySkill{
	Pathfinding, Archery, Logistics, Scouting, Diplomacy, Navigation, Leadership,
	Wisdom, Mysticism, Luck, Ballistics, EagleEye, Necromancy, Estates,
	Offense, AirMagic, Armorer, Artillery, EarthMagic, FireMagic, FirstAid,
	Intelligence, Learning, Resistance, Scholar, Sorcery, Tactics, WaterMagic,
}

var secondaryNames = map[SecondarySkill]string{
	Pathfinding:  "Pathfinding",
	Archery:      "Archery",
	Logistics:    "Logistics",
	Scouting:     "Scouting",
	Diplomacy:    "Diplomacy",
	Navigation:   "Navigation",
	Leadership:   "Leadership",
	Wisdom:       "Wisdom",
	Mysticism:    "Mysticism",
	Luck:         "Luck",
	Ballistics:   "Ballistics",
	EagleEye:     "Eagle Eye",
	Necromancy:   "Necromancy",
	Estates:      "Estates",
	Offense:      "Offense",
	AirMagic:     "Air Magic",
	Armorer:      "Armorer",
	Artillery:    "Artillery",
	EarthMagic:   "Earth Magic",
	FireMagic:    "Fire Magic",
	FirstAid:     "First Aid",
	Intelligence: "Intelligence",
	Learning:     "Learning",
	Resistance:   "Resistance",
	Scholar:      "Scholar",
	Sorcery:      "Sorcery",
	Tactics:      "Tactics",
	WaterMagic:   "Water Magic",
}

// String returns the display name of s.
//
// Precondition: s must be a declared secondary skill. Requesting the name
// of an out-of-range identifier is a caller bug and panics.
func (s SecondarySkill) String() string {
	name, ok := secondaryNames[s]
	if !ok {
		panic("skill: SecondarySkill.String: precondition violated: unknown skill identifier")
	}
	return name
}

// Tier is the progression rank of a secondary skill.
type Tier int

// Tier ordinals. The ordinal values are part of the persisted layout and
// of TotalTierSum arithmetic; they must not be reordered.
const (
	TierNone Tier = iota
	TierBasic
	TierAdvanced
	TierExpert
)

// Advance returns the next tier, saturating at TierExpert.
func (t Tier) Advance() Tier {
	switch t {
	case TierNone:
		return TierBasic
	case TierBasic:
		return TierAdvanced
	case TierAdvanced:
		return TierExpert
	default:
		return t
	}
}

// String returns the display name of t.
//
// Precondition: t must be TierBasic, TierAdvanced, or TierExpert; asking
// for the name of TierNone or an out-of-range tier is a caller bug.
func (t Tier) String() string {
	switch t {
	case TierBasic:
		return "Basic"
	case TierAdvanced:
		return "Advanced"
	case TierExpert:
		return "Expert"
	default:
		panic("skill: Tier.String: precondition violated: tier has no display name")
	}
}

// clampTier maps out-of-range values to TierNone, mirroring the original
// setter behavior on deserialization.
func clampTier(t Tier) Tier {
	if t < TierNone || t > TierExpert {
		return TierNone
	}
	return t
}

// clampSkill maps out-of-range values to Unknown.
func clampSkill(s SecondarySkill) SecondarySkill {
	if s < Unknown || s > WaterMagic {
		return Unknown
	}
	return s
}
