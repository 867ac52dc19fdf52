package skill

import "github.com/jerbear1235/fheroes2/internal/game/race"

// PrimaryValues holds one row of a primary ability table: either baseline
// scores or level-up weights, depending on context.
type PrimaryValues struct {
	Attack    uint32
	Defense   uint32
	Power     uint32
	Knowledge uint32
}

// TierValues holds the numeric effect of one secondary skill per tier.
type TierValues struct {
	Basic    uint32
	Advanced uint32
	Expert   uint32
}

// ForTier returns the effect value for t, or 0 for TierNone and
// out-of-range tiers.
func (v TierValues) ForTier(t Tier) uint32 {
	switch t {
	case TierBasic:
		return v.Basic
	case TierAdvanced:
		return v.Advanced
	case TierExpert:
		return v.Expert
	default:
		return 0
	}
}

// RaceStats is the per-race tuning record supplied by a StatsProvider.
//
// MatureLevel is the character level at or above which the mature primary
// weight table applies. SecondaryWeights is keyed by skill identifier
// rather than positional, so extending the catalog cannot silently
// misalign a table.
type RaceStats struct {
	CaptainPrimary   PrimaryValues
	HeroPrimary      PrimaryValues
	InitialSpell     int32
	InitialSecondary map[SecondarySkill]Tier
	MatureLevel      int
	PrimaryUnder     PrimaryValues
	PrimaryOver      PrimaryValues
	SecondaryWeights map[SecondarySkill]uint32
}

// SecondaryWeight returns the mature level-up weight for s, 0 if absent.
func (rs *RaceStats) SecondaryWeight(s SecondarySkill) uint32 {
	return rs.SecondaryWeights[s]
}

// StatsProvider supplies the static per-race and per-skill tuning tables.
// A missing race or skill row is not an error: callers degrade to
// zero-valued results or no-ops.
type StatsProvider interface {
	// RaceStats returns the tuning record for r, or (nil, false) when the
	// provider has no record for that race.
	RaceStats(r race.Race) (*RaceStats, bool)

	// SkillValues returns the per-tier effect values for s, or
	// (nil, false) when no table entry exists.
	SkillValues(s SecondarySkill) (*TierValues, bool)

	// WitchsHutSkills returns the set of skills eligible for random
	// witch's hut draws, in canonical catalog order.
	WitchsHutSkills() []SecondarySkill
}
