// Package stats supplies the static per-race and per-skill tuning tables
// the skill package consumes. Tables come either from the compiled-in
// defaults or from YAML files, and are read-only once the registry is
// built.
package stats

import (
	"github.com/jerbear1235/fheroes2/internal/game/race"
	"github.com/jerbear1235/fheroes2/internal/game/skill"
)

// Registry implements skill.StatsProvider over in-memory tables.
type Registry struct {
	races     map[race.Race]*skill.RaceStats
	values    map[skill.SecondarySkill]skill.TierValues
	witchsHut []skill.SecondarySkill
}

// NewRegistry returns an empty Registry. Lookups on an empty registry
// degrade to (nil, false) / zero results, which callers treat as no-ops.
func NewRegistry() *Registry {
	return &Registry{
		races:  make(map[race.Race]*skill.RaceStats),
		values: make(map[skill.SecondarySkill]skill.TierValues),
	}
}

// RegisterRace adds or replaces the tuning record for r.
//
// Precondition: rs must be non-nil.
func (reg *Registry) RegisterRace(r race.Race, rs *skill.RaceStats) {
	if rs == nil {
		panic("stats: Registry.RegisterRace: precondition violated: stats must be non-nil")
	}
	reg.races[r] = rs
}

// RegisterSkillValues adds or replaces the per-tier effect values for s.
func (reg *Registry) RegisterSkillValues(s skill.SecondarySkill, v skill.TierValues) {
	reg.values[s] = v
}

// SetWitchsHutSkills replaces the witch's hut eligibility set.
func (reg *Registry) SetWitchsHutSkills(skills []skill.SecondarySkill) {
	reg.witchsHut = skills
}

// RaceStats returns the tuning record for r, or (nil, false) when the
// registry has none.
func (reg *Registry) RaceStats(r race.Race) (*skill.RaceStats, bool) {
	rs, ok := reg.races[r]
	return rs, ok
}

// SkillValues returns the per-tier effect values for s, or (nil, false).
func (reg *Registry) SkillValues(s skill.SecondarySkill) (*skill.TierValues, bool) {
	v, ok := reg.values[s]
	if !ok {
		return nil, false
	}
	return &v, true
}

// WitchsHutSkills returns the witch's hut eligibility set in canonical
// catalog order.
func (reg *Registry) WitchsHutSkills() []skill.SecondarySkill {
	return reg.witchsHut
}
