// Package hero assembles the progression pieces into a playable hero
// aggregate: primary and secondary skills, a spell book, carried artifact
// bonuses, and the kingdom lookups that feed necromancy.
package hero

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/jerbear1235/fheroes2/internal/game/artifact"
	"github.com/jerbear1235/fheroes2/internal/game/race"
	"github.com/jerbear1235/fheroes2/internal/game/skill"
	"github.com/jerbear1235/fheroes2/internal/game/spell"
)

// Kingdom supplies the owning kingdom's state a hero's progression reads.
type Kingdom interface {
	// NecromancyShrineCount returns the number of necromancy shrines the
	// kingdom has built.
	NecromancyShrineCount() uint32
}

// noKingdom stands in for an unowned hero.
type noKingdom struct{}

func (noKingdom) NecromancyShrineCount() uint32 { return 0 }

// Hero is one hero or garrison captain. The zero value is not usable;
// construct with New.
type Hero struct {
	ID         uuid.UUID
	Name       string
	Race       race.Race
	Role       skill.Role
	Level      int
	Experience uint32

	Primary     skill.Primary
	Skills      *skill.SecSkills
	Artifacts   *artifact.Bag
	SpellBook   []spell.Spell
	SpellPoints uint32

	kingdom  Kingdom
	provider skill.StatsProvider
}

// New creates a level 1 hero of the given race with the race's baseline
// primary abilities, initial secondary skills, and starting spell.
//
// Precondition: provider must be non-nil.
func New(name string, r race.Race, role skill.Role, provider skill.StatsProvider) *Hero {
	if provider == nil {
		panic("hero: New: precondition violated: provider must be non-nil")
	}
	h := &Hero{
		ID:        uuid.New(),
		Name:      name,
		Race:      r,
		Role:      role,
		Level:     1,
		Skills:    skill.SecSkillsFromRace(r, provider),
		Artifacts: artifact.NewBag(),
		kingdom:   noKingdom{},
		provider:  provider,
	}
	h.Primary.LoadDefaults(role, r, provider)
	if sp := spell.Spell(skill.InitialSpell(r, provider)); sp != spell.None && sp.IsValid() {
		h.SpellBook = append(h.SpellBook, sp)
	}
	h.SpellPoints = h.MaxSpellPoints()
	return h
}

// State is the persistable snapshot of a hero, free of the runtime
// collaborators New wires in.
type State struct {
	ID          uuid.UUID
	Name        string
	Race        race.Race
	Role        skill.Role
	Level       int
	Experience  uint32
	Primary     skill.Primary
	Skills      *skill.SecSkills
	SpellBook   []spell.Spell
	SpellPoints uint32
}

// Restore rebuilds a hero from a persisted snapshot.
//
// Precondition: provider must be non-nil. A nil Skills field restores to an
// empty skill set.
func Restore(st State, provider skill.StatsProvider) *Hero {
	if provider == nil {
		panic("hero: Restore: precondition violated: provider must be non-nil")
	}
	skills := st.Skills
	if skills == nil {
		skills = skill.NewSecSkills()
	}
	return &Hero{
		ID:          st.ID,
		Name:        st.Name,
		Race:        st.Race,
		Role:        st.Role,
		Level:       st.Level,
		Experience:  st.Experience,
		Primary:     st.Primary,
		Skills:      skills,
		Artifacts:   artifact.NewBag(),
		SpellBook:   st.SpellBook,
		SpellPoints: st.SpellPoints,
		kingdom:     noKingdom{},
		provider:    provider,
	}
}

// Snapshot extracts the persistable state of the hero.
func (h *Hero) Snapshot() State {
	return State{
		ID:          h.ID,
		Name:        h.Name,
		Race:        h.Race,
		Role:        h.Role,
		Level:       h.Level,
		Experience:  h.Experience,
		Primary:     h.Primary,
		Skills:      h.Skills,
		SpellBook:   h.SpellBook,
		SpellPoints: h.SpellPoints,
	}
}

// AttachKingdom sets the owning kingdom. A nil kingdom detaches the hero.
func (h *Hero) AttachKingdom(k Kingdom) {
	if k == nil {
		k = noKingdom{}
	}
	h.kingdom = k
}

// Provider returns the tuning table provider the hero was built with.
func (h *Hero) Provider() skill.StatsProvider { return h.provider }

// MaxSpellPoints returns the hero's spell point ceiling, ten per point of
// knowledge.
func (h *Hero) MaxSpellPoints() uint32 {
	return h.Primary.Knowledge * 10
}

// LearnSpell adds s to the spell book unless already known.
//
// Precondition: s must be a castable spell, not a random placeholder.
func (h *Hero) LearnSpell(s spell.Spell) error {
	if !s.IsValid() || s.IsPlaceholder() {
		return fmt.Errorf("hero: cannot learn invalid spell %d", int(s))
	}
	for _, known := range h.SpellBook {
		if known == s {
			return nil
		}
	}
	h.SpellBook = append(h.SpellBook, s)
	return nil
}

// KnowsSpell reports whether s is in the spell book.
func (h *Hero) KnowsSpell(s spell.Spell) bool {
	for _, known := range h.SpellBook {
		if known == s {
			return true
		}
	}
	return false
}

// schoolSkill maps a school of magic to the secondary skill that governs
// it.
func schoolSkill(sc spell.School) (skill.SecondarySkill, bool) {
	switch sc {
	case spell.FireMagic:
		return skill.FireMagic, true
	case spell.AirMagic:
		return skill.AirMagic, true
	case spell.EarthMagic:
		return skill.EarthMagic, true
	case spell.WaterMagic:
		return skill.WaterMagic, true
	default:
		return skill.Unknown, false
	}
}

// SpellCostReduction returns the spell point discount the hero's tier in
// the spell's school of magic grants, 0 for schoolless spells and untrained
// schools.
func (h *Hero) SpellCostReduction(s spell.Spell) int32 {
	sec, ok := schoolSkill(s.SchoolOfMagic())
	if !ok {
		return 0
	}
	tier := h.Skills.TierOf(sec)
	return int32(s.Discounts()[tier])
}

// SchoolModifier returns the effect modifier the hero's tier in the
// spell's school of magic grants.
func (h *Hero) SchoolModifier(s spell.Spell) int {
	sec, ok := schoolSkill(s.SchoolOfMagic())
	if !ok {
		return 0
	}
	tier := h.Skills.TierOf(sec)
	return int(s.Modifiers()[tier])
}

// ArtifactPercentages returns the carried cost-reduction percentages for
// the bonus category, in pickup order.
func (h *Hero) ArtifactPercentages(t artifact.BonusType) []int32 {
	return h.Artifacts.MultipliedPercentages(t)
}

// SpellCost returns the hero's effective spell point cost for s.
func (h *Hero) SpellCost(s spell.Spell) int32 {
	return spell.Cost(s, h)
}

// CanCast reports whether the hero knows s and has the points to cast it.
func (h *Hero) CanCast(s spell.Spell) bool {
	if !h.KnowsSpell(s) {
		return false
	}
	cost := h.SpellCost(s)
	return cost <= 0 || uint32(cost) <= h.SpellPoints
}

// NecromancyShrineCount implements the necromancy source lookup.
func (h *Hero) NecromancyShrineCount() uint32 {
	return h.kingdom.NecromancyShrineCount()
}

// HasNecromancyArtifact implements the necromancy source lookup.
func (h *Hero) HasNecromancyArtifact() bool {
	return h.Artifacts.HasBonus(artifact.NecromancySkill)
}

// SecondarySkillValue implements the necromancy source lookup.
func (h *Hero) SecondarySkillValue(s skill.SecondarySkill) uint32 {
	return h.Skills.EffectValue(s, h.provider)
}

// NecromancyPercent returns the hero's skeleton conversion percentage.
func (h *Hero) NecromancyPercent() uint32 {
	return skill.NecromancyPercent(h)
}

// StrategicSpellValue scores a known spell for AI casting decisions using
// the hero's current points, power, and school training.
func (h *Hero) StrategicSpellValue(s spell.Spell, armyStrength float64, monsters spell.MonsterStats) float64 {
	return spell.StrategicValue(s, armyStrength, h.SpellPoints, int(h.Primary.Power), h.SchoolModifier(s), monsters)
}
