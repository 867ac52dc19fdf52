package spell

import "github.com/jerbear1235/fheroes2/internal/game/artifact"

// Caster is the read-only view of a spell caster the cost calculation
// needs. The school discount is derived from the caster's secondary skill
// tiers; the percentage list comes from the caster's equipment.
type Caster interface {
	// SpellCostReduction returns the caster's school-of-magic discount for
	// the given spell.
	SpellCostReduction(s Spell) int32

	// ArtifactPercentages returns the successive cost-reduction
	// percentages (each in [0, 100]) the caster's equipment grants for
	// the bonus category, in application order.
	ArtifactPercentages(t artifact.BonusType) []int32
}

// costBonusType maps a spell to its equipment cost-reduction category,
// or (0, false) when no category applies.
func costBonusType(s Spell) (artifact.BonusType, bool) {
	switch s {
	case Bless, MassBless:
		return artifact.BlessCostReduction, true
	case SummonEElement, SummonAElement, SummonFElement, SummonWElement:
		return artifact.SummoningCostReduction, true
	case Curse, MassCurse:
		return artifact.CurseCostReduction, true
	}
	if s.IsMindInfluence() {
		return artifact.MindInfluenceCostReduction, true
	}
	return 0, false
}

// Cost returns the caster's effective spell point cost for s. A nil caster
// yields the unmodified base cost.
//
// The school discount is subtracted first; when an equipment bonus
// category applies, each percentage is then applied successively with
// integer truncation and the result floors at 1. A pure school discount
// with no applicable bonus category is returned as-is, even when it drives
// the cost to zero or below.
func Cost(s Spell, caster Caster) int32 {
	base := int32(s.BaseCost())
	if caster == nil {
		return base
	}

	cost := base - caster.SpellCostReduction(s)

	bonus, ok := costBonusType(s)
	if !ok {
		return cost
	}

	for _, pct := range caster.ArtifactPercentages(bonus) {
		if pct < 0 || pct > 100 {
			panic("spell: Cost: precondition violated: percentage outside [0, 100]")
		}
		cost = cost * (100 - pct) / 100
	}

	if cost < 1 {
		return 1
	}
	return cost
}
