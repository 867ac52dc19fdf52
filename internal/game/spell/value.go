package spell

// MonsterStats supplies the creature strength lookup needed to value
// summoning spells; it is an external collaborator of this package.
type MonsterStats interface {
	// SummonStrength returns the per-unit strength of the creature the
	// given summoning spell produces.
	SummonStrength(s Spell) float64
}

const maxCastsConsidered = 10

// StrategicValue estimates the tactical worth of s for AI decision making.
// armyStrength is the caster's current army strength, currentSpellPoints
// funds repeated casts, spellPower scales damage, and schoolModifier is
// the caster's school effect bonus for s.
//
// Precondition: monsters must be non-nil when s is a summoning spell.
func StrategicValue(s Spell, armyStrength float64, currentSpellPoints uint32, spellPower int, schoolModifier int, monsters MonsterStats) float64 {
	cost := s.BaseCost()
	var casts uint32
	if cost > 0 {
		casts = currentSpellPoints / cost
		if casts > maxCastsConsidered {
			casts = maxCastsConsidered
		}
	}

	// Quadratic diminishing returns on repeat casts, up to x5 at 10 uses.
	amountModifier := float64(casts) - 0.05*float64(casts)*float64(casts)
	if casts == 1 {
		amountModifier = 1
	}

	if s.IsAdventure() {
		switch s {
		case DimensionDoor:
			return 500 * amountModifier
		case TownGate, TownPortal:
			return 250 * amountModifier
		case ViewAll:
			return 500
		}
		return 0
	}

	if s.Damage() > 0 {
		// Benchmark: Lightning at 20 power and 20 knowledge (maximum
		// uses) values at 2500.
		return amountModifier * (float64(s.Damage())*float64(spellPower) + float64(schoolModifier))
	}

	// High impact spells that can turn the tide of a battle.
	if s.Resurrect() > 0 || s.IsMassActions() || s == Blind || s == Paralyze {
		return armyStrength * 0.1 * amountModifier
	}

	if s.IsSummon() {
		if monsters == nil {
			panic("spell: StrategicValue: precondition violated: monsters required for summoning spells")
		}
		// A summoned stack may be killed within the same turn, so summons
		// are valued per single cast.
		return monsters.SummonStrength(s) * float64(s.ExtraValue()) * float64(spellPower)
	}

	return armyStrength * 0.04 * amountModifier
}
