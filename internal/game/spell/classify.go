package spell

// Level returns the spell book level (1-5) of s, derived from the fixed
// identifier classification. Non-leveled utility entries, None, and the
// random placeholders return 0.
func (s Spell) Level() int {
	switch s {
	case Bless, BloodLust, Cure, Curse, Dispel, Haste, Arrow, Shield, Slow, Stoneskin,
		ViewMines, ViewResources:
		return 1

	case Blind, ColdRay, DeathRipple, DisruptingRay, DragonSlayer, LightningBolt, Steelskin,
		Haunt, SummonBoat, ViewArtifacts, Visions:
		return 2

	case AnimateDead, AntiMagic, ColdRing, DeathWave, Earthquake, Fireball, HolyWord,
		MassBless, MassCurse, MassDispel, MassHaste, Paralyze, Teleport,
		IdentifyHero, ViewHeroes, ViewTowns:
		return 3

	case Berserker, ChainLightning, ElementalStorm, Fireblast, HolyShout, MassCure,
		MassShield, MassSlow, MeteorShower, Resurrect,
		SetEGuardian, SetAGuardian, SetFGuardian, SetWGuardian, TownGate, ViewAll:
		return 4

	case Armageddon, Hypnotize, MirrorImage, ResurrectTrue,
		SummonEElement, SummonAElement, SummonFElement, SummonWElement,
		DimensionDoor, TownPortal:
		return 5
	}

	return 0
}

// IsCombat reports whether s is castable in combat.
func (s Spell) IsCombat() bool {
	switch s {
	case None, ViewMines, ViewResources, ViewArtifacts, ViewTowns, ViewHeroes, ViewAll,
		IdentifyHero, SummonBoat, DimensionDoor, TownGate, TownPortal, Visions, Haunt,
		SetEGuardian, SetAGuardian, SetFGuardian, SetWGuardian:
		return false
	}
	return true
}

// IsAdventure reports whether s is castable on the adventure map.
func (s Spell) IsAdventure() bool {
	return !s.IsCombat()
}

// IsGuardianType reports whether s installs a map-object guardian.
func (s Spell) IsGuardianType() bool {
	switch s {
	case Haunt, SetEGuardian, SetAGuardian, SetFGuardian, SetWGuardian:
		return true
	}
	return false
}

// damageSpells is the fixed set of direct-damage identifiers. Damage is
// non-zero only for these, even when ExtraValue carries another meaning.
func (s Spell) isDamageSpell() bool {
	switch s {
	case Arrow, Fireball, Fireblast, LightningBolt, ColdRing, DeathWave, HolyWord,
		ChainLightning, Armageddon, ElementalStorm, MeteorShower, ColdRay, HolyShout,
		DeathRipple:
		return true
	}
	return false
}

// Damage returns the base damage per spell power for direct-damage spells,
// 0 for all others.
func (s Spell) Damage() uint32 {
	if s.isDamageSpell() {
		return record(s).extraValue
	}
	return 0
}

// Restore returns the HP healed per spell power for curing spells, 0 for
// all others.
func (s Spell) Restore() uint32 {
	switch s {
	case Cure, MassCure:
		return record(s).extraValue
	}
	return 0
}

// Resurrect returns the HP raised per spell power for resurrection spells,
// 0 for all others.
func (s Spell) Resurrect() uint32 {
	switch s {
	case AnimateDead, Resurrect, ResurrectTrue:
		return record(s).extraValue
	}
	return 0
}

// IsMindInfluence reports whether s affects a creature's mind; such spells
// share an equipment cost-reduction category.
func (s Spell) IsMindInfluence() bool {
	switch s {
	case Blind, Paralyze, Berserker, Hypnotize:
		return true
	}
	return false
}

// IsUndeadOnly reports whether s affects only undead units.
func (s Spell) IsUndeadOnly() bool {
	switch s {
	case AnimateDead, HolyWord, HolyShout:
		return true
	}
	return false
}

// IsAliveOnly reports whether s affects only living units.
func (s Spell) IsAliveOnly() bool {
	switch s {
	case Bless, MassBless, Curse, MassCurse, DeathRipple, DeathWave, Resurrect, ResurrectTrue:
		return true
	}
	return false
}

// IsSingleTarget reports whether s targets exactly one unit.
func (s Spell) IsSingleTarget() bool {
	switch s {
	case LightningBolt, Teleport, Cure, Resurrect, ResurrectTrue, Haste, Slow, Blind,
		Bless, Stoneskin, Steelskin, Curse, AntiMagic, Dispel, Arrow, Berserker,
		Paralyze, Hypnotize, ColdRay, DisruptingRay, DragonSlayer, BloodLust,
		AnimateDead, MirrorImage, Shield:
		return true
	}
	return false
}

// IsSummon reports whether s summons a new unit stack.
func (s Spell) IsSummon() bool {
	switch s {
	case SummonEElement, SummonAElement, SummonFElement, SummonWElement:
		return true
	}
	return false
}

// IsEffectDispel reports whether s removes magic effects from its targets.
func (s Spell) IsEffectDispel() bool {
	switch s {
	case Cure, MassCure, Dispel, MassDispel:
		return true
	}
	return false
}

// IsApplyToAnyTroops reports whether s may target units of either side.
func (s Spell) IsApplyToAnyTroops() bool {
	switch s {
	case Dispel, MassDispel:
		return true
	}
	return false
}

// IsApplyToFriends reports whether s targets the caster's own units.
func (s Spell) IsApplyToFriends() bool {
	switch s {
	case Bless, BloodLust, Cure, Haste, Shield, Stoneskin, DragonSlayer, Steelskin,
		AnimateDead, AntiMagic, Teleport, Resurrect, MirrorImage, ResurrectTrue,
		MassBless, MassCure, MassHaste, MassShield:
		return true
	}
	return false
}

// IsApplyToEnemies reports whether s targets enemy units.
func (s Spell) IsApplyToEnemies() bool {
	switch s {
	case MassSlow, MassCurse,
		Curse, Arrow, Slow, Blind, ColdRay, DisruptingRay, LightningBolt,
		ChainLightning, Paralyze, Berserker, Hypnotize:
		return true
	}
	return false
}

// IsMassActions reports whether s affects every eligible unit at once.
func (s Spell) IsMassActions() bool {
	switch s {
	case MassCure, MassHaste, MassSlow, MassBless, MassCurse, MassDispel, MassShield:
		return true
	}
	return false
}

// IsApplyWithoutFocusObject reports whether s can be cast with no explicit
// target. This is its own fixed classification; it overlaps with the mass
// and summon sets but is not derived from them.
func (s Spell) IsApplyWithoutFocusObject() bool {
	if s.IsMassActions() || s.IsSummon() {
		return true
	}
	switch s {
	case DeathRipple, DeathWave, Earthquake, HolyWord, HolyShout, Armageddon, ElementalStorm:
		return true
	}
	return false
}

// DimensionDoorDistance returns the maximum teleport distance in tiles.
func DimensionDoorDistance() int32 {
	// original engine value
	return 14
}
