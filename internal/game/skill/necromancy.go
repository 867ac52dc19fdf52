package skill

// NecromancySources supplies the external lookups that feed the necromancy
// bonus: the kingdom's shrine count, the bearer's equipment, and the
// bearer's own skill effect table.
type NecromancySources interface {
	// NecromancyShrineCount returns the number of necromancy shrines the
	// bearer's kingdom has built.
	NecromancyShrineCount() uint32

	// HasNecromancyArtifact reports whether the bearer carries an artifact
	// granting the necromancy skill bonus.
	HasNecromancyArtifact() bool

	// SecondarySkillValue returns the bearer's effect value for the given
	// secondary skill.
	SecondarySkillValue(s SecondarySkill) uint32
}

const (
	maxNecromancyBonus   = 7
	necromancyBonusStep  = 10
	maxNecromancyPercent = 100
)

// NecromancyBonus returns the kingdom/equipment bonus added to the
// necromancy skill, capped at 7.
func NecromancyBonus(src NecromancySources) uint32 {
	bonus := src.NecromancyShrineCount()
	if src.HasNecromancyArtifact() {
		bonus++
	}
	if bonus > maxNecromancyBonus {
		return maxNecromancyBonus
	}
	return bonus
}

// NecromancyPercent returns the percentage of combat kills converted to
// skeletons: the necromancy skill effect plus 10 points per bonus level,
// capped at 100.
func NecromancyPercent(src NecromancySources) uint32 {
	percent := src.SecondarySkillValue(Necromancy) + necromancyBonusStep*NecromancyBonus(src)
	if percent > maxNecromancyPercent {
		return maxNecromancyPercent
	}
	return percent
}
