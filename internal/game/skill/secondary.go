package skill

// Secondary is an (identifier, tier) pair. The zero value is the invalid
// placeholder pair (Unknown, TierNone).
type Secondary struct {
	Skill SecondarySkill
	Tier  Tier
}

// NewSecondary builds a pair, clamping out-of-range values to the
// sentinels the way the original setters do.
func NewSecondary(s SecondarySkill, t Tier) Secondary {
	return Secondary{Skill: clampSkill(s), Tier: clampTier(t)}
}

// IsValid reports whether the pair names a real skill at a real tier.
func (s Secondary) IsValid() bool {
	return s.Skill != Unknown && s.Tier != TierNone
}

// SetSkill assigns the skill identifier, clamping out-of-range values
// to Unknown.
func (s *Secondary) SetSkill(sk SecondarySkill) {
	s.Skill = clampSkill(sk)
}

// SetTier assigns the tier, clamping out-of-range values to TierNone.
func (s *Secondary) SetTier(t Tier) {
	s.Tier = clampTier(t)
}

// NextLevel advances the tier by one step, saturating at TierExpert.
func (s *Secondary) NextLevel() {
	s.Tier = s.Tier.Advance()
}

// Reset returns the pair to the invalid placeholder state.
func (s *Secondary) Reset() {
	s.Skill = Unknown
	s.Tier = TierNone
}

// EffectValue returns the numeric effect for this pair from the provider's
// per-skill tier table. Missing tables and TierNone yield 0.
func (s Secondary) EffectValue(sp StatsProvider) uint32 {
	values, ok := sp.SkillValues(s.Skill)
	if !ok {
		return 0
	}
	return values.ForTier(s.Tier)
}

// Name returns the display name, e.g. "Advanced Archery", or "unknown"
// for invalid pairs.
func (s Secondary) Name() string {
	if !s.IsValid() {
		return "unknown"
	}
	return s.Tier.String() + " " + s.Skill.String()
}
