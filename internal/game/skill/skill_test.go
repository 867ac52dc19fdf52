package skill_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jerbear1235/fheroes2/internal/game/skill"
)

func TestTierAdvanceSaturates(t *testing.T) {
	assert.Equal(t, skill.TierBasic, skill.TierNone.Advance())
	assert.Equal(t, skill.TierAdvanced, skill.TierBasic.Advance())
	assert.Equal(t, skill.TierExpert, skill.TierAdvanced.Advance())
	assert.Equal(t, skill.TierExpert, skill.TierExpert.Advance())
}

func TestSecondaryName(t *testing.T) {
	assert.Equal(t, "Advanced Archery", skill.NewSecondary(skill.Archery, skill.TierAdvanced).Name())
	assert.Equal(t, "Expert Eagle Eye", skill.NewSecondary(skill.EagleEye, skill.TierExpert).Name())
	assert.Equal(t, "unknown", skill.Secondary{}.Name())
}

func TestNewSecondaryClampsOutOfRange(t *testing.T) {
	s := skill.NewSecondary(skill.SecondarySkill(99), skill.Tier(99))
	assert.Equal(t, skill.Unknown, s.Skill)
	assert.Equal(t, skill.TierNone, s.Tier)
	assert.False(t, s.IsValid())
}

func TestStringPanicsOnUnknown(t *testing.T) {
	assert.Panics(t, func() { _ = skill.SecondarySkill(99).String() })
	assert.Panics(t, func() { _ = skill.TierNone.String() })
}

func TestParseSecondaryRoundTrip(t *testing.T) {
	for _, s := range skill.AllSecondary {
		got, err := skill.ParseSecondary(skill.Key(s))
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}
}

func TestParseSecondaryKeys(t *testing.T) {
	got, err := skill.ParseSecondary("eagle_eye")
	require.NoError(t, err)
	assert.Equal(t, skill.EagleEye, got)

	got, err = skill.ParseSecondary(" Luck ")
	require.NoError(t, err)
	assert.Equal(t, skill.Luck, got)

	_, err = skill.ParseSecondary("basket_weaving")
	assert.Error(t, err)
}

func TestParseTier(t *testing.T) {
	cases := map[string]skill.Tier{
		"":         skill.TierNone,
		"none":     skill.TierNone,
		"basic":    skill.TierBasic,
		"Advanced": skill.TierAdvanced,
		"EXPERT":   skill.TierExpert,
	}
	for in, want := range cases {
		got, err := skill.ParseTier(in)
		require.NoError(t, err, "input %q", in)
		assert.Equal(t, want, got, "input %q", in)
	}

	_, err := skill.ParseTier("legendary")
	assert.Error(t, err)
}
