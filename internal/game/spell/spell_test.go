package spell_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/jerbear1235/fheroes2/internal/game/race"
	"github.com/jerbear1235/fheroes2/internal/game/spell"
)

func TestCatalogBasics(t *testing.T) {
	assert.Equal(t, "Fireball", spell.Fireball.Name())
	assert.Equal(t, spell.FireMagic, spell.Fireball.SchoolOfMagic())
	assert.Equal(t, uint32(9), spell.Fireball.BaseCost())
	assert.Equal(t, uint32(10), spell.Fireball.Damage())

	assert.Equal(t, spell.WaterMagic, spell.Bless.SchoolOfMagic())
	assert.Equal(t, uint32(5), spell.Bless.BaseCost())
	assert.Zero(t, spell.Bless.Damage())
}

func TestCatalogPanicsOutOfRange(t *testing.T) {
	assert.Panics(t, func() { _ = spell.Spell(-1).Name() })
	assert.Panics(t, func() { _ = spell.Spell(1000).BaseCost() })
}

func TestParseName(t *testing.T) {
	s, ok := spell.ParseName("Fireball")
	require.True(t, ok)
	assert.Equal(t, spell.Fireball, s)

	s, ok = spell.ParseName("mass bless")
	require.True(t, ok)
	assert.Equal(t, spell.MassBless, s)

	_, ok = spell.ParseName("Word of Recall")
	assert.False(t, ok)
	_, ok = spell.ParseName("")
	assert.False(t, ok)
}

func TestLevelClassification(t *testing.T) {
	assert.Equal(t, 1, spell.Bless.Level())
	assert.Equal(t, 2, spell.LightningBolt.Level())
	assert.Equal(t, 3, spell.Fireball.Level())
	assert.Equal(t, 4, spell.ChainLightning.Level())
	assert.Equal(t, 5, spell.Armageddon.Level())
	assert.Zero(t, spell.None.Level())
	assert.Zero(t, spell.Random3.Level())
	assert.Zero(t, spell.Petrify.Level())
}

func TestCombatAdventurePartition(t *testing.T) {
	assert.True(t, spell.Fireball.IsCombat())
	assert.False(t, spell.Fireball.IsAdventure())
	assert.True(t, spell.DimensionDoor.IsAdventure())
	assert.False(t, spell.DimensionDoor.IsCombat())
	assert.True(t, spell.Haunt.IsAdventure())

	for _, s := range spell.SuitableForSpellBook(0) {
		assert.NotEqual(t, s.IsCombat(), s.IsAdventure(), "%s must be exactly one of combat/adventure", s.Name())
	}
}

func TestPredicates(t *testing.T) {
	assert.True(t, spell.Haunt.IsGuardianType())
	assert.True(t, spell.SetFGuardian.IsGuardianType())
	assert.False(t, spell.Fireball.IsGuardianType())

	assert.True(t, spell.Blind.IsMindInfluence())
	assert.True(t, spell.Hypnotize.IsMindInfluence())
	assert.False(t, spell.Slow.IsMindInfluence())

	assert.True(t, spell.AnimateDead.IsUndeadOnly())
	assert.True(t, spell.Bless.IsAliveOnly())
	assert.True(t, spell.SummonAElement.IsSummon())
	assert.True(t, spell.MassCure.IsMassActions())
	assert.True(t, spell.Dispel.IsApplyToAnyTroops())

	assert.True(t, spell.Earthquake.IsApplyWithoutFocusObject())
	assert.True(t, spell.MassSlow.IsApplyWithoutFocusObject())
	assert.True(t, spell.SummonWElement.IsApplyWithoutFocusObject())
	assert.False(t, spell.Arrow.IsApplyWithoutFocusObject())
}

func TestTypedExtraValueAccessors(t *testing.T) {
	assert.Positive(t, spell.Cure.Restore())
	assert.Zero(t, spell.Fireball.Restore())
	assert.Positive(t, spell.Resurrect.Resurrect())
	assert.Positive(t, spell.AnimateDead.Resurrect())
	assert.Zero(t, spell.Cure.Resurrect())
	assert.Zero(t, spell.Cure.Damage(), "restore value must not leak into damage")
}

func TestWeightForRace(t *testing.T) {
	assert.Zero(t, spell.HolyWord.WeightForRace(race.Necromancer))
	assert.Equal(t, uint32(10), spell.HolyWord.WeightForRace(race.Knight))
	assert.Zero(t, spell.DeathRipple.WeightForRace(race.Knight))
	assert.Equal(t, uint32(10), spell.DeathRipple.WeightForRace(race.Necromancer))
	assert.Zero(t, spell.TownPortal.WeightForRace(race.Wizard))
	assert.Zero(t, spell.SummonFElement.WeightForRace(race.Warlock))
	assert.Equal(t, uint32(10), spell.Haste.WeightForRace(race.Barbarian))
}

func TestRandDraftsMatchingSpells(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		level := rapid.IntRange(1, 5).Draw(t, "level")
		adventure := rapid.Bool().Draw(t, "adventure")
		seed := rapid.Uint64().Draw(t, "seed")

		s := spell.Rand(level, adventure, seed)
		if s == spell.None {
			return
		}
		if s.Level() != level {
			t.Fatalf("drafted %v of level %d, want %d", s, s.Level(), level)
		}
		if s.IsAdventure() != adventure {
			t.Fatalf("drafted %v from the wrong category", s)
		}
	})
}

func TestRandIsDeterministic(t *testing.T) {
	for seed := uint64(0); seed < 20; seed++ {
		assert.Equal(t, spell.RandCombat(3, seed), spell.RandCombat(3, seed))
	}
}

func TestRandAdventureFallsBackToCombat(t *testing.T) {
	// no adventure spell exists at level 1
	s := spell.RandAdventure(1, 9)
	require.NotEqual(t, spell.None, s)
	assert.True(t, s.IsCombat())
	assert.Equal(t, 1, s.Level())
}

func TestSuitableForSpellBook(t *testing.T) {
	all := spell.SuitableForSpellBook(0)
	for _, s := range all {
		assert.NotEqual(t, spell.None, s)
		assert.False(t, s.IsPlaceholder(), "placeholder %v listed", s)
	}

	level3 := spell.SuitableForSpellBook(3)
	require.NotEmpty(t, level3)
	for _, s := range level3 {
		assert.Equal(t, 3, s.Level())
	}
	assert.Contains(t, level3, spell.Fireball)
}
