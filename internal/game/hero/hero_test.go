package hero_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/jerbear1235/fheroes2/internal/game/artifact"
	"github.com/jerbear1235/fheroes2/internal/game/hero"
	"github.com/jerbear1235/fheroes2/internal/game/race"
	"github.com/jerbear1235/fheroes2/internal/game/skill"
	"github.com/jerbear1235/fheroes2/internal/game/spell"
	"github.com/jerbear1235/fheroes2/internal/game/stats"
)

type fixedKingdom struct {
	shrines uint32
}

func (k fixedKingdom) NecromancyShrineCount() uint32 { return k.shrines }

func TestNewKnightBaseline(t *testing.T) {
	h := hero.New("Sir Gallant", race.Knight, skill.RoleHero, stats.DefaultRegistry())

	assert.Equal(t, 1, h.Level)
	assert.Equal(t, skill.Primary{Attack: 1, Defense: 2, Power: 1, Knowledge: 1}, h.Primary)
	assert.Equal(t, skill.TierBasic, h.Skills.TierOf(skill.Leadership))
	assert.Equal(t, skill.TierBasic, h.Skills.TierOf(skill.Ballistics))
	assert.Empty(t, h.SpellBook)
	assert.Equal(t, uint32(10), h.SpellPoints)
}

func TestNewSorceressStartsWithBless(t *testing.T) {
	h := hero.New("Carlawn", race.Sorceress, skill.RoleHero, stats.DefaultRegistry())

	assert.True(t, h.KnowsSpell(spell.Bless))
	assert.Equal(t, uint32(30), h.SpellPoints)
	assert.Equal(t, skill.TierAdvanced, h.Skills.TierOf(skill.Navigation))
}

func TestNewCaptainUsesCaptainBaseline(t *testing.T) {
	h := hero.New("Garrison", race.Knight, skill.RoleCaptain, stats.DefaultRegistry())
	assert.Equal(t, skill.Primary{Attack: 1, Defense: 1, Power: 1, Knowledge: 1}, h.Primary)
}

func TestSpellCostReductionFollowsSchoolTier(t *testing.T) {
	h := hero.New("Arie", race.Warlock, skill.RoleHero, stats.DefaultRegistry())

	assert.Equal(t, int32(9), h.SpellCost(spell.Fireball))

	require.NoError(t, h.LearnSkill(skill.NewSecondary(skill.FireMagic, skill.TierBasic)))
	assert.Equal(t, int32(2), h.SpellCostReduction(spell.Fireball))
	assert.Equal(t, int32(7), h.SpellCost(spell.Fireball))
	assert.Equal(t, 10, h.SchoolModifier(spell.Fireball))
}

func TestSpellCostFloorsAtOneWithFullBonus(t *testing.T) {
	h := hero.New("Rialdo", race.Warlock, skill.RoleHero, stats.DefaultRegistry())
	h.Artifacts.Add(artifact.Bonus{Type: artifact.CurseCostReduction, Percent: 100})

	assert.Equal(t, int32(1), h.SpellCost(spell.Curse))
}

func TestNecromancyPercent(t *testing.T) {
	h := hero.New("Zom", race.Necromancer, skill.RoleHero, stats.DefaultRegistry())
	require.NoError(t, h.LearnSkill(skill.NewSecondary(skill.Necromancy, skill.TierAdvanced)))
	h.AttachKingdom(fixedKingdom{shrines: 1})
	h.Artifacts.Add(artifact.Bonus{Type: artifact.NecromancySkill, Percent: 0})

	// advanced skill effect 20, plus 10 per bonus level (1 shrine + artifact)
	assert.Equal(t, uint32(40), h.NecromancyPercent())
}

func TestNecromancyBonusCaps(t *testing.T) {
	h := hero.New("Ranloo", race.Necromancer, skill.RoleHero, stats.DefaultRegistry())
	require.NoError(t, h.LearnSkill(skill.NewSecondary(skill.Necromancy, skill.TierExpert)))
	h.AttachKingdom(fixedKingdom{shrines: 12})

	assert.Equal(t, uint32(100), h.NecromancyPercent())
}

func TestLearnSpellDeduplicates(t *testing.T) {
	h := hero.New("Halton", race.Wizard, skill.RoleHero, stats.DefaultRegistry())
	require.NoError(t, h.LearnSpell(spell.Haste))
	require.NoError(t, h.LearnSpell(spell.Haste))

	count := 0
	for _, s := range h.SpellBook {
		if s == spell.Haste {
			count++
		}
	}
	assert.Equal(t, 1, count)
	assert.Error(t, h.LearnSpell(spell.None))
}

func TestLearnSpellRejectsPlaceholders(t *testing.T) {
	h := hero.New("Flint", race.Wizard, skill.RoleHero, stats.DefaultRegistry())
	for _, s := range []spell.Spell{spell.Random, spell.Random1, spell.Random5, spell.Petrify} {
		assert.Error(t, h.LearnSpell(s), "placeholder %d learned", int(s))
	}
	assert.Empty(t, h.SpellBook[1:], "book should hold only the racial starting spell")
}

func TestCanCast(t *testing.T) {
	h := hero.New("Mandigal", race.Wizard, skill.RoleHero, stats.DefaultRegistry())
	require.NoError(t, h.LearnSpell(spell.DimensionDoor))

	assert.True(t, h.CanCast(spell.DimensionDoor))
	h.SpellPoints = 2
	assert.False(t, h.CanCast(spell.DimensionDoor))
	assert.False(t, h.CanCast(spell.Fireball), "unknown spell is never castable")
}

func TestLevelUpIsDeterministic(t *testing.T) {
	a := hero.New("Twin", race.Barbarian, skill.RoleHero, stats.DefaultRegistry())
	b := hero.New("Twin", race.Barbarian, skill.RoleHero, stats.DefaultRegistry())

	ra := a.LevelUp(42)
	rb := b.LevelUp(42)

	assert.Equal(t, ra.Primary, rb.Primary)
	assert.Equal(t, ra.First, rb.First)
	assert.Equal(t, ra.Second, rb.Second)
	assert.Equal(t, 2, a.Level)
}

func TestLevelUpOffersAdvanceableCandidates(t *testing.T) {
	h := hero.New("Atlas", race.Knight, skill.RoleHero, stats.DefaultRegistry())

	res := h.LevelUp(7)
	require.True(t, res.HasChoice())
	for _, cand := range []skill.Secondary{res.First, res.Second} {
		if !cand.IsValid() {
			continue
		}
		held := h.Skills.TierOf(cand.Skill)
		assert.Equal(t, held.Advance(), cand.Tier)

		require.NoError(t, h.LearnSkill(cand))
		assert.Equal(t, cand.Tier, h.Skills.TierOf(cand.Skill))
		break
	}
}

func TestLevelUpGrowsExactlyOnePrimary(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		r := rapid.SampledFrom(race.All).Draw(t, "race")
		seed := rapid.Uint64().Draw(t, "seed")

		h := hero.New("Prop", r, skill.RoleHero, stats.DefaultRegistry())
		before := h.Primary.Attack + h.Primary.Defense + h.Primary.Power + h.Primary.Knowledge

		res := h.LevelUp(seed)
		after := h.Primary.Attack + h.Primary.Defense + h.Primary.Power + h.Primary.Knowledge

		if res.Primary == skill.PrimaryNone {
			t.Fatalf("level-up produced no primary gain")
		}
		if after != before+1 {
			t.Fatalf("primary sum went %d -> %d, want +1", before, after)
		}
	})
}
