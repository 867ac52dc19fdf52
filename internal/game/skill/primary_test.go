package skill_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/jerbear1235/fheroes2/internal/game/race"
	"github.com/jerbear1235/fheroes2/internal/game/skill"
	"github.com/jerbear1235/fheroes2/internal/game/stats"
)

func TestPrimaryLoadDefaults(t *testing.T) {
	reg := stats.DefaultRegistry()

	var hero skill.Primary
	hero.LoadDefaults(skill.RoleHero, race.Knight, reg)
	assert.Equal(t, skill.Primary{Attack: 1, Defense: 2, Power: 1, Knowledge: 1}, hero)

	var captain skill.Primary
	captain.LoadDefaults(skill.RoleCaptain, race.Knight, reg)
	assert.Equal(t, skill.Primary{Attack: 1, Defense: 1, Power: 1, Knowledge: 1}, captain)
}

func TestPrimaryLoadDefaultsUnknownRaceIsNoop(t *testing.T) {
	p := skill.Primary{Attack: 9}
	p.LoadDefaults(skill.RoleHero, race.None, stats.DefaultRegistry())
	assert.Equal(t, skill.Primary{Attack: 9}, p)
}

func TestPrimaryLevelUpIsDeterministic(t *testing.T) {
	reg := stats.DefaultRegistry()

	a := skill.Primary{}
	b := skill.Primary{}
	for level := 2; level <= 20; level++ {
		seed := uint64(level * 31)
		ga := a.LevelUp(race.Sorceress, level, seed, reg)
		gb := b.LevelUp(race.Sorceress, level, seed, reg)
		assert.Equal(t, ga, gb)
	}
	assert.Equal(t, a, b)
}

func TestPrimaryLevelUpIncrementsMatchingCounter(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		r := rapid.SampledFrom(race.All).Draw(t, "race")
		level := rapid.IntRange(2, 40).Draw(t, "level")
		seed := rapid.Uint64().Draw(t, "seed")

		var p skill.Primary
		gained := p.LevelUp(r, level, seed, stats.DefaultRegistry())

		want := skill.Primary{}
		switch gained {
		case skill.PrimaryAttack:
			want.Attack = 1
		case skill.PrimaryDefense:
			want.Defense = 1
		case skill.PrimaryPower:
			want.Power = 1
		case skill.PrimaryKnowledge:
			want.Knowledge = 1
		default:
			t.Fatalf("unexpected gain %d", gained)
		}
		if p != want {
			t.Fatalf("counters %+v do not match gain %v", p, gained)
		}
	})
}

func TestPrimaryLevelUpUnknownRaceGainsNothing(t *testing.T) {
	var p skill.Primary
	gained := p.LevelUp(race.None, 5, 1, stats.DefaultRegistry())
	assert.Equal(t, skill.PrimaryNone, gained)
	assert.Equal(t, skill.Primary{}, p)
}

func TestInitialSpell(t *testing.T) {
	reg := stats.DefaultRegistry()
	assert.Zero(t, skill.InitialSpell(race.Knight, reg))
	assert.NotZero(t, skill.InitialSpell(race.Sorceress, reg))
	assert.Zero(t, skill.InitialSpell(race.None, reg))
}

func TestPrimaryBinaryRoundTrip(t *testing.T) {
	p := skill.Primary{Attack: 5, Defense: 3, Power: 7, Knowledge: 11}

	data, err := p.MarshalBinary()
	require.NoError(t, err)
	require.Len(t, data, 16)

	var decoded skill.Primary
	require.NoError(t, decoded.UnmarshalBinary(data))
	assert.Equal(t, p, decoded)
}

func TestPrimaryUnmarshalRejectsShortInput(t *testing.T) {
	var p skill.Primary
	assert.Error(t, p.UnmarshalBinary([]byte{1, 2, 3}))
}
