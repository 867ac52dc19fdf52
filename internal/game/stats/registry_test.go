package stats_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jerbear1235/fheroes2/internal/game/race"
	"github.com/jerbear1235/fheroes2/internal/game/skill"
	"github.com/jerbear1235/fheroes2/internal/game/spell"
	"github.com/jerbear1235/fheroes2/internal/game/stats"
)

func TestDefaultRegistryCoversAllRaces(t *testing.T) {
	reg := stats.DefaultRegistry()
	for _, r := range race.All {
		rs, ok := reg.RaceStats(r)
		require.True(t, ok, "missing race %s", r)
		assert.Positive(t, rs.MatureLevel)
		assert.NotEmpty(t, rs.SecondaryWeights)
	}
	for _, s := range skill.AllSecondary {
		_, ok := reg.SkillValues(s)
		assert.True(t, ok, "missing skill values for %s", s)
	}
}

func TestDefaultRegistryKnightTable(t *testing.T) {
	reg := stats.DefaultRegistry()
	rs, ok := reg.RaceStats(race.Knight)
	require.True(t, ok)
	assert.Equal(t, skill.PrimaryValues{Attack: 1, Defense: 2, Power: 1, Knowledge: 1}, rs.HeroPrimary)
	assert.Equal(t, skill.TierBasic, rs.InitialSecondary[skill.Leadership])
	assert.Equal(t, skill.TierBasic, rs.InitialSecondary[skill.Ballistics])
	assert.Equal(t, int32(spell.None), rs.InitialSpell)
}

func TestDefaultRegistryNecromancyWeights(t *testing.T) {
	reg := stats.DefaultRegistry()
	for _, r := range race.All {
		rs, ok := reg.RaceStats(r)
		require.True(t, ok)
		w := rs.SecondaryWeight(skill.Necromancy)
		if r == race.Necromancer {
			assert.Positive(t, w)
		} else if r != race.Warlock {
			assert.Zero(t, w, "race %s should not roll necromancy", r)
		}
	}
}

func TestWitchsHutSkillsExcludeRaceDefining(t *testing.T) {
	reg := stats.DefaultRegistry()
	for _, s := range reg.WitchsHutSkills() {
		assert.NotEqual(t, skill.Leadership, s)
		assert.NotEqual(t, skill.Necromancy, s)
	}
	assert.Len(t, reg.WitchsHutSkills(), len(skill.AllSecondary)-2)
}

func TestSkillValuesReturnsCopy(t *testing.T) {
	reg := stats.NewRegistry()
	reg.RegisterSkillValues(skill.Archery, skill.TierValues{Basic: 10, Advanced: 25, Expert: 50})
	v, ok := reg.SkillValues(skill.Archery)
	require.True(t, ok)
	v.Basic = 99
	again, ok := reg.SkillValues(skill.Archery)
	require.True(t, ok)
	assert.Equal(t, uint32(10), again.Basic)
}

func TestRegisterRaceRejectsNil(t *testing.T) {
	reg := stats.NewRegistry()
	assert.Panics(t, func() { reg.RegisterRace(race.Knight, nil) })
}

func TestLoadRaces(t *testing.T) {
	dir := t.TempDir()
	doc := `race: sorceress
mature_level: 7
captain_primary: {attack: 0, defense: 0, power: 2, knowledge: 2}
hero_primary: {attack: 0, defense: 0, power: 2, knowledge: 3}
initial_spell: Bless
initial_secondary:
  navigation: advanced
  luck: basic
primary_under: {attack: 10, defense: 10, power: 30, knowledge: 50}
primary_over: {attack: 20, defense: 20, power: 30, knowledge: 30}
secondary_weights:
  navigation: 4
  luck: 4
  sorcery: 4
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sorceress.yaml"), []byte(doc), 0o644))

	reg := stats.NewRegistry()
	require.NoError(t, reg.LoadRaces(dir))

	rs, ok := reg.RaceStats(race.Sorceress)
	require.True(t, ok)
	assert.Equal(t, 7, rs.MatureLevel)
	assert.Equal(t, int32(spell.Bless), rs.InitialSpell)
	assert.Equal(t, skill.TierAdvanced, rs.InitialSecondary[skill.Navigation])
	assert.Equal(t, uint32(4), rs.SecondaryWeight(skill.Sorcery))
	assert.Zero(t, rs.SecondaryWeight(skill.Necromancy))
}

func TestLoadRacesRejectsUnknownRace(t *testing.T) {
	dir := t.TempDir()
	doc := "race: lizardfolk\nmature_level: 10\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.yaml"), []byte(doc), 0o644))

	reg := stats.NewRegistry()
	err := reg.LoadRaces(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown race")
}

func TestLoadRacesRejectsUnknownSpell(t *testing.T) {
	dir := t.TempDir()
	doc := "race: wizard\nmature_level: 10\ninitial_spell: Meteor Stormz\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "wizard.yaml"), []byte(doc), 0o644))

	reg := stats.NewRegistry()
	err := reg.LoadRaces(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown initial spell")
}

func TestLoadSkillValues(t *testing.T) {
	dir := t.TempDir()
	doc := `skills:
  archery: {basic: 10, advanced: 25, expert: 50}
  eagle_eye: {basic: 20, advanced: 30, expert: 40}
`
	path := filepath.Join(dir, "skills.yaml")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	reg := stats.NewRegistry()
	require.NoError(t, reg.LoadSkillValues(path))

	v, ok := reg.SkillValues(skill.EagleEye)
	require.True(t, ok)
	assert.Equal(t, uint32(30), v.Advanced)
}
