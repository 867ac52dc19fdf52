package postgres_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jerbear1235/fheroes2/internal/game/hero"
	"github.com/jerbear1235/fheroes2/internal/game/race"
	"github.com/jerbear1235/fheroes2/internal/game/skill"
	"github.com/jerbear1235/fheroes2/internal/game/spell"
	"github.com/jerbear1235/fheroes2/internal/game/stats"
	"github.com/jerbear1235/fheroes2/internal/storage/postgres"
	"github.com/jerbear1235/fheroes2/internal/testutil"
)

func uniqueName(prefix string) string {
	return fmt.Sprintf("%s_%d", prefix, time.Now().UnixNano())
}

func setupHeroRepo(t *testing.T) *postgres.HeroRepository {
	t.Helper()
	pc := testutil.NewPostgresContainer(t)
	pc.ApplyMigrations(t)
	return postgres.NewHeroRepository(pc.RawPool, stats.DefaultRegistry())
}

func TestHeroCreateAndGet(t *testing.T) {
	repo := setupHeroRepo(t)
	ctx := context.Background()

	h := hero.New(uniqueName("sorceress"), race.Sorceress, skill.RoleHero, stats.DefaultRegistry())
	require.NoError(t, repo.Create(ctx, h))

	got, err := repo.GetByID(ctx, h.ID)
	require.NoError(t, err)

	assert.Equal(t, h.Name, got.Name)
	assert.Equal(t, race.Sorceress, got.Race)
	assert.Equal(t, h.Primary, got.Primary)
	assert.Equal(t, skill.TierAdvanced, got.Skills.TierOf(skill.Navigation))
	assert.True(t, got.KnowsSpell(spell.Bless))
	assert.Equal(t, h.SpellPoints, got.SpellPoints)
}

func TestHeroCreateDuplicateName(t *testing.T) {
	repo := setupHeroRepo(t)
	ctx := context.Background()

	name := uniqueName("dup")
	a := hero.New(name, race.Knight, skill.RoleHero, stats.DefaultRegistry())
	b := hero.New(name, race.Knight, skill.RoleHero, stats.DefaultRegistry())

	require.NoError(t, repo.Create(ctx, a))
	assert.ErrorIs(t, repo.Create(ctx, b), postgres.ErrHeroNameTaken)
}

func TestHeroGetMissing(t *testing.T) {
	repo := setupHeroRepo(t)
	_, err := repo.GetByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, postgres.ErrHeroNotFound)
}

func TestHeroSaveProgressRoundTrip(t *testing.T) {
	repo := setupHeroRepo(t)
	ctx := context.Background()

	h := hero.New(uniqueName("barbar"), race.Barbarian, skill.RoleHero, stats.DefaultRegistry())
	require.NoError(t, repo.Create(ctx, h))

	for seed := uint64(0); seed < 5; seed++ {
		res := h.LevelUp(seed * 10)
		if res.First.IsValid() {
			require.NoError(t, h.LearnSkill(res.First))
		}
	}
	h.GainExperience(5000)
	require.NoError(t, repo.SaveProgress(ctx, h))

	got, err := repo.GetByID(ctx, h.ID)
	require.NoError(t, err)

	assert.Equal(t, 6, got.Level)
	assert.Equal(t, uint32(5000), got.Experience)
	assert.Equal(t, h.Primary, got.Primary)
	assert.Equal(t, h.Skills.Slice(), got.Skills.Slice())
}

func TestHeroSaveProgressMissing(t *testing.T) {
	repo := setupHeroRepo(t)

	h := hero.New(uniqueName("ghost"), race.Wizard, skill.RoleHero, stats.DefaultRegistry())
	err := repo.SaveProgress(context.Background(), h)
	assert.ErrorIs(t, err, postgres.ErrHeroNotFound)
}

func TestHeroListByRace(t *testing.T) {
	repo := setupHeroRepo(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		h := hero.New(uniqueName("necro"), race.Necromancer, skill.RoleHero, stats.DefaultRegistry())
		require.NoError(t, repo.Create(ctx, h))
	}
	other := hero.New(uniqueName("knight"), race.Knight, skill.RoleHero, stats.DefaultRegistry())
	require.NoError(t, repo.Create(ctx, other))

	got, err := repo.ListByRace(ctx, race.Necromancer)
	require.NoError(t, err)
	assert.Len(t, got, 3)
	for _, h := range got {
		assert.Equal(t, race.Necromancer, h.Race)
	}
}

func TestHeroDelete(t *testing.T) {
	repo := setupHeroRepo(t)
	ctx := context.Background()

	h := hero.New(uniqueName("gone"), race.Warlock, skill.RoleHero, stats.DefaultRegistry())
	require.NoError(t, repo.Create(ctx, h))

	require.NoError(t, repo.Delete(ctx, h.ID))
	assert.ErrorIs(t, repo.Delete(ctx, h.ID), postgres.ErrHeroNotFound)
}
