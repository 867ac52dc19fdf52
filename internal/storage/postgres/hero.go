package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jerbear1235/fheroes2/internal/game/hero"
	"github.com/jerbear1235/fheroes2/internal/game/race"
	"github.com/jerbear1235/fheroes2/internal/game/skill"
	"github.com/jerbear1235/fheroes2/internal/game/spell"
)

// ErrHeroNotFound is returned when a hero lookup yields no results.
var ErrHeroNotFound = errors.New("hero not found")

// ErrHeroNameTaken is returned when creating a hero with a name already in use.
var ErrHeroNameTaken = errors.New("hero name already taken")

// HeroRepository provides hero persistence operations. Skill sets are
// stored in their binary encoding; the repository rebuilds heroes against
// the provider it was constructed with.
type HeroRepository struct {
	db       *pgxpool.Pool
	provider skill.StatsProvider
}

// NewHeroRepository creates a HeroRepository backed by the given pool.
//
// Precondition: db must be a valid, open connection pool; provider must be
// non-nil.
func NewHeroRepository(db *pgxpool.Pool, provider skill.StatsProvider) *HeroRepository {
	if provider == nil {
		panic("postgres: NewHeroRepository: precondition violated: provider must be non-nil")
	}
	return &HeroRepository{db: db, provider: provider}
}

// Create inserts a new hero.
//
// Precondition: h.ID must be set and h.Name non-empty.
// Postcondition: Returns nil on success, ErrHeroNameTaken on duplicate name.
func (r *HeroRepository) Create(ctx context.Context, h *hero.Hero) error {
	st := h.Snapshot()

	primary, err := st.Primary.MarshalBinary()
	if err != nil {
		return fmt.Errorf("encoding primary skills: %w", err)
	}
	secondary, err := st.Skills.MarshalBinary()
	if err != nil {
		return fmt.Errorf("encoding secondary skills: %w", err)
	}

	_, err = r.db.Exec(ctx, `
		INSERT INTO heroes
			(id, name, race, role, level, experience,
			 primary_skills, secondary_skills, spell_book, spell_points)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)`,
		st.ID, st.Name, st.Race.String(), int16(st.Role), st.Level, int64(st.Experience),
		primary, secondary, spellBookToInts(st.SpellBook), int64(st.SpellPoints),
	)
	if err != nil {
		if isDuplicateKeyError(err) {
			return ErrHeroNameTaken
		}
		return fmt.Errorf("inserting hero: %w", err)
	}
	return nil
}

// GetByID retrieves a hero by its primary key.
//
// Postcondition: Returns the rebuilt hero or ErrHeroNotFound.
func (r *HeroRepository) GetByID(ctx context.Context, id uuid.UUID) (*hero.Hero, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, name, race, role, level, experience,
		       primary_skills, secondary_skills, spell_book, spell_points
		FROM heroes WHERE id = $1`,
		id,
	)
	h, err := r.scanHero(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrHeroNotFound
		}
		return nil, fmt.Errorf("querying hero: %w", err)
	}
	return h, nil
}

// ListByRace returns all heroes of the given race, ordered by creation.
//
// Postcondition: Returns a slice (may be empty) or a non-nil error.
func (r *HeroRepository) ListByRace(ctx context.Context, rc race.Race) ([]*hero.Hero, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, name, race, role, level, experience,
		       primary_skills, secondary_skills, spell_book, spell_points
		FROM heroes WHERE race = $1 ORDER BY created_at ASC`,
		rc.String(),
	)
	if err != nil {
		return nil, fmt.Errorf("listing heroes: %w", err)
	}
	defer rows.Close()

	heroes := make([]*hero.Hero, 0)
	for rows.Next() {
		h, err := r.scanHero(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning hero row: %w", err)
		}
		heroes = append(heroes, h)
	}
	return heroes, rows.Err()
}

// SaveProgress persists a hero's progression state after level-ups.
//
// Postcondition: Returns nil on success, ErrHeroNotFound if no row updated.
func (r *HeroRepository) SaveProgress(ctx context.Context, h *hero.Hero) error {
	st := h.Snapshot()

	primary, err := st.Primary.MarshalBinary()
	if err != nil {
		return fmt.Errorf("encoding primary skills: %w", err)
	}
	secondary, err := st.Skills.MarshalBinary()
	if err != nil {
		return fmt.Errorf("encoding secondary skills: %w", err)
	}

	tag, err := r.db.Exec(ctx, `
		UPDATE heroes SET
			level = $2, experience = $3,
			primary_skills = $4, secondary_skills = $5,
			spell_book = $6, spell_points = $7, updated_at = NOW()
		WHERE id = $1`,
		st.ID, st.Level, int64(st.Experience),
		primary, secondary, spellBookToInts(st.SpellBook), int64(st.SpellPoints),
	)
	if err != nil {
		return fmt.Errorf("saving hero progress: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrHeroNotFound
	}
	return nil
}

// Delete removes a hero.
//
// Postcondition: Returns nil on success, ErrHeroNotFound if no row deleted.
func (r *HeroRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM heroes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting hero: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrHeroNotFound
	}
	return nil
}

func (r *HeroRepository) scanHero(row pgx.Row) (*hero.Hero, error) {
	var (
		st        hero.State
		raceName  string
		role      int16
		xp        int64
		primary   []byte
		secondary []byte
		book      []int32
		points    int64
	)
	if err := row.Scan(
		&st.ID, &st.Name, &raceName, &role, &st.Level, &xp,
		&primary, &secondary, &book, &points,
	); err != nil {
		return nil, err
	}

	rc, ok := race.Parse(raceName)
	if !ok {
		return nil, fmt.Errorf("stored hero has unknown race %q", raceName)
	}
	st.Race = rc
	st.Role = skill.Role(role)
	st.Experience = uint32(xp)
	st.SpellPoints = uint32(points)

	if err := st.Primary.UnmarshalBinary(primary); err != nil {
		return nil, fmt.Errorf("decoding primary skills: %w", err)
	}
	st.Skills = skill.NewSecSkills()
	if err := st.Skills.UnmarshalBinary(secondary); err != nil {
		return nil, fmt.Errorf("decoding secondary skills: %w", err)
	}
	st.SpellBook = intsToSpellBook(book)

	return hero.Restore(st, r.provider), nil
}

func spellBookToInts(book []spell.Spell) []int32 {
	out := make([]int32, len(book))
	for i, s := range book {
		out[i] = int32(s)
	}
	return out
}

func intsToSpellBook(ids []int32) []spell.Spell {
	if len(ids) == 0 {
		return nil
	}
	out := make([]spell.Spell, len(ids))
	for i, id := range ids {
		out[i] = spell.Spell(id)
	}
	return out
}

// isDuplicateKeyError checks if a pgx error is a unique constraint violation.
func isDuplicateKeyError(err error) bool {
	// pgx wraps PostgreSQL errors; check for SQLSTATE 23505 (unique_violation)
	var pgErr interface{ SQLState() string }
	if errors.As(err, &pgErr) {
		return pgErr.SQLState() == "23505"
	}
	return false
}
