package hero

import (
	"fmt"

	"github.com/jerbear1235/fheroes2/internal/game/skill"
)

// LevelUpResult reports what a level gain produced: the primary ability
// that grew and up to two secondary skill candidates the player (or AI)
// picks between. An invalid candidate means that choice slot is empty.
type LevelUpResult struct {
	Level   int
	Primary skill.PrimaryType
	First   skill.Secondary
	Second  skill.Secondary
}

// HasChoice reports whether at least one secondary candidate was offered.
func (r LevelUpResult) HasChoice() bool {
	return r.First.IsValid() || r.Second.IsValid()
}

// LevelUp advances the hero one level. The primary ability gain is applied
// immediately; the secondary candidates are returned for the caller to
// decide, then committed with LearnSkill. The three random draws use seed,
// seed+1, and seed+2, so one seed fixes the whole level-up.
func (h *Hero) LevelUp(seed uint64) LevelUpResult {
	h.Level++
	gained := h.Primary.LevelUp(h.Race, h.Level, seed, h.provider)
	first, second := h.Skills.FindForLevelUp(h.Race, seed+1, seed+2, h.provider)
	return LevelUpResult{
		Level:   h.Level,
		Primary: gained,
		First:   first,
		Second:  second,
	}
}

// LearnSkill commits a secondary skill candidate from a level-up, or a
// skill taught by a map object such as a witch's hut.
func (h *Hero) LearnSkill(sec skill.Secondary) error {
	if !sec.IsValid() {
		return fmt.Errorf("hero: cannot learn invalid secondary skill pair")
	}
	h.Skills.Add(sec)
	return nil
}

// GainExperience adds xp to the running total. Level gains are driven by
// the caller through LevelUp so that seeds stay under its control.
func (h *Hero) GainExperience(xp uint32) {
	h.Experience += xp
}
