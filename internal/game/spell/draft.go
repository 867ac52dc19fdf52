package spell

import "github.com/jerbear1235/fheroes2/internal/game/random"

// Rand drafts one concrete spell of the given book level, deterministically
// from seed. The adventure flag selects adventure-map spells; otherwise
// combat spells are drawn. Every matching spell has equal probability.
// Returns None when no spell matches.
func Rand(level int, adventure bool, seed uint64) Spell {
	candidates := make([]int, 0, 16)
	for s := None; s < Random; s++ {
		if s.Level() != level {
			continue
		}
		if adventure != s.IsAdventure() {
			continue
		}
		candidates = append(candidates, int(s))
	}

	if len(candidates) == 0 {
		return None
	}

	queue := random.NewWeightedQueue(len(candidates))
	for _, id := range candidates {
		queue.Push(id, 1)
	}
	return Spell(queue.PickWithSeed(seed))
}

// RandCombat drafts a combat spell of the given level.
func RandCombat(level int, seed uint64) Spell {
	return Rand(level, false, seed)
}

// RandAdventure drafts an adventure spell of the given level, falling back
// to a combat draw when no adventure spell exists at that level.
func RandAdventure(level int, seed uint64) Spell {
	if s := Rand(level, true, seed); s.IsValid() {
		return s
	}
	return RandCombat(level, seed)
}

// SuitableForSpellBook lists every concrete spell identifier, excluding
// None and the random-placeholder block, optionally filtered by exact
// book level. level <= 0 lists all.
func SuitableForSpellBook(level int) []Spell {
	result := make([]Spell, 0, int(spellCount))
	for s := None; s < spellCount; s++ {
		if s == None || s.IsPlaceholder() {
			continue
		}
		if level > 0 && s.Level() != level {
			continue
		}
		result = append(result, s)
	}
	return result
}
