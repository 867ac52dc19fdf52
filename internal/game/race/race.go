// Package race defines the playable race identifiers shared by the skill,
// spell, and stats packages.
package race

// Race identifies one of the six playable races.
type Race int

// Race identifiers. None is the zero value and marks an unset race.
const (
	None Race = iota
	Knight
	Barbarian
	Sorceress
	Warlock
	Wizard
	Necromancer
)

// All lists every playable race in canonical order.
var All = []Race{Knight, Barbarian, Sorceress, Warlock, Wizard, Necromancer}

// String returns the lowercase race name used in tuning tables and storage.
func (r Race) String() string {
	switch r {
	case Knight:
		return "knight"
	case Barbarian:
		return "barbarian"
	case Sorceress:
		return "sorceress"
	case Warlock:
		return "warlock"
	case Wizard:
		return "wizard"
	case Necromancer:
		return "necromancer"
	default:
		return "none"
	}
}

// Parse returns the Race named by s, or (None, false) if s is unknown.
func Parse(s string) (Race, bool) {
	for _, r := range All {
		if r.String() == s {
			return r, true
		}
	}
	return None, false
}
