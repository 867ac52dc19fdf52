// Package artifact defines the equipment bonus queries the progression and
// valuation engine consumes, plus a minimal in-memory bag implementation.
package artifact

// BonusType tags a category of equipment bonus.
type BonusType int

// Bonus categories consumed by the engine. The cost-reduction types carry a
// percentage; NecromancySkill is presence-only.
const (
	NecromancySkill BonusType = iota
	BlessCostReduction
	SummoningCostReduction
	CurseCostReduction
	MindInfluenceCostReduction
)

// Ledger is the equipment bonus query surface. Implementations are
// in-memory and synchronous.
type Ledger interface {
	// HasBonus reports whether any carried artifact grants the bonus.
	HasBonus(t BonusType) bool

	// MultipliedPercentages returns every percentage value carried for the
	// bonus, in a stable order. Callers apply them successively.
	MultipliedPercentages(t BonusType) []int32
}

// Bonus is one granted bonus. Percent is meaningful only for the
// cost-reduction bonus types and must be within [0, 100].
type Bonus struct {
	Type    BonusType
	Percent int32
}

// Bag is an ordered in-memory Ledger.
type Bag struct {
	bonuses []Bonus
}

// NewBag returns an empty Bag.
func NewBag() *Bag {
	return &Bag{}
}

// Add appends a bonus to the bag.
//
// Precondition: for cost-reduction types, b.Percent must be in [0, 100].
func (b *Bag) Add(bonus Bonus) {
	if bonus.Percent < 0 || bonus.Percent > 100 {
		panic("artifact: Bag.Add: precondition violated: percent must be in [0, 100]")
	}
	b.bonuses = append(b.bonuses, bonus)
}

// HasBonus reports whether the bag carries any bonus of type t.
func (b *Bag) HasBonus(t BonusType) bool {
	for _, bonus := range b.bonuses {
		if bonus.Type == t {
			return true
		}
	}
	return false
}

// MultipliedPercentages returns the percentages of every carried bonus of
// type t, in insertion order.
func (b *Bag) MultipliedPercentages(t BonusType) []int32 {
	var out []int32
	for _, bonus := range b.bonuses {
		if bonus.Type == t {
			out = append(out, bonus.Percent)
		}
	}
	return out
}
