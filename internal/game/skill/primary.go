package skill

import (
	"encoding/binary"
	"fmt"

	"github.com/jerbear1235/fheroes2/internal/game/race"
	"github.com/jerbear1235/fheroes2/internal/game/random"
)

// Role distinguishes the two bearer kinds that load different baseline
// primary tables.
type Role int

// Bearer roles.
const (
	RoleHero Role = iota
	RoleCaptain
)

// PrimaryType identifies one of the four primary abilities, or none.
type PrimaryType int

// Primary ability identifiers. The declaration order is the canonical
// push order for level-up weighted draws.
const (
	PrimaryNone PrimaryType = iota
	PrimaryAttack
	PrimaryDefense
	PrimaryPower
	PrimaryKnowledge
)

// String returns the display name of p.
//
// Precondition: p must be one of the four ability identifiers; passing
// PrimaryNone or an out-of-range value is a caller bug.
func (p PrimaryType) String() string {
	switch p {
	case PrimaryAttack:
		return "Attack Skill"
	case PrimaryDefense:
		return "Defense Skill"
	case PrimaryPower:
		return "Spell Power"
	case PrimaryKnowledge:
		return "Knowledge"
	default:
		panic("skill: PrimaryType.String: precondition violated: not a primary ability")
	}
}

// Primary holds the four primary ability counters of a hero or captain.
//
// Invariant: counters only ever increase after construction; LevelUp is the
// sole mutator.
type Primary struct {
	Attack    uint32
	Defense   uint32
	Power     uint32
	Knowledge uint32
}

// LoadDefaults copies the race baseline for the given role into p.
// A race unknown to the provider leaves p untouched.
func (p *Primary) LoadDefaults(role Role, r race.Race, sp StatsProvider) {
	stats, ok := sp.RaceStats(r)
	if !ok {
		return
	}

	switch role {
	case RoleCaptain:
		p.Attack = stats.CaptainPrimary.Attack
		p.Defense = stats.CaptainPrimary.Defense
		p.Power = stats.CaptainPrimary.Power
		p.Knowledge = stats.CaptainPrimary.Knowledge
	case RoleHero:
		p.Attack = stats.HeroPrimary.Attack
		p.Defense = stats.HeroPrimary.Defense
		p.Power = stats.HeroPrimary.Power
		p.Knowledge = stats.HeroPrimary.Knowledge
	}
}

// InitialSpell returns the race's starting spell identifier, 0 if the
// provider has no record for r.
func InitialSpell(r race.Race, sp StatsProvider) int32 {
	stats, ok := sp.RaceStats(r)
	if !ok {
		return 0
	}
	return stats.InitialSpell
}

// LevelUp picks one of the four primary abilities by the race's weight
// table and increments its counter. The immature table applies while level
// is below the race's maturity threshold, the mature table at or above it.
//
// Postcondition: returns the incremented ability, or PrimaryNone (and no
// counter change) when the provider has no table for r.
func (p *Primary) LevelUp(r race.Race, level int, seed uint64, sp StatsProvider) PrimaryType {
	queue := random.NewWeightedQueue(4)

	if stats, ok := sp.RaceStats(r); ok {
		weights := stats.PrimaryOver
		if stats.MatureLevel > level {
			weights = stats.PrimaryUnder
		}
		queue.Push(int(PrimaryAttack), weights.Attack)
		queue.Push(int(PrimaryDefense), weights.Defense)
		queue.Push(int(PrimaryPower), weights.Power)
		queue.Push(int(PrimaryKnowledge), weights.Knowledge)
	}

	if queue.Size() == 0 {
		return PrimaryNone
	}
	result := PrimaryType(queue.PickWithSeed(seed))

	switch result {
	case PrimaryAttack:
		p.Attack++
	case PrimaryDefense:
		p.Defense++
	case PrimaryPower:
		p.Power++
	case PrimaryKnowledge:
		p.Knowledge++
	}

	return result
}

const primaryWireSize = 16

// MarshalBinary encodes p as four big-endian uint32 values in the fixed
// wire order attack, defense, knowledge, power. Knowledge precedes power
// on the wire even though the enum orders power first; persisted rows
// depend on this layout, so do not reorder.
func (p Primary) MarshalBinary() ([]byte, error) {
	buf := make([]byte, primaryWireSize)
	binary.BigEndian.PutUint32(buf[0:4], p.Attack)
	binary.BigEndian.PutUint32(buf[4:8], p.Defense)
	binary.BigEndian.PutUint32(buf[8:12], p.Knowledge)
	binary.BigEndian.PutUint32(buf[12:16], p.Power)
	return buf, nil
}

// UnmarshalBinary decodes the layout produced by MarshalBinary.
func (p *Primary) UnmarshalBinary(data []byte) error {
	if len(data) != primaryWireSize {
		return fmt.Errorf("skill: decoding primary abilities: want %d bytes, got %d", primaryWireSize, len(data))
	}
	p.Attack = binary.BigEndian.Uint32(data[0:4])
	p.Defense = binary.BigEndian.Uint32(data[4:8])
	p.Knowledge = binary.BigEndian.Uint32(data[8:12])
	p.Power = binary.BigEndian.Uint32(data[12:16])
	return nil
}
