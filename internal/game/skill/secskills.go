package skill

import (
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/jerbear1235/fheroes2/internal/game/race"
	"github.com/jerbear1235/fheroes2/internal/game/random"
)

// MaxSecondarySkills is the hard capacity ceiling of a hero's secondary
// skill set.
const MaxSecondarySkills = 8

// SecSkills is the ordered, fixed-capacity container of a hero's secondary
// skills. Slots may hold invalid placeholder pairs, which are overwritable.
//
// Invariants:
//   - no two valid entries share a skill identifier
//   - len never exceeds MaxSecondarySkills
type SecSkills struct {
	skills []Secondary
}

// NewSecSkills returns an empty skill set.
func NewSecSkills() *SecSkills {
	return &SecSkills{skills: make([]Secondary, 0, MaxSecondarySkills)}
}

// SecSkillsFromRace returns a skill set pre-populated from the race's
// initial secondary table, added in canonical catalog order. An unknown
// race yields an empty set.
func SecSkillsFromRace(r race.Race, sp StatsProvider) *SecSkills {
	ss := NewSecSkills()

	stats, ok := sp.RaceStats(r)
	if !ok {
		return ss
	}
	for _, sk := range AllSecondary {
		if tier := stats.InitialSecondary[sk]; tier != TierNone {
			ss.Add(NewSecondary(sk, tier))
		}
	}
	return ss
}

// TierOf returns the tier of the valid entry holding skill, TierNone if
// absent.
func (ss *SecSkills) TierOf(skill SecondarySkill) Tier {
	for _, s := range ss.skills {
		if s.IsValid() && s.Skill == skill {
			return s.Tier
		}
	}
	return TierNone
}

// EffectValue returns the numeric effect of skill at its held tier, 0 when
// the skill is absent or the provider has no value table for it.
func (ss *SecSkills) EffectValue(skill SecondarySkill, sp StatsProvider) uint32 {
	for _, s := range ss.skills {
		if s.IsValid() && s.Skill == skill {
			return s.EffectValue(sp)
		}
	}
	return 0
}

// Count returns the number of valid entries.
func (ss *SecSkills) Count() int {
	n := 0
	for _, s := range ss.skills {
		if s.IsValid() {
			n++
		}
	}
	return n
}

// TotalTierSum returns the sum of tier ordinals over valid entries.
func (ss *SecSkills) TotalTierSum() int {
	total := 0
	for _, s := range ss.skills {
		if s.IsValid() {
			total += int(s.Tier)
		}
	}
	return total
}

// Add inserts or updates a pair. Invalid pairs are ignored. A pair whose
// skill is already held overwrites that entry's tier; otherwise the first
// invalid slot is reused; otherwise the pair is appended while below
// capacity, and silently dropped at capacity.
func (ss *SecSkills) Add(pair Secondary) {
	if !pair.IsValid() {
		return
	}

	for i := range ss.skills {
		if ss.skills[i].Skill == pair.Skill {
			ss.skills[i].SetTier(pair.Tier)
			return
		}
	}
	for i := range ss.skills {
		if !ss.skills[i].IsValid() {
			ss.skills[i] = pair
			return
		}
	}
	if len(ss.skills) < MaxSecondarySkills {
		ss.skills = append(ss.skills, pair)
	}
}

// Find returns a mutable handle to the valid entry holding skill, or nil.
func (ss *SecSkills) Find(skill SecondarySkill) *Secondary {
	for i := range ss.skills {
		if ss.skills[i].IsValid() && ss.skills[i].Skill == skill {
			return &ss.skills[i]
		}
	}
	return nil
}

// PadToCapacity grows the set to exactly MaxSecondarySkills slots, filling
// new slots with copies of pair. Sets already at or above capacity are
// unchanged.
func (ss *SecSkills) PadToCapacity(pair Secondary) {
	for len(ss.skills) < MaxSecondarySkills {
		ss.skills = append(ss.skills, pair)
	}
}

// Slice returns the underlying entries, placeholders included. The result
// aliases the container and must not be resized by callers.
func (ss *SecSkills) Slice() []Secondary {
	return ss.skills
}

// String returns a comma-separated listing of the held skill names.
func (ss *SecSkills) String() string {
	parts := make([]string, 0, len(ss.skills))
	for _, s := range ss.skills {
		parts = append(parts, s.Name())
	}
	return strings.Join(parts, ", ")
}

// priorityFromRace picks one skill from the canonical catalog, excluding
// the given set, weighted by the race's mature secondary table.
func priorityFromRace(r race.Race, exclude map[SecondarySkill]bool, seed uint64, sp StatsProvider) SecondarySkill {
	stats, ok := sp.RaceStats(r)
	if !ok {
		return Unknown
	}

	queue := random.NewWeightedQueue(len(AllSecondary))
	for _, sk := range AllSecondary {
		if !exclude[sk] {
			queue.Push(int(sk), stats.SecondaryWeight(sk))
		}
	}
	if queue.Size() == 0 {
		return Unknown
	}
	return SecondarySkill(queue.PickWithSeed(seed))
}

// FindForLevelUp selects the two secondary skill alternatives offered on a
// level-up. Expert-held skills are never offered; once the set is full,
// only skills the hero already holds remain candidates. Each returned pair
// carries the hero's current tier advanced by one step. Both pairs resolve
// to the invalid placeholder when no candidate exists.
//
// The caller applies the chosen alternative via Add.
func (ss *SecSkills) FindForLevelUp(r race.Race, seed1, seed2 uint64, sp StatsProvider) (Secondary, Secondary) {
	var first, second Secondary

	exclude := make(map[SecondarySkill]bool, MaxSecondarySkills+len(AllSecondary))
	for _, s := range ss.skills {
		if s.Tier == TierExpert {
			exclude[s.Skill] = true
		}
	}
	if ss.Count() >= MaxSecondarySkills {
		for _, sk := range AllSecondary {
			if ss.TierOf(sk) == TierNone {
				exclude[sk] = true
			}
		}
	}

	first.SetSkill(priorityFromRace(r, exclude, seed1, sp))
	if first.Skill == Unknown {
		return first, second
	}

	exclude[first.Skill] = true
	second.SetSkill(priorityFromRace(r, exclude, seed2, sp))

	first.SetTier(ss.TierOf(first.Skill))
	second.SetTier(ss.TierOf(second.Skill))
	first.NextLevel()
	second.NextLevel()

	return first, second
}

// RandForWitchsHut picks one skill uniformly from the provider's witch's
// hut eligibility set, Unknown when the set is empty.
func RandForWitchsHut(sp StatsProvider, seed uint64) SecondarySkill {
	eligible := sp.WitchsHutSkills()
	if len(eligible) == 0 {
		return Unknown
	}
	labels := make([]int, len(eligible))
	for i, sk := range eligible {
		labels[i] = int(sk)
	}
	return SecondarySkill(random.UniformPickWithSeed(labels, seed))
}

// MarshalBinary encodes the set as a big-endian uint32 length prefix
// followed by (skill, tier) uint32 pairs, placeholders included.
func (ss *SecSkills) MarshalBinary() ([]byte, error) {
	buf := make([]byte, 4, 4+8*len(ss.skills))
	binary.BigEndian.PutUint32(buf, uint32(len(ss.skills)))
	for _, s := range ss.skills {
		var pair [8]byte
		binary.BigEndian.PutUint32(pair[0:4], uint32(s.Skill))
		binary.BigEndian.PutUint32(pair[4:8], uint32(s.Tier))
		buf = append(buf, pair[:]...)
	}
	return buf, nil
}

// UnmarshalBinary decodes the layout produced by MarshalBinary, clamping
// the sequence to MaxSecondarySkills entries and discarding the excess.
// Out-of-range identifiers and tiers decode to the sentinels.
func (ss *SecSkills) UnmarshalBinary(data []byte) error {
	if len(data) < 4 {
		return fmt.Errorf("skill: decoding secondary skills: truncated length prefix (%d bytes)", len(data))
	}
	count := binary.BigEndian.Uint32(data[0:4])
	if count > uint32(len(data)-4)/8 {
		return fmt.Errorf("skill: decoding secondary skills: want %d pairs, have %d bytes", count, len(data)-4)
	}

	kept := count
	if kept > MaxSecondarySkills {
		kept = MaxSecondarySkills
	}
	skills := make([]Secondary, 0, kept)
	for i := uint32(0); i < kept; i++ {
		off := 4 + i*8
		skills = append(skills, NewSecondary(
			SecondarySkill(binary.BigEndian.Uint32(data[off:off+4])),
			Tier(binary.BigEndian.Uint32(data[off+4:off+8])),
		))
	}
	ss.skills = skills
	return nil
}
