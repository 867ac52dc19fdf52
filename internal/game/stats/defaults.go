package stats

import (
	"github.com/jerbear1235/fheroes2/internal/game/race"
	"github.com/jerbear1235/fheroes2/internal/game/skill"
	"github.com/jerbear1235/fheroes2/internal/game/spell"
)

// DefaultRegistry returns a registry holding the stock tuning tables for
// the six playable races. The engine works out of the box with these;
// YAML files loaded on top override per race.
func DefaultRegistry() *Registry {
	reg := NewRegistry()

	for r, rs := range defaultRaceStats {
		reg.RegisterRace(r, rs)
	}
	for s, v := range defaultSkillValues {
		reg.RegisterSkillValues(s, v)
	}

	// Witch's huts teach every skill except the two that are race-defining.
	hut := make([]skill.SecondarySkill, 0, len(skill.AllSecondary))
	for _, s := range skill.AllSecondary {
		if s == skill.Leadership || s == skill.Necromancy {
			continue
		}
		hut = append(hut, s)
	}
	reg.SetWitchsHutSkills(hut)

	return reg
}

var defaultSkillValues = map[skill.SecondarySkill]skill.TierValues{
	skill.Pathfinding:  {Basic: 25, Advanced: 50, Expert: 100},
	skill.Archery:      {Basic: 10, Advanced: 25, Expert: 50},
	skill.Logistics:    {Basic: 10, Advanced: 20, Expert: 30},
	skill.Scouting:     {Basic: 1, Advanced: 2, Expert: 3},
	skill.Diplomacy:    {Basic: 25, Advanced: 50, Expert: 100},
	skill.Navigation:   {Basic: 5, Advanced: 10, Expert: 15},
	skill.Leadership:   {Basic: 1, Advanced: 2, Expert: 3},
	skill.Wisdom:       {Basic: 3, Advanced: 4, Expert: 5},
	skill.Mysticism:    {Basic: 2, Advanced: 3, Expert: 4},
	skill.Luck:         {Basic: 1, Advanced: 2, Expert: 3},
	skill.Ballistics:   {},
	skill.EagleEye:     {Basic: 20, Advanced: 30, Expert: 40},
	skill.Necromancy:   {Basic: 10, Advanced: 20, Expert: 30},
	skill.Estates:      {Basic: 100, Advanced: 250, Expert: 500},
	skill.Offense:      {Basic: 10, Advanced: 20, Expert: 30},
	skill.AirMagic:     {},
	skill.Armorer:      {Basic: 5, Advanced: 10, Expert: 15},
	skill.Artillery:    {},
	skill.EarthMagic:   {},
	skill.FireMagic:    {},
	skill.FirstAid:     {Basic: 50, Advanced: 75, Expert: 100},
	skill.Intelligence: {Basic: 25, Advanced: 50, Expert: 100},
	skill.Learning:     {Basic: 5, Advanced: 10, Expert: 15},
	skill.Resistance:   {Basic: 5, Advanced: 10, Expert: 20},
	skill.Scholar:      {},
	skill.Sorcery:      {Basic: 5, Advanced: 10, Expert: 15},
	skill.Tactics:      {Basic: 1, Advanced: 2, Expert: 3},
	skill.WaterMagic:   {},
}

var defaultRaceStats = map[race.Race]*skill.RaceStats{
	race.Knight: {
		CaptainPrimary: skill.PrimaryValues{Attack: 1, Defense: 1, Power: 1, Knowledge: 1},
		HeroPrimary:    skill.PrimaryValues{Attack: 1, Defense: 2, Power: 1, Knowledge: 1},
		InitialSpell:   int32(spell.None),
		InitialSecondary: map[skill.SecondarySkill]skill.Tier{
			skill.Leadership: skill.TierBasic,
			skill.Ballistics: skill.TierBasic,
		},
		MatureLevel:  10,
		PrimaryUnder: skill.PrimaryValues{Attack: 35, Defense: 45, Power: 10, Knowledge: 10},
		PrimaryOver:  skill.PrimaryValues{Attack: 25, Defense: 25, Power: 25, Knowledge: 25},
		SecondaryWeights: map[skill.SecondarySkill]uint32{
			skill.Pathfinding: 2, skill.Archery: 4, skill.Logistics: 3, skill.Scouting: 1,
			skill.Diplomacy: 3, skill.Navigation: 5, skill.Leadership: 5, skill.Wisdom: 1,
			skill.Mysticism: 1, skill.Luck: 2, skill.Ballistics: 4, skill.EagleEye: 1,
			skill.Necromancy: 0, skill.Estates: 2, skill.Offense: 4, skill.AirMagic: 1,
			skill.Armorer: 4, skill.Artillery: 3, skill.EarthMagic: 1, skill.FireMagic: 1,
			skill.FirstAid: 2, skill.Intelligence: 1, skill.Learning: 2, skill.Resistance: 2,
			skill.Scholar: 1, skill.Sorcery: 1, skill.Tactics: 4, skill.WaterMagic: 1,
		},
	},
	race.Barbarian: {
		CaptainPrimary: skill.PrimaryValues{Attack: 1, Defense: 1, Power: 1, Knowledge: 1},
		HeroPrimary:    skill.PrimaryValues{Attack: 2, Defense: 1, Power: 1, Knowledge: 1},
		InitialSpell:   int32(spell.None),
		InitialSecondary: map[skill.SecondarySkill]skill.Tier{
			skill.Pathfinding: skill.TierAdvanced,
		},
		MatureLevel:  10,
		PrimaryUnder: skill.PrimaryValues{Attack: 55, Defense: 35, Power: 5, Knowledge: 5},
		PrimaryOver:  skill.PrimaryValues{Attack: 30, Defense: 30, Power: 20, Knowledge: 20},
		SecondaryWeights: map[skill.SecondarySkill]uint32{
			skill.Pathfinding: 3, skill.Archery: 3, skill.Logistics: 3, skill.Scouting: 2,
			skill.Diplomacy: 2, skill.Navigation: 3, skill.Leadership: 3, skill.Wisdom: 1,
			skill.Mysticism: 1, skill.Luck: 2, skill.Ballistics: 4, skill.EagleEye: 1,
			skill.Necromancy: 0, skill.Estates: 2, skill.Offense: 5, skill.AirMagic: 1,
			skill.Armorer: 3, skill.Artillery: 3, skill.EarthMagic: 1, skill.FireMagic: 1,
			skill.FirstAid: 1, skill.Intelligence: 1, skill.Learning: 2, skill.Resistance: 3,
			skill.Scholar: 1, skill.Sorcery: 1, skill.Tactics: 5, skill.WaterMagic: 1,
		},
	},
	race.Sorceress: {
		CaptainPrimary: skill.PrimaryValues{Attack: 0, Defense: 0, Power: 2, Knowledge: 2},
		HeroPrimary:    skill.PrimaryValues{Attack: 0, Defense: 0, Power: 2, Knowledge: 3},
		InitialSpell:   int32(spell.Bless),
		InitialSecondary: map[skill.SecondarySkill]skill.Tier{
			skill.Navigation: skill.TierAdvanced,
			skill.Luck:       skill.TierBasic,
		},
		MatureLevel:  10,
		PrimaryUnder: skill.PrimaryValues{Attack: 10, Defense: 10, Power: 30, Knowledge: 50},
		PrimaryOver:  skill.PrimaryValues{Attack: 20, Defense: 20, Power: 30, Knowledge: 30},
		SecondaryWeights: map[skill.SecondarySkill]uint32{
			skill.Pathfinding: 3, skill.Archery: 3, skill.Logistics: 2, skill.Scouting: 2,
			skill.Diplomacy: 2, skill.Navigation: 4, skill.Leadership: 1, skill.Wisdom: 4,
			skill.Mysticism: 3, skill.Luck: 4, skill.Ballistics: 2, skill.EagleEye: 2,
			skill.Necromancy: 0, skill.Estates: 2, skill.Offense: 1, skill.AirMagic: 3,
			skill.Armorer: 1, skill.Artillery: 1, skill.EarthMagic: 2, skill.FireMagic: 1,
			skill.FirstAid: 3, skill.Intelligence: 3, skill.Learning: 3, skill.Resistance: 3,
			skill.Scholar: 2, skill.Sorcery: 4, skill.Tactics: 1, skill.WaterMagic: 4,
		},
	},
	race.Warlock: {
		CaptainPrimary: skill.PrimaryValues{Attack: 0, Defense: 0, Power: 2, Knowledge: 2},
		HeroPrimary:    skill.PrimaryValues{Attack: 0, Defense: 0, Power: 3, Knowledge: 2},
		InitialSpell:   int32(spell.Curse),
		InitialSecondary: map[skill.SecondarySkill]skill.Tier{
			skill.Scouting: skill.TierAdvanced,
		},
		MatureLevel:  10,
		PrimaryUnder: skill.PrimaryValues{Attack: 10, Defense: 10, Power: 50, Knowledge: 30},
		PrimaryOver:  skill.PrimaryValues{Attack: 20, Defense: 20, Power: 30, Knowledge: 30},
		SecondaryWeights: map[skill.SecondarySkill]uint32{
			skill.Pathfinding: 3, skill.Archery: 1, skill.Logistics: 2, skill.Scouting: 4,
			skill.Diplomacy: 2, skill.Navigation: 2, skill.Leadership: 1, skill.Wisdom: 4,
			skill.Mysticism: 3, skill.Luck: 2, skill.Ballistics: 2, skill.EagleEye: 3,
			skill.Necromancy: 1, skill.Estates: 2, skill.Offense: 1, skill.AirMagic: 2,
			skill.Armorer: 1, skill.Artillery: 1, skill.EarthMagic: 3, skill.FireMagic: 3,
			skill.FirstAid: 2, skill.Intelligence: 3, skill.Learning: 3, skill.Resistance: 3,
			skill.Scholar: 2, skill.Sorcery: 4, skill.Tactics: 1, skill.WaterMagic: 2,
		},
	},
	race.Wizard: {
		CaptainPrimary: skill.PrimaryValues{Attack: 0, Defense: 0, Power: 2, Knowledge: 2},
		HeroPrimary:    skill.PrimaryValues{Attack: 0, Defense: 1, Power: 2, Knowledge: 2},
		InitialSpell:   int32(spell.Stoneskin),
		InitialSecondary: map[skill.SecondarySkill]skill.Tier{
			skill.Wisdom: skill.TierBasic,
		},
		MatureLevel:  10,
		PrimaryUnder: skill.PrimaryValues{Attack: 10, Defense: 10, Power: 40, Knowledge: 40},
		PrimaryOver:  skill.PrimaryValues{Attack: 20, Defense: 20, Power: 30, Knowledge: 30},
		SecondaryWeights: map[skill.SecondarySkill]uint32{
			skill.Pathfinding: 2, skill.Archery: 1, skill.Logistics: 2, skill.Scouting: 2,
			skill.Diplomacy: 3, skill.Navigation: 2, skill.Leadership: 2, skill.Wisdom: 5,
			skill.Mysticism: 4, skill.Luck: 2, skill.Ballistics: 2, skill.EagleEye: 3,
			skill.Necromancy: 0, skill.Estates: 2, skill.Offense: 1, skill.AirMagic: 3,
			skill.Armorer: 1, skill.Artillery: 1, skill.EarthMagic: 3, skill.FireMagic: 2,
			skill.FirstAid: 2, skill.Intelligence: 4, skill.Learning: 3, skill.Resistance: 3,
			skill.Scholar: 4, skill.Sorcery: 3, skill.Tactics: 1, skill.WaterMagic: 3,
		},
	},
	race.Necromancer: {
		CaptainPrimary: skill.PrimaryValues{Attack: 0, Defense: 0, Power: 2, Knowledge: 2},
		HeroPrimary:    skill.PrimaryValues{Attack: 1, Defense: 0, Power: 2, Knowledge: 2},
		InitialSpell:   int32(spell.Haste),
		InitialSecondary: map[skill.SecondarySkill]skill.Tier{
			skill.Necromancy: skill.TierBasic,
		},
		MatureLevel:  10,
		PrimaryUnder: skill.PrimaryValues{Attack: 15, Defense: 15, Power: 35, Knowledge: 35},
		PrimaryOver:  skill.PrimaryValues{Attack: 25, Defense: 25, Power: 25, Knowledge: 25},
		SecondaryWeights: map[skill.SecondarySkill]uint32{
			skill.Pathfinding: 3, skill.Archery: 1, skill.Logistics: 2, skill.Scouting: 1,
			skill.Diplomacy: 2, skill.Navigation: 2, skill.Leadership: 0, skill.Wisdom: 4,
			skill.Mysticism: 3, skill.Luck: 1, skill.Ballistics: 2, skill.EagleEye: 3,
			skill.Necromancy: 5, skill.Estates: 2, skill.Offense: 1, skill.AirMagic: 2,
			skill.Armorer: 1, skill.Artillery: 1, skill.EarthMagic: 3, skill.FireMagic: 2,
			skill.FirstAid: 1, skill.Intelligence: 3, skill.Learning: 3, skill.Resistance: 3,
			skill.Scholar: 2, skill.Sorcery: 3, skill.Tactics: 1, skill.WaterMagic: 2,
		},
	},
}
