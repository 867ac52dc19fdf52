package stats

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/jerbear1235/fheroes2/internal/game/race"
	"github.com/jerbear1235/fheroes2/internal/game/skill"
	"github.com/jerbear1235/fheroes2/internal/game/spell"
)

// raceFile is the on-disk tuning table for one race.
//
// Precondition: Race must name a playable race after loading.
type raceFile struct {
	Race             string            `yaml:"race"`
	MatureLevel      int               `yaml:"mature_level"`
	CaptainPrimary   primaryFile       `yaml:"captain_primary"`
	HeroPrimary      primaryFile       `yaml:"hero_primary"`
	InitialSpell     string            `yaml:"initial_spell"`
	InitialSecondary map[string]string `yaml:"initial_secondary"`
	PrimaryUnder     primaryFile       `yaml:"primary_under"`
	PrimaryOver      primaryFile       `yaml:"primary_over"`
	SecondaryWeights map[string]uint32 `yaml:"secondary_weights"`
}

type primaryFile struct {
	Attack    uint32 `yaml:"attack"`
	Defense   uint32 `yaml:"defense"`
	Power     uint32 `yaml:"power"`
	Knowledge uint32 `yaml:"knowledge"`
}

func (p primaryFile) values() skill.PrimaryValues {
	return skill.PrimaryValues{
		Attack:    p.Attack,
		Defense:   p.Defense,
		Power:     p.Power,
		Knowledge: p.Knowledge,
	}
}

// LoadRaces reads all .yaml files in dir and registers each as a race
// tuning table, replacing any table already present for that race.
//
// Precondition: dir must be a readable directory path.
// Postcondition: Returns a non-nil error if any file fails to parse or
// validate; the registry may have absorbed earlier files in that case.
func (r *Registry) LoadRaces(dir string) error {
	files, err := yamlFiles(dir)
	if err != nil {
		return err
	}
	for _, path := range files {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		var rf raceFile
		if err := yaml.Unmarshal(data, &rf); err != nil {
			return fmt.Errorf("parsing race file %s: %w", path, err)
		}
		rc, rs, err := rf.stats()
		if err != nil {
			return fmt.Errorf("race file %s: %w", path, err)
		}
		r.RegisterRace(rc, rs)
	}
	return nil
}

func (rf *raceFile) stats() (race.Race, *skill.RaceStats, error) {
	rc, ok := race.Parse(rf.Race)
	if !ok || rc == race.None {
		return race.None, nil, fmt.Errorf("unknown race %q", rf.Race)
	}
	if rf.MatureLevel <= 0 {
		return race.None, nil, fmt.Errorf("race %q: mature_level must be positive", rf.Race)
	}

	sp := spell.None
	if rf.InitialSpell != "" {
		sp, ok = spell.ParseName(rf.InitialSpell)
		if !ok {
			return race.None, nil, fmt.Errorf("race %q: unknown initial spell %q", rf.Race, rf.InitialSpell)
		}
	}

	initial := make(map[skill.SecondarySkill]skill.Tier, len(rf.InitialSecondary))
	for key, tierName := range rf.InitialSecondary {
		s, err := skill.ParseSecondary(key)
		if err != nil {
			return race.None, nil, err
		}
		t, err := skill.ParseTier(tierName)
		if err != nil {
			return race.None, nil, err
		}
		initial[s] = t
	}

	weights := make(map[skill.SecondarySkill]uint32, len(rf.SecondaryWeights))
	for key, w := range rf.SecondaryWeights {
		s, err := skill.ParseSecondary(key)
		if err != nil {
			return race.None, nil, err
		}
		weights[s] = w
	}

	return rc, &skill.RaceStats{
		CaptainPrimary:   rf.CaptainPrimary.values(),
		HeroPrimary:      rf.HeroPrimary.values(),
		InitialSpell:     int32(sp),
		InitialSecondary: initial,
		MatureLevel:      rf.MatureLevel,
		PrimaryUnder:     rf.PrimaryUnder.values(),
		PrimaryOver:      rf.PrimaryOver.values(),
		SecondaryWeights: weights,
	}, nil
}

// skillsFile is the on-disk effect value table for secondary skills.
type skillsFile struct {
	Skills map[string]tierFile `yaml:"skills"`
}

type tierFile struct {
	Basic    uint32 `yaml:"basic"`
	Advanced uint32 `yaml:"advanced"`
	Expert   uint32 `yaml:"expert"`
}

// LoadSkillValues reads path and registers each listed skill's per-tier
// effect values, replacing any values already present.
func (r *Registry) LoadSkillValues(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	var sf skillsFile
	if err := yaml.Unmarshal(data, &sf); err != nil {
		return fmt.Errorf("parsing skill value file %s: %w", path, err)
	}
	for key, tf := range sf.Skills {
		s, err := skill.ParseSecondary(key)
		if err != nil {
			return fmt.Errorf("skill value file %s: %w", path, err)
		}
		r.RegisterSkillValues(s, skill.TierValues{
			Basic:    tf.Basic,
			Advanced: tf.Advanced,
			Expert:   tf.Expert,
		})
	}
	return nil
}

func yamlFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading directory %s: %w", dir, err)
	}
	var paths []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if strings.HasSuffix(name, ".yaml") || strings.HasSuffix(name, ".yml") {
			paths = append(paths, filepath.Join(dir, name))
		}
	}
	return paths, nil
}
