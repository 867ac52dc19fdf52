// Package main provides the hero level-up simulator: it rolls heroes of a
// configured race through a number of level-ups and reports the resulting
// builds, optionally persisting them.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jerbear1235/fheroes2/internal/config"
	"github.com/jerbear1235/fheroes2/internal/game/hero"
	"github.com/jerbear1235/fheroes2/internal/game/race"
	"github.com/jerbear1235/fheroes2/internal/game/skill"
	"github.com/jerbear1235/fheroes2/internal/game/stats"
	"github.com/jerbear1235/fheroes2/internal/observability"
	"github.com/jerbear1235/fheroes2/internal/storage/postgres"
)

func main() {
	start := time.Now()

	configPath := flag.String("config", "configs/dev.yaml", "path to configuration file")
	flag.Parse()

	ctx := context.Background()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("creating logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	reg := stats.DefaultRegistry()
	if cfg.Rules.RacesDir != "" {
		if err := reg.LoadRaces(cfg.Rules.RacesDir); err != nil {
			logger.Fatal("loading race tables", zap.Error(err))
		}
	}
	if cfg.Rules.SkillValuesFile != "" {
		if err := reg.LoadSkillValues(cfg.Rules.SkillValuesFile); err != nil {
			logger.Fatal("loading skill value table", zap.Error(err))
		}
	}

	rc, ok := race.Parse(cfg.Sim.Race)
	if !ok || rc == race.None {
		logger.Fatal("unknown race", zap.String("race", cfg.Sim.Race))
	}

	var repo *postgres.HeroRepository
	if cfg.Sim.Persist {
		pool, err := postgres.NewPool(ctx, cfg.Database)
		if err != nil {
			logger.Fatal("connecting to database", zap.Error(err))
		}
		defer pool.Close()
		repo = postgres.NewHeroRepository(pool.DB(), reg)
	}

	runID := uuid.New()
	seed := cfg.Sim.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	logger.Info("simulation starting",
		zap.Stringer("run_id", runID),
		zap.Stringer("race", rc),
		zap.Int("heroes", cfg.Sim.Heroes),
		zap.Int("levels", cfg.Sim.Levels),
		zap.Uint64("seed", seed),
	)

	for i := 0; i < cfg.Sim.Heroes; i++ {
		h := simulateHero(logger, reg, rc, i, seed, cfg.Sim.Levels)

		if repo != nil {
			if err := repo.Create(ctx, h); err != nil {
				logger.Error("persisting hero", zap.String("hero", h.Name), zap.Error(err))
			}
		}
	}

	logger.Info("simulation finished", zap.Stringer("run_id", runID), zap.Duration("elapsed", time.Since(start)))
}

func simulateHero(logger *zap.Logger, reg *stats.Registry, rc race.Race, index int, seed uint64, levels int) *hero.Hero {
	name := fmt.Sprintf("%s-%d-%d", rc, seed, index)
	h := hero.New(name, rc, skill.RoleHero, reg)

	// spread hero streams far apart; each level-up consumes three draws
	base := seed + uint64(index)*1_000_003

	for lvl := 0; lvl < levels; lvl++ {
		res := h.LevelUp(base + uint64(lvl)*3)
		choice := chooseSkill(h, reg, res)
		if choice.IsValid() {
			if err := h.LearnSkill(choice); err != nil {
				logger.Error("learning skill", zap.String("hero", name), zap.Error(err))
			}
		}

		logger.Debug("level gained",
			zap.String("hero", name),
			zap.Int("level", res.Level),
			zap.Stringer("primary", res.Primary),
			zap.String("skill", choice.Name()),
		)
	}

	logger.Info("hero finished",
		zap.String("hero", name),
		zap.Int("level", h.Level),
		zap.Uint32("attack", h.Primary.Attack),
		zap.Uint32("defense", h.Primary.Defense),
		zap.Uint32("power", h.Primary.Power),
		zap.Uint32("knowledge", h.Primary.Knowledge),
		zap.String("skills", h.Skills.String()),
	)
	return h
}

// chooseSkill resolves a level-up offer the way a simple AI would: prefer
// the candidate with the higher race weight, falling back to whichever is
// valid.
func chooseSkill(h *hero.Hero, reg *stats.Registry, res hero.LevelUpResult) skill.Secondary {
	if !res.First.IsValid() {
		return res.Second
	}
	if !res.Second.IsValid() {
		return res.First
	}

	rs, ok := reg.RaceStats(h.Race)
	if !ok {
		return res.First
	}
	if rs.SecondaryWeight(res.Second.Skill) > rs.SecondaryWeight(res.First.Skill) {
		return res.Second
	}
	return res.First
}
