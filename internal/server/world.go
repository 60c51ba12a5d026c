package server

import (
	"fmt"
	"log/slog"
	"math/rand"

	"virtualtd-service/internal/config"
	"virtualtd-service/internal/domain"
	"virtualtd-service/internal/gen"
	"virtualtd-service/internal/logging"
	"virtualtd-service/internal/metrics"
	"virtualtd-service/internal/names"
)

// world holds the generated starting state for a simulation run.
type world struct {
	league domain.League
	market []domain.Player
	myTeam string
	seed   int64
}

// generateWorld builds the league and the free agent market from one
// shared random source. Names are unique across both populations.
func generateWorld(cfg config.SimConfig, rng *rand.Rand, seed int64, logger *slog.Logger, recorder *metrics.Recorder) (world, error) {
	registry := gen.NewNameRegistry(names.NewWordlistSupplier(rng))

	generator := gen.NewLeagueGenerator(rng, registry, gen.LeagueConfig{
		LeagueStrength:    cfg.LeagueStrength,
		CompetitivenessSD: cfg.CompetitivenessSD,
		Teams:             cfg.Teams,
	}, logger, recorder)
	league, err := generator.Generate()
	if err != nil {
		return world{}, fmt.Errorf("generate league: %w", err)
	}

	market, err := gen.NewMarketGenerator(rng, registry, logger, recorder).Generate(cfg.MarketSize)
	if err != nil {
		return world{}, fmt.Errorf("generate market: %w", err)
	}

	idx := cfg.MyTeamIndex
	if idx < 0 || idx >= len(league.Squads) {
		idx = 0
	}
	myTeam := league.Squads[idx].Name

	logging.Info(logger, "world generated",
		"league", league.Name,
		logging.FieldTeam, myTeam,
		logging.FieldSeed, seed,
		logging.FieldCount, len(league.Squads),
		"market_size", len(market),
	)
	return world{league: league, market: market, myTeam: myTeam, seed: seed}, nil
}
