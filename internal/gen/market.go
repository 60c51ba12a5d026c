package gen

import (
	"log/slog"
	"math/rand"

	"virtualtd-service/internal/domain"
	"virtualtd-service/internal/logging"
	"virtualtd-service/internal/metrics"
	"virtualtd-service/internal/names"
	"virtualtd-service/internal/valuation"
)

// Skill parameters for free agents, who belong to no squad. The wide SD
// keeps the market stocked with both bargains and stars.
const (
	marketStrength = 50.0
	marketSD       = 25.0
)

// MarketGenerator produces the open pool of free agents available for
// transfer-window acquisition. It shares the league's name registry so
// market names never collide with rostered players.
type MarketGenerator struct {
	rng      *rand.Rand
	registry *NameRegistry
	ages     AgeSampler
	contract ContractSampler
	logger   *slog.Logger
	metrics  *metrics.Recorder
}

// NewMarketGenerator wires a market generator over the shared random
// source and registry.
func NewMarketGenerator(rng *rand.Rand, registry *NameRegistry, logger *slog.Logger, recorder *metrics.Recorder) *MarketGenerator {
	return &MarketGenerator{
		rng:      rng,
		registry: registry,
		ages:     DefaultAgeSampler(),
		contract: DefaultContractSampler(),
		logger:   logger,
		metrics:  recorder,
	}
}

// Generate builds n arbitrary free agents: random position, random tier,
// market-wide skill distribution.
func (g *MarketGenerator) Generate(n int) ([]domain.Player, error) {
	players := make([]domain.Player, 0, n)
	for i := 0; i < n; i++ {
		player, err := g.generateFreeAgent()
		if err != nil {
			return nil, err
		}
		players = append(players, player)
	}

	g.metrics.RecordPlayersGenerated(len(players))
	logging.Info(g.logger, "transfer market generated", logging.FieldCount, len(players))
	return players, nil
}

func (g *MarketGenerator) generateFreeAgent() (domain.Player, error) {
	name, err := g.registry.Next(names.ScopePlayer)
	if err != nil {
		return domain.Player{}, err
	}

	positions := domain.Positions()
	tiers := domain.Tiers()
	position := positions[g.rng.Intn(len(positions))]
	tier := tiers[g.rng.Intn(len(tiers))]

	var (
		age      float64
		rejected int
		ageErr   error
		contract int
	)
	if tier == domain.TierAcademy {
		age, rejected, ageErr = g.ages.Academy(g.rng)
		g.metrics.RecordResamples("academy_age", rejected)
		contract = g.contract.Academy(g.rng)
	} else {
		age, rejected, ageErr = g.ages.Regular(g.rng)
		g.metrics.RecordResamples("regular_age", rejected)
		contract = g.contract.Regular(g.rng)
	}
	if ageErr != nil {
		return domain.Player{}, ageErr
	}

	skill := SkillSampler{TeamStrength: marketStrength, StrengthSD: marketSD}.Academy(g.rng)
	potential := Potential(g.rng, age, skill, marketSD)
	injury := InjuryProneness(g.rng)

	return domain.Player{
		Name:            name,
		ContractYears:   float64(contract),
		Age:             age,
		Position:        position,
		SkillLevel:      skill,
		PotentialLevel:  potential,
		Tier:            tier,
		InjuryProneness: injury,
		Value: valuation.PlayerValue(valuation.Input{
			Age:             age,
			ContractYears:   float64(contract),
			SkillLevel:      skill,
			PotentialLevel:  potential,
			InjuryProneness: injury,
		}),
	}, nil
}
