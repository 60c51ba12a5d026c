// Package gen builds the synthetic league population: constrained player
// attributes, full squads on the fixed 11x3 composition, and the open
// transfer market. All randomness flows through an injected *rand.Rand so
// simulations can be replayed from a seed.
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

// LeagueConfig holds the league-level generation parameters.
type LeagueConfig struct {
	// LeagueStrength is the mean team strength on the 0-100 scale.
	LeagueStrength float64
	// CompetitivenessSD spreads team strengths; strengths stay clamped to
	// 0-100 by rejection, so keep strength +/- 2 SD inside the scale for a
	// representative league.
	CompetitivenessSD float64
	Teams             int
}

// LeagueGenerator creates a league of squads and players for simulation.
type LeagueGenerator struct {
	rng      *rand.Rand
	registry *NameRegistry
	cfg      LeagueConfig
	ages     AgeSampler
	contract ContractSampler
	logger   *slog.Logger
	metrics  *metrics.Recorder
}

// NewLeagueGenerator wires a generator over a shared random source and name
// registry. Logger and recorder may be nil.
func NewLeagueGenerator(rng *rand.Rand, registry *NameRegistry, cfg LeagueConfig, logger *slog.Logger, recorder *metrics.Recorder) *LeagueGenerator {
	return &LeagueGenerator{
		rng:      rng,
		registry: registry,
		cfg:      cfg,
		ages:     DefaultAgeSampler(),
		contract: DefaultContractSampler(),
		logger:   logger,
		metrics:  recorder,
	}
}

// Generate builds the full league: a name, cfg.Teams squads, and 33 unique
// players per squad.
func (g *LeagueGenerator) Generate() (domain.League, error) {
	leagueName, err := g.registry.Next(names.ScopeLeague)
	if err != nil {
		return domain.League{}, err
	}

	squads := make([]domain.Squad, 0, g.cfg.Teams)
	for i := 0; i < g.cfg.Teams; i++ {
		strength, rejected, err := normalWithin(g.rng, g.cfg.LeagueStrength, g.cfg.CompetitivenessSD, 0, 100, "team_strength")
		g.metrics.RecordResamples("team_strength", rejected)
		if err != nil {
			return domain.League{}, err
		}

		squad, err := g.generateSquad(strength)
		if err != nil {
			return domain.League{}, err
		}
		squads = append(squads, squad)
	}

	logging.Info(g.logger, "league generated",
		logging.FieldCount, len(squads),
		"league", leagueName,
	)
	return domain.League{Name: leagueName, Squads: squads}, nil
}

func (g *LeagueGenerator) generateSquad(strength float64) (domain.Squad, error) {
	teamName, err := g.registry.Next(names.ScopeTeam)
	if err != nil {
		return domain.Squad{}, err
	}

	skills := SkillSampler{TeamStrength: strength, StrengthSD: g.cfg.CompetitivenessSD}
	players := make([]domain.Player, 0, len(domain.SquadComposition()))
	for _, slot := range domain.SquadComposition() {
		player, err := g.generatePlayer(slot, skills)
		if err != nil {
			return domain.Squad{}, err
		}
		players = append(players, player)
	}

	g.metrics.RecordPlayersGenerated(len(players))
	squad := domain.Squad{Name: teamName, Players: players}
	totals := squad.Totals()
	logging.Info(g.logger, "squad generated",
		logging.FieldTeam, teamName,
		"value_sum", totals.ValueSum,
		"avg_age", totals.AvgAge,
	)
	return squad, nil
}

func (g *LeagueGenerator) generatePlayer(slot domain.Slot, skills SkillSampler) (domain.Player, error) {
	name, err := g.registry.Next(names.ScopePlayer)
	if err != nil {
		return domain.Player{}, err
	}

	var (
		age      float64
		rejected int
		ageErr   error
		contract int
		skill    float64
	)
	switch slot.Tier {
	case domain.TierAcademy:
		age, rejected, ageErr = g.ages.Academy(g.rng)
		g.metrics.RecordResamples("academy_age", rejected)
		contract = g.contract.Academy(g.rng)
		skill = skills.Academy(g.rng)
	case domain.TierSub:
		age, rejected, ageErr = g.ages.Regular(g.rng)
		g.metrics.RecordResamples("regular_age", rejected)
		contract = g.contract.Regular(g.rng)
		skill = skills.Sub(g.rng)
	default:
		age, rejected, ageErr = g.ages.Regular(g.rng)
		g.metrics.RecordResamples("regular_age", rejected)
		contract = g.contract.Regular(g.rng)
		skill = skills.Starter(g.rng)
	}
	if ageErr != nil {
		return domain.Player{}, ageErr
	}

	potential := Potential(g.rng, age, skill, skills.StrengthSD)
	injury := InjuryProneness(g.rng)

	return domain.Player{
		Name:            name,
		ContractYears:   float64(contract),
		Age:             age,
		Position:        slot.Position,
		SkillLevel:      skill,
		PotentialLevel:  potential,
		Tier:            slot.Tier,
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
