package sim

import (
	"log/slog"
	"math/rand"
	"sort"

	"virtualtd-service/internal/domain"
	"virtualtd-service/internal/logging"
	"virtualtd-service/internal/metrics"
)

// SeasonHalfSimulator runs a single round-robin half: every team meets
// every other team exactly once as the focal side, accumulating expected
// points.
type SeasonHalfSimulator struct {
	rng        *rand.Rand
	iterations int
	logger     *slog.Logger
	recorder   *metrics.Recorder
}

// NewSeasonHalfSimulator constructs a season-half simulator.
func NewSeasonHalfSimulator(rng *rand.Rand, iterations int, logger *slog.Logger, recorder *metrics.Recorder) *SeasonHalfSimulator {
	if iterations <= 0 {
		iterations = DefaultIterations
	}
	return &SeasonHalfSimulator{
		rng:        rng,
		iterations: iterations,
		logger:     logger,
		recorder:   recorder,
	}
}

// Run plays the half. The managed team uses the given instruction; every
// other side, focal or opponent, uses the default split. Expected points
// accumulate on top of the incoming rows, so a second half extends the
// first half's totals. The returned standings are sorted descending by
// points with a fresh sequential rank.
func (s *SeasonHalfSimulator) Run(
	teams []domain.TeamRow,
	players []domain.PlayerRow,
	myTeam string,
	instruction domain.CoachInstruction,
) ([]domain.TeamRow, error) {
	byTeam := make(map[string][]domain.PlayerRow)
	for _, p := range players {
		byTeam[p.Team] = append(byTeam[p.Team], p)
	}

	standings := make([]domain.TeamRow, len(teams))
	copy(standings, teams)

	matches := 0
	for i := range standings {
		focal := standings[i].Name
		focalInstruction := domain.DefaultInstruction()
		if focal == myTeam {
			focalInstruction = instruction
		}
		focalSelector, err := NewLineupSelector(s.rng, focal, focalInstruction, byTeam[focal])
		if err != nil {
			return nil, err
		}

		var earned float64
		for j := range standings {
			opponent := standings[j].Name
			if opponent == focal {
				continue
			}
			opponentSelector, err := NewLineupSelector(s.rng, opponent, domain.DefaultInstruction(), byTeam[opponent])
			if err != nil {
				return nil, err
			}

			match := NewMatchSimulator(s.rng, s.iterations)
			result, err := match.Simulate(focalSelector, opponentSelector)
			if err != nil {
				return nil, err
			}
			earned += result.HomePoints
			matches++
		}

		standings[i].XPoints += earned
		logging.Info(s.logger, "season half simulated for team",
			logging.FieldTeam, focal,
			"earned_xpoints", earned,
		)
	}
	s.recorder.RecordMatchesSimulated(matches)

	sort.SliceStable(standings, func(i, j int) bool {
		return standings[i].XPoints > standings[j].XPoints
	})
	for i := range standings {
		standings[i].Rank = i + 1
	}
	return standings, nil
}
