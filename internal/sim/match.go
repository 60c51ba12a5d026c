package sim

import (
	"fmt"
	"math/rand"
)

// DefaultIterations is the number of line-up and outcome draws per match.
const DefaultIterations = 10

// MatchResult holds both sides' mean points over the simulated trials.
type MatchResult struct {
	HomePoints float64
	AwayPoints float64
}

// MatchSimulator estimates expected points for a single fixture by
// repeated stochastic trials.
type MatchSimulator struct {
	rng        *rand.Rand
	iterations int
}

// NewMatchSimulator constructs a simulator running n trials per match.
func NewMatchSimulator(rng *rand.Rand, iterations int) *MatchSimulator {
	if iterations <= 0 {
		iterations = DefaultIterations
	}
	return &MatchSimulator{rng: rng, iterations: iterations}
}

// representativeSkills draws n line-ups per side and averages the mean
// line-up skill into one representative skill level per team.
func (m *MatchSimulator) representativeSkills(home, away *LineupSelector) (float64, float64, error) {
	var homeSum, awaySum float64
	for i := 0; i < m.iterations; i++ {
		homeLineup, err := home.Draw()
		if err != nil {
			return 0, 0, err
		}
		awayLineup, err := away.Draw()
		if err != nil {
			return 0, 0, err
		}
		homeSum += meanSkill(homeLineup)
		awaySum += meanSkill(awayLineup)
	}
	n := float64(m.iterations)
	return homeSum / n, awaySum / n, nil
}

// Simulate runs one fixture: representative skills feed the outcome model
// once, then n results are drawn from an integer-weighted outcome lottery
// and converted to points (win 3, draw 1, loss 0).
func (m *MatchSimulator) Simulate(home, away *LineupSelector) (MatchResult, error) {
	homeSkill, awaySkill, err := m.representativeSkills(home, away)
	if err != nil {
		return MatchResult{}, err
	}

	odds := MatchOdds(homeSkill, awaySkill)
	lottery := buildLottery(odds)
	if len(lottery) == 0 {
		return MatchResult{}, fmt.Errorf("empty outcome lottery for %s vs %s", home.Team(), away.Team())
	}

	var homePts, awayPts float64
	for i := 0; i < m.iterations; i++ {
		switch lottery[m.rng.Intn(len(lottery))] {
		case outcomeDraw:
			homePts++
			awayPts++
		case outcomeHomeWin:
			homePts += 3
		case outcomeAwayWin:
			awayPts += 3
		}
	}
	n := float64(m.iterations)
	return MatchResult{HomePoints: homePts / n, AwayPoints: awayPts / n}, nil
}

type outcome int

const (
	outcomeDraw    outcome = 0
	outcomeHomeWin outcome = 1
	outcomeAwayWin outcome = -1
)

// buildLottery repeats each outcome by its probability truncated to an
// integer count. Truncation loses at most three slots out of a hundred.
func buildLottery(odds Odds) []outcome {
	var lottery []outcome
	for i := 0; i < int(odds.Draw); i++ {
		lottery = append(lottery, outcomeDraw)
	}
	for i := 0; i < int(odds.HomeWin); i++ {
		lottery = append(lottery, outcomeHomeWin)
	}
	for i := 0; i < int(odds.AwayWin); i++ {
		lottery = append(lottery, outcomeAwayWin)
	}
	return lottery
}
