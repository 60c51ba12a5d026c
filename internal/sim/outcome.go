package sim

import "math"

// Odds holds the three outcome probabilities for one fixture, expressed
// in percent. Draw + HomeWin + AwayWin always sums to 100.
type Odds struct {
	Draw    float64
	HomeWin float64
	AwayWin float64
}

// MatchOdds converts two representative skill levels into outcome odds.
// A larger skill gap lowers the draw chance and tilts the win split
// toward the stronger side. Win shares are clamped to [0,100] so extreme
// gaps saturate instead of producing negative probabilities.
func MatchOdds(homeSkill, awaySkill float64) Odds {
	draw := math.Abs(homeSkill/100-awaySkill/100) * (100.0 / 3.0)
	combined := 100 - draw

	homeShare := clamp(50+(homeSkill-awaySkill), 0, 100)
	awayShare := 100 - homeShare

	return Odds{
		Draw:    draw,
		HomeWin: homeShare / 100 * combined,
		AwayWin: awayShare / 100 * combined,
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
