package sim

import (
	"virtualtd-service/internal/domain"
	"virtualtd-service/internal/valuation"
)

// DefaultWindowStep is the time advanced per transfer window, in years.
const DefaultWindowStep = 0.5

// AdvanceWindow applies one transfer-window step to every row in place:
// contracts run down (floor 0), everyone ages, skill grows toward
// potential from realized performance, and values are recomputed from the
// updated attributes. The input slice is mutated and returned.
func AdvanceWindow(rows []domain.PlayerRow, step float64) []domain.PlayerRow {
	if step <= 0 {
		step = DefaultWindowStep
	}
	for i := range rows {
		advancePlayer(&rows[i], step)
	}
	return rows
}

func advancePlayer(row *domain.PlayerRow, step float64) {
	row.ContractYears -= step
	if row.ContractYears < 0 {
		row.ContractYears = 0
	}
	row.Age += step

	if bonus := skillBonus(row); bonus > 0 && row.SkillLevel+bonus <= row.PotentialLevel {
		row.SkillLevel += bonus
	}

	row.Value = valuation.PlayerValue(valuation.Input{
		Age:             row.Age,
		ContractYears:   row.ContractYears,
		SkillLevel:      row.SkillLevel,
		PotentialLevel:  row.PotentialLevel,
		InjuryProneness: row.InjuryProneness,
	})
}

// skillBonus derives growth from realized performance: the share of the
// maximum attainable points, scaled by playing time. A player with no
// matches played earns nothing.
func skillBonus(row *domain.PlayerRow) float64 {
	if row.NMatches <= 0 {
		return 0
	}
	return (row.XPoints / (float64(row.NMatches) * 3)) * (row.Minutes / 10)
}

// MyTeamRows filters the managed team's slice out of a full table.
func MyTeamRows(rows []domain.PlayerRow) []domain.PlayerRow {
	var out []domain.PlayerRow
	for _, r := range rows {
		if r.MyTeam {
			out = append(out, r)
		}
	}
	return out
}
