package sim

import (
	"fmt"
	"math/rand"

	"virtualtd-service/internal/domain"
	"virtualtd-service/internal/valuation"
)

// fullSquadRows builds a complete 33-row squad with uniform attributes.
func fullSquadRows(team string, skill float64, myTeam bool) []domain.PlayerRow {
	var rows []domain.PlayerRow
	for i, slot := range domain.SquadComposition() {
		age := 25.0
		if slot.Tier == domain.TierAcademy {
			age = 19.0
		}
		p := domain.Player{
			Name:            fmt.Sprintf("%s Player %d", team, i+1),
			ContractYears:   3,
			Age:             age,
			Position:        slot.Position,
			SkillLevel:      skill,
			PotentialLevel:  100,
			Tier:            slot.Tier,
			InjuryProneness: 0.05,
		}
		p.Value = valuation.PlayerValue(valuation.Input{
			Age:             p.Age,
			ContractYears:   p.ContractYears,
			SkillLevel:      p.SkillLevel,
			PotentialLevel:  p.PotentialLevel,
			InjuryProneness: p.InjuryProneness,
		})
		rows = append(rows, domain.PlayerRow{
			Player: p,
			Team:   team,
			MyTeam: myTeam,
		})
	}
	return rows
}

func testRNG(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}
