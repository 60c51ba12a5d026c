package sim

import (
	"fmt"
	"math/rand"

	"virtualtd-service/internal/domain"
)

// LineupSelector draws match line-ups for one team. Each draw picks, per
// position independently, a hierarchy tier from a weighted pool built
// from the coach instruction, then selects the player occupying that
// (position, tier) cell.
type LineupSelector struct {
	team    string
	rng     *rand.Rand
	pool    []domain.Tier
	bySlot  map[domain.Slot]domain.PlayerRow
}

// NewLineupSelector builds a selector over the given team rows. The
// instruction's shares are relative counts; they need not sum to 100 but
// must not all be zero.
func NewLineupSelector(rng *rand.Rand, team string, instruction domain.CoachInstruction, players []domain.PlayerRow) (*LineupSelector, error) {
	var pool []domain.Tier
	for _, tier := range domain.Tiers() {
		share := instruction.Share(tier)
		if share < 0 {
			return nil, fmt.Errorf("negative match share %d for tier %s", share, tier)
		}
		for i := 0; i < share; i++ {
			pool = append(pool, tier)
		}
	}
	if len(pool) == 0 {
		return nil, fmt.Errorf("coach instruction for %s has no positive match share", team)
	}

	bySlot := make(map[domain.Slot]domain.PlayerRow, len(players))
	for _, p := range players {
		bySlot[domain.Slot{Position: p.Position, Tier: p.Tier}] = p
	}

	return &LineupSelector{
		team:   team,
		rng:    rng,
		pool:   pool,
		bySlot: bySlot,
	}, nil
}

// Team returns the team the selector draws for.
func (s *LineupSelector) Team() string {
	return s.team
}

// Draw selects one line-up: exactly one player per position. Drawing a
// tier whose cell is unoccupied surfaces an InvalidSquadStateError rather
// than silently skipping the position.
func (s *LineupSelector) Draw() ([]domain.PlayerRow, error) {
	lineup := make([]domain.PlayerRow, 0, len(domain.Positions()))
	for _, pos := range domain.Positions() {
		tier := s.pool[s.rng.Intn(len(s.pool))]
		slot := domain.Slot{Position: pos, Tier: tier}
		player, ok := s.bySlot[slot]
		if !ok {
			return nil, &InvalidSquadStateError{Team: s.team, Slot: slot}
		}
		lineup = append(lineup, player)
	}
	return lineup, nil
}

// meanSkill averages the skill level across one drawn line-up.
func meanSkill(lineup []domain.PlayerRow) float64 {
	if len(lineup) == 0 {
		return 0
	}
	var sum float64
	for _, p := range lineup {
		sum += p.SkillLevel
	}
	return sum / float64(len(lineup))
}
