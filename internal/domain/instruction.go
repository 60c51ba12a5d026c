package domain

// CoachInstruction configures the weighted lottery over hierarchy tiers
// used for line-up selection. Shares are relative counts and need not sum
// to 100.
type CoachInstruction struct {
	StarterShare int `json:"starter_match_share"`
	SubShare     int `json:"sub_match_share"`
	AcademyShare int `json:"academy_match_share"`
}

// DefaultInstruction is the line-up split used by every autonomous team.
func DefaultInstruction() CoachInstruction {
	return CoachInstruction{
		StarterShare: 70,
		SubShare:     20,
		AcademyShare: 10,
	}
}

// Share returns the configured match share for a tier.
func (c CoachInstruction) Share(tier Tier) int {
	switch tier {
	case TierStarter:
		return c.StarterShare
	case TierSub:
		return c.SubShare
	case TierAcademy:
		return c.AcademyShare
	default:
		return 0
	}
}

// Transfer is a proposed acquisition handed to the squad decision engine:
// an external candidate, the tier slot to fill and the contract offered.
type Transfer struct {
	Player        Player `json:"player"`
	Tier          Tier   `json:"squad_hierarchy"`
	ContractYears int    `json:"contract"`
}
