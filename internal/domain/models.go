package domain

// Tier mirrors the shared contract for squad hierarchy bands.
type Tier string

const (
	TierStarter Tier = "STARTER"
	TierSub     Tier = "SUB"
	TierAcademy Tier = "ACADEMY"
)

// Tiers lists the hierarchy bands in rank order.
func Tiers() []Tier {
	return []Tier{TierStarter, TierSub, TierAcademy}
}

// Position is one of the 11 fixed on-field roles. Playing style is
// disregarded; every squad fields the same 4-3-3 shape.
type Position string

const (
	PositionGoalkeeper      Position = "GOALKEEPER"
	PositionLeftBack        Position = "LEFT_BACK"
	PositionLeftCentreBack  Position = "LEFT_CENTRE_BACK"
	PositionRightCentreBack Position = "RIGHT_CENTRE_BACK"
	PositionRightBack       Position = "RIGHT_BACK"
	PositionLeftMid         Position = "LEFT_MID"
	PositionCentreMid       Position = "CENTRE_MID"
	PositionRightMid        Position = "RIGHT_MID"
	PositionLeftWing        Position = "LEFT_WING"
	PositionStriker         Position = "STRIKER"
	PositionRightWing       Position = "RIGHT_WING"
)

// Positions lists every on-field role.
func Positions() []Position {
	return []Position{
		PositionGoalkeeper,
		PositionLeftBack,
		PositionLeftCentreBack,
		PositionRightCentreBack,
		PositionRightBack,
		PositionLeftMid,
		PositionCentreMid,
		PositionRightMid,
		PositionLeftWing,
		PositionStriker,
		PositionRightWing,
	}
}

// Slot identifies one cell of the fixed 11x3 squad grid.
type Slot struct {
	Position Position `json:"position"`
	Tier     Tier     `json:"tier"`
}

// SquadComposition returns the fixed grid every generated squad must fill
// exactly once per cell: 11 positions x 3 tiers.
func SquadComposition() []Slot {
	slots := make([]Slot, 0, len(Positions())*len(Tiers()))
	for _, pos := range Positions() {
		for _, tier := range Tiers() {
			slots = append(slots, Slot{Position: pos, Tier: tier})
		}
	}
	return slots
}

// Player is the canonical player shape. Names are unique within a
// generated population. Skill must never exceed potential after creation.
type Player struct {
	Name            string   `json:"player_name"`
	ContractYears   float64  `json:"contract_years"`
	Age             float64  `json:"age"`
	Position        Position `json:"position"`
	SkillLevel      float64  `json:"skill_level"`
	PotentialLevel  float64  `json:"potential_level"`
	Value           float64  `json:"player_value"`
	Tier            Tier     `json:"squad_hierarchy"`
	InjuryProneness float64  `json:"injury_proneness"`
}

// Squad is a name plus exactly 33 players covering the full composition.
type Squad struct {
	Name    string   `json:"squad_name"`
	Players []Player `json:"squad_players"`
}

// SquadTotals holds derived squad aggregates. They are computed on demand
// and never cached on the entity; callers holding an old value hold a
// stale snapshot.
type SquadTotals struct {
	ValueSum    float64 `json:"squad_value_sum"`
	ValueAvg    float64 `json:"squad_value_avg"`
	AvgAge      float64 `json:"squad_avg_age"`
	AvgContract float64 `json:"squad_avg_contract"`
}

// Totals computes the squad aggregates from the current player list.
func (s Squad) Totals() SquadTotals {
	if len(s.Players) == 0 {
		return SquadTotals{}
	}
	var t SquadTotals
	for _, p := range s.Players {
		t.ValueSum += p.Value
		t.AvgAge += p.Age
		t.AvgContract += p.ContractYears
	}
	n := float64(len(s.Players))
	t.ValueAvg = t.ValueSum / n
	t.AvgAge /= n
	t.AvgContract /= n
	return t
}

// League is a name plus squads in generation order. Order carries no
// ranking meaning until a season has been simulated.
type League struct {
	Name   string  `json:"league_name"`
	Squads []Squad `json:"league_squads"`
}
