package domain

// PlayerRow is the tabular interchange shape exchanged between simulation
// phases. Column names are a hard contract: downstream filters select by
// exact JSON key, so fields must not be renamed or dropped.
type PlayerRow struct {
	Player
	Team     string  `json:"team"`
	MyTeam   bool    `json:"my_team"`
	NMatches int     `json:"n_matches"`
	Minutes  float64 `json:"minutes"`
	XPoints  float64 `json:"xPoints"`
}

// TeamRow is one standings entry. Rank is assigned after sorting by
// accumulated expected points, descending.
type TeamRow struct {
	Name    string  `json:"squad_name"`
	MyTeam  bool    `json:"my_team"`
	XPoints float64 `json:"xPoints"`
	Rank    int     `json:"rank"`
}

// StandingsResponse is the payload returned by /standings.
type StandingsResponse struct {
	League string    `json:"league"`
	Teams  []TeamRow `json:"teams"`
}

// PlayersResponse is the payload returned by /players and /squad.
type PlayersResponse struct {
	Count   int         `json:"count"`
	Players []PlayerRow `json:"players"`
}
