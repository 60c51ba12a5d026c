package roster

import "virtualtd-service/internal/domain"

// Source defines the contract for reading the league-wide player table.
type Source interface {
	MyTeam() string
	Players() []domain.PlayerRow
	SquadRows() []domain.PlayerRow
}

// Service coordinates roster reads using a Source.
type Service struct {
	source Source
}

// NewService constructs a Service with the provided Source.
func NewService(source Source) *Service {
	return &Service{source: source}
}

// Players returns the full player table, optionally filtered to one team.
func (s *Service) Players(team string) domain.PlayersResponse {
	rows := s.source.Players()
	if team != "" {
		filtered := rows[:0:0]
		for _, row := range rows {
			if row.Team == team {
				filtered = append(filtered, row)
			}
		}
		rows = filtered
	}
	return domain.PlayersResponse{Count: len(rows), Players: rows}
}

// PlayerByName returns a single player row if present.
func (s *Service) PlayerByName(name string) (domain.PlayerRow, bool) {
	for _, row := range s.source.Players() {
		if row.Name == name {
			return row, true
		}
	}
	return domain.PlayerRow{}, false
}

// Squad returns the managed team's current slice.
func (s *Service) Squad() domain.PlayersResponse {
	rows := s.source.SquadRows()
	return domain.PlayersResponse{Count: len(rows), Players: rows}
}

// MyTeam returns the managed team's name.
func (s *Service) MyTeam() string {
	return s.source.MyTeam()
}
