package standings

import "virtualtd-service/internal/domain"

// Source defines the contract for reading the current league table.
type Source interface {
	LeagueName() string
	Standings() []domain.TeamRow
}

// Service coordinates standings reads using a Source.
type Service struct {
	source Source
}

// NewService constructs a Service with the provided Source.
func NewService(source Source) *Service {
	return &Service{source: source}
}

// Table returns the current standings payload.
func (s *Service) Table() domain.StandingsResponse {
	return domain.StandingsResponse{
		League: s.source.LeagueName(),
		Teams:  s.source.Standings(),
	}
}

// TeamByName returns a single standings row if present.
func (s *Service) TeamByName(name string) (domain.TeamRow, bool) {
	for _, row := range s.source.Standings() {
		if row.Name == name {
			return row, true
		}
	}
	return domain.TeamRow{}, false
}
