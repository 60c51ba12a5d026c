package sim

import (
	"log/slog"
	"math/rand"

	"virtualtd-service/internal/domain"
	"virtualtd-service/internal/logging"
	"virtualtd-service/internal/metrics"
	"virtualtd-service/internal/store"
)

// LeagueSimulator owns the authoritative league-wide player and team
// tables for a run and sequences the cycle phases over them: season half,
// transfer window, external squad decisions, re-absorption, new season.
// Exactly one phase mutates the tables at a time.
type LeagueSimulator struct {
	leagueName string
	myTeam     string
	players    *store.PlayerTable
	teams      *store.TeamTable
	rng        *rand.Rand
	iterations int
	step       float64
	logger     *slog.Logger
	recorder   *metrics.Recorder
}

// LeagueSimulatorConfig bundles the knobs for a simulation run.
type LeagueSimulatorConfig struct {
	MyTeam     string
	Iterations int
	WindowStep float64
}

// NewLeagueSimulator flattens a generated league into the run tables.
// MyTeam must name one of the league's squads.
func NewLeagueSimulator(
	league domain.League,
	cfg LeagueSimulatorConfig,
	rng *rand.Rand,
	logger *slog.Logger,
	recorder *metrics.Recorder,
) *LeagueSimulator {
	if cfg.Iterations <= 0 {
		cfg.Iterations = DefaultIterations
	}
	if cfg.WindowStep <= 0 {
		cfg.WindowStep = DefaultWindowStep
	}

	players := store.NewPlayerTable()
	teamRows := make([]domain.TeamRow, 0, len(league.Squads))
	for _, squad := range league.Squads {
		myTeam := squad.Name == cfg.MyTeam
		teamRows = append(teamRows, domain.TeamRow{
			Name:   squad.Name,
			MyTeam: myTeam,
		})
		for _, p := range squad.Players {
			players.Insert(domain.PlayerRow{
				Player: p,
				Team:   squad.Name,
				MyTeam: myTeam,
			})
		}
	}

	return &LeagueSimulator{
		leagueName: league.Name,
		myTeam:     cfg.MyTeam,
		players:    players,
		teams:      store.NewTeamTable(teamRows),
		rng:        rng,
		iterations: cfg.Iterations,
		step:       cfg.WindowStep,
		logger:     logger,
		recorder:   recorder,
	}
}

// LeagueName returns the generated league name.
func (s *LeagueSimulator) LeagueName() string { return s.leagueName }

// MyTeam returns the managed team's name.
func (s *LeagueSimulator) MyTeam() string { return s.myTeam }

// Standings returns a copy of the current standings.
func (s *LeagueSimulator) Standings() []domain.TeamRow {
	return s.teams.List()
}

// Players returns a copy of the full league-wide player table.
func (s *LeagueSimulator) Players() []domain.PlayerRow {
	return s.players.List()
}

// SquadRows returns a copy of the managed team's current slice.
func (s *LeagueSimulator) SquadRows() []domain.PlayerRow {
	return s.players.Where(func(r domain.PlayerRow) bool { return r.MyTeam })
}

// RunSeasonHalf plays one round-robin half under the given instruction
// for the managed team. Match counters reset first, then the half runs,
// then per-player matches, minutes and team expected points are
// back-filled onto the player table.
func (s *LeagueSimulator) RunSeasonHalf(instruction domain.CoachInstruction) error {
	s.players.UpdateWhere(
		func(domain.PlayerRow) bool { return true },
		func(r *domain.PlayerRow) { r.NMatches = 0 },
	)

	season := NewSeasonHalfSimulator(s.rng, s.iterations, s.logger, s.recorder)
	standings, err := season.Run(s.teams.List(), s.players.List(), s.myTeam, instruction)
	if err != nil {
		return err
	}
	s.teams.Replace(standings)
	s.backfillSeasonHalf(instruction, standings)

	logging.Info(s.logger, "season half complete",
		"league", s.leagueName,
		logging.FieldTeam, s.myTeam,
	)
	return nil
}

func (s *LeagueSimulator) backfillSeasonHalf(instruction domain.CoachInstruction, standings []domain.TeamRow) {
	matchesPlayed := len(standings) - 1
	teamPoints := make(map[string]float64, len(standings))
	for _, row := range standings {
		teamPoints[row.Name] = row.XPoints
	}
	defaultInstruction := domain.DefaultInstruction()

	s.players.UpdateWhere(
		func(domain.PlayerRow) bool { return true },
		func(r *domain.PlayerRow) {
			r.NMatches += matchesPlayed
			if r.MyTeam {
				r.Minutes = float64(instruction.Share(r.Tier))
			} else {
				r.Minutes = float64(defaultInstruction.Share(r.Tier))
			}
			r.XPoints = teamPoints[r.Team]
		},
	)
}

// RunTransferWindow advances the whole table by one window step and
// returns the managed team's updated slice for external decision-making.
func (s *LeagueSimulator) RunTransferWindow() []domain.PlayerRow {
	updated := AdvanceWindow(s.players.List(), s.step)
	s.players.ReplaceAll(updated)

	logging.Info(s.logger, "transfer window advanced",
		"league", s.leagueName,
		"step_years", s.step,
	)
	return MyTeamRows(updated)
}

// UpdateEndOfTransferWindow replaces the managed team's rows with the
// decision-adjusted slice. Incoming rows are stamped with the managed
// team's identity so callers cannot smuggle in rows for other teams.
func (s *LeagueSimulator) UpdateEndOfTransferWindow(rows []domain.PlayerRow) {
	s.players.RemoveWhere(func(r domain.PlayerRow) bool { return r.Team == s.myTeam })
	for _, r := range rows {
		r.Team = s.myTeam
		r.MyTeam = true
		s.players.Insert(r)
	}
}

// StartNewSeason zeroes accumulated points and minutes league-wide. Ages,
// contracts and values carry over untouched.
func (s *LeagueSimulator) StartNewSeason() {
	s.players.UpdateWhere(
		func(domain.PlayerRow) bool { return true },
		func(r *domain.PlayerRow) {
			r.XPoints = 0
			r.Minutes = 0
		},
	)
	s.teams.UpdateAll(func(r *domain.TeamRow) { r.XPoints = 0 })

	logging.Info(s.logger, "new season started", "league", s.leagueName)
}
