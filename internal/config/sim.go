package config

// SimConfig holds the simulation parameters for league generation and the
// season cycle.
type SimConfig struct {
	// LeagueStrength is the mean team strength drawn at generation time.
	LeagueStrength float64
	// CompetitivenessSD spreads team strengths; lower means a tighter league.
	CompetitivenessSD float64
	// Teams is the number of squads generated for the league.
	Teams int
	// Iterations is the number of line-up and outcome draws per match.
	Iterations int
	// Seed seeds the shared random source; 0 picks a time-based seed.
	Seed int64
	// WindowStep is the fraction of a year applied per transfer window.
	WindowStep float64
	// MarketSize is the number of free agents generated for the open market.
	MarketSize int
	// MyTeamIndex selects the managed squad from the generated league.
	MyTeamIndex int
	// StarterShare/SubShare/AcademyShare form the managed team's coach
	// instruction; autonomous teams always use the default split.
	StarterShare int
	SubShare     int
	AcademyShare int
}

func loadSim() SimConfig {
	return SimConfig{
		LeagueStrength:    floatEnvOrDefault(envLeagueStrength, defaultLeagueStrength),
		CompetitivenessSD: floatEnvOrDefault(envCompetitiveness, defaultCompetitiveness),
		Teams:             intEnvOrDefault(envTeams, defaultTeams),
		Iterations:        intEnvOrDefault(envIterations, defaultIterations),
		Seed:              int64EnvOrDefault(envSeed, 0),
		WindowStep:        floatEnvOrDefault(envWindowStep, defaultWindowStep),
		MarketSize:        intEnvOrDefault(envMarketSize, defaultMarketSize),
		MyTeamIndex:       nonNegIntEnvOrDefault(envMyTeamIndex, defaultMyTeamIndex),
		StarterShare:      nonNegIntEnvOrDefault(envStarterShare, defaultStarterShare),
		SubShare:          nonNegIntEnvOrDefault(envSubShare, defaultSubShare),
		AcademyShare:      nonNegIntEnvOrDefault(envAcademyShare, defaultAcademyShare),
	}
}
