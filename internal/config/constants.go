package config

import "time"

const (
	envPort          = "PORT"
	envCycleInterval = "CYCLE_INTERVAL"
	envAdminToken    = "ADMIN_TOKEN"
	envMetricsPort   = "METRICS_PORT"
	envMetricsOn     = "METRICS_ENABLED"
	envOtelEndpoint  = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService   = "OTEL_SERVICE_NAME"
	envOtelInsecure  = "OTEL_EXPORTER_OTLP_INSECURE"

	envLeagueStrength  = "LEAGUE_STRENGTH"
	envCompetitiveness = "LEAGUE_COMPETITIVENESS_SD"
	envTeams           = "LEAGUE_TEAMS"
	envIterations      = "SIM_ITERATIONS"
	envSeed            = "SIM_SEED"
	envWindowStep      = "TRANSFER_WINDOW_STEP"
	envMarketSize      = "TRANSFER_MARKET_SIZE"
	envMyTeamIndex     = "MY_TEAM_INDEX"
	envStarterShare    = "COACH_STARTER_SHARE"
	envSubShare        = "COACH_SUB_SHARE"
	envAcademyShare    = "COACH_ACADEMY_SHARE"

	envSnapshotDir     = "SNAPSHOT_DIR"
	envSnapshotEnabled = "SNAPSHOT_ENABLED"
	envSnapshotRetain  = "SNAPSHOT_RETAIN"

	defaultPort = "4000"
	// One simulated half-season plus transfer window per interval.
	defaultCycleInterval = 30 * Duration(time.Second)
	defaultMetricsPort   = "9090"

	defaultLeagueStrength  = 50.0
	defaultCompetitiveness = 10.0
	defaultTeams           = 18
	defaultIterations      = 10
	defaultWindowStep      = 0.5
	defaultMarketSize      = 100
	defaultMyTeamIndex     = 0
	defaultStarterShare    = 70
	defaultSubShare        = 20
	defaultAcademyShare    = 10

	defaultSnapshotDir     = "data/snapshots"
	defaultSnapshotEnabled = false
	defaultSnapshotRetain  = 14
)
