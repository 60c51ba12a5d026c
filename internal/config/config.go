package config

// Config holds runtime configuration for the server.
type Config struct {
	Port          string
	CycleInterval Duration
	AdminToken    string
	Sim           SimConfig
	Metrics       MetricsConfig
	Snapshots     SnapshotsConfig
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Port:          envOrDefault(envPort, defaultPort),
		CycleInterval: durationEnvOrDefault(envCycleInterval, defaultCycleInterval),
		AdminToken:    envOrDefault(envAdminToken, ""),
		Sim:           loadSim(),
		Metrics:       loadMetrics(),
		Snapshots:     loadSnapshots(),
	}
}
