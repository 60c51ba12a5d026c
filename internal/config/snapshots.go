package config

// SnapshotsConfig controls the optional on-disk cycle snapshots.
type SnapshotsConfig struct {
	Enabled   bool
	Dir       string
	Retention int
}

func loadSnapshots() SnapshotsConfig {
	return SnapshotsConfig{
		Enabled:   boolEnvOrDefault(envSnapshotEnabled, defaultSnapshotEnabled),
		Dir:       envOrDefault(envSnapshotDir, defaultSnapshotDir),
		Retention: intEnvOrDefault(envSnapshotRetain, defaultSnapshotRetain),
	}
}
