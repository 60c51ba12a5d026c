package logging

// Common structured log field keys to keep logs searchable/consistent.
const (
	FieldService    = "service"
	FieldVersion    = "version"
	FieldRequestID  = "request_id"
	FieldPath       = "path"
	FieldMethod     = "method"
	FieldStatusCode = "status_code"
	FieldTeam       = "team"
	FieldPlayer     = "player"
	FieldCycle      = "cycle"
	FieldRunID      = "run_id"
	FieldSeed       = "seed"
	FieldCount      = "count"
	FieldDurationMS = "duration_ms"
)
