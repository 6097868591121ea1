package constants

// Centralized constants for env keys, routes and shared messages.
const (
	// Environment variable keys
	EnvConfigPath = "POKEBATTLE_CONFIG"
	EnvDebug      = "POKEBATTLE_DEBUG"
)

// Routes used by the backend router
const (
	RouteAPIPrefix     = "/api"
	RouteBattles       = "/battles"
	RouteBattlesStream = "/battles/stream"
	RouteSimulations   = "/simulations"
	RouteVersion       = "/version"
	RouteHealth        = "/healthz"
)

// Common JSON response keys
const (
	JSONKeyError  = "error"
	JSONKeyStatus = "status"
)

// Common error messages used across API handlers
const (
	ErrInvalidRequest   = "Invalid request"
	ErrBattleFailed     = "Failed to run battle"
	ErrSimulationFailed = "Failed to run simulation"
)

// Logging field names
const (
	LogFieldAddr   = "addr"
	LogFieldMode   = "mode"
	LogFieldRounds = "rounds"
	LogFieldResult = "result"
	LogFieldRuns   = "runs"
)
