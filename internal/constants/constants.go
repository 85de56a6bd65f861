package constants

// Centralized constants for env keys, routes and response fields.
const (
	// Environment variable keys
	EnvArenaConfig = "ARENA_CONFIG"
	EnvArenaDB     = "ARENA_DB"
	EnvArenaAddr   = "ARENA_ADDR"

	// Defaults used when the env vars above are unset
	DefaultConfigPath = "./arena_config.json"
	DefaultDBPath     = "./data/arena.db"
)

// Routes used by the backend router
const (
	RouteAPIPrefix     = "/api"
	RouteRobots        = "/robots"
	RouteRobotByID     = "/robots/:robotID"
	RouteLeaderboard   = "/leaderboard"
	RouteMatches       = "/matches"
	RouteMatchSimulate = "/matches/simulate"
	RouteMatchLive     = "/matches/live"
	RouteVersion       = "/version"
)

// Common JSON response keys
const (
	JSONKeyError  = "error"
	JSONKeyStatus = "status"
)

// User-facing error messages returned by API handlers
const (
	ErrInvalidRobotID         = "Invalid robot id"
	ErrRobotNotFound          = "Robot not found"
	ErrFailedFetchRobots      = "Failed to fetch robots"
	ErrFailedFetchLeaderboard = "Failed to fetch leaderboard"
	ErrFailedFetchMatches     = "Failed to fetch matches"
	ErrInvalidRequest         = "Invalid request"
	ErrSimulationFailed       = "Match simulation failed"
)

// Structured log field names
const (
	LogFieldAddr    = "addr"
	LogFieldMatchID = "match_id"
	LogFieldRobot   = "robot"
)
