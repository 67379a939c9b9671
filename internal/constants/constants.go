package constants

// Centralized constants for env keys, headers and routes.
const (
	// Environment variable keys
	EnvConfigPath = "POKERQUEST_CONFIG"
	EnvDBPath     = "POKERQUEST_DB"
	EnvDebug      = "POKERQUEST_DEBUG"

	// HTTP headers
	CacheControlHeader  = "Cache-Control"
	CacheControlNoCache = "no-cache, no-store, must-revalidate"

	// Defaults
	DefaultConfigPath    = "./pokerquest_config.json"
	DefaultDBPath        = "data/pokerquest.db"
	DefaultServerAddress = ":8080"
)

// Routes used by the backend router.
const (
	RouteAPIPrefix       = "/api"
	RouteStages          = "/stages"
	RouteEncounters      = "/encounters"
	RouteEncounterByUUID = "/encounters/:uuid"
	RouteEncounterAttack = "/encounters/:uuid/attack"
	RouteEncounterSwap   = "/encounters/:uuid/swap"
	RouteEncounterResign = "/encounters/:uuid/resign"
	RouteVersion         = "/version"
	RouteHealth          = "/healthz"
)
