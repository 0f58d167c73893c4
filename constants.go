package main

// Session configuration constants
const (
	SessionCookieName = "session_id"
	minSessionIDLen   = 10
)

// Route constants
const (
	RouteState       = "/api/state"
	RouteSelect      = "/api/select"
	RouteDeselect    = "/api/deselect"
	RouteConfirm     = "/api/confirm"
	RouteHint        = "/api/hint"
	RouteBonusColors = "/api/bonus-colors"
	RouteRestart     = "/api/restart"
	RouteNextLevel   = "/api/next-level"
	RouteHealth      = "/healthz"
)

// Error message constants
const (
	ErrorInvalidRequest = "Request body must be JSON with a tileId."
	ErrorSessionFailed  = "Could not start a game session."
	ErrorTooManyRequest = "Too many requests. Please slow down."
)

type contextKey string

// Context key constants
const (
	requestIDKey contextKey = "request_id"
)
