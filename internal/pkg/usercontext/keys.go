package usercontext

// Shared Locals/session keys used across controllers and middlewares
const (
	KeyUserJSON      = "user_json"
	KeyUsername      = "username"
	KeyCredential    = "upstream_credential"
	KeyFromProtected = "from_protected"
)
