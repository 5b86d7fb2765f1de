package middleware

// Headers
const (
	HeaderRequestID = "X-Request-ID"
	HeaderUserID    = "X-User-ID"
)

// AnonymousUserID is used when a request carries no X-User-ID header.
const AnonymousUserID = "anonymous"

const scopeKey = "scope"

// Rate limiter registry bounds
const (
	limiterMaxKeys = 1000
)
