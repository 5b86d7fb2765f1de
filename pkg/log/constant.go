package log

// Modes
const (
	ModeDebug      = "debug"
	ModeProduction = "production"
)

// Encodings
const (
	EncodingConsole = "console"
	EncodingJSON    = "json"
)

// Levels
const (
	LevelDebug = "debug"
	LevelInfo  = "info"
	LevelWarn  = "warn"
	LevelError = "error"
)

// FieldRequestID is the structured field carrying the request id.
const FieldRequestID = "request_id"
