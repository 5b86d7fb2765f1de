package response

const (
	MessageSuccess      = "Success"
	DefaultErrorMessage = "Something went wrong"

	InternalServerErrorCode = 500

	// DateTimeFormat is how response timestamps are rendered, always in UTC.
	DateTimeFormat = "2006-01-02T15:04:05.000Z"
)
