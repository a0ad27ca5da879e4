package response

const (
	MessageSuccess      = "Success"
	DefaultErrorMessage = "Something went wrong. Please try again later."

	InternalServerErrorCode = 500
)

// DateTimeFormat is the wire format used by DateTime.
const DateTimeFormat = "2006-01-02 15:04:05"
