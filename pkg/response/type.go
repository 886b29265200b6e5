package response

const (
	// MessageSuccess is the message carried by successful responses.
	MessageSuccess = "Success"

	// DefaultErrorMessage hides internal failure details from clients.
	DefaultErrorMessage = "Something went wrong"

	// InternalServerErrorCode is the error_code for unexpected failures.
	InternalServerErrorCode = 500
)

// Resp is the standard JSON response body.
type Resp struct {
	ErrorCode int    `json:"error_code"`
	Message   string `json:"message"`
	Data      any    `json:"data,omitempty"`
	Warnings  any    `json:"warnings,omitempty"`
}
