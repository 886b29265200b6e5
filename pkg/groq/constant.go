package groq

import "time"

const (
	// DefaultBaseURL is the default Groq OpenAI-compatible API endpoint
	DefaultBaseURL = "https://api.groq.com/openai/v1"

	// DefaultModel is the default model to use
	DefaultModel = "llama3-70b-8192"

	// DefaultMaxRetries bounds retries on transient 503 responses
	DefaultMaxRetries = 5

	// DefaultRetryDelay is the fixed wait between retry attempts
	DefaultRetryDelay = 10 * time.Second

	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 60 * time.Second
)

// Chat message roles
const (
	RoleSystem = "system"
	RoleUser   = "user"
)

// ResponseFormatJSONObject forces the model to emit a JSON object
const ResponseFormatJSONObject = "json_object"
