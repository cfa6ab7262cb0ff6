package errors

// ErrorInfo contains detailed error information
type ErrorInfo struct {
	Code    string `json:"code"`              // Business error code, e.g., "NOT_FOUND"
	Details string `json:"details,omitempty"` // Detailed error information (optional)
}

// Response statuses of the places service envelope
const (
	StatusSuccess = "success"
	StatusFail    = "fail"
	StatusError   = "error"
)

// ErrorBody is the error payload of the places service. The client reads
// Message first and falls back to Error.Details.
type ErrorBody struct {
	Status  string     `json:"status"`
	Message string     `json:"message"`
	Error   *ErrorInfo `json:"error,omitempty"`
}

// ServerMessage returns the most specific human-readable message of the body
func (b ErrorBody) ServerMessage() string {
	if b.Message != "" {
		return b.Message
	}
	if b.Error != nil {
		return b.Error.Details
	}

	return ""
}
