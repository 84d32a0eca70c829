package errors

// ErrorInfo contains detailed error information.
type ErrorInfo struct {
	Key     string `json:"key"`               // Stable error key, e.g. "idexists"
	Entity  string `json:"entity,omitempty"`  // The resource the error relates to
	Details string `json:"details,omitempty"` // Detailed error information (optional)
}

// ErrorResponse defines the structure for error responses.
type ErrorResponse struct {
	Code    int        `json:"code"`    // HTTP status code
	Message string     `json:"message"` // User-friendly message
	Error   *ErrorInfo `json:"error"`
}
