// Package api - Request and response envelopes
package api

// ErrorBody is the error payload of a response envelope
type ErrorBody struct {
	// Code is a machine-readable error code
	Code string `json:"code"`

	// Message is a human-readable description
	Message string `json:"message"`
}

// Envelope wraps every API response
type Envelope struct {
	// Data is the successful response payload
	Data interface{} `json:"data,omitempty"`

	// Error is set on failure
	Error *ErrorBody `json:"error,omitempty"`
}

// HealthResponse is the GET /health payload
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

// VersionResponse is the GET /version payload
type VersionResponse struct {
	Version string `json:"version"`
}
