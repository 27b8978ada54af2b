// Package api defines the shared HTTP response envelopes and the central
// error responder used by every handler.
package api

// ErrorResponse is the uniform failure envelope.
type ErrorResponse struct {
	Message string `json:"message"`
}

// MessageResponse is the uniform confirmation envelope for operations that
// return no resource.
type MessageResponse struct {
	Message string `json:"message"`
}
