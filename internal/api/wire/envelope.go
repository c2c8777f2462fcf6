// Package wire holds the conventions of the API's JSON bodies: the generic
// success envelope and the timestamp encoding.
package wire

// Envelope is the generic wrapper some endpoints use around their payloads.
// When Success is false, Error then Message carry the failure reason, in
// that priority order.
type Envelope[T any] struct {
	Success bool   `json:"success"`
	Data    *T     `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// FailureReason returns the human-readable reason for a failed envelope.
func (e Envelope[T]) FailureReason() string {
	if e.Error != "" {
		return e.Error
	}
	return e.Message
}
