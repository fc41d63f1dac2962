// README: Validation errors scoped to a single event.
package dispatch

const (
	CodeInvalidPayload = "invalid_payload"
	CodeMissingField   = "missing_field"
	CodeUnknownEvent   = "unknown_event"
)

// ValidationError rejects one inbound event. It is reported back to the
// sender as an `error` event and never disturbs the connection or the
// broker.
type ValidationError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *ValidationError) Error() string {
	return e.Code + ": " + e.Message
}

func missingField(event, field string) *ValidationError {
	return &ValidationError{Code: CodeMissingField, Message: event + ": missing required field " + field}
}
