package domain

// Error describes a failed backend call. Code is either a synthesized
// HTTP_<status> tag or NETWORK_ERROR for transport-level failures.
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

func (e *Error) Error() string {
	return e.Code + ": " + e.Message
}

// Result is the uniform outcome of a backend call. Exactly one of Data or
// Err is meaningful, discriminated by OK. Callers never see transport
// details; every failure mode arrives as data.
type Result[T any] struct {
	OK   bool   `json:"success"`
	Data T      `json:"data,omitempty"`
	Err  *Error `json:"error,omitempty"`
}

// Ok wraps a success payload.
func Ok[T any](data T) Result[T] {
	return Result[T]{OK: true, Data: data}
}

// Fail builds a failure result with the given code and message.
func Fail[T any](code, message string) Result[T] {
	return Result[T]{Err: &Error{Code: code, Message: message}}
}

// FailDetails builds a failure result carrying raw diagnostic details.
func FailDetails[T any](code, message string, details any) Result[T] {
	return Result[T]{Err: &Error{Code: code, Message: message, Details: details}}
}
