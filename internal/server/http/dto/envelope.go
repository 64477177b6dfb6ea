package dto

// Response is the envelope wrapping every API reply.
type Response struct {
	Error   bool   `json:"error"`
	Data    any    `json:"data"`
	Message string `json:"message"`
}

// OK wraps a successful result.
func OK(data any, message string) Response {
	return Response{Data: data, Message: message}
}

// Fail wraps an error message.
func Fail(message string) Response {
	return Response{Error: true, Message: message}
}
