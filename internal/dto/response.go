package dto

// APIResponse is the envelope every endpoint answers with.
type APIResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

// SuccessResponse wraps data in a successful envelope.
func SuccessResponse(message string, data any) APIResponse {
	return APIResponse{Success: true, Message: message, Data: data}
}

// ErrorResponse builds a failed envelope. errCode is a short machine readable kind.
func ErrorResponse(message, errCode string) APIResponse {
	return APIResponse{Success: false, Message: message, Error: errCode}
}
