package dto

const (
	StatusSuccess = "success"
	StatusFailed  = "failed"
)

// MsgInvalidRequestBody is reported for bodies that are not a JSON object of
// the expected shape.
const MsgInvalidRequestBody = "Invalid request body"

// SuccessResponse is the envelope for every successful call.
type SuccessResponse struct {
	Status string `json:"status" example:"success"`
	Data   any    `json:"data"`
}

// FailureResponse is the envelope for every failed call.
type FailureResponse struct {
	Status  string `json:"status" example:"failed"`
	Message string `json:"message" example:"Invalid provider id"`
}

// NewSuccess wraps data in a success envelope.
func NewSuccess(data any) SuccessResponse {
	return SuccessResponse{Status: StatusSuccess, Data: data}
}

// NewFailure wraps message in a failure envelope.
func NewFailure(message string) FailureResponse {
	return FailureResponse{Status: StatusFailed, Message: message}
}
