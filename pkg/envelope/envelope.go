// Package envelope shapes every task API response body.
package envelope

const (
	StatusSuccess = "success"
	StatusError   = "error"

	MessageOK              = "OK"
	MessageValidationError = "VALIDATION_ERROR"
	MessageBitrixAPIError  = "BITRIX_API_ERROR"
	MessageNotFound        = "NOT_FOUND"
)

// SuccessBody is {status:"success", message, data}. Data is always present, null included.
type SuccessBody struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

// ErrorBody is {status:"error", message, error}.
type ErrorBody struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Error   any    `json:"error"`
}

func Success(data any) SuccessBody {
	return SuccessBody{Status: StatusSuccess, Message: MessageOK, Data: data}
}

func Error(message string, detail any) ErrorBody {
	return ErrorBody{Status: StatusError, Message: message, Error: detail}
}
