package httperr

import (
	"errors"
	"math"
	"net/http"
)

// BusinessError is a failure the client caused and can act on. Status is
// the HTTP status it maps to; Details are merged into the response body.
type BusinessError struct {
	Code    string
	Message string
	Status  int
	Details map[string]any
}

func (e BusinessError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Code
}

func Validation(code, message string) error {
	return BusinessError{Code: code, Message: message, Status: http.StatusBadRequest}
}

func NotFound(code, message string) error {
	return BusinessError{Code: code, Message: message, Status: http.StatusNotFound}
}

// Conflict is reported as 400, carrying optional structured detail.
func Conflict(code, message string, details map[string]any) error {
	return BusinessError{Code: code, Message: message, Status: http.StatusBadRequest, Details: details}
}

func RateLimited(message string, hoursRemaining float64) error {
	return BusinessError{
		Code:    "device_limit_reached",
		Message: message,
		Status:  http.StatusTooManyRequests,
		Details: map[string]any{"hoursRemaining": math.Round(hoursRemaining*10) / 10},
	}
}

func Unauthorized(code, message string) error {
	return BusinessError{Code: code, Message: message, Status: http.StatusUnauthorized}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

func AsBusiness(err error) (BusinessError, bool) {
	var be BusinessError
	ok := errors.As(err, &be)
	return be, ok
}
