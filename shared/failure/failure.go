package failure

import (
	"errors"
	"net/http"
)

// Failure is a wrapper for error messages and codes using standard HTTP response codes.
type Failure struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

var InvalidPriorityParam = &Failure{Code: http.StatusUnprocessableEntity, Message: "priority must be an integer"}

// Error returns the error message.
func (e *Failure) Error() string {
	return e.Message
}

// UnprocessableEntity returns a new Failure for input that violates a field constraint.
func UnprocessableEntity(msg string) error {
	return &Failure{
		Code:    http.StatusUnprocessableEntity,
		Message: msg,
	}
}

// NotFound returns a new Failure with code for entity not found.
func NotFound(msg string) error {
	return &Failure{
		Code:    http.StatusNotFound,
		Message: msg,
	}
}

// GetCode returns the error code of an error interface.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}

func IsNotFound(err error) bool {
	return GetCode(err) == http.StatusNotFound
}

func IsUnprocessable(err error) bool {
	return GetCode(err) == http.StatusUnprocessableEntity
}
