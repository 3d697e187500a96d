package apperr

import (
	"errors"
	"net/http"
)

// Code машинный код бизнес-ошибки
type Code string

const (
	CodeValidation   Code = "validation"
	CodeUnauthorized Code = "unauthorized"
	CodeForbidden    Code = "forbidden"
	CodeNotFound     Code = "not_found"
	CodeConflict     Code = "conflict"
	CodeGone         Code = "gone"
	CodeFull         Code = "full"
	CodeRateLimited  Code = "rate_limited"
	CodeInternal     Code = "internal"
)

// Error типизированная бизнес-ошибка: машинный код плюс короткое
// сообщение для пользователя. На границе HTTP превращается в JSON,
// stack trace наружу не уходит.
type Error struct {
	Code    Code
	Message string
}

func (e *Error) Error() string {
	return string(e.Code) + ": " + e.Message
}

func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

func Validation(message string) *Error { return New(CodeValidation, message) }

func Unauthorized(message string) *Error { return New(CodeUnauthorized, message) }

func Forbidden(message string) *Error { return New(CodeForbidden, message) }

func NotFound(message string) *Error { return New(CodeNotFound, message) }

func Conflict(message string) *Error { return New(CodeConflict, message) }

func Gone(message string) *Error { return New(CodeGone, message) }

func Full(message string) *Error { return New(CodeFull, message) }

func RateLimited(message string) *Error { return New(CodeRateLimited, message) }

// As достаёт *Error из цепочки
func As(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// HTTPStatus статус ответа для кода. Gone и Full — бизнес-отказы,
// не ошибки маршрутизации, поэтому 409, а не 410/404.
func (e *Error) HTTPStatus() int {
	switch e.Code {
	case CodeValidation:
		return http.StatusBadRequest
	case CodeUnauthorized:
		return http.StatusUnauthorized
	case CodeForbidden:
		return http.StatusForbidden
	case CodeNotFound:
		return http.StatusNotFound
	case CodeConflict, CodeGone, CodeFull:
		return http.StatusConflict
	case CodeRateLimited:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}
