// Package apperr описывает типизированные ошибки приложения и их HTTP-статусы.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

type Code string

const (
	CodeValidation  Code = "VALIDATION_ERROR"
	CodeNotFound    Code = "NOT_FOUND"
	CodeIntegrity   Code = "INTEGRITY_ERROR"
	CodeUnavailable Code = "UNAVAILABLE"
	CodeInternal    Code = "INTERNAL_ERROR"
)

var statusByCode = map[Code]int{
	CodeValidation:  http.StatusUnprocessableEntity,
	CodeNotFound:    http.StatusNotFound,
	CodeIntegrity:   http.StatusConflict,
	CodeUnavailable: http.StatusServiceUnavailable,
	CodeInternal:    http.StatusInternalServerError,
}

// StatusFor возвращает HTTP-статус для кода; неизвестные коды дают 500.
func StatusFor(code Code) int {
	if status, ok := statusByCode[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// Error: ошибка с кодом, сообщением для клиента и причиной для логов.
type Error struct {
	code    Code
	message string
	details map[string]string
	cause   error
}

func New(code Code, message string) *Error {
	return &Error{code: code, message: message}
}

func Wrap(code Code, err error, message string) *Error {
	return &Error{code: code, message: message, cause: err}
}

// WithDetails прикладывает ошибки по полям (только для валидации).
func (e *Error) WithDetails(details map[string]string) *Error {
	e.details = details
	return e
}

func (e *Error) Code() Code { return e.code }
func (e *Error) Message() string { return e.message }
func (e *Error) Details() map[string]string { return e.details }

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.code, e.message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.code, e.message)
}

func (e *Error) Unwrap() error { return e.cause }

// As извлекает *Error из цепочки; для чужих ошибок возвращает nil.
func As(err error) *Error {
	var typed *Error
	if errors.As(err, &typed) {
		return typed
	}
	return nil
}

// CodeOf возвращает код ошибки, для нетипизированных CodeInternal.
func CodeOf(err error) Code {
	if typed := As(err); typed != nil {
		return typed.code
	}
	return CodeInternal
}

// Body: JSON-тело ответа с ошибкой.
type Body struct {
	Detail string            `json:"detail"`
	Code   Code              `json:"code"`
	Errors map[string]string `json:"errors,omitempty"`
}

// BodyOf строит тело ответа; внутренние причины наружу не попадают.
func BodyOf(err error) (int, Body) {
	typed := As(err)
	if typed == nil {
		return http.StatusInternalServerError, Body{Detail: "internal error", Code: CodeInternal}
	}
	return StatusFor(typed.code), Body{Detail: typed.message, Code: typed.code, Errors: typed.details}
}
