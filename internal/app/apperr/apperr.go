// Package apperr содержит классы ошибок, которые видит клиент.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"
)

var (
	ErrNotFound               = errors.New("не найдено")
	ErrValidation             = errors.New("ошибка валидации")
	ErrPermissionDenied       = errors.New("доступ запрещён")
	ErrAuthenticationRequired = errors.New("требуется авторизация")
	ErrConflict               = errors.New("конфликт данных")
)

// NotFound оборачивает ErrNotFound с описанием объекта
func NotFound(format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrNotFound)
}

// Conflict оборачивает исходную ошибку хранилища
func Conflict(err error) error {
	return fmt.Errorf("%w: %v", ErrConflict, err)
}

// ValidationError собирает ошибки полей формы и общие ошибки
type ValidationError struct {
	Fields   map[string]string
	NonField []string
}

func NewValidationError() *ValidationError {
	return &ValidationError{Fields: map[string]string{}}
}

// AddField запоминает первую ошибку для поля
func (e *ValidationError) AddField(field, message string) {
	if _, exists := e.Fields[field]; !exists {
		e.Fields[field] = message
	}
}

func (e *ValidationError) AddNonField(message string) {
	e.NonField = append(e.NonField, message)
}

// Empty сообщает, что ошибок не накоплено
func (e *ValidationError) Empty() bool {
	return len(e.Fields) == 0 && len(e.NonField) == 0
}

// OrNil возвращает nil вместо пустой ошибки
func (e *ValidationError) OrNil() error {
	if e.Empty() {
		return nil
	}
	return e
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields)+len(e.NonField))
	parts = append(parts, e.NonField...)

	fields := make([]string, 0, len(e.Fields))
	for field := range e.Fields {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	for _, field := range fields {
		parts = append(parts, fmt.Sprintf("%q: %s", field, e.Fields[field]))
	}

	return "ошибка валидации: " + strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// AsValidation достаёт ValidationError из цепочки
func AsValidation(err error) (*ValidationError, bool) {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr, true
	}
	return nil, false
}

// HTTPStatus сопоставляет ошибку HTTP-статусу
func HTTPStatus(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, ErrPermissionDenied):
		return http.StatusForbidden
	case errors.Is(err, ErrAuthenticationRequired):
		return http.StatusUnauthorized
	case errors.Is(err, ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
