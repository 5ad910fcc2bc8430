package apperrors

import "fmt"

// ValidationError reports a single malformed field. Validation is
// fail-fast: the first offending field aborts the request before any
// store mutation.
type ValidationError struct {
	Field string
	Rule  string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("campo '%s' inválido: %s", e.Field, e.Rule)
}

// ConflictError covers uniqueness violations, double-booking and
// deletes blocked by dependent records.
type ConflictError struct {
	Detail string
}

func (e *ConflictError) Error() string {
	return e.Detail
}

// NotFoundError covers lookups by id and dangling references.
type NotFoundError struct {
	Entity string
	Detail string
}

func (e *NotFoundError) Error() string {
	return e.Detail
}

// AuthError covers bad credentials and invalid or expired tokens.
type AuthError struct {
	Detail string
}

func (e *AuthError) Error() string {
	return e.Detail
}

func Validation(field, rule string) *ValidationError {
	return &ValidationError{Field: field, Rule: rule}
}

func Conflict(detail string) *ConflictError {
	return &ConflictError{Detail: detail}
}

func NotFound(entity, detail string) *NotFoundError {
	return &NotFoundError{Entity: entity, Detail: detail}
}

func Auth(detail string) *AuthError {
	return &AuthError{Detail: detail}
}
