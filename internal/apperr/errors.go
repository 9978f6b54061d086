// Package apperr defines the error taxonomy surfaced across the CLI and
// HTTP edges. Grounded on the teacher's internal/shared/errors.go
// AppError, narrowed to the codes spec.md §7 names.
package apperr

import "net/http"

// Code is one of the taxonomy entries from spec.md §7.
type Code string

const (
	InputMalformed             Code = "INPUT_MALFORMED"
	StructuralInvariantViolated Code = "STRUCTURAL_INVARIANT_VIOLATED"
	EmptyLevel                 Code = "EMPTY_LEVEL"
	ProvidedMatrixMissing      Code = "PROVIDED_MATRIX_MISSING"
	Usage                      Code = "USAGE"
)

// statusByCode maps a taxonomy code to the HTTP status the API layer
// should respond with. CLI usage never consults this; it only uses Code
// to pick an exit code.
var statusByCode = map[Code]int{
	InputMalformed:              http.StatusBadRequest,
	StructuralInvariantViolated: http.StatusUnprocessableEntity,
	EmptyLevel:                  http.StatusUnprocessableEntity,
	ProvidedMatrixMissing:       http.StatusUnprocessableEntity,
	Usage:                       http.StatusBadRequest,
}

// Error is a taxonomy-tagged application error.
type Error struct {
	Code    Code
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// HTTPStatus returns the status code the HTTP edge should respond with.
func (e *Error) HTTPStatus() int {
	if status, ok := statusByCode[e.Code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// New constructs a taxonomy error with no wrapped cause.
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Wrap constructs a taxonomy error wrapping an underlying cause.
func Wrap(code Code, message string, err error) *Error {
	return &Error{Code: code, Message: message, Err: err}
}
