package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/donor-matching-service/internal/domain"
)

type AppError struct {
	Code       string                 `json:"code"`
	Message    string                 `json:"message"`
	Details    map[string]interface{} `json:"details,omitempty"`
	StatusCode int                    `json:"-"`
}

func (e *AppError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func New(code, message string, statusCode int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
	}
}

// WithDetails returns a copy carrying details; package-level errors stay untouched.
func (e *AppError) WithDetails(details map[string]interface{}) *AppError {
	cp := *e
	cp.Details = details
	return &cp
}

// Is matches AppErrors by code so copies made by WithDetails still compare equal.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// Resolve maps any error returned by use cases onto an AppError.
func Resolve(err error) *AppError {
	if err == nil {
		return nil
	}

	// Сбой источника кандидатов важнее ошибки, которую вернул сам источник
	if stderrors.Is(err, domain.ErrDataSource) {
		return ErrDataSource
	}

	var validationErrs validator.ValidationErrors
	if stderrors.As(err, &validationErrs) {
		return fromValidation(validationErrs)
	}

	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr
	}

	switch {
	case stderrors.Is(err, domain.ErrInvalidCoordinate):
		return ErrInvalidCoordinates
	case stderrors.Is(err, domain.ErrInvalidRadius):
		return ErrInvalidRadius
	case stderrors.Is(err, domain.ErrNotFound):
		return ErrNotFound
	}

	return ErrInternalServer
}

// fromValidation - ошибки валидации запроса, поле -> нарушенное правило
func fromValidation(errs validator.ValidationErrors) *AppError {
	fields := make(map[string]interface{}, len(errs))
	base := ErrInvalidRequest
	for _, fe := range errs {
		fields[fe.Field()] = fe.Tag()
		if fe.Tag() == "candidate_kind" {
			base = ErrInvalidCandidateKind
		}
	}
	return base.WithDetails(map[string]interface{}{"fields": fields})
}

// StatusOf returns the HTTP status for err.
func StatusOf(err error) int {
	if appErr := Resolve(err); appErr != nil {
		return appErr.StatusCode
	}
	return http.StatusOK
}
