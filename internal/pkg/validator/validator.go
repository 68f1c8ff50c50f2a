package validator

import (
	"github.com/go-playground/validator/v10"

	"github.com/donor-matching-service/internal/domain"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	_ = validate.RegisterValidation("candidate_kind", validateCandidateKind)
}

// Validate - валидация структуры
func Validate(s interface{}) error {
	return validate.Struct(s)
}

// GetValidator - получить валидатор для кастомной конфигурации
func GetValidator() *validator.Validate {
	return validate
}

// validateCandidateKind accepts donor, blood_bank and oxygen_supplier.
func validateCandidateKind(fl validator.FieldLevel) bool {
	return domain.CandidateKind(fl.Field().String()).IsValid()
}
