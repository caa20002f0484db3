package validator

import (
	"github.com/go-playground/validator/v10"

	"github.com/geoid-microservice/internal/domain"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	// geolevel - один из пяти административных уровней
	_ = validate.RegisterValidation("geolevel", func(fl validator.FieldLevel) bool {
		return domain.Level(fl.Field().String()).IsValid()
	})
}

// Validate - валидация структуры
func Validate(s interface{}) error {
	return validate.Struct(s)
}

// GetValidator - получить валидатор для кастомной конфигурации
func GetValidator() *validator.Validate {
	return validate
}
