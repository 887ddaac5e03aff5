package validator

import (
	"log"
	"unicode"

	"jobbridge_backend/internal/models"

	"github.com/go-playground/validator/v10"
)

// registerCustomRules регистрирует все кастомные функции валидации в
// переданном экземпляре валидатора.
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			// Ошибка регистрации правила - критическая ошибка времени
			// запуска, приложение не должно стартовать.
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	// 'strongpassword': минимум одна заглавная буква и одна цифра.
	// Минимальная длина проверяется отдельным тегом 'min'.
	mustRegister("strongpassword", validateStrongPassword)

	// 'userrole': роль из белого списка публичной регистрации
	mustRegister("userrole", validateRegistrationRole)
}

func validateStrongPassword(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true // пустые значения проверяет 'required'
	}

	var hasUpper, hasDigit bool
	for _, r := range value {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	return hasUpper && hasDigit
}

func validateRegistrationRole(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true // 'required' обрабатывает пустые
	}

	for _, role := range models.RegistrationRoles {
		if models.UserRole(value) == role {
			return true
		}
	}
	return false
}
