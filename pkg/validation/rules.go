package validation

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

var digitsRegexp = regexp.MustCompile(`^[0-9]+$`)

// registerRules регистрирует теги, которые мы используем в struct tags
func registerRules(v *validator.Validate) error {
	if err := v.RegisterValidation("digits", isDigitsOnly); err != nil {
		return err
	}
	return nil
}

// isDigitsOnly - телефон только из цифр, без "+", пробелов и дефисов
func isDigitsOnly(fl validator.FieldLevel) bool {
	return digitsRegexp.MatchString(fl.Field().String())
}
