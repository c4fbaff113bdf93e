package validation

import (
	"github.com/go-playground/validator/v10"

	apperrors "supermaids/pkg/errors"
)

// Validator проверяет записи до вставки, чтобы хранилище не было единственным сторожем.
type Validator struct {
	validator *validator.Validate
}

// New создает и настраивает валидатор
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	registerNullTypes(v)

	// без кастомных правил теги digits не работают, запускаться дальше смысла нет
	if err := registerRules(v); err != nil {
		panic("ошибка регистрации валидаторов: " + err.Error())
	}

	return &Validator{validator: v}
}

// Struct проверяет запись; entity попадает в текст ошибки.
func (v *Validator) Struct(entity string, i interface{}) error {
	if err := v.validator.Struct(i); err != nil {
		return apperrors.NewValidationError(entity, err)
	}
	return nil
}
