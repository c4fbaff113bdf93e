package errors

import (
	"errors"
	"fmt"
)

var (
	// Настройка: конфиг, открытие хранилища, применение схемы
	ErrSetup = fmt.Errorf("ошибка инициализации")

	// Данные
	ErrValidation          = fmt.Errorf("запись не прошла валидацию")
	ErrConstraintViolation = fmt.Errorf("нарушено ограничение целостности")
	ErrNotFound            = fmt.Errorf("запись не найдена")

	// Всё остальное, что вернуло хранилище или вывод
	ErrIO = fmt.Errorf("ошибка ввода-вывода")
)

// Коды выхода процесса
const (
	ExitOK         = 0
	ExitFailure    = 1
	ExitSetup      = 2
	ExitDataReject = 3
)

type ConstraintKind string

const (
	ConstraintCheck      ConstraintKind = "check"
	ConstraintForeignKey ConstraintKind = "foreign_key"
	ConstraintPrimaryKey ConstraintKind = "primary_key"
	ConstraintUnique     ConstraintKind = "unique"
	ConstraintNotNull    ConstraintKind = "not_null"
	ConstraintOther      ConstraintKind = "other"
)

// ConstraintError - хранилище отклонило запись. Текст движка остаётся в цепочке.
type ConstraintError struct {
	Kind ConstraintKind
	Err  error
}

func (e *ConstraintError) Error() string {
	return fmt.Sprintf("нарушено ограничение (%s): %v", e.Kind, e.Err)
}

func (e *ConstraintError) Unwrap() []error { return []error{ErrConstraintViolation, e.Err} }

// ValidationError - запись отклонена до обращения к хранилищу.
type ValidationError struct {
	Entity string
	Err    error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %v", e.Entity, e.Err)
}

func (e *ValidationError) Unwrap() []error { return []error{ErrValidation, e.Err} }

func NewValidationError(entity string, err error) error {
	return &ValidationError{Entity: entity, Err: err}
}

// Setup помечает ошибку как ошибку инициализации.
func Setup(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %w", ErrSetup, fmt.Errorf(format, args...))
}

// ExitCode выбирает код выхода по классу ошибки.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, ErrSetup):
		return ExitSetup
	case errors.Is(err, ErrValidation), errors.Is(err, ErrConstraintViolation):
		return ExitDataReject
	default:
		return ExitFailure
	}
}
