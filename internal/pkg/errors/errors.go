package errors

import (
	"errors"
	"fmt"
)

// Общие ошибки приложения
var (
	// ErrNotFound используется, когда запись или ресурс не найдены.
	ErrNotFound = errors.New("record not found")

	// ErrValidation используется для ошибок валидации входных данных
	// и нарушений ограничений хранилища (NOT NULL, FK, CHECK, UNIQUE).
	ErrValidation = errors.New("validation failed")
)

// Уточнения ErrNotFound. Наружу все они отдаются одинаковым 404,
// но внутри сервиса причины различимы через errors.Is.
var (
	ErrQuestionNotFound = fmt.Errorf("question %w", ErrNotFound)
	ErrUnknownCategory  = fmt.Errorf("unknown category: %w", ErrNotFound)
	ErrEmptyCategory    = fmt.Errorf("category has no questions: %w", ErrNotFound)
	ErrEmptyPage        = fmt.Errorf("page has no questions: %w", ErrNotFound)
)
