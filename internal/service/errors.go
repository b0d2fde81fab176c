package service

import (
	"errors"
	"fmt"
)

// Исходы операций ядра. Ошибки — значения, по которым вызывающий код
// (HTTP-слой) ветвится через errors.Is; исключений для управления потоком нет.
var (
	// Некорректный запрос: формат, диапазоны, прошедшая дата и т.п.
	// Оборачивается конкретной причиной, отдаваемой пользователю как есть.
	ErrValidation = errors.New("validation failed")

	// Персистентное хранилище недоступно. На путях чтения деградирует в
	// статический каталог, на пути записи — жёсткий отказ.
	ErrStoreUnavailable = errors.New("store unavailable")

	// Найдены одновременно активные пересекающиеся брони. При корректном
	// Create невозможно; если замечено — это баг целостности данных,
	// который логируется, а не чинится на лету.
	ErrInvariantViolation = errors.New("overlapping active reservations detected")
)

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

func storeFailure(op string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrStoreUnavailable, op, err)
}
