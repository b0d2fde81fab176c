package calendar

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// Ошибки валидации владельца брони.
var (
	ErrInvalidOwnerID = errors.New("invalid owner id")
	ErrOwnerNotFound  = errors.New("owner not found")
	ErrOwnerInactive  = errors.New("owner account is deactivated")
)

// Owner — минимальный срез учётной записи, нужный для проверки.
type Owner struct {
	ID       uuid.UUID
	Email    string
	IsActive bool
}

// OwnerStore — источник данных о владельцах.
// В реале это обёртка над БД, в тестах — мок.
type OwnerStore interface {
	FindOwner(ctx context.Context, id uuid.UUID) (*Owner, error)
}

// ValidateOwner:
//   - проверяет корректность идентификатора;
//   - вытаскивает владельца из хранилища;
//   - проверяет, что аккаунт не деактивирован.
func ValidateOwner(ctx context.Context, store OwnerStore, id uuid.UUID) (*Owner, error) {
	if id == uuid.Nil {
		return nil, ErrInvalidOwnerID
	}

	o, err := store.FindOwner(ctx, id)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, ErrOwnerNotFound
	}

	if !o.IsActive {
		return nil, ErrOwnerInactive
	}

	return o, nil
}
