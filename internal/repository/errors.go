package repository

import "errors"

// Типизированные исходы операций журнала бронирований. Вызывающий код
// обязан явно ветвиться по ним; паники для управления потоком не используются.
var (
	ErrNotFound  = errors.New("reservation not found")
	ErrForbidden = errors.New("reservation belongs to another user")

	// Запрошенное окно пересекается с активной бронью.
	ErrSlotTaken = errors.New("slot is already taken")

	// Отметка о приходе вне допустимого окна относительно начала брони.
	ErrCheckInClosed = errors.New("check-in window is closed")

	ErrAlreadyCheckedIn  = errors.New("already checked in")
	ErrNotCheckedIn      = errors.New("not checked in")
	ErrAlreadyCheckedOut = errors.New("already checked out")
)
