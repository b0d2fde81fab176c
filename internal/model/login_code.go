package model

import "time"

// login_codes — одноразовые коды входа, отправляемые на почту.
//
// Авторитетное хранилище кодов ровно одно — эта таблица. Никаких зеркал в
// памяти процесса: код должен переживать рестарт и работать при нескольких
// инстансах. Протухшие строки убирает идемпотентный DeleteExpired,
// запускаемый внешним таймером.
type LoginCode struct {
	ID int64 `gorm:"primaryKey;autoIncrement"`

	Email string `gorm:"type:varchar(255);not null;index"`

	// bcrypt-хэш кода; сам код в базе не хранится.
	CodeHash string `gorm:"type:varchar(128);not null"`

	ExpiresAt time.Time  `gorm:"not null;index"`
	UsedAt    *time.Time `gorm:"type:timestamp with time zone"`

	CreatedAt time.Time `gorm:"not null;default:now()"`
}
