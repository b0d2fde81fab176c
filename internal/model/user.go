package model

import (
	"time"

	"github.com/google/uuid"
)

// users — учётные записи студентов и сотрудников.
type User struct {
	ID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`

	Email    string `gorm:"type:varchar(255);not null;uniqueIndex"`
	FullName string `gorm:"type:varchar(255)"`

	// Номер студенческого/служебного удостоверения.
	CampusID string `gorm:"type:varchar(64);index"`

	// Зашифрованный дескриптор лица для биометрической регистрации.
	// Шифрование и сравнение дескрипторов — внешние оракулы; здесь поле
	// хранится как непрозрачный блоб.
	FaceTemplate []byte `gorm:"type:bytea"`

	// Деактивированный аккаунт: вход запрещён, брони каскадно отменены.
	IsActive bool `gorm:"not null;default:true;index"`

	CreatedAt time.Time `gorm:"not null;default:now()"`
	UpdatedAt time.Time `gorm:"not null;default:now()"`

	Reservations []Reservation `gorm:"foreignKey:OwnerID"`
}
