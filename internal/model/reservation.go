package model

import (
	"time"

	"github.com/google/uuid"
)

// Статус бронирования.
type ReservationStatus string

const (
	ReservationStatusActive    ReservationStatus = "active"
	ReservationStatusCancelled ReservationStatus = "cancelled"
	ReservationStatusCompleted ReservationStatus = "completed"
	// Отдельный статус для каскадной отмены при удалении аккаунта,
	// чтобы отличать её от отмены самим пользователем.
	ReservationStatusCancelledAccountDeleted ReservationStatus = "cancelled_account_deleted"
)

// Границы количества участников одного бронирования.
const (
	MinPeopleCount = 1
	MaxPeopleCount = 50
)

// reservations — журнал бронирований. Строки никогда не удаляются физически,
// только переводятся по статусам.
//
// Дата и времена хранятся литеральными строками "YYYY-MM-DD" / "HH:MM" и
// сравниваются лексикографически. Прогон через time.Time с таймзоной здесь
// запрещён: он порождает сдвиги на день на границе суток.
type Reservation struct {
	// Монотонный числовой идентификатор.
	ID int64 `gorm:"primaryKey;autoIncrement"`

	OwnerID uuid.UUID `gorm:"type:uuid;not null;index"`

	// Ресурс адресуется парой (имя, категория): статический каталог не имеет
	// стабильных ID. Когда ответил персистентный каталог, ResourceID заполнен
	// и считается авторитетным.
	ResourceID   *uuid.UUID       `gorm:"type:uuid;index"`
	ResourceName string           `gorm:"type:varchar(255);not null;index:idx_reservations_resource_date"`
	Category     ResourceCategory `gorm:"type:varchar(32);not null"`

	Date      string `gorm:"type:varchar(10);not null;index:idx_reservations_resource_date"`
	StartTime string `gorm:"type:varchar(5);not null"`
	EndTime   string `gorm:"type:varchar(5);not null"`

	Status ReservationStatus `gorm:"type:varchar(32);not null;index"`

	Purpose     string `gorm:"type:text"`
	PeopleCount int    `gorm:"not null;default:1"`

	CheckInAt  *time.Time `gorm:"type:timestamp with time zone"`
	CheckOutAt *time.Time `gorm:"type:timestamp with time zone"`

	// Непрозрачный токен подтверждения, уникален на бронь. Информационный,
	// границей безопасности не является.
	ConfirmationToken string `gorm:"type:varchar(64);not null;uniqueIndex"`

	CreatedAt time.Time `gorm:"not null;default:now()"`
	UpdatedAt time.Time `gorm:"not null;default:now()"`

	Owner    *User     `gorm:"foreignKey:OwnerID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	Resource *Resource `gorm:"foreignKey:ResourceID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL"`
}
