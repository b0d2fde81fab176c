package model

import (
	"time"

	"github.com/google/uuid"
)

// Тип действия в журнале доступа.
type AccessAction string

const (
	AccessActionReservationCreated   AccessAction = "reservation_created"
	AccessActionReservationCancelled AccessAction = "reservation_cancelled"
	AccessActionCheckIn              AccessAction = "check_in"
	AccessActionCheckOut             AccessAction = "check_out"
	AccessActionAccountDeleted       AccessAction = "account_deleted"
)

// access_records — журнал доступа/аудита.
//
// Записи пишутся по принципу fire-and-forget: сбой записи никогда не
// валит основную операцию.
type AccessRecord struct {
	ID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`

	Action AccessAction `gorm:"type:varchar(64);not null;index"`

	OwnerID *uuid.UUID `gorm:"type:uuid;index"`

	ResourceType string `gorm:"type:varchar(32)"`
	ResourceID   string `gorm:"type:varchar(64)"`

	Success bool `gorm:"not null"`

	Details string `gorm:"type:text"`

	CreatedAt time.Time `gorm:"not null;default:now();index"`

	// Навигационные поля
	Owner *User `gorm:"foreignKey:OwnerID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL"`
}
