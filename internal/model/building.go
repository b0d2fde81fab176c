package model

import (
	"time"

	"github.com/google/uuid"
)

// buildings — справочник корпусов кампуса.
type Building struct {
	ID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`

	// Короткий код корпуса ("ENG", "LIB" и т.п.), используется в фильтрах.
	Code string `gorm:"type:varchar(16);not null;uniqueIndex"`

	Name    string `gorm:"type:varchar(255);not null"`
	Address string `gorm:"type:varchar(255)"`

	// Справочная информация для страницы корпуса: как добраться и парковка.
	TransportNotes string `gorm:"type:text"`
	ParkingSpots   int    `gorm:"not null;default:0"`

	CreatedAt time.Time `gorm:"not null;default:now()"`
	UpdatedAt time.Time `gorm:"not null;default:now()"`

	// Навигационные поля (опционально, но удобно для Preload).
	Resources []Resource `gorm:"foreignKey:BuildingID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL"`
}
