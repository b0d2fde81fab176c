package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Категория бронируемого ресурса.
type ResourceCategory string

const (
	ResourceCategoryRoom        ResourceCategory = "room"
	ResourceCategoryLab         ResourceCategory = "lab"
	ResourceCategoryEquipment   ResourceCategory = "equipment"
	ResourceCategoryLibraryItem ResourceCategory = "library_item"
)

// KnownCategories перечисляет допустимые категории в стабильном порядке.
var KnownCategories = []ResourceCategory{
	ResourceCategoryRoom,
	ResourceCategoryLab,
	ResourceCategoryEquipment,
	ResourceCategoryLibraryItem,
}

// IsValidCategory сообщает, входит ли категория в известный набор.
func IsValidCategory(c ResourceCategory) bool {
	for _, k := range KnownCategories {
		if k == c {
			return true
		}
	}
	return false
}

// resources — бронируемые ресурсы кампуса (аудитории, лаборатории,
// оборудование, библиотечные места).
type Resource struct {
	ID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`

	// Отображаемое имя уникально во всей системе: при работе со статическим
	// каталогом брони сверяются по паре (имя, категория), а не по ID.
	Name     string           `gorm:"type:varchar(255);not null;uniqueIndex"`
	Category ResourceCategory `gorm:"type:varchar(32);not null;index"`

	// Нормализованная вместимость: максимум одновременных мест/единиц.
	// Считается один раз при загрузке данных (capacity > computers >
	// quantity > 1), а не выводится заново в каждом фильтре.
	CapacityUnits int `gorm:"not null;default:1"`

	BuildingID *uuid.UUID `gorm:"type:uuid;index"`

	// Список удобств ("projector", "whiteboard", ...) как JSON.
	Amenities datatypes.JSON `gorm:"type:jsonb"`

	// Административный флаг: выключенный ресурс никогда не предлагается.
	IsAvailable bool `gorm:"not null;default:true;index"`

	CreatedAt time.Time `gorm:"not null;default:now()"`
	UpdatedAt time.Time `gorm:"not null;default:now()"`

	Building *Building `gorm:"foreignKey:BuildingID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL"`
}
