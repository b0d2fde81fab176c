package catalog

import (
	"encoding/json"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/campushub/reservation-platform/internal/model"
)

// SeedBuilding — строка сида справочника корпусов.
type SeedBuilding struct {
	Code           string
	Name           string
	Address        string
	TransportNotes string
	ParkingSpots   int
}

// DefaultBuildings — корпуса, на которые ссылается DefaultCatalog.
func DefaultBuildings() []SeedBuilding {
	return []SeedBuilding{
		{Code: "ENG", Name: "Engineering Building", Address: "1 Campus Drive", TransportNotes: "Bus lines 3 and 7, stop \"Engineering\".", ParkingSpots: 120},
		{Code: "SCI", Name: "Science Building", Address: "3 Campus Drive", TransportNotes: "Bus line 3, stop \"Science Quad\".", ParkingSpots: 80},
		{Code: "LIB", Name: "Main Library", Address: "5 Campus Drive", TransportNotes: "Five minutes on foot from the central gate.", ParkingSpots: 40},
	}
}

// Seed загружает корпуса и ресурсы в персистентный каталог. Идемпотентен:
// повторный запуск обновляет существующие строки по уникальным ключам,
// ничего не дублируя. Вместимость нормализуется тем же правилом, что и в
// статическом источнике.
func Seed(db *gorm.DB, buildings []SeedBuilding, items []StaticItem) error {
	byCode := map[string]*model.Building{}
	for _, b := range buildings {
		row := model.Building{
			Code:           b.Code,
			Name:           b.Name,
			Address:        b.Address,
			TransportNotes: b.TransportNotes,
			ParkingSpots:   b.ParkingSpots,
		}
		err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "code"}},
			DoUpdates: clause.AssignmentColumns([]string{"name", "address", "transport_notes", "parking_spots"}),
		}).Create(&row).Error
		if err != nil {
			return fmt.Errorf("seed building %s: %w", b.Code, err)
		}
		// После upsert перечитываем строку: при конфликте ID не возвращается.
		var saved model.Building
		if err := db.Where("code = ?", b.Code).First(&saved).Error; err != nil {
			return fmt.Errorf("reload building %s: %w", b.Code, err)
		}
		byCode[b.Code] = &saved
	}

	for _, it := range items {
		amenities, _ := json.Marshal(it.Amenities)
		row := model.Resource{
			Name:          it.Name,
			Category:      it.Category,
			CapacityUnits: it.capacityUnits(),
			Amenities:     amenities,
			IsAvailable:   true,
		}
		if b, ok := byCode[it.Building]; ok {
			id := b.ID
			row.BuildingID = &id
		}
		err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoUpdates: clause.AssignmentColumns([]string{"category", "capacity_units", "building_id", "amenities", "is_available"}),
		}).Create(&row).Error
		if err != nil {
			return fmt.Errorf("seed resource %s: %w", it.Name, err)
		}
	}

	return nil
}
