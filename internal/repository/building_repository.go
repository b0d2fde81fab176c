package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/campushub/reservation-platform/internal/model"
)

type BuildingRepository interface {
	// ListBuildings возвращает все корпуса кампуса.
	ListBuildings(ctx context.Context) ([]model.Building, error)
	// GetByCode ищет корпус по короткому коду.
	GetByCode(ctx context.Context, code string) (*model.Building, error)
}

type GormBuildingRepository struct {
	db *gorm.DB
}

func NewGormBuildingRepository(db *gorm.DB) *GormBuildingRepository {
	return &GormBuildingRepository{db: db}
}

func (r *GormBuildingRepository) ListBuildings(ctx context.Context) ([]model.Building, error) {
	var buildings []model.Building
	err := r.db.WithContext(ctx).
		Order("code ASC").
		Find(&buildings).Error
	if err != nil {
		return nil, err
	}
	return buildings, nil
}

func (r *GormBuildingRepository) GetByCode(ctx context.Context, code string) (*model.Building, error) {
	var b model.Building
	if err := r.db.WithContext(ctx).Where("code = ?", code).First(&b).Error; err != nil {
		return nil, err
	}
	return &b, nil
}
