package catalog

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/campushub/reservation-platform/internal/model"
)

// GormSource — первичный источник каталога поверх персистентного хранилища.
type GormSource struct {
	db *gorm.DB
}

func NewGormSource(db *gorm.DB) *GormSource {
	return &GormSource{db: db}
}

func (s *GormSource) ListResources(ctx context.Context, f Filter) ([]model.Resource, error) {
	var resources []model.Resource

	q := s.db.WithContext(ctx).
		Model(&model.Resource{}).
		Preload("Building").
		Where("resources.is_available = ?", true)

	if f.Category != "" {
		q = q.Where("resources.category = ?", f.Category)
	}
	if f.Building != "" {
		q = q.Joins("JOIN buildings ON buildings.id = resources.building_id").
			Where("buildings.code = ?", f.Building)
	}
	if f.MinCapacity > 0 {
		q = q.Where("resources.capacity_units >= ?", f.MinCapacity)
	}

	if err := q.Order("resources.name ASC").Find(&resources).Error; err != nil {
		return nil, err
	}
	return resources, nil
}

func (s *GormSource) GetByName(ctx context.Context, category model.ResourceCategory, name string) (*model.Resource, error) {
	var r model.Resource
	err := s.db.WithContext(ctx).
		Preload("Building").
		Where("category = ? AND name = ? AND is_available = ?", category, name, true).
		First(&r).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &r, nil
}
