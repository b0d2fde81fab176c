package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/campushub/reservation-platform/internal/model"
)

type AccessLogRepository interface {
	// Append добавляет запись журнала доступа.
	Append(ctx context.Context, rec *model.AccessRecord) error
	// ListByOwner возвращает записи пользователя, свежие сверху.
	ListByOwner(ctx context.Context, ownerID uuid.UUID, limit int) ([]model.AccessRecord, error)
}

type GormAccessLogRepository struct {
	db *gorm.DB
}

func NewGormAccessLogRepository(db *gorm.DB) *GormAccessLogRepository {
	return &GormAccessLogRepository{db: db}
}

func (r *GormAccessLogRepository) Append(ctx context.Context, rec *model.AccessRecord) error {
	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}
	return r.db.WithContext(ctx).Create(rec).Error
}

func (r *GormAccessLogRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID, limit int) ([]model.AccessRecord, error) {
	var records []model.AccessRecord
	q := r.db.WithContext(ctx).
		Model(&model.AccessRecord{}).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}
