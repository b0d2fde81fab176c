package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/campushub/reservation-platform/internal/model"
)

type LoginCodeRepository interface {
	// Создать запись кода входа.
	Create(ctx context.Context, code *model.LoginCode) error
	// Последний неиспользованный и непротухший код для адреса.
	FindActive(ctx context.Context, email string, now time.Time) (*model.LoginCode, error)
	// Пометить код использованным (коды одноразовые).
	MarkUsed(ctx context.Context, id int64, usedAt time.Time) error
	// DeleteExpired — идемпотентная чистка протухших кодов; запускается
	// внешним таймером. Возвращает число удалённых строк.
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

type GormLoginCodeRepository struct {
	db *gorm.DB
}

func NewGormLoginCodeRepository(db *gorm.DB) *GormLoginCodeRepository {
	return &GormLoginCodeRepository{db: db}
}

func (r *GormLoginCodeRepository) Create(ctx context.Context, code *model.LoginCode) error {
	return r.db.WithContext(ctx).Create(code).Error
}

func (r *GormLoginCodeRepository) FindActive(ctx context.Context, email string, now time.Time) (*model.LoginCode, error) {
	var c model.LoginCode
	err := r.db.WithContext(ctx).
		Where("email = ? AND used_at IS NULL AND expires_at > ?", normalizeEmail(email), now).
		Order("created_at DESC").
		First(&c).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *GormLoginCodeRepository) MarkUsed(ctx context.Context, id int64, usedAt time.Time) error {
	return r.db.WithContext(ctx).
		Model(&model.LoginCode{}).
		Where("id = ? AND used_at IS NULL", id).
		Update("used_at", usedAt).
		Error
}

func (r *GormLoginCodeRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("expires_at <= ?", now).
		Delete(&model.LoginCode{})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
