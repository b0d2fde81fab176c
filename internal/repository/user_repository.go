package repository

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/campushub/reservation-platform/internal/model"
)

type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.User, error)
	// RegisterUser создаёт пользователя по почте или возвращает существующего,
	// обновляя профильные данные.
	RegisterUser(ctx context.Context, email, fullName, campusID string, faceTemplate []byte) (*model.User, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, fullName, campusID string) (*model.User, error)
	// Deactivate выключает аккаунт; активные брони отменяет каскад в журнале.
	Deactivate(ctx context.Context, id uuid.UUID) error
}

type GormUserRepository struct {
	db *gorm.DB
}

func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (r *GormUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var u model.User
	if err := r.db.WithContext(ctx).Where("email = ?", normalizeEmail(email)).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *GormUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	var u model.User
	if err := r.db.WithContext(ctx).First(&u, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *GormUserRepository) RegisterUser(ctx context.Context, email, fullName, campusID string, faceTemplate []byte) (*model.User, error) {
	email = normalizeEmail(email)

	var u model.User
	tx := r.db.WithContext(ctx).Where("email = ?", email).First(&u)
	if tx.Error != nil {
		if tx.Error == gorm.ErrRecordNotFound {
			u = model.User{
				Email:        email,
				FullName:     fullName,
				CampusID:     campusID,
				FaceTemplate: faceTemplate,
				IsActive:     true,
			}
			if err := r.db.WithContext(ctx).Create(&u).Error; err != nil {
				return nil, err
			}
			return &u, nil
		}
		return nil, tx.Error
	}

	// update existing
	updates := map[string]any{
		"full_name": fullName,
		"campus_id": campusID,
	}
	if len(faceTemplate) > 0 {
		updates["face_template"] = faceTemplate
	}
	if err := r.db.WithContext(ctx).Model(&model.User{}).Where("email = ?", email).Updates(updates).Error; err != nil {
		return nil, err
	}
	u.FullName = fullName
	u.CampusID = campusID
	if len(faceTemplate) > 0 {
		u.FaceTemplate = faceTemplate
	}
	return &u, nil
}

func (r *GormUserRepository) UpdateProfile(ctx context.Context, id uuid.UUID, fullName, campusID string) (*model.User, error) {
	updates := map[string]any{}
	if fullName != "" {
		updates["full_name"] = fullName
	}
	if campusID != "" {
		updates["campus_id"] = campusID
	}
	if len(updates) == 0 {
		// nothing to update; just return current user
		return r.FindByID(ctx, id)
	}
	if err := r.db.WithContext(ctx).Model(&model.User{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return nil, err
	}
	return r.FindByID(ctx, id)
}

func (r *GormUserRepository) Deactivate(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).
		Model(&model.User{}).
		Where("id = ?", id).
		Update("is_active", false).
		Error
}
