package repository

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/campushub/reservation-platform/internal/model"
	"github.com/campushub/reservation-platform/internal/timeslot"
)

type ReservationRepository interface {
	// FindConflicts возвращает активные брони ресурса на дату, чьё окно
	// пересекается с [start, end).
	FindConflicts(ctx context.Context, resourceName, date, start, end string) ([]model.Reservation, error)
	// Create атомарно перепроверяет конфликты и вставляет бронь.
	// При пересечении возвращает ErrSlotTaken.
	Create(ctx context.Context, r *model.Reservation) error
	// Получить бронь по ID.
	GetByID(ctx context.Context, id int64) (*model.Reservation, error)
	// Брони пользователя, свежие сверху, с пагинацией.
	ListByOwner(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]model.Reservation, int64, error)
	// Все активные брони на дату; опционально сужается до одного ресурса.
	ListActiveByDate(ctx context.Context, date, resourceName string) ([]model.Reservation, error)
	// Cancel переводит активную бронь владельца в cancelled. Повторная
	// отмена возвращает ErrNotFound: строка больше не активна.
	Cancel(ctx context.Context, id int64, ownerID uuid.UUID) error
	// CascadeCancelForUser одной транзакцией отменяет все активные брони
	// владельца начиная с сегодняшнего дня и возвращает число затронутых.
	CascadeCancelForUser(ctx context.Context, ownerID uuid.UUID, today string) (int64, error)
	// CheckIn отмечает приход владельца. Разрешён один раз и только в окне
	// [-CheckInEarlyMinutes, +CheckInLateMinutes] от начала брони.
	CheckIn(ctx context.Context, id int64, ownerID uuid.UUID, today, now string) error
	// CheckOut отмечает уход. Разрешён один раз и только после прихода.
	CheckOut(ctx context.Context, id int64, ownerID uuid.UUID) error
}

// Реализация на GORM.
type GormReservationRepository struct {
	db *gorm.DB

	// Проверка конфликтов и вставка обязаны быть одной сериализованной
	// единицей. Транзакции самой по себе недостаточно: уровень изоляции
	// хранилища (а в тестах — sqlite) не мешает второй транзакции вставить
	// пересекающуюся строку до коммита первой. Поэтому вставки по одному
	// ключу (ресурс, дата) дополнительно сериализует мьютекс.
	locks sync.Map // "name\x00date" -> *sync.Mutex
}

func NewGormReservationRepository(db *gorm.DB) *GormReservationRepository {
	return &GormReservationRepository{db: db}
}

func (r *GormReservationRepository) lockFor(resourceName, date string) *sync.Mutex {
	key := resourceName + "\x00" + date
	mu, _ := r.locks.LoadOrStore(key, &sync.Mutex{})
	return mu.(*sync.Mutex)
}

func findConflictsTx(tx *gorm.DB, resourceName, date, start, end string) ([]model.Reservation, error) {
	var conflicts []model.Reservation
	err := tx.
		Model(&model.Reservation{}).
		Where("resource_name = ? AND date = ? AND status = ?", resourceName, date, model.ReservationStatusActive).
		Where("start_time < ? AND end_time > ?", end, start).
		Order("start_time ASC").
		Find(&conflicts).Error
	if err != nil {
		return nil, err
	}
	return conflicts, nil
}

func (r *GormReservationRepository) FindConflicts(ctx context.Context, resourceName, date, start, end string) ([]model.Reservation, error) {
	return findConflictsTx(r.db.WithContext(ctx), resourceName, date, start, end)
}

func (r *GormReservationRepository) Create(ctx context.Context, res *model.Reservation) error {
	mu := r.lockFor(res.ResourceName, res.Date)
	mu.Lock()
	defer mu.Unlock()

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		conflicts, err := findConflictsTx(tx, res.ResourceName, res.Date, res.StartTime, res.EndTime)
		if err != nil {
			return err
		}
		if len(conflicts) > 0 {
			return ErrSlotTaken
		}
		return tx.Create(res).Error
	})
}

func (r *GormReservationRepository) GetByID(ctx context.Context, id int64) (*model.Reservation, error) {
	var res model.Reservation
	if err := r.db.WithContext(ctx).First(&res, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &res, nil
}

func (r *GormReservationRepository) ListByOwner(
	ctx context.Context,
	ownerID uuid.UUID,
	limit, offset int,
) ([]model.Reservation, int64, error) {
	var (
		reservations []model.Reservation
		total        int64
	)

	q := r.db.WithContext(ctx).
		Model(&model.Reservation{}).
		Where("owner_id = ?", ownerID)

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if limit > 0 {
		q = q.Limit(limit).Offset(offset)
	}

	if err := q.Order("date DESC, start_time DESC").Find(&reservations).Error; err != nil {
		return nil, 0, err
	}

	return reservations, total, nil
}

func (r *GormReservationRepository) ListActiveByDate(ctx context.Context, date, resourceName string) ([]model.Reservation, error) {
	var reservations []model.Reservation
	q := r.db.WithContext(ctx).
		Model(&model.Reservation{}).
		Where("date = ? AND status = ?", date, model.ReservationStatusActive)
	if resourceName != "" {
		q = q.Where("resource_name = ?", resourceName)
	}
	if err := q.Order("start_time ASC").Find(&reservations).Error; err != nil {
		return nil, err
	}
	return reservations, nil
}

func (r *GormReservationRepository) Cancel(ctx context.Context, id int64, ownerID uuid.UUID) error {
	res, err := r.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if res.OwnerID != ownerID {
		return ErrForbidden
	}
	if res.Status != model.ReservationStatusActive {
		// Строка существует, но под предикат «активная» больше не попадает.
		return ErrNotFound
	}

	return r.db.WithContext(ctx).
		Model(&model.Reservation{}).
		Where("id = ? AND status = ?", id, model.ReservationStatusActive).
		Update("status", model.ReservationStatusCancelled).
		Error
}

func (r *GormReservationRepository) CascadeCancelForUser(ctx context.Context, ownerID uuid.UUID, today string) (int64, error) {
	var affected int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.
			Model(&model.Reservation{}).
			Where("owner_id = ? AND status = ? AND date >= ?", ownerID, model.ReservationStatusActive, today).
			Update("status", model.ReservationStatusCancelledAccountDeleted)
		if result.Error != nil {
			return result.Error
		}
		affected = result.RowsAffected
		return nil
	})
	if err != nil {
		return 0, err
	}
	return affected, nil
}

func (r *GormReservationRepository) CheckIn(ctx context.Context, id int64, ownerID uuid.UUID, today, now string) error {
	res, err := r.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if res.OwnerID != ownerID {
		return ErrForbidden
	}
	if res.Status != model.ReservationStatusActive {
		return ErrNotFound
	}
	if res.CheckInAt != nil {
		return ErrAlreadyCheckedIn
	}

	if res.Date != today {
		return ErrCheckInClosed
	}
	startMin, err := timeslot.MinutesOfDay(res.StartTime)
	if err != nil {
		return err
	}
	nowMin, err := timeslot.MinutesOfDay(now)
	if err != nil {
		return err
	}
	if nowMin < startMin-timeslot.CheckInEarlyMinutes || nowMin > startMin+timeslot.CheckInLateMinutes {
		return ErrCheckInClosed
	}

	ts := time.Now().UTC()
	return r.db.WithContext(ctx).
		Model(&model.Reservation{}).
		Where("id = ? AND check_in_at IS NULL", id).
		Update("check_in_at", ts).
		Error
}

func (r *GormReservationRepository) CheckOut(ctx context.Context, id int64, ownerID uuid.UUID) error {
	res, err := r.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if res.OwnerID != ownerID {
		return ErrForbidden
	}
	if res.CheckInAt == nil {
		return ErrNotCheckedIn
	}
	if res.CheckOutAt != nil {
		return ErrAlreadyCheckedOut
	}

	ts := time.Now().UTC()
	return r.db.WithContext(ctx).
		Model(&model.Reservation{}).
		Where("id = ? AND check_out_at IS NULL", id).
		Update("check_out_at", ts).
		Error
}
