package service

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/campushub/reservation-platform/internal/calendar"
	"github.com/campushub/reservation-platform/internal/model"
	"github.com/campushub/reservation-platform/internal/repository"
)

// AccountService — профиль и жизненный цикл учётной записи.
type AccountService struct {
	users        repository.UserRepository
	reservations repository.ReservationRepository
	access       repository.AccessLogRepository
	clock        Clock
}

func NewAccountService(
	users repository.UserRepository,
	reservations repository.ReservationRepository,
	access repository.AccessLogRepository,
	clock Clock,
) *AccountService {
	if clock == nil {
		clock = SystemClock()
	}
	return &AccountService{
		users:        users,
		reservations: reservations,
		access:       access,
		clock:        clock,
	}
}

// Register создаёт или обновляет учётную запись. Дескриптор лица приходит
// уже зашифрованным: и шифрование, и сопоставление — внешние оракулы.
func (s *AccountService) Register(ctx context.Context, email, fullName, campusID string, faceTemplate []byte) (*model.User, error) {
	if email == "" {
		return nil, invalid("email is required")
	}
	return s.users.RegisterUser(ctx, email, fullName, campusID, faceTemplate)
}

// GetProfile возвращает профиль пользователя.
func (s *AccountService) GetProfile(ctx context.Context, id uuid.UUID) (*model.User, error) {
	u, err := s.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return u, nil
}

// UpdateProfile обновляет отображаемые данные профиля.
func (s *AccountService) UpdateProfile(ctx context.Context, id uuid.UUID, fullName, campusID string) (*model.User, error) {
	u, err := s.users.UpdateProfile(ctx, id, fullName, campusID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return u, nil
}

// AccessHistory возвращает страницу журнала доступа пользователя,
// свежие записи сверху.
func (s *AccountService) AccessHistory(ctx context.Context, id uuid.UUID, page, pageSize int) (calendar.Page[model.AccessRecord], error) {
	if _, err := s.users.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return calendar.Page[model.AccessRecord]{}, repository.ErrNotFound
		}
		return calendar.Page[model.AccessRecord]{}, err
	}

	records, err := s.access.ListByOwner(ctx, id, 0)
	if err != nil {
		return calendar.Page[model.AccessRecord]{}, storeFailure("list access records", err)
	}
	return calendar.Paginate(records, page, pageSize), nil
}

// DeleteAccount деактивирует учётную запись и одной транзакцией переводит
// все её активные будущие брони в статус cancelled_account_deleted.
// Возвращает число отменённых броней.
func (s *AccountService) DeleteAccount(ctx context.Context, id uuid.UUID) (int64, error) {
	if _, err := s.users.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, repository.ErrNotFound
		}
		return 0, err
	}

	cancelled, err := s.reservations.CascadeCancelForUser(ctx, id, today(s.clock))
	if err != nil {
		return 0, storeFailure("cascade cancel", err)
	}

	if err := s.users.Deactivate(ctx, id); err != nil {
		return cancelled, storeFailure("deactivate user", err)
	}

	if s.access != nil {
		owner := id
		rec := &model.AccessRecord{
			Action:  model.AccessActionAccountDeleted,
			OwnerID: &owner,
			Success: true,
		}
		if err := s.access.Append(ctx, rec); err != nil {
			log.Printf("account: access log append failed: %v", err)
		}
	}

	return cancelled, nil
}
