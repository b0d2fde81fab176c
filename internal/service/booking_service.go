package service

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"

	"github.com/campushub/reservation-platform/internal/calendar"
	"github.com/campushub/reservation-platform/internal/catalog"
	"github.com/campushub/reservation-platform/internal/model"
	"github.com/campushub/reservation-platform/internal/repository"
	"github.com/campushub/reservation-platform/internal/timeslot"
)

// BookingRequest — заявка на бронирование. Живёт только в рамках запроса.
type BookingRequest struct {
	OwnerID      uuid.UUID
	Category     model.ResourceCategory
	ResourceName string
	Date         string // "YYYY-MM-DD"
	StartTime    string // "HH:MM"
	EndTime      string // "HH:MM"
	Purpose      string
	PeopleCount  int
}

// BookingService — оркестратор бронирования: валидация заявки, проверка
// конфликтов через журнал и атомарный коммит.
type BookingService struct {
	reservations repository.ReservationRepository
	source       catalog.ResourceSource
	users        repository.UserRepository
	access       repository.AccessLogRepository
	clock        Clock
}

func NewBookingService(
	reservations repository.ReservationRepository,
	source catalog.ResourceSource,
	users repository.UserRepository,
	access repository.AccessLogRepository,
	clock Clock,
) *BookingService {
	if clock == nil {
		clock = SystemClock()
	}
	return &BookingService{
		reservations: reservations,
		source:       source,
		users:        users,
		access:       access,
		clock:        clock,
	}
}

// ownerStore адаптирует репозиторий пользователей под calendar.OwnerStore.
type ownerStore struct {
	users repository.UserRepository
}

func (s ownerStore) FindOwner(ctx context.Context, id uuid.UUID) (*calendar.Owner, error) {
	u, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &calendar.Owner{ID: u.ID, Email: u.Email, IsActive: u.IsActive}, nil
}

// validate прогоняет заявку по правилам в фиксированном порядке;
// первое нарушение выигрывает.
func (s *BookingService) validate(req BookingRequest) error {
	// 1. Обязательные поля.
	if req.OwnerID == uuid.Nil {
		return invalid("owner is required")
	}
	if req.Category == "" || req.ResourceName == "" {
		return invalid("resource category and name are required")
	}
	if req.Date == "" || req.StartTime == "" || req.EndTime == "" {
		return invalid("date, start time and end time are required")
	}
	if !model.IsValidCategory(req.Category) {
		return invalid("unknown resource category %q", req.Category)
	}

	// 2. Формат времени.
	if !timeslot.IsValidTime(req.StartTime) || !timeslot.IsValidTime(req.EndTime) {
		return invalid("time must be HH:MM")
	}

	// 3. Рабочие часы кампуса.
	if req.StartTime < timeslot.BusinessDayStart || req.EndTime > timeslot.BusinessDayEnd {
		return invalid("reservations are allowed between %s and %s", timeslot.BusinessDayStart, timeslot.BusinessDayEnd)
	}

	// 4. Начало строго раньше конца.
	if req.StartTime >= req.EndTime {
		return invalid("start time must be before end time")
	}

	// 5. Границы длительности.
	duration, err := timeslot.DurationMinutes(req.StartTime, req.EndTime)
	if err != nil {
		return invalid("invalid time range")
	}
	if duration < timeslot.MinDurationMinutes || duration > timeslot.MaxDurationMinutes {
		return invalid("duration must be between %d and %d minutes", timeslot.MinDurationMinutes, timeslot.MaxDurationMinutes)
	}

	// 6. Формат даты.
	if !timeslot.IsValidDate(req.Date) {
		return invalid("date must be YYYY-MM-DD")
	}

	// 7–8. Не в прошлом. Лексикографическое сравнение литеральных строк
	// эквивалентно хронологическому по построению формата.
	nowDate := today(s.clock)
	if req.Date < nowDate {
		return invalid("date is in the past")
	}
	if req.Date == nowDate && req.StartTime <= timeOfDay(s.clock) {
		return invalid("start time is in the past")
	}

	// 9. Количество участников.
	if req.PeopleCount < model.MinPeopleCount || req.PeopleCount > model.MaxPeopleCount {
		return invalid("people count must be between %d and %d", model.MinPeopleCount, model.MaxPeopleCount)
	}

	return nil
}

// Reserve валидирует заявку, проверяет конфликты и коммитит бронь.
// При пересечении с активной бронью возвращает repository.ErrSlotTaken.
func (s *BookingService) Reserve(ctx context.Context, req BookingRequest) (*model.Reservation, error) {
	if err := s.validate(req); err != nil {
		return nil, err
	}

	if _, err := calendar.ValidateOwner(ctx, ownerStore{users: s.users}, req.OwnerID); err != nil {
		switch {
		case errors.Is(err, calendar.ErrOwnerInactive):
			return nil, invalid("account is deactivated")
		case errors.Is(err, calendar.ErrInvalidOwnerID):
			return nil, invalid("owner is required")
		default:
			return nil, invalid("unknown owner")
		}
	}

	// Ресурс ищется по (категория, имя); если ответил персистентный каталог,
	// дополнительно фиксируем его стабильный ID.
	res, err := s.source.GetByName(ctx, req.Category, req.ResourceName)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			return nil, invalid("unknown resource %q", req.ResourceName)
		}
		return nil, err
	}

	reservation := &model.Reservation{
		OwnerID:           req.OwnerID,
		ResourceName:      res.Name,
		Category:          res.Category,
		Date:              req.Date,
		StartTime:         req.StartTime,
		EndTime:           req.EndTime,
		Status:            model.ReservationStatusActive,
		Purpose:           req.Purpose,
		PeopleCount:       req.PeopleCount,
		ConfirmationToken: uuid.NewString(),
	}
	if res.ID != uuid.Nil {
		id := res.ID
		reservation.ResourceID = &id
	}

	// Журнал заново перепроверяет конфликты внутри той же сериализованной
	// единицы, что и вставка.
	if err := s.reservations.Create(ctx, reservation); err != nil {
		if errors.Is(err, repository.ErrSlotTaken) {
			s.audit(ctx, model.AccessActionReservationCreated, req.OwnerID, reservation, false)
			return nil, err
		}
		return nil, storeFailure("create reservation", err)
	}

	s.audit(ctx, model.AccessActionReservationCreated, req.OwnerID, reservation, true)
	return reservation, nil
}

// Cancel отменяет активную бронь владельца.
func (s *BookingService) Cancel(ctx context.Context, id int64, ownerID uuid.UUID) error {
	err := s.reservations.Cancel(ctx, id, ownerID)
	s.auditByID(ctx, model.AccessActionReservationCancelled, ownerID, id, err == nil)
	return err
}

// CheckIn отмечает приход владельца в допустимом окне от начала брони.
func (s *BookingService) CheckIn(ctx context.Context, id int64, ownerID uuid.UUID) error {
	err := s.reservations.CheckIn(ctx, id, ownerID, today(s.clock), timeOfDay(s.clock))
	s.auditByID(ctx, model.AccessActionCheckIn, ownerID, id, err == nil)
	return err
}

// CheckOut отмечает уход; разрешён только после прихода.
func (s *BookingService) CheckOut(ctx context.Context, id int64, ownerID uuid.UUID) error {
	err := s.reservations.CheckOut(ctx, id, ownerID)
	s.auditByID(ctx, model.AccessActionCheckOut, ownerID, id, err == nil)
	return err
}

// ListOwn возвращает брони пользователя с пагинацией.
func (s *BookingService) ListOwn(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]model.Reservation, int64, error) {
	return s.reservations.ListByOwner(ctx, ownerID, limit, offset)
}

// audit пишет запись журнала доступа по принципу fire-and-forget.
func (s *BookingService) audit(ctx context.Context, action model.AccessAction, ownerID uuid.UUID, res *model.Reservation, success bool) {
	if s.access == nil {
		return
	}
	owner := ownerID
	rec := &model.AccessRecord{
		Action:       action,
		OwnerID:      &owner,
		ResourceType: string(res.Category),
		ResourceID:   res.ResourceName,
		Success:      success,
	}
	if err := s.access.Append(ctx, rec); err != nil {
		log.Printf("booking: access log append failed: %v", err)
	}
}

func (s *BookingService) auditByID(ctx context.Context, action model.AccessAction, ownerID uuid.UUID, id int64, success bool) {
	if s.access == nil {
		return
	}
	res, err := s.reservations.GetByID(ctx, id)
	if err != nil {
		res = &model.Reservation{}
	}
	s.audit(ctx, action, ownerID, res, success)
}
