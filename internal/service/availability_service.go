package service

import (
	"context"
	"log"

	"github.com/campushub/reservation-platform/internal/catalog"
	"github.com/campushub/reservation-platform/internal/model"
	"github.com/campushub/reservation-platform/internal/repository"
	"github.com/campushub/reservation-platform/internal/timeslot"
)

// Причина недоступности, показываемая пользователю.
const reasonBooked = "booked for this time slot"

// AvailabilityQuery — эфемерный запрос доступности; нигде не хранится.
type AvailabilityQuery struct {
	Date      string
	StartTime string
	EndTime   string

	Category    model.ResourceCategory
	Building    string
	MinCapacity int
}

// AnnotatedResource — ресурс каталога с пометкой о доступности в
// запрошенном окне.
type AnnotatedResource struct {
	Resource  model.Resource
	Available bool
	Reason    string
}

// AvailabilityService раскладывает ресурсы-кандидаты на свободные и занятые.
type AvailabilityService struct {
	source       catalog.ResourceSource
	reservations repository.ReservationRepository
}

func NewAvailabilityService(
	source catalog.ResourceSource,
	reservations repository.ReservationRepository,
) *AvailabilityService {
	return &AvailabilityService{source: source, reservations: reservations}
}

// Resolve возвращает ресурсы по категориям с пометками доступности.
// Пустой каталог после фильтра — пустая карта, не ошибка. Отказ журнала
// деградирует в «все кандидаты свободны»: это влияет только на выдачу,
// путь записи перепроверит конфликты заново.
func (s *AvailabilityService) Resolve(ctx context.Context, q AvailabilityQuery) (map[model.ResourceCategory][]AnnotatedResource, error) {
	candidates, err := s.source.ListResources(ctx, catalog.Filter{
		Category:    q.Category,
		Building:    q.Building,
		MinCapacity: q.MinCapacity,
	})
	if err != nil {
		return nil, err
	}

	// Без временного окна — режим просмотра: всё считается свободным.
	booked := map[string]struct{}{}
	if q.Date != "" && q.StartTime != "" && q.EndTime != "" {
		active, err := s.reservations.ListActiveByDate(ctx, q.Date, "")
		if err != nil {
			log.Printf("availability: ledger query failed, assuming all candidates free: %v", err)
		} else {
			for _, res := range active {
				if timeslot.Overlaps(res.StartTime, res.EndTime, q.StartTime, q.EndTime) {
					booked[res.ResourceName] = struct{}{}
				}
			}
		}
	}

	result := map[model.ResourceCategory][]AnnotatedResource{}
	for _, r := range candidates {
		ar := AnnotatedResource{Resource: r, Available: true}
		if _, taken := booked[r.Name]; taken {
			ar.Available = false
			ar.Reason = reasonBooked
		}
		result[r.Category] = append(result[r.Category], ar)
	}

	return result, nil
}

// FreeSlots возвращает свободные окна ресурса на дату внутри рабочих часов.
func (s *AvailabilityService) FreeSlots(ctx context.Context, category model.ResourceCategory, resourceName, date string) ([]timeslot.Slot, error) {
	if !timeslot.IsValidDate(date) {
		return nil, invalid("date must be YYYY-MM-DD")
	}
	if _, err := s.source.GetByName(ctx, category, resourceName); err != nil {
		return nil, err
	}

	active, err := s.reservations.ListActiveByDate(ctx, date, resourceName)
	if err != nil {
		// Деградация чтения: без данных журнала показываем весь рабочий день.
		log.Printf("availability: ledger query failed for free slots: %v", err)
		active = nil
	}

	booked := make([]timeslot.Slot, 0, len(active))
	for _, res := range active {
		booked = append(booked, timeslot.Slot{Start: res.StartTime, End: res.EndTime})
	}

	return timeslot.FreeSlots(booked, timeslot.BusinessDayStart, timeslot.BusinessDayEnd, timeslot.DefaultMinSlotMinutes), nil
}
