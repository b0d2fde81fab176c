package handler

import (
	"errors"
	"net/http"

	"github.com/kataras/iris/v12"

	"github.com/campushub/reservation-platform/internal/catalog"
	"github.com/campushub/reservation-platform/internal/repository"
	"github.com/campushub/reservation-platform/internal/service"
)

// Handler — HTTP-слой поверх сервисов. Тонкий: парсинг запроса, вызов
// сервиса, маппинг ошибки в статус. Вся бизнес-логика ниже.
type Handler struct {
	auth         *service.AuthService
	accounts     *service.AccountService
	bookings     *service.BookingService
	availability *service.AvailabilityService
	buildings    repository.BuildingRepository
}

func New(
	auth *service.AuthService,
	accounts *service.AccountService,
	bookings *service.BookingService,
	availability *service.AvailabilityService,
	buildings repository.BuildingRepository,
) *Handler {
	return &Handler{
		auth:         auth,
		accounts:     accounts,
		bookings:     bookings,
		availability: availability,
		buildings:    buildings,
	}
}

// RegisterRoutes навешивает все маршруты API на приложение.
func (h *Handler) RegisterRoutes(app *iris.Application) {
	api := app.Party("/api")

	api.Post("/auth/code", h.IssueLoginCode)
	api.Post("/auth/verify", h.VerifyLoginCode)

	api.Post("/accounts", h.Register)
	api.Get("/accounts/{id:uuid}", h.GetProfile)
	api.Put("/accounts/{id:uuid}", h.UpdateProfile)
	api.Delete("/accounts/{id:uuid}", h.DeleteAccount)
	api.Get("/accounts/{id:uuid}/history", h.AccessHistory)

	api.Post("/reservations", h.CreateReservation)
	api.Get("/reservations", h.ListOwnReservations)
	api.Delete("/reservations/{id:int64}", h.CancelReservation)
	api.Post("/reservations/{id:int64}/check-in", h.CheckIn)
	api.Post("/reservations/{id:int64}/check-out", h.CheckOut)

	api.Get("/availability", h.ResolveAvailability)
	api.Get("/resources/free-slots", h.FreeSlots)
	api.Get("/buildings", h.ListBuildings)
}

// fail переводит доменную ошибку в HTTP-статус. Текст ошибки пользовательский
// по построению, отдаётся как есть.
func fail(ctx iris.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, service.ErrValidation):
		status = http.StatusBadRequest
	case errors.Is(err, service.ErrCodeInvalid):
		status = http.StatusUnauthorized
	case errors.Is(err, service.ErrUserInactive), errors.Is(err, repository.ErrForbidden):
		status = http.StatusForbidden
	case errors.Is(err, repository.ErrNotFound), errors.Is(err, catalog.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, repository.ErrSlotTaken),
		errors.Is(err, repository.ErrCheckInClosed),
		errors.Is(err, repository.ErrAlreadyCheckedIn),
		errors.Is(err, repository.ErrNotCheckedIn),
		errors.Is(err, repository.ErrAlreadyCheckedOut):
		status = http.StatusConflict
	case errors.Is(err, service.ErrStoreUnavailable):
		status = http.StatusServiceUnavailable
	}

	ctx.StatusCode(status)
	ctx.JSON(iris.Map{"error": err.Error()})
}

func badRequest(ctx iris.Context, msg string) {
	ctx.StatusCode(http.StatusBadRequest)
	ctx.JSON(iris.Map{"error": msg})
}
