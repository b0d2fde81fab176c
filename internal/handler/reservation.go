package handler

import (
	"net/http"

	"github.com/kataras/iris/v12"

	"github.com/campushub/reservation-platform/internal/model"
	"github.com/campushub/reservation-platform/internal/service"
)

// CreateReservation принимает заявку на бронь и коммитит её через ядро.
func (h *Handler) CreateReservation(ctx iris.Context) {
	owner, ok := ownerID(ctx)
	if !ok {
		return
	}

	var req struct {
		Category     string `json:"category"`
		ResourceName string `json:"resource_name"`
		Date         string `json:"date"`
		StartTime    string `json:"start_time"`
		EndTime      string `json:"end_time"`
		Purpose      string `json:"purpose"`
		PeopleCount  int    `json:"people_count"`
	}
	if err := ctx.ReadJSON(&req); err != nil {
		badRequest(ctx, "invalid request payload")
		return
	}

	r, err := h.bookings.Reserve(ctx.Request().Context(), service.BookingRequest{
		OwnerID:      owner,
		Category:     model.ResourceCategory(req.Category),
		ResourceName: req.ResourceName,
		Date:         req.Date,
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		Purpose:      req.Purpose,
		PeopleCount:  req.PeopleCount,
	})
	if err != nil {
		fail(ctx, err)
		return
	}

	ctx.StatusCode(http.StatusCreated)
	ctx.JSON(toReservationView(r))
}

// ListOwnReservations возвращает брони владельца постранично.
func (h *Handler) ListOwnReservations(ctx iris.Context) {
	owner, ok := ownerID(ctx)
	if !ok {
		return
	}

	page := ctx.URLParamIntDefault("page", 1)
	pageSize := ctx.URLParamIntDefault("page_size", 10)
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 10
	}

	items, total, err := h.bookings.ListOwn(ctx.Request().Context(), owner, pageSize, (page-1)*pageSize)
	if err != nil {
		fail(ctx, err)
		return
	}

	views := make([]reservationView, 0, len(items))
	for i := range items {
		views = append(views, toReservationView(&items[i]))
	}

	ctx.JSON(iris.Map{
		"items":     views,
		"page":      page,
		"page_size": pageSize,
		"total":     total,
	})
}

// CancelReservation отменяет активную бронь владельца.
func (h *Handler) CancelReservation(ctx iris.Context) {
	owner, ok := ownerID(ctx)
	if !ok {
		return
	}
	id, err := ctx.Params().GetInt64("id")
	if err != nil || id <= 0 {
		badRequest(ctx, "invalid reservation id")
		return
	}

	if err := h.bookings.Cancel(ctx.Request().Context(), id, owner); err != nil {
		fail(ctx, err)
		return
	}

	ctx.StatusCode(http.StatusNoContent)
}

// CheckIn отмечает приход по брони в допустимом окне от её начала.
func (h *Handler) CheckIn(ctx iris.Context) {
	owner, ok := ownerID(ctx)
	if !ok {
		return
	}
	id, err := ctx.Params().GetInt64("id")
	if err != nil || id <= 0 {
		badRequest(ctx, "invalid reservation id")
		return
	}

	if err := h.bookings.CheckIn(ctx.Request().Context(), id, owner); err != nil {
		fail(ctx, err)
		return
	}

	ctx.JSON(iris.Map{"status": "checked in"})
}

// CheckOut отмечает уход; разрешён только после прихода.
func (h *Handler) CheckOut(ctx iris.Context) {
	owner, ok := ownerID(ctx)
	if !ok {
		return
	}
	id, err := ctx.Params().GetInt64("id")
	if err != nil || id <= 0 {
		badRequest(ctx, "invalid reservation id")
		return
	}

	if err := h.bookings.CheckOut(ctx.Request().Context(), id, owner); err != nil {
		fail(ctx, err)
		return
	}

	ctx.JSON(iris.Map{"status": "checked out"})
}
