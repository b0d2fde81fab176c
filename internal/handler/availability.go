package handler

import (
	"github.com/kataras/iris/v12"

	"github.com/campushub/reservation-platform/internal/model"
	"github.com/campushub/reservation-platform/internal/service"
)

// ResolveAvailability возвращает ресурсы по категориям с пометками
// доступности. Без параметров времени работает как просмотр каталога.
func (h *Handler) ResolveAvailability(ctx iris.Context) {
	q := service.AvailabilityQuery{
		Date:        ctx.URLParam("date"),
		StartTime:   ctx.URLParam("start_time"),
		EndTime:     ctx.URLParam("end_time"),
		Category:    model.ResourceCategory(ctx.URLParam("category")),
		Building:    ctx.URLParam("building"),
		MinCapacity: ctx.URLParamIntDefault("min_capacity", 0),
	}

	if q.Category != "" && !model.IsValidCategory(q.Category) {
		badRequest(ctx, "unknown resource category")
		return
	}

	result, err := h.availability.Resolve(ctx.Request().Context(), q)
	if err != nil {
		fail(ctx, err)
		return
	}

	out := map[string][]resourceView{}
	for category, resources := range result {
		views := make([]resourceView, 0, len(resources))
		for _, r := range resources {
			views = append(views, toResourceView(r))
		}
		out[string(category)] = views
	}

	ctx.JSON(out)
}

// FreeSlots возвращает свободные окна ресурса на дату.
func (h *Handler) FreeSlots(ctx iris.Context) {
	category := model.ResourceCategory(ctx.URLParam("category"))
	name := ctx.URLParam("resource_name")
	date := ctx.URLParam("date")

	if !model.IsValidCategory(category) {
		badRequest(ctx, "unknown resource category")
		return
	}
	if name == "" || date == "" {
		badRequest(ctx, "resource_name and date are required")
		return
	}

	slots, err := h.availability.FreeSlots(ctx.Request().Context(), category, name, date)
	if err != nil {
		fail(ctx, err)
		return
	}

	ctx.JSON(iris.Map{
		"resource_name": name,
		"date":          date,
		"free_slots":    toSlotViews(slots),
	})
}

// ListBuildings возвращает справочник корпусов.
func (h *Handler) ListBuildings(ctx iris.Context) {
	buildings, err := h.buildings.ListBuildings(ctx.Request().Context())
	if err != nil {
		fail(ctx, err)
		return
	}

	views := make([]buildingView, 0, len(buildings))
	for _, b := range buildings {
		views = append(views, toBuildingView(b))
	}
	ctx.JSON(views)
}
