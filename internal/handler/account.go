package handler

import (
	"encoding/base64"
	"net/http"

	"github.com/google/uuid"
	"github.com/kataras/iris/v12"
)

// Register создаёт учётную запись (или обновляет существующую по почте).
// Дескриптор лица принимается уже зашифрованным, в base64.
func (h *Handler) Register(ctx iris.Context) {
	var req struct {
		Email        string `json:"email"`
		FullName     string `json:"full_name"`
		CampusID     string `json:"campus_id"`
		FaceTemplate string `json:"face_template,omitempty"`
	}
	if err := ctx.ReadJSON(&req); err != nil {
		badRequest(ctx, "invalid request payload")
		return
	}

	var template []byte
	if req.FaceTemplate != "" {
		var err error
		template, err = base64.StdEncoding.DecodeString(req.FaceTemplate)
		if err != nil {
			badRequest(ctx, "face_template must be base64")
			return
		}
	}

	u, err := h.accounts.Register(ctx.Request().Context(), req.Email, req.FullName, req.CampusID, template)
	if err != nil {
		fail(ctx, err)
		return
	}

	ctx.StatusCode(http.StatusCreated)
	ctx.JSON(toUserView(u))
}

// GetProfile возвращает профиль по идентификатору.
func (h *Handler) GetProfile(ctx iris.Context) {
	id, err := uuid.Parse(ctx.Params().Get("id"))
	if err != nil {
		badRequest(ctx, "invalid account id")
		return
	}

	u, err := h.accounts.GetProfile(ctx.Request().Context(), id)
	if err != nil {
		fail(ctx, err)
		return
	}

	ctx.JSON(toUserView(u))
}

// UpdateProfile обновляет отображаемые данные профиля.
func (h *Handler) UpdateProfile(ctx iris.Context) {
	id, err := uuid.Parse(ctx.Params().Get("id"))
	if err != nil {
		badRequest(ctx, "invalid account id")
		return
	}

	var req struct {
		FullName string `json:"full_name"`
		CampusID string `json:"campus_id"`
	}
	if err := ctx.ReadJSON(&req); err != nil {
		badRequest(ctx, "invalid request payload")
		return
	}

	u, err := h.accounts.UpdateProfile(ctx.Request().Context(), id, req.FullName, req.CampusID)
	if err != nil {
		fail(ctx, err)
		return
	}

	ctx.JSON(toUserView(u))
}

// AccessHistory возвращает страницу журнала доступа пользователя.
func (h *Handler) AccessHistory(ctx iris.Context) {
	id, err := uuid.Parse(ctx.Params().Get("id"))
	if err != nil {
		badRequest(ctx, "invalid account id")
		return
	}

	page := ctx.URLParamIntDefault("page", 1)
	pageSize := ctx.URLParamIntDefault("page_size", 10)

	history, err := h.accounts.AccessHistory(ctx.Request().Context(), id, page, pageSize)
	if err != nil {
		fail(ctx, err)
		return
	}

	views := make([]accessRecordView, 0, len(history.Items))
	for _, rec := range history.Items {
		views = append(views, toAccessRecordView(rec))
	}

	ctx.JSON(iris.Map{
		"items":     views,
		"page":      history.Page,
		"page_size": history.PageSize,
		"total":     history.Total,
		"has_next":  history.HasNext,
		"has_prev":  history.HasPrev,
	})
}

// DeleteAccount деактивирует учётную запись и каскадно отменяет её
// будущие активные брони.
func (h *Handler) DeleteAccount(ctx iris.Context) {
	id, err := uuid.Parse(ctx.Params().Get("id"))
	if err != nil {
		badRequest(ctx, "invalid account id")
		return
	}

	cancelled, err := h.accounts.DeleteAccount(ctx.Request().Context(), id)
	if err != nil {
		fail(ctx, err)
		return
	}

	ctx.JSON(iris.Map{"cancelled_reservations": cancelled})
}
