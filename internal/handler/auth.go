package handler

import (
	"net/http"

	"github.com/kataras/iris/v12"
)

// IssueLoginCode высылает одноразовый код входа на почту.
func (h *Handler) IssueLoginCode(ctx iris.Context) {
	var req struct {
		Email string `json:"email"`
	}
	if err := ctx.ReadJSON(&req); err != nil {
		badRequest(ctx, "invalid request payload")
		return
	}
	if req.Email == "" {
		badRequest(ctx, "email is required")
		return
	}

	if err := h.auth.IssueCode(ctx.Request().Context(), req.Email); err != nil {
		fail(ctx, err)
		return
	}

	ctx.StatusCode(http.StatusAccepted)
	ctx.JSON(iris.Map{"status": "code sent"})
}

// VerifyLoginCode сверяет код и возвращает профиль вошедшего пользователя.
func (h *Handler) VerifyLoginCode(ctx iris.Context) {
	var req struct {
		Email string `json:"email"`
		Code  string `json:"code"`
	}
	if err := ctx.ReadJSON(&req); err != nil {
		badRequest(ctx, "invalid request payload")
		return
	}
	if req.Email == "" || req.Code == "" {
		badRequest(ctx, "email and code are required")
		return
	}

	u, err := h.auth.VerifyCode(ctx.Request().Context(), req.Email, req.Code)
	if err != nil {
		fail(ctx, err)
		return
	}

	ctx.JSON(toUserView(u))
}
