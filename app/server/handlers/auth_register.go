package handlers

import (
	"errors"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"net/http"
	"personal-blog/app/server/auth"
)

type registerData struct {
	Form registerForm `json:"form"`
}

func (a *App) Register(c echo.Context) error {
	if c.Request().Method != http.MethodPost {
		return a.render(c, http.StatusOK, "register", &registerData{}, nil)
	}

	rctx := c.Request().Context()

	// 绑定请求体
	var req registerForm
	if err := c.Bind(&req); err != nil {
		a.l.Error("failed to bind request", zap.Error(err))
		return a.er(c, http.StatusBadRequest)
	}

	// 验证
	errs := req.validate()
	password := req.Password
	req.Password = "" // 不回显密码
	if errs != nil {
		return a.render(c, http.StatusBadRequest, "register", &registerData{Form: req}, errs)
	}

	user, err := a.as.Register(rctx, req.Name, req.Email, password)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrDuplicateEmail):
			// 已经注册过，引导去登录
			a.flash(c, "You're already registered")
			return c.Redirect(http.StatusSeeOther, "/login")
		case errors.Is(err, auth.ErrDuplicateName):
			return a.render(c, http.StatusBadRequest, "register", &registerData{Form: req}, map[string]string{
				"name": "This name is already taken.",
			})
		default:
			a.l.Error("failed to register user", zap.String("email", req.Email), zap.Error(err))
			return a.er(c, http.StatusInternalServerError)
		}
	}

	a.l.Info("user registered", zap.Uint("id", user.ID), zap.String("name", user.Name), zap.Bool("isAdmin", user.IsAdmin))

	// 注册后直接登录
	if err := a.startSession(c, user); err != nil {
		a.l.Error("failed to start session", zap.Uint("id", user.ID), zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	return c.Redirect(http.StatusSeeOther, "/")
}
