package handlers

import (
	"errors"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"net/http"
	"personal-blog/app/server/auth"
	"personal-blog/app/server/middlewares"
)

type loginData struct {
	Form loginForm `json:"form"`
}

func (a *App) Login(c echo.Context) error {
	if c.Request().Method != http.MethodPost {
		return a.render(c, http.StatusOK, "login", &loginData{}, nil)
	}

	rctx := c.Request().Context()

	// 绑定请求体
	var req loginForm
	if err := c.Bind(&req); err != nil {
		a.l.Error("failed to bind request", zap.Error(err))
		return a.er(c, http.StatusBadRequest)
	}

	errs := req.validate()
	password := req.Password
	req.Password = ""
	if errs != nil {
		return a.render(c, http.StatusBadRequest, "login", &loginData{Form: req}, errs)
	}

	user, err := a.as.Authenticate(rctx, req.Email, password)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrAccountNotFound):
			a.flash(c, "Account not found")
			return a.render(c, http.StatusOK, "login", &loginData{Form: req}, nil)
		case errors.Is(err, auth.ErrIncorrectPassword):
			a.flash(c, "Incorrect Password")
			return a.render(c, http.StatusOK, "login", &loginData{Form: req}, nil)
		default:
			a.l.Error("failed to authenticate user", zap.String("email", req.Email), zap.Error(err))
			return a.er(c, http.StatusInternalServerError)
		}
	}

	// 已经登录的情况下重新登录，旧会话作废
	if old := middlewares.SessionOf(c); old != nil {
		if err := a.as.Logout(rctx, old); err != nil {
			a.l.Error("failed to end previous session", zap.String("sid", old.ID), zap.Error(err))
		}
	}

	if err := a.startSession(c, user); err != nil {
		a.l.Error("failed to start session", zap.Uint("id", user.ID), zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	a.l.Info("user logged in", zap.Uint("id", user.ID))

	return c.Redirect(http.StatusSeeOther, "/")
}
