package handlers

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"net/http"
	"personal-blog/app/server/middlewares"
)

func (a *App) Logout(c echo.Context) error {
	if session := middlewares.SessionOf(c); session != nil {
		if err := a.as.Logout(c.Request().Context(), session); err != nil {
			a.l.Error("failed to end session", zap.String("sid", session.ID), zap.Error(err))
			return a.er(c, http.StatusInternalServerError)
		}
	}

	a.clearSession(c)
	return c.Redirect(http.StatusSeeOther, "/")
}
