package handlers

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"net/http"
)

func (a *App) HealthCheck(c echo.Context) error {
	rctx := c.Request().Context()

	if err := a.st.Ping(rctx); err != nil {
		a.l.Error("health check: database unavailable", zap.Error(err))
		return c.NoContent(http.StatusServiceUnavailable)
	}
	if err := a.rdb.Ping(rctx).Err(); err != nil {
		a.l.Error("health check: redis unavailable", zap.Error(err))
		return c.NoContent(http.StatusServiceUnavailable)
	}

	return c.NoContent(http.StatusOK)
}
