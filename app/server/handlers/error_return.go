package handlers

import (
	"github.com/labstack/echo/v4"
	"net/http"
	"personal-blog/app/server/types"
)

func (a *App) er(c echo.Context, statusCode int) error {
	return a.erMessage(c, statusCode, http.StatusText(statusCode))
}

func (a *App) erMessage(c echo.Context, statusCode int, message string) error {
	return c.JSON(statusCode, &types.ErrorMessage{
		Message: message,
	})
}
