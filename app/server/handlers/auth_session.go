package handlers

import (
	"github.com/labstack/echo/v4"
	"net/http"
	"personal-blog/app/server/constants"
	"personal-blog/app/server/models"
)

// startSession 为用户建立会话并写入 cookie
func (a *App) startSession(c echo.Context, user *models.User) error {
	issued, err := a.as.Login(c.Request().Context(), user)
	if err != nil {
		return err
	}

	c.SetCookie(&http.Cookie{
		Name:     constants.CookieSession,
		Value:    issued.Token,
		Path:     "/",
		Expires:  issued.Expires,
		HttpOnly: true,
		Secure:   a.secureCookies,
		SameSite: http.SameSiteLaxMode,
	})

	return nil
}

func (a *App) clearSession(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     constants.CookieSession,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   a.secureCookies,
		SameSite: http.SameSiteLaxMode,
	})
}
