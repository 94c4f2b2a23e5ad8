package handlers

import (
	"encoding/base64"
	"encoding/json"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"net/http"
	"personal-blog/app/server/constants"
)

// pendingFlashes 返回还没有展示的提示消息：上一个请求留在 cookie 里的，加上本次请求新增的
func (a *App) pendingFlashes(c echo.Context) []string {
	if msgs, ok := c.Get(constants.ContextKeyFlashes).([]string); ok {
		return msgs
	}

	var msgs []string
	if cookie, err := c.Cookie(constants.CookieFlash); err == nil && cookie.Value != "" {
		if raw, err := base64.RawURLEncoding.DecodeString(cookie.Value); err != nil {
			a.l.Debug("failed to decode flash cookie", zap.Error(err))
		} else if err = json.Unmarshal(raw, &msgs); err != nil {
			a.l.Debug("failed to unmarshal flash cookie", zap.Error(err))
		}
	}

	c.Set(constants.ContextKeyFlashes, msgs)
	return msgs
}

// flash 添加一条提示消息，显示在下一个渲染的页面上
func (a *App) flash(c echo.Context, msg string) {
	msgs := append(a.pendingFlashes(c), msg)
	c.Set(constants.ContextKeyFlashes, msgs)

	raw, err := json.Marshal(msgs)
	if err != nil {
		a.l.Error("failed to marshal flash messages", zap.Strings("messages", msgs), zap.Error(err))
		return
	}

	c.SetCookie(&http.Cookie{
		Name:     constants.CookieFlash,
		Value:    base64.RawURLEncoding.EncodeToString(raw),
		Path:     "/",
		HttpOnly: true,
		Secure:   a.secureCookies,
		SameSite: http.SameSiteLaxMode,
	})
}

// popFlashes 取出所有提示消息并清除 cookie
func (a *App) popFlashes(c echo.Context) []string {
	msgs := a.pendingFlashes(c)
	c.Set(constants.ContextKeyFlashes, []string{})

	_, err := c.Cookie(constants.CookieFlash)
	if len(msgs) > 0 || err == nil {
		c.SetCookie(&http.Cookie{
			Name:     constants.CookieFlash,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			HttpOnly: true,
			Secure:   a.secureCookies,
			SameSite: http.SameSiteLaxMode,
		})
	}

	if msgs == nil {
		return []string{}
	}
	return msgs
}
