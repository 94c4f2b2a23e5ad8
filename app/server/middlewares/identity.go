package middlewares

import (
	"errors"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"personal-blog/app/server/auth"
	"personal-blog/app/server/constants"
	"personal-blog/app/server/models"
)

// Identity 根据会话查出当前用户，放入 context ，之后的处理函数通过 CurrentUser 获取
func Identity(as *auth.Service, l *zap.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			session := SessionOf(c)
			if session == nil {
				return next(c)
			}

			user, err := as.Resolve(c.Request().Context(), session)
			if err != nil {
				if !errors.Is(err, auth.ErrNoSession) {
					l.Error("failed to resolve session", zap.String("sid", session.ID), zap.Error(err))
				}
				// 按匿名访问继续处理
				return next(c)
			}

			c.Set(constants.ContextKeyUser, user)
			return next(c)
		}
	}
}

// CurrentUser 返回当前登录的用户，未登录时为 nil
func CurrentUser(c echo.Context) *models.User {
	u, _ := c.Get(constants.ContextKeyUser).(*models.User)
	return u
}
