package middlewares

import (
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"personal-blog/app/server/constants"
	"personal-blog/app/server/jwt"
)

// Session 解析会话 cookie ，成功后将 *jwt.Session 放入 context ；没有或无效的 cookie 按匿名访问处理
func Session(j *jwt.JWT) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		TokenLookup: "cookie:" + constants.CookieSession,
		ContextKey:  constants.ContextKeySession,
		ParseTokenFunc: func(c echo.Context, auth string) (interface{}, error) {
			return j.ParseSession(auth)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return nil
		},
		ContinueOnIgnoredError: true,
	})
}

// SessionOf 返回当前请求的会话 token ，匿名访问时为 nil
func SessionOf(c echo.Context) *jwt.Session {
	s, _ := c.Get(constants.ContextKeySession).(*jwt.Session)
	return s
}
