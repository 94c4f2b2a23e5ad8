package middlewares

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"net/http"
	"personal-blog/app/server/models"
	"personal-blog/app/server/types"
)

type Authorization int

const (
	Authorized Authorization = iota
	Unauthenticated
	NotAdmin
)

func (a Authorization) String() string {
	switch a {
	case Authorized:
		return "authorized"
	case Unauthenticated:
		return "unauthenticated"
	case NotAdmin:
		return "not admin"
	default:
		return "unknown"
	}
}

// Authorize 判断用户能否修改文章
func Authorize(user *models.User) Authorization {
	switch {
	case user == nil:
		return Unauthenticated
	case !user.IsAdmin:
		return NotAdmin
	default:
		return Authorized
	}
}

// AdminOnly 只允许管理员通过，其余（包括未登录）一律 403
func AdminOnly(l *zap.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user := CurrentUser(c)
			if result := Authorize(user); result != Authorized {
				fields := []zap.Field{zap.String("uri", c.Request().RequestURI), zap.Stringer("reason", result)}
				if user != nil {
					fields = append(fields, zap.Uint("userID", user.ID))
				}
				l.Info("rejected admin request", fields...)

				return c.JSON(http.StatusForbidden, &types.ErrorMessage{
					Message: http.StatusText(http.StatusForbidden),
				})
			}

			return next(c)
		}
	}
}
