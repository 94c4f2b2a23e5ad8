package handlers

import (
	"github.com/labstack/echo/v4"
	"net/http"
	"personal-blog/app/server/middlewares"
)

// RegisterRoutes 绑定所有路由；authLimiter 用于限制登录与注册的提交频率
func (a *App) RegisterRoutes(e *echo.Echo, authLimiter echo.MiddlewareFunc) {
	// 所有请求都先解析会话，得到当前用户
	e.Use(middlewares.Session(a.jwt), middlewares.Identity(a.as, a.l))

	adminOnly := middlewares.AdminOnly(a.l)
	getPost := []string{http.MethodGet, http.MethodPost}

	// 浏览
	e.GET("/", a.Home)
	e.Match(getPost, "/post", a.PostView)
	e.GET("/post/pdf", a.PostExport)

	// 管理
	e.Match(getPost, "/create", a.PostCreate, adminOnly)
	e.Match(getPost, "/edit", a.PostEdit, adminOnly)
	e.Match(getPost, "/delete", a.PostDelete, adminOnly)

	// 账号
	e.GET("/register", a.Register)
	e.POST("/register", a.Register, authLimiter)
	e.GET("/login", a.Login)
	e.POST("/login", a.Login, authLimiter)
	e.GET("/logout", a.Logout)

	e.GET("/healthz", a.HealthCheck)
}
