package main

import (
	"fmt"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
	"log"
	"personal-blog/app/server/apidocs"
	"personal-blog/app/server/auth"
	"personal-blog/app/server/handlers"
	"personal-blog/app/server/inits"
	"personal-blog/app/server/jwt"
	"personal-blog/app/server/middlewares"
	"personal-blog/app/server/store"
)

func main() {
	// 初始化配置
	cfg, err := inits.Config()
	if err != nil {
		log.Fatal(fmt.Errorf("error loading config: %w", err))
	}

	// 初始化日志
	l, err := inits.Logger(!cfg.System.IsProd)
	if err != nil {
		log.Fatal(fmt.Errorf("error initializing logger: %w", err))
	}
	defer l.Sync()

	l.Debug("logger initialized")

	// 初始化数据库连接
	db, err := inits.DB(cfg.System.DBConnectionString)
	if err != nil {
		l.Fatal("error initializing DB connection", zap.Error(err))
	}

	// 初始化 redis 连接
	rdb, err := inits.Redis(cfg.System.RedisConnectionString)
	if err != nil {
		l.Fatal("error initializing Redis connection", zap.Error(err))
	}

	// 初始化 JWT
	j, err := jwt.New(cfg.Security.SecretKey)
	if err != nil {
		l.Fatal("error initializing JWT", zap.Error(err))
	}

	// 准备 handler app
	st := store.New(db)
	as := auth.New(l, st, rdb, j, cfg.Security.SessionTTL)
	handlerApp := handlers.NewApp(l, st, rdb, as, j, cfg.System.IsProd)

	// 准备 echo 服务
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:    true,
		LogStatus: true,
		LogMethod: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			l.Info("request",
				zap.String("method", v.Method),
				zap.String("URI", v.URI),
				zap.Int("status", v.Status),
			)

			return nil
		},
	}))
	e.Use(middleware.Recover())

	// 添加 API 文档
	if !cfg.System.IsProd {
		var docOpts []apidocs.Opts
		if cfg.System.PublicURL != "" {
			docOpts = append(docOpts, apidocs.WithServerURL(cfg.System.PublicURL))
		}
		if doc, err := apidocs.Doc("/api/docs", apidocs.Spec(), docOpts...); err != nil {
			l.Error("error initializing api docs", zap.Error(err))
		} else {
			e.Pre(doc)
		}
	}

	// 绑定 echo 服务
	handlerApp.RegisterRoutes(e, middlewares.AuthRateLimit(cfg.Security.AuthRateLimit))

	// 启动 echo 服务
	l.Info("listening", zap.String("addr", cfg.System.Listen))
	if err := e.Start(cfg.System.Listen); err != nil {
		l.Fatal("shutting down the server", zap.Error(err))
	}
}
