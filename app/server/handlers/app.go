package handlers

import (
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"personal-blog/app/server/auth"
	"personal-blog/app/server/constants"
	"personal-blog/app/server/jwt"
	"personal-blog/app/server/store"
	"time"
)

type App struct {
	l   *zap.Logger   // 日志
	st  *store.Store  // 数据库
	rdb *redis.Client // Redis ，存储会话
	as  *auth.Service // 注册、登录与会话
	jwt *jwt.JWT      // JWT ，会话 cookie 的签名

	secureCookies bool             // 生产环境下 cookie 只通过 HTTPS 发送
	now           func() time.Time // 时钟，测试时替换
}

func NewApp(l *zap.Logger, st *store.Store, rdb *redis.Client, as *auth.Service, j *jwt.JWT, secureCookies bool) *App {
	return &App{
		l:   l,
		st:  st,
		rdb: rdb,
		as:  as,
		jwt: j,

		secureCookies: secureCookies,
		now:           time.Now,
	}
}

// today 返回今天的日期，例如 March 05, 2024
func (a *App) today() string {
	return a.now().Format(constants.PostDateLayout)
}
