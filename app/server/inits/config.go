package inits

import (
	"errors"
	"fmt"
	"github.com/joho/godotenv"
	"io/fs"
	"os"
	"personal-blog/app/server/config"
	"strconv"
	"strings"
	"time"
)

// lookupEnv 依次尝试多个变量名，兼容旧部署里的小写变量名
func lookupEnv(keys ...string) (string, bool) {
	for _, key := range keys {
		if v, exist := os.LookupEnv(key); exist {
			return v, true
		}
	}
	return "", false
}

func Config() (*config.Config, error) {
	// 本地开发时可以放一个 .env 文件，不存在也没关系
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	var cfg config.Config
	{
		mode, exist := os.LookupEnv("MODE")
		cfg.System.IsProd = exist && strings.HasPrefix(strings.ToLower(mode), "p")
	}

	if listen, exist := os.LookupEnv("LISTEN"); !exist {
		cfg.System.Listen = ":5000" // 默认监听地址
	} else {
		cfg.System.Listen = listen
	}

	if dbconn, exist := lookupEnv("BLOG_DB_URI", "blog_db_uri"); !exist {
		return nil, fmt.Errorf("BLOG_DB_URI environment variable not set")
	} else {
		cfg.System.DBConnectionString = dbconn
	}

	if redisconn, exist := os.LookupEnv("REDIS_CONN"); !exist {
		return nil, fmt.Errorf("REDIS_CONN environment variable not set")
	} else {
		cfg.System.RedisConnectionString = redisconn
	}

	if publicURL, exist := os.LookupEnv("PUBLIC_URL"); exist {
		cfg.System.PublicURL = strings.TrimSuffix(publicURL, "/")
	}

	if sk, exist := lookupEnv("BLOG_KEY", "blog_key"); !exist || sk == "" {
		return nil, fmt.Errorf("BLOG_KEY environment variable not set")
	} else {
		cfg.Security.SecretKey = sk
	}

	if ttlStr, exist := os.LookupEnv("SESSION_TTL"); !exist {
		cfg.Security.SessionTTL = 7 * 24 * time.Hour // 默认一周
	} else if ttl, err := time.ParseDuration(ttlStr); err != nil || ttl <= 0 {
		return nil, fmt.Errorf("SESSION_TTL should be a positive duration")
	} else {
		cfg.Security.SessionTTL = ttl
	}

	if limitStr, exist := os.LookupEnv("AUTH_RATE_LIMIT"); !exist {
		cfg.Security.AuthRateLimit = 10
	} else if limit, err := strconv.Atoi(limitStr); err != nil || limit <= 0 {
		return nil, fmt.Errorf("AUTH_RATE_LIMIT should be a positive integer")
	} else {
		cfg.Security.AuthRateLimit = limit
	}

	return &cfg, nil
}
