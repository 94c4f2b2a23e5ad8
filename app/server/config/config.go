package config

import "time"

type Config struct {
	System struct {
		IsProd                bool   // 是否为生产环境
		Listen                string // 监听地址
		DBConnectionString    string // 数据库连接字符串（postgres / mysql / sqlite）
		RedisConnectionString string // Redis 数据库的连接字符串，用于存储会话
		PublicURL             string // 对外访问地址，写入 API 文档；为空时文档使用相对地址
	}
	Security struct {
		SecretKey     string        // 签名密钥，用于签发会话 token ，更新会导致旧有会话失效
		SessionTTL    time.Duration // 会话有效期
		AuthRateLimit int           // 每个 IP 每分钟允许的登录 / 注册提交次数
	}
}
