package constants

const (
	CacheKeySession = "blog:session:%s" // %s -> session id ，值为用户 ID
)
