package constants

const (
	CookieSession = "blog_session" // 会话 token（JWT）
	CookieFlash   = "blog_flash"   // 一次性提示消息
)

// echo context 中使用的键
const (
	ContextKeySession = "session"
	ContextKeyUser    = "user"
	ContextKeyFlashes = "flashes"
)
