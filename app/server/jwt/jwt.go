package jwt

import (
	"errors"
	"fmt"
	"github.com/golang-jwt/jwt/v5"
)

type JWT struct {
	key []byte
}

// Session 是会话 cookie 中携带的内容，真正的会话记录在 Redis 里
type Session struct {
	ID      string // 会话 ID ，对应 Redis 中的记录
	UserID  uint
	Expires int64 // Unix second
}

func New(key string) (*JWT, error) {
	if len(key) == 0 {
		return nil, errors.New("key is empty")
	}

	return &JWT{key: []byte(key)}, nil
}

func (j *JWT) ParseSession(tokenString string) (*Session, error) {
	// 检查是否有效
	if len(tokenString) == 0 {
		return nil, errors.New("token string is empty")
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return j.key, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, fmt.Errorf("parse jwt failed: %w", err)
	}

	// 匹配内容
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	sid, ok := claims["sid"].(string)
	if !ok || sid == "" {
		return nil, fmt.Errorf("invalid token: missing session id")
	}
	uid, ok := claims["uid"].(float64)
	if !ok {
		return nil, fmt.Errorf("invalid token: missing user id")
	}
	exp, ok := claims["exp"].(float64)
	if !ok {
		return nil, fmt.Errorf("invalid token: missing expiry")
	}

	return &Session{
		ID:      sid,
		UserID:  uint(uid),
		Expires: int64(exp),
	}, nil
}

func (j *JWT) SignSession(session *Session) (string, error) {
	// 创建声明
	claims := jwt.MapClaims{
		"sid": session.ID,
		"uid": session.UserID,
		"exp": session.Expires,
	}

	// 创建令牌
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	// 签名并返回
	return token.SignedString(j.key)
}
