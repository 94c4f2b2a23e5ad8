// Package auth registers users, verifies credentials and manages the
// server-side sessions that back the session cookie.
package auth

import (
	"context"
	"errors"
	"fmt"
	"github.com/alexedwards/argon2id"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"personal-blog/app/server/constants"
	"personal-blog/app/server/jwt"
	"personal-blog/app/server/models"
	"personal-blog/app/server/store"
	"time"
)

var (
	ErrDuplicateEmail    = errors.New("email already registered")
	ErrDuplicateName     = errors.New("name already taken")
	ErrAccountNotFound   = errors.New("account not found")
	ErrIncorrectPassword = errors.New("incorrect password")
	ErrNoSession         = errors.New("no valid session")
)

type Service struct {
	l      *zap.Logger
	st     *store.Store
	rdb    *redis.Client
	jwt    *jwt.JWT
	ttl    time.Duration
	params *argon2id.Params
}

type Option func(*Service)

// WithHashParams overrides the argon2id parameters used for new hashes.
func WithHashParams(params *argon2id.Params) Option {
	return func(s *Service) {
		s.params = params
	}
}

func New(l *zap.Logger, st *store.Store, rdb *redis.Client, j *jwt.JWT, ttl time.Duration, opts ...Option) *Service {
	s := &Service{
		l:      l,
		st:     st,
		rdb:    rdb,
		jwt:    j,
		ttl:    ttl,
		params: argon2id.DefaultParams,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// IssuedSession 是登录成功后发给浏览器的会话
type IssuedSession struct {
	Token   string
	Expires time.Time
}

func (s *Service) Register(ctx context.Context, name, email, password string) (*models.User, error) {
	// 邮箱已经注册过
	if _, err := s.st.FindUserByEmail(ctx, email); err == nil {
		return nil, ErrDuplicateEmail
	} else if !errors.Is(err, store.ErrNotFound) {
		return nil, err
	}

	// 处理密码
	passwordHash, err := argon2id.CreateHash(password, s.params)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user, err := s.st.CreateUser(ctx, name, email, passwordHash)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrDuplicateEmail):
			return nil, ErrDuplicateEmail
		case errors.Is(err, store.ErrDuplicateName):
			return nil, ErrDuplicateName
		default:
			return nil, err
		}
	}

	return user, nil
}

func (s *Service) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	user, err := s.st.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}

	// 提取密码 hash 并进行校验
	match, legacy, err := checkPassword(password, user.PasswordHash)
	if err != nil {
		return nil, fmt.Errorf("check password of user %d: %w", user.ID, err)
	} else if !match {
		return nil, ErrIncorrectPassword
	}

	// 旧格式的密码在登录成功后升级为 argon2id ，失败也不影响登录
	if legacy {
		if newHash, err := argon2id.CreateHash(password, s.params); err != nil {
			s.l.Error("failed to rehash legacy password", zap.Uint("id", user.ID), zap.Error(err))
		} else if err = s.st.UpdateUserPassword(ctx, user.ID, newHash); err != nil {
			s.l.Error("failed to store upgraded password", zap.Uint("id", user.ID), zap.Error(err))
		} else {
			user.PasswordHash = newHash
			s.l.Info("upgraded legacy password hash", zap.Uint("id", user.ID))
		}
	}

	return user, nil
}

// Login 为用户建立新的会话
func (s *Service) Login(ctx context.Context, user *models.User) (*IssuedSession, error) {
	sid := uuid.NewString()
	expires := time.Now().Add(s.ttl)

	if err := s.rdb.Set(ctx, fmt.Sprintf(constants.CacheKeySession, sid), user.ID, s.ttl).Err(); err != nil {
		return nil, fmt.Errorf("store session: %w", err)
	}

	// 签出 JWT
	token, err := s.jwt.SignSession(&jwt.Session{
		ID:      sid,
		UserID:  user.ID,
		Expires: expires.Unix(),
	})
	if err != nil {
		return nil, fmt.Errorf("sign session: %w", err)
	}

	return &IssuedSession{
		Token:   token,
		Expires: expires,
	}, nil
}

// Resolve 返回会话对应的用户；会话已注销、过期或用户不存在时返回 ErrNoSession
func (s *Service) Resolve(ctx context.Context, session *jwt.Session) (*models.User, error) {
	uid, err := s.rdb.Get(ctx, fmt.Sprintf(constants.CacheKeySession, session.ID)).Uint64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNoSession
		}
		return nil, fmt.Errorf("load session: %w", err)
	}
	if uint(uid) != session.UserID {
		return nil, ErrNoSession
	}

	user, err := s.st.FindUserByID(ctx, session.UserID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrNoSession
		}
		return nil, err
	}

	return user, nil
}

func (s *Service) Logout(ctx context.Context, session *jwt.Session) error {
	if err := s.rdb.Del(ctx, fmt.Sprintf(constants.CacheKeySession, session.ID)).Err(); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}
