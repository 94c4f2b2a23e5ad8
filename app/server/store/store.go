// Package store is the persistence layer of the blog: users, posts and
// comments on top of gorm. Every mutating call runs in its own transaction.
package store

import (
	"context"
	"errors"
	"gorm.io/gorm"
)

var (
	ErrNotFound       = errors.New("record not found")
	ErrDuplicateTitle = errors.New("a post with this title already exists")
	ErrDuplicateEmail = errors.New("a user with this email already exists")
	ErrDuplicateName  = errors.New("a user with this name already exists")
)

type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// notFound 把 gorm 的错误转换为本包的错误
func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

func (s *Store) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
