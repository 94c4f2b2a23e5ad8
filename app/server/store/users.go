package store

import (
	"context"
	"errors"
	"fmt"
	"gorm.io/gorm"
	"personal-blog/app/server/models"
)

// CreateUser 创建用户，数据库里的第一个用户会成为管理员
func (s *Store) CreateUser(ctx context.Context, name, email, passwordHash string) (*models.User, error) {
	user := models.User{
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
	}

	if err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 同名 / 同邮箱先查一次，给出准确的错误
		var counter int64
		if err := tx.Model(&models.User{}).Where("email = ?", email).Count(&counter).Error; err != nil {
			return err
		} else if counter > 0 {
			return ErrDuplicateEmail
		}
		if err := tx.Model(&models.User{}).Where("name = ?", name).Count(&counter).Error; err != nil {
			return err
		} else if counter > 0 {
			return ErrDuplicateName
		}

		if err := tx.Model(&models.User{}).Count(&counter).Error; err != nil {
			return err
		}
		user.IsAdmin = counter == 0

		return tx.Create(&user).Error
	}); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// 并发注册撞上了唯一索引；事务已经结束，重新查出冲突的字段
			err = s.duplicateUser(ctx, name, email)
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	return &user, nil
}

// duplicateUser 判断与已有用户冲突的是邮箱还是名称
func (s *Store) duplicateUser(ctx context.Context, name, email string) error {
	var counter int64
	if err := s.db.WithContext(ctx).Model(&models.User{}).Where("email = ?", email).Count(&counter).Error; err != nil {
		return err
	} else if counter > 0 {
		return ErrDuplicateEmail
	}
	if err := s.db.WithContext(ctx).Model(&models.User{}).Where("name = ?", name).Count(&counter).Error; err != nil {
		return err
	} else if counter > 0 {
		return ErrDuplicateName
	}
	return gorm.ErrDuplicatedKey
}

func (s *Store) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, "email = ?", email).Error; err != nil {
		return nil, fmt.Errorf("find user by email: %w", notFound(err))
	}
	return &user, nil
}

func (s *Store) FindUserByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		return nil, fmt.Errorf("find user %d: %w", id, notFound(err))
	}
	return &user, nil
}

func (s *Store) UpdateUserPassword(ctx context.Context, id uint, passwordHash string) error {
	if err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.User{}).Where("id = ?", id).Update("password_hash", passwordHash)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	}); err != nil {
		return fmt.Errorf("update password of user %d: %w", id, err)
	}
	return nil
}
