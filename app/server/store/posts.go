package store

import (
	"context"
	"errors"
	"fmt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"personal-blog/app/server/models"
)

// PostFields 是文章中可以由管理员编辑的字段
type PostFields struct {
	Title    string
	Subtitle string
	Body     string
	URL      string
	Date     string
}

func (s *Store) ListPosts(ctx context.Context) ([]models.Post, error) {
	var posts []models.Post
	if err := s.db.WithContext(ctx).
		Preload("Author").
		Order("id ASC").
		Find(&posts).Error; err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	return posts, nil
}

func (s *Store) GetPost(ctx context.Context, id uint) (*models.Post, error) {
	var post models.Post
	if err := s.db.WithContext(ctx).
		Preload("Author").
		First(&post, "id = ?", id).Error; err != nil {
		return nil, fmt.Errorf("get post %d: %w", id, notFound(err))
	}
	return &post, nil
}

func (s *Store) CreatePost(ctx context.Context, author *models.User, fields PostFields) (*models.Post, error) {
	post := models.Post{
		Title:    fields.Title,
		Subtitle: fields.Subtitle,
		Body:     fields.Body,
		URL:      fields.URL,
		Date:     fields.Date,
		AuthorID: author.ID,
	}

	if err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Omit(clause.Associations).Create(&post).Error
	}); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateTitle
		}
		return nil, fmt.Errorf("create post: %w", err)
	}

	post.Author = *author
	return &post, nil
}

func (s *Store) UpdatePost(ctx context.Context, id uint, fields PostFields) (*models.Post, error) {
	var post models.Post
	if err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&post, "id = ?", id).Error; err != nil {
			return notFound(err)
		}

		post.Title = fields.Title
		post.Subtitle = fields.Subtitle
		post.Body = fields.Body
		post.URL = fields.URL
		post.Date = fields.Date

		// 显式 Select ，空字符串也会被写入
		return tx.Model(&post).
			Select("title", "subtitle", "body", "url", "date", "updated_at").
			Updates(&post).Error
	}); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateTitle
		}
		return nil, fmt.Errorf("update post %d: %w", id, err)
	}

	return &post, nil
}

// DeletePost 删除文章及其下所有评论
func (s *Store) DeletePost(ctx context.Context, id uint) error {
	if err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
			return fmt.Errorf("delete comments: %w", err)
		}

		res := tx.Delete(&models.Post{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	}); err != nil {
		return fmt.Errorf("delete post %d: %w", id, err)
	}

	return nil
}
