package store

import (
	"context"
	"fmt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"personal-blog/app/server/models"
)

func (s *Store) CreateComment(ctx context.Context, author *models.User, postID uint, text string) (*models.Comment, error) {
	comment := models.Comment{
		Comment:  text,
		AuthorID: author.ID,
		PostID:   postID,
	}

	if err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 文章可能已经被删除
		var counter int64
		if err := tx.Model(&models.Post{}).Where("id = ?", postID).Count(&counter).Error; err != nil {
			return err
		} else if counter == 0 {
			return ErrNotFound
		}

		return tx.Omit(clause.Associations).Create(&comment).Error
	}); err != nil {
		return nil, fmt.Errorf("create comment on post %d: %w", postID, err)
	}

	comment.Author = *author
	return &comment, nil
}

func (s *Store) ListComments(ctx context.Context, postID uint) ([]models.Comment, error) {
	var comments []models.Comment
	if err := s.db.WithContext(ctx).
		Preload("Author").
		Where("post_id = ?", postID).
		Order("id ASC").
		Find(&comments).Error; err != nil {
		return nil, fmt.Errorf("list comments of post %d: %w", postID, err)
	}
	return comments, nil
}
