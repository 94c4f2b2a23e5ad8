package models

import "time"

type Comment struct {
	ID uint `gorm:"column:id;primaryKey"`

	Comment string `gorm:"column:comment"` // 评论内容，已去除所有 HTML 标记

	AuthorID uint `gorm:"column:author_id;index;not null"`
	Author   User `gorm:"foreignKey:AuthorID"`

	PostID uint `gorm:"column:post_id;index;not null"`
	Post   Post `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE"`

	CreatedAt time.Time `gorm:"column:created_at"`
}

func (Comment) TableName() string {
	return "user_comments"
}
