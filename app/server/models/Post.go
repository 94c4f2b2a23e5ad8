package models

import "time"

type Post struct {
	ID uint `gorm:"column:id;primaryKey"`

	// 文章内容
	Title    string `gorm:"column:title;size:250;uniqueIndex;not null"` // 标题，全局唯一；MySQL 的唯一索引需要限定长度
	Subtitle string `gorm:"column:subtitle"`                            // 副标题
	Body     string `gorm:"column:body"`                                // 正文（富文本，由管理员撰写，不做过滤）
	URL      string `gorm:"column:url"`                                 // 文章的 slug / 题图地址
	Date     string `gorm:"column:date"`                                // 发布日期，格式如 March 05, 2024 ，每次编辑都会刷新

	// 作者
	AuthorID uint `gorm:"column:author_id;index;not null"`
	Author   User `gorm:"foreignKey:AuthorID"`

	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (Post) TableName() string {
	return "blog_posts"
}
