package models

import "time"

type User struct {
	ID uint `gorm:"column:id;primaryKey"`

	// 基础信息
	Name    string `gorm:"column:name;size:150;uniqueIndex"`          // 显示名称，全局唯一
	Email   string `gorm:"column:email;index:idx_users_email,unique"` // 登录邮箱，全局唯一，不限长度
	IsAdmin bool   `gorm:"column:is_admin;not null;default:false"`    // 是否为管理员：只有管理员可以发布、编辑、删除文章；第一个注册的用户自动成为管理员

	// 登录与授权认证相关
	PasswordHash string `gorm:"column:password_hash;size:256"` // 密码，使用 argon2id 储存（旧数据可能是 werkzeug 格式）

	CreatedAt time.Time `gorm:"column:created_at"`
}

func (User) TableName() string {
	return "users"
}
