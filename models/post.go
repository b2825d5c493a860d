package models

import "time"

// Post 博客文章
// 点赞数不落冗余字段，读取时实时聚合 likes 表
type Post struct {
	ID        int64     `gorm:"column:id;primary_key" json:"id"`
	UserID    int64     `gorm:"column:user_id;not null;index:idx_post_userid_status" json:"user_id"`
	Title     string    `gorm:"column:title;type:varchar(100);not null;default:''" json:"title"`
	Content   string    `gorm:"column:content;type:text" json:"content"`
	Status    int8      `gorm:"column:status;not null;default:1;index:idx_post_userid_status" json:"status"`
	CreatedAt time.Time `gorm:"column:created_at;index:idx_post_created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (Post) TableName() string {
	return "posts"
}
