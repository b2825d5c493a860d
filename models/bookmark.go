package models

import "time"

// Bookmark 收藏关系行，结构与 Like 完全一致
// 唯一键: user_id + post_id 和 user_id + activity_id
type Bookmark struct {
	ID         int64     `gorm:"column:id;primary_key" json:"id"`
	UserID     int64     `gorm:"column:user_id;not null;index:uk_bookmark_user_post,unique,priority:1;index:uk_bookmark_user_activity,unique,priority:1" json:"user_id"`
	PostID     *int64    `gorm:"column:post_id;index:uk_bookmark_user_post,unique,priority:2" json:"post_id,omitempty"`
	ActivityID *int64    `gorm:"column:activity_id;index:uk_bookmark_user_activity,unique,priority:2" json:"activity_id,omitempty"`
	CreatedAt  time.Time `gorm:"column:created_at;index:idx_bookmark_created_at" json:"created_at"`
}

func (Bookmark) TableName() string { return "bookmarks" }
