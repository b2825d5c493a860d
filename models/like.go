package models

import "time"

// Like 点赞关系行
// post_id / activity_id 恰好一个非空
// 唯一键: user_id + post_id 和 user_id + activity_id（NULL 不参与唯一约束）
// 只创建和删除，从不原地更新
type Like struct {
	ID         int64     `gorm:"column:id;primary_key" json:"id"`
	UserID     int64     `gorm:"column:user_id;not null;index:uk_like_user_post,unique,priority:1;index:uk_like_user_activity,unique,priority:1" json:"user_id"`
	PostID     *int64    `gorm:"column:post_id;index:uk_like_user_post,unique,priority:2" json:"post_id,omitempty"`
	ActivityID *int64    `gorm:"column:activity_id;index:uk_like_user_activity,unique,priority:2" json:"activity_id,omitempty"`
	CreatedAt  time.Time `gorm:"column:created_at;index:idx_like_created_at" json:"created_at"`
}

func (Like) TableName() string { return "likes" }
