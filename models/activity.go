package models

import (
	"time"

	"gorm.io/datatypes"
)

// Activity 动态（短内容，进 feed 流）
// likes_count / bookmarks_count 是冗余计数，与关系行写入同一事务内增减，
// 任何时刻都必须等于对应关系行的真实数量
type Activity struct {
	ID             int64          `gorm:"column:id;primary_key" json:"id"`
	UserID         int64          `gorm:"column:user_id;not null;index:idx_activity_userid" json:"user_id"`
	Content        string         `gorm:"column:content;type:text" json:"content"`
	MediaData      datatypes.JSON `gorm:"column:media_data" json:"media_data"`
	LikesCount     int64          `gorm:"column:likes_count;not null;default:0" json:"likes_count"`
	BookmarksCount int64          `gorm:"column:bookmarks_count;not null;default:0" json:"bookmarks_count"`
	Status         int8           `gorm:"column:status;not null;default:1" json:"status"`
	CreatedAt      time.Time      `gorm:"column:created_at;index:idx_activity_created_at" json:"created_at"`
	UpdatedAt      time.Time      `gorm:"column:updated_at" json:"updated_at"`
}

func (Activity) TableName() string {
	return "activities"
}
