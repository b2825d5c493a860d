package types

import "time"

// TargetKind 互动目标的内容类型
type TargetKind string

const (
	TargetPost     TargetKind = "post"
	TargetActivity TargetKind = "activity"
)

func (k TargetKind) Valid() bool {
	return k == TargetPost || k == TargetActivity
}

// InteractionStatus 单个目标的互动状态
type InteractionStatus struct {
	IsLiked bool  `json:"is_liked"`
	Count   int64 `json:"count"`
}

type ToggleRequest struct {
	TargetKind string `json:"target_kind" binding:"required"`
	TargetID   int64  `json:"target_id,string" binding:"required"`
}

type BatchStatusRequest struct {
	TargetKind string  `json:"target_kind" binding:"required"`
	TargetIDs  []int64 `json:"target_ids" binding:"required"`
}

// LikerUser 点赞用户列表里的一项
type LikerUser struct {
	UserID   int64     `json:"user_id"`
	Nickname string    `json:"nickname"`
	Avatar   string    `json:"avatar"`
	LikedAt  time.Time `json:"liked_at"`
}

// LikersPage 点赞用户的游标分页结果
type LikersPage struct {
	Users      []*LikerUser `json:"users"`
	HasMore    bool         `json:"has_more"`
	NextCursor string       `json:"next_cursor,omitempty"`
}
