package types

import "time"

type CreatePostRequest struct {
	Title   string `json:"title" binding:"required,max=100"`
	Content string `json:"content" binding:"required"`
}

type Post struct {
	ID        int64     `json:"id,string"`
	UserID    int64     `json:"user_id,string"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	IsLiked   bool      `json:"is_liked"`
	LikeCount int64     `json:"like_count"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
