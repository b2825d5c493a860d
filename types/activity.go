package types

import "time"

type CreateActivityRequest struct {
	Content   string   `json:"content" binding:"required"`
	MediaData []string `json:"media_data"`
}

type Activity struct {
	ID             int64     `json:"id,string"`
	UserID         int64     `json:"user_id,string"`
	Content        string    `json:"content"`
	MediaData      []string  `json:"media_data"`
	IsLiked        bool      `json:"is_liked"`
	LikesCount     int64     `json:"likes_count"`
	BookmarksCount int64     `json:"bookmarks_count"`
	CreatedAt      time.Time `json:"created_at"`
}
