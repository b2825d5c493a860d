package service

import (
	"Pulse/dao"
	"Pulse/models"
	"Pulse/pkg/snowflake"
	"Pulse/types"
	"context"
	"errors"

	"gorm.io/gorm"
)

var _ IPostService = (*PostService)(nil)

type IPostService interface {
	CreatePost(ctx context.Context, req *types.CreatePostRequest, userID int64) (*types.Post, error)
	GetPost(ctx context.Context, postID int64) (*types.Post, error)
	ListPosts(ctx context.Context, offset, limit int) ([]*types.Post, error)
}

type PostService struct {
	PostDAO *dao.PostDAO
}

func (s *PostService) CreatePost(ctx context.Context, req *types.CreatePostRequest, userID int64) (*types.Post, error) {
	post := &models.Post{
		ID:      snowflake.GenID(),
		UserID:  userID,
		Title:   req.Title,
		Content: req.Content,
		Status:  1,
	}
	if err := s.PostDAO.Create(ctx, post); err != nil {
		return nil, err
	}
	return toPostType(post), nil
}

func (s *PostService) GetPost(ctx context.Context, postID int64) (*types.Post, error) {
	post, err := s.PostDAO.FindByID(ctx, postID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrTargetNotFound
	}
	if err != nil {
		return nil, err
	}
	return toPostType(post), nil
}

func (s *PostService) ListPosts(ctx context.Context, offset, limit int) ([]*types.Post, error) {
	posts, err := s.PostDAO.List(ctx, offset, limit)
	if err != nil {
		return nil, err
	}
	result := make([]*types.Post, 0, len(posts))
	for _, post := range posts {
		result = append(result, toPostType(post))
	}
	return result, nil
}

func toPostType(post *models.Post) *types.Post {
	return &types.Post{
		ID:        post.ID,
		UserID:    post.UserID,
		Title:     post.Title,
		Content:   post.Content,
		CreatedAt: post.CreatedAt,
		UpdatedAt: post.UpdatedAt,
	}
}
