package service

import (
	"Pulse/dao"
	"Pulse/models"
	"Pulse/pkg/snowflake"
	"Pulse/types"
	"context"
	"encoding/json"
	"errors"

	"gorm.io/gorm"
)

var _ IActivityService = (*ActivityService)(nil)

type IActivityService interface {
	CreateActivity(ctx context.Context, req *types.CreateActivityRequest, userID int64) (*types.Activity, error)
	GetActivity(ctx context.Context, activityID int64) (*types.Activity, error)
	Feed(ctx context.Context, offset, limit int) ([]*types.Activity, error)
}

type ActivityService struct {
	ActivityDAO *dao.ActivityDAO
}

func (s *ActivityService) CreateActivity(ctx context.Context, req *types.CreateActivityRequest, userID int64) (*types.Activity, error) {
	media, _ := json.Marshal(req.MediaData)
	activity := &models.Activity{
		ID:        snowflake.GenID(),
		UserID:    userID,
		Content:   req.Content,
		MediaData: media,
		Status:    1,
	}
	if err := s.ActivityDAO.Create(ctx, activity); err != nil {
		return nil, err
	}
	return toActivityType(activity), nil
}

func (s *ActivityService) GetActivity(ctx context.Context, activityID int64) (*types.Activity, error) {
	activity, err := s.ActivityDAO.FindByID(ctx, activityID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrTargetNotFound
	}
	if err != nil {
		return nil, err
	}
	return toActivityType(activity), nil
}

// Feed 动态流，列表项直接带冗余计数，不做逐条聚合
func (s *ActivityService) Feed(ctx context.Context, offset, limit int) ([]*types.Activity, error) {
	activities, err := s.ActivityDAO.Feed(ctx, offset, limit)
	if err != nil {
		return nil, err
	}
	result := make([]*types.Activity, 0, len(activities))
	for _, activity := range activities {
		result = append(result, toActivityType(activity))
	}
	return result, nil
}

func toActivityType(activity *models.Activity) *types.Activity {
	t := &types.Activity{
		ID:             activity.ID,
		UserID:         activity.UserID,
		Content:        activity.Content,
		LikesCount:     activity.LikesCount,
		BookmarksCount: activity.BookmarksCount,
		CreatedAt:      activity.CreatedAt,
	}
	_ = json.Unmarshal(activity.MediaData, &t.MediaData)
	return t
}
