package service

import (
	"Pulse/dao"
	"Pulse/dao/cache"
	"Pulse/models"
	"Pulse/pkg/log"
	"Pulse/pkg/snowflake"
	"Pulse/types"
	"context"
	"errors"

	"github.com/sourcegraph/conc/pool"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var _ IBookmarkService = (*BookmarkService)(nil)

// IBookmarkService 收藏，与点赞结构一致：目标是文章或动态，
// 文章计数实时聚合，动态走冗余计数字段
type IBookmarkService interface {
	Toggle(ctx context.Context, kind types.TargetKind, targetID, userID int64) (*types.InteractionStatus, error)
	Status(ctx context.Context, kind types.TargetKind, targetID, userID int64) (*types.InteractionStatus, error)
	BatchStatus(ctx context.Context, kind types.TargetKind, targetIDs []int64, userID int64) (map[int64]*types.InteractionStatus, error)
	ClearAllForUser(ctx context.Context, userID int64) error
}

type BookmarkService struct {
	Db          *gorm.DB
	BookmarkDAO *dao.BookmarkDAO
	PostDAO     *dao.PostDAO
	ActivityDAO *dao.ActivityDAO
	Cache       *cache.InteractionCache
}

const relationBookmarked = "bookmarked"

// Toggle 收藏/取消收藏，并发冲突的吸收规则与点赞相同
func (s *BookmarkService) Toggle(ctx context.Context, kind types.TargetKind, targetID, userID int64) (*types.InteractionStatus, error) {
	if !kind.Valid() || targetID == 0 || userID == 0 {
		return nil, ErrInvalidTarget
	}
	if err := s.ensureTarget(ctx, kind, targetID); err != nil {
		return nil, err
	}

	existing, err := s.BookmarkDAO.GetByUserTarget(ctx, kind, targetID, userID)
	if err != nil {
		return nil, err
	}

	var marked bool
	if existing == nil {
		marked, err = s.toggleOn(ctx, kind, targetID, userID)
	} else {
		marked, err = s.toggleOff(ctx, kind, targetID, existing.ID)
	}
	if err != nil {
		return nil, err
	}

	if s.Cache != nil {
		if marked {
			s.Cache.Add(ctx, relationBookmarked, kind, userID, targetID)
		} else {
			s.Cache.Remove(ctx, relationBookmarked, kind, userID, targetID)
		}
	}

	count, err := s.count(ctx, kind, targetID)
	if err != nil {
		return nil, err
	}
	return &types.InteractionStatus{IsLiked: marked, Count: count}, nil
}

func (s *BookmarkService) toggleOn(ctx context.Context, kind types.TargetKind, targetID, userID int64) (bool, error) {
	row := models.Bookmark{ID: snowflake.GenID(), UserID: userID}
	if kind == types.TargetActivity {
		row.ActivityID = &targetID
	} else {
		row.PostID = &targetID
	}

	err := s.Db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.BookmarkDAO.CreateTx(tx, &row); err != nil {
			return err
		}
		if StrategyFor(kind) == StrategyRedundant {
			return s.ActivityDAO.IncrCounterTx(tx, dao.CounterBookmarks, targetID, 1)
		}
		return nil
	})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (s *BookmarkService) toggleOff(ctx context.Context, kind types.TargetKind, targetID, rowID int64) (bool, error) {
	err := s.Db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.BookmarkDAO.DeleteByIDTx(tx, rowID); err != nil {
			return err
		}
		if StrategyFor(kind) == StrategyRedundant {
			return s.ActivityDAO.IncrCounterTx(tx, dao.CounterBookmarks, targetID, -1)
		}
		return nil
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return false, nil
}

func (s *BookmarkService) Status(ctx context.Context, kind types.TargetKind, targetID, userID int64) (*types.InteractionStatus, error) {
	if !kind.Valid() || targetID == 0 {
		return nil, ErrInvalidTarget
	}

	marked := false
	if userID > 0 {
		if s.Cache != nil && s.Cache.HasPositive(ctx, relationBookmarked, kind, userID, targetID) {
			marked = true
		} else {
			row, err := s.BookmarkDAO.GetByUserTarget(ctx, kind, targetID, userID)
			if err != nil {
				return nil, err
			}
			marked = row != nil
		}
	}

	count, err := s.count(ctx, kind, targetID)
	if err != nil {
		return nil, err
	}
	return &types.InteractionStatus{IsLiked: marked, Count: count}, nil
}

func (s *BookmarkService) BatchStatus(ctx context.Context, kind types.TargetKind, targetIDs []int64, userID int64) (map[int64]*types.InteractionStatus, error) {
	if !kind.Valid() {
		return nil, ErrInvalidTarget
	}
	result := make(map[int64]*types.InteractionStatus, len(targetIDs))
	if len(targetIDs) == 0 {
		return result, nil
	}

	var (
		counts    map[int64]int64
		markedSet map[int64]bool
	)
	p := pool.New().WithContext(ctx).WithCancelOnError().WithFirstError()
	p.Go(func(ctx context.Context) error {
		var err error
		if StrategyFor(kind) == StrategyRedundant {
			counts, err = s.ActivityDAO.MapCounters(ctx, dao.CounterBookmarks, targetIDs)
		} else {
			counts, err = s.BookmarkDAO.GroupCountByTargets(ctx, kind, targetIDs)
		}
		return err
	})
	if userID > 0 {
		p.Go(func(ctx context.Context) error {
			var err error
			markedSet, err = s.BookmarkDAO.MarkedSet(ctx, kind, targetIDs, userID)
			return err
		})
	}
	if err := p.Wait(); err != nil {
		return nil, err
	}

	for _, id := range targetIDs {
		result[id] = &types.InteractionStatus{
			IsLiked: markedSet[id],
			Count:   counts[id],
		}
	}
	return result, nil
}

func (s *BookmarkService) ClearAllForUser(ctx context.Context, userID int64) error {
	if userID == 0 {
		return ErrInvalidTarget
	}
	deleted, err := s.BookmarkDAO.DeleteAllByUser(ctx, userID)
	if err != nil {
		return err
	}
	if s.Cache != nil {
		s.Cache.ClearUser(ctx, relationBookmarked, userID)
	}
	log.L.Info("cleared user bookmarks", zap.Int64("user_id", userID), zap.Int64("deleted", deleted))
	return nil
}

func (s *BookmarkService) ensureTarget(ctx context.Context, kind types.TargetKind, targetID int64) error {
	var (
		exist bool
		err   error
	)
	if kind == types.TargetActivity {
		exist, err = s.ActivityDAO.IsExist(ctx, "id = ?", targetID)
	} else {
		exist, err = s.PostDAO.IsExist(ctx, "id = ?", targetID)
	}
	if err != nil {
		return err
	}
	if !exist {
		return ErrTargetNotFound
	}
	return nil
}

func (s *BookmarkService) count(ctx context.Context, kind types.TargetKind, targetID int64) (int64, error) {
	if StrategyFor(kind) == StrategyRedundant {
		return s.ActivityDAO.GetCounter(ctx, dao.CounterBookmarks, targetID)
	}
	return s.BookmarkDAO.CountByTarget(ctx, kind, targetID)
}
