package service

import (
	"Pulse/dao"
	"Pulse/dao/cache"
	"Pulse/models"
	"Pulse/pkg/cursor"
	"Pulse/pkg/log"
	"Pulse/pkg/snowflake"
	"Pulse/types"
	"context"
	"errors"

	"github.com/sourcegraph/conc/pool"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var _ ILikeService = (*LikeService)(nil)

type ILikeService interface {
	Toggle(ctx context.Context, kind types.TargetKind, targetID, userID int64) (*types.InteractionStatus, error)
	Status(ctx context.Context, kind types.TargetKind, targetID, userID int64) (*types.InteractionStatus, error)
	BatchStatus(ctx context.Context, kind types.TargetKind, targetIDs []int64, userID int64) (map[int64]*types.InteractionStatus, error)
	ListLikers(ctx context.Context, kind types.TargetKind, targetID int64, limit int, cur string) (*types.LikersPage, error)
	ClearAllForUser(ctx context.Context, userID int64) error
}

type LikeService struct {
	Db          *gorm.DB
	LikeDAO     *dao.LikeDAO
	PostDAO     *dao.PostDAO
	ActivityDAO *dao.ActivityDAO
	UsersDAO    *dao.UsersDAO
	Cache       *cache.InteractionCache
}

const relationLiked = "liked"

// Toggle 点赞/取消点赞
// 全程不持锁：靠唯一键和事务保证正确性，两类并发冲突按幂等成功吸收
func (s *LikeService) Toggle(ctx context.Context, kind types.TargetKind, targetID, userID int64) (*types.InteractionStatus, error) {
	if !kind.Valid() || targetID == 0 || userID == 0 {
		return nil, ErrInvalidTarget
	}
	if err := s.ensureTarget(ctx, kind, targetID); err != nil {
		return nil, err
	}

	existing, err := s.LikeDAO.GetByUserTarget(ctx, kind, targetID, userID)
	if err != nil {
		return nil, err
	}

	var isLiked bool
	if existing == nil {
		isLiked, err = s.toggleOn(ctx, kind, targetID, userID)
	} else {
		isLiked, err = s.toggleOff(ctx, kind, targetID, existing.ID)
	}
	if err != nil {
		return nil, err
	}

	if s.Cache != nil {
		if isLiked {
			s.Cache.Add(ctx, relationLiked, kind, userID, targetID)
		} else {
			s.Cache.Remove(ctx, relationLiked, kind, userID, targetID)
		}
	}

	count, err := s.count(ctx, kind, targetID)
	if err != nil {
		return nil, err
	}
	return &types.InteractionStatus{IsLiked: isLiked, Count: count}, nil
}

// toggleOn 创建关系行，冗余计数在同一事务内 +1
// 并发下唯一键冲突说明另一个请求已经点过赞：事务回滚（计数没动过），按已点赞处理
func (s *LikeService) toggleOn(ctx context.Context, kind types.TargetKind, targetID, userID int64) (bool, error) {
	row := models.Like{ID: snowflake.GenID(), UserID: userID}
	if kind == types.TargetActivity {
		row.ActivityID = &targetID
	} else {
		row.PostID = &targetID
	}

	err := s.Db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.LikeDAO.CreateTx(tx, &row); err != nil {
			return err
		}
		if StrategyFor(kind) == StrategyRedundant {
			return s.ActivityDAO.IncrCounterTx(tx, dao.CounterLikes, targetID, 1)
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

// toggleOff 按行 ID 删除关系行，冗余计数在同一事务内 -1
// 行已被并发请求删除时事务回滚（计数没动过），按已取消处理
func (s *LikeService) toggleOff(ctx context.Context, kind types.TargetKind, targetID, rowID int64) (bool, error) {
	err := s.Db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.LikeDAO.DeleteByIDTx(tx, rowID); err != nil {
			return err
		}
		if StrategyFor(kind) == StrategyRedundant {
			return s.ActivityDAO.IncrCounterTx(tx, dao.CounterLikes, targetID, -1)
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

// Status 单个目标的点赞状态，userID 为 0 表示未登录
func (s *LikeService) Status(ctx context.Context, kind types.TargetKind, targetID, userID int64) (*types.InteractionStatus, error) {
	if !kind.Valid() || targetID == 0 {
		return nil, ErrInvalidTarget
	}

	isLiked := false
	if userID > 0 {
		// 缓存只信命中，未命中可能只是没预热，回查数据库
		if s.Cache != nil && s.Cache.HasPositive(ctx, relationLiked, kind, userID, targetID) {
			isLiked = true
		} else {
			row, err := s.LikeDAO.GetByUserTarget(ctx, kind, targetID, userID)
			if err != nil {
				return nil, err
			}
			isLiked = row != nil
		}
	}

	count, err := s.count(ctx, kind, targetID)
	if err != nil {
		return nil, err
	}
	return &types.InteractionStatus{IsLiked: isLiked, Count: count}, nil
}

// BatchStatus 批量取点赞状态
// 计数查询和"我点过哪些"查询各一次往返，并发执行
// 每个请求的 ID 都有结果，不存在或零互动的目标给 {false, 0}
func (s *LikeService) BatchStatus(ctx context.Context, kind types.TargetKind, targetIDs []int64, userID int64) (map[int64]*types.InteractionStatus, error) {
	if !kind.Valid() {
		return nil, ErrInvalidTarget
	}
	result := make(map[int64]*types.InteractionStatus, len(targetIDs))
	if len(targetIDs) == 0 {
		return result, nil
	}

	var (
		counts   map[int64]int64
		likedSet map[int64]bool
	)
	p := pool.New().WithContext(ctx).WithCancelOnError().WithFirstError()
	p.Go(func(ctx context.Context) error {
		var err error
		if StrategyFor(kind) == StrategyRedundant {
			counts, err = s.ActivityDAO.MapCounters(ctx, dao.CounterLikes, targetIDs)
		} else {
			counts, err = s.LikeDAO.GroupCountByTargets(ctx, kind, targetIDs)
		}
		return err
	})
	if userID > 0 {
		p.Go(func(ctx context.Context) error {
			var err error
			likedSet, err = s.LikeDAO.LikedSet(ctx, kind, targetIDs, userID)
			return err
		})
	}
	if err := p.Wait(); err != nil {
		return nil, err
	}

	for _, id := range targetIDs {
		result[id] = &types.InteractionStatus{
			IsLiked: likedSet[id],
			Count:   counts[id],
		}
	}
	return result, nil
}

// ListLikers 点赞用户列表（游标分页）
// 排序键 (created_at DESC, id DESC)，同一时刻的多条记录靠 id 破平，
// 翻页不重不漏；游标是上一页最后一行 ID 的不透明编码
func (s *LikeService) ListLikers(ctx context.Context, kind types.TargetKind, targetID int64, limit int, cur string) (*types.LikersPage, error) {
	if !kind.Valid() || targetID == 0 {
		return nil, ErrInvalidTarget
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	cursorID := int64(0)
	if cur != "" {
		id, err := cursor.Decode(cur)
		if err != nil {
			return nil, err
		}
		cursorID = id
	}

	// 多取一条探测是否还有下一页
	rows, err := s.LikeDAO.ListPageByTarget(ctx, kind, targetID, cursorID, limit+1)
	if err != nil {
		return nil, err
	}
	hasMore := len(rows) > limit
	if hasMore {
		rows = rows[:limit]
	}

	userIDs := make([]int64, 0, len(rows))
	for _, row := range rows {
		userIDs = append(userIDs, row.UserID)
	}
	users, err := s.UsersDAO.FindByIDs(ctx, userIDs)
	if err != nil {
		return nil, err
	}
	userMap := make(map[int64]*models.Users, len(users))
	for _, u := range users {
		userMap[u.ID] = u
	}

	items := make([]*types.LikerUser, 0, len(rows))
	for _, row := range rows {
		item := &types.LikerUser{UserID: row.UserID, LikedAt: row.CreatedAt}
		if u, ok := userMap[row.UserID]; ok {
			item.Nickname = u.Nickname
			item.Avatar = u.Avatar
		}
		items = append(items, item)
	}

	page := &types.LikersPage{Users: items, HasMore: hasMore}
	if hasMore {
		page.NextCursor = cursor.Encode(rows[len(rows)-1].ID)
	}
	return page, nil
}

// ClearAllForUser 账号注销时清掉该用户的全部点赞记录
// 不回补冗余计数：注销路径上目标内容的级联清理在本服务之外
func (s *LikeService) ClearAllForUser(ctx context.Context, userID int64) error {
	if userID == 0 {
		return ErrInvalidTarget
	}
	deleted, err := s.LikeDAO.DeleteAllByUser(ctx, userID)
	if err != nil {
		return err
	}
	if s.Cache != nil {
		s.Cache.ClearUser(ctx, relationLiked, userID)
	}
	log.L.Info("cleared user likes", zap.Int64("user_id", userID), zap.Int64("deleted", deleted))
	return nil
}

// ensureTarget 目标必须存在，否则 ErrTargetNotFound
func (s *LikeService) ensureTarget(ctx context.Context, kind types.TargetKind, targetID int64) error {
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

// count 重新取权威计数：聚合或者直读冗余字段
func (s *LikeService) count(ctx context.Context, kind types.TargetKind, targetID int64) (int64, error) {
	if StrategyFor(kind) == StrategyRedundant {
		return s.ActivityDAO.GetCounter(ctx, dao.CounterLikes, targetID)
	}
	return s.LikeDAO.CountByTarget(ctx, kind, targetID)
}
