package dao

import (
	"Pulse/models"
	"Pulse/types"
	"context"

	"gorm.io/gorm"
)

type LikeDAO struct {
	Repo[models.Like]
}

func NewLikeDAO(db *gorm.DB) *LikeDAO {
	return &LikeDAO{Repo: NewRepo[models.Like](db)}
}

// targetColumn 目标类型对应的外键列
func targetColumn(kind types.TargetKind) string {
	if kind == types.TargetActivity {
		return "activity_id"
	}
	return "post_id"
}

// GetByUserTarget 查询指定用户对指定目标的点赞记录，未点赞返回 nil
func (d *LikeDAO) GetByUserTarget(ctx context.Context, kind types.TargetKind, targetID, userID int64) (*models.Like, error) {
	var item models.Like
	err := d.Db.WithContext(ctx).
		Where(targetColumn(kind)+" = ? AND user_id = ?", targetID, userID).
		Limit(1).Find(&item).Error
	if err != nil {
		return nil, err
	}
	if item.ID == 0 {
		return nil, nil
	}
	return &item, nil
}

// CreateTx 在事务内创建点赞记录
// 唯一键冲突由 TranslateError 统一转成 gorm.ErrDuplicatedKey
func (d *LikeDAO) CreateTx(tx *gorm.DB, like *models.Like) error {
	return tx.Create(like).Error
}

// DeleteByIDTx 在事务内按行 ID 删除
// 行已被并发请求删除时返回 gorm.ErrRecordNotFound，由上层决定是否容忍
func (d *LikeDAO) DeleteByIDTx(tx *gorm.DB, id int64) error {
	res := tx.Where("id = ?", id).Delete(&models.Like{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// CountByTarget 实时聚合单个目标的点赞数
func (d *LikeDAO) CountByTarget(ctx context.Context, kind types.TargetKind, targetID int64) (int64, error) {
	var count int64
	err := d.Db.WithContext(ctx).Model(&models.Like{}).
		Where(targetColumn(kind)+" = ?", targetID).
		Count(&count).Error
	return count, err
}

// GroupCountByTargets 一次查询聚合一批目标的点赞数，没有记录的目标不在结果里
func (d *LikeDAO) GroupCountByTargets(ctx context.Context, kind types.TargetKind, targetIDs []int64) (map[int64]int64, error) {
	result := make(map[int64]int64, len(targetIDs))
	if len(targetIDs) == 0 {
		return result, nil
	}

	col := targetColumn(kind)
	var rows []struct {
		TargetID int64 `gorm:"column:target_id"`
		Cnt      int64 `gorm:"column:cnt"`
	}
	err := d.Db.WithContext(ctx).Model(&models.Like{}).
		Select(col+" AS target_id, COUNT(*) AS cnt").
		Where(col+" IN ?", targetIDs).
		Group(col).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		result[row.TargetID] = row.Cnt
	}
	return result, nil
}

// LikedSet 批量检查一批目标里哪些被该用户点过赞
func (d *LikeDAO) LikedSet(ctx context.Context, kind types.TargetKind, targetIDs []int64, userID int64) (map[int64]bool, error) {
	result := make(map[int64]bool, len(targetIDs))
	if len(targetIDs) == 0 {
		return result, nil
	}

	col := targetColumn(kind)
	var likes []*models.Like
	err := d.Db.WithContext(ctx).
		Where(col+" IN ? AND user_id = ?", targetIDs, userID).
		Find(&likes).Error
	if err != nil {
		return nil, err
	}

	for _, like := range likes {
		if kind == types.TargetActivity && like.ActivityID != nil {
			result[*like.ActivityID] = true
		}
		if kind == types.TargetPost && like.PostID != nil {
			result[*like.PostID] = true
		}
	}
	return result, nil
}

// ListPageByTarget 按 (created_at DESC, id DESC) 取一页点赞记录
// 游标是上一页最后一行的行 ID，从它之后继续取；游标行已被删除时退化为
// 按 id 定位（id 为雪花 ID，随时间递增，位置语义不变），绝不从头重来
func (d *LikeDAO) ListPageByTarget(ctx context.Context, kind types.TargetKind, targetID, cursorID int64, limit int) ([]*models.Like, error) {
	query := d.Db.WithContext(ctx).
		Where(targetColumn(kind)+" = ?", targetID)

	if cursorID > 0 {
		var anchor models.Like
		err := d.Db.WithContext(ctx).Where("id = ?", cursorID).Limit(1).Find(&anchor).Error
		if err != nil {
			return nil, err
		}
		if anchor.ID != 0 {
			// 复合排序键上严格小于游标行，created_at 相同靠 id 破平
			query = query.Where("created_at < ? OR (created_at = ? AND id < ?)",
				anchor.CreatedAt, anchor.CreatedAt, anchor.ID)
		} else {
			query = query.Where("id < ?", cursorID)
		}
	}

	var likes []*models.Like
	err := query.
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&likes).Error
	return likes, err
}

// DeleteAllByUser 删除该用户的全部点赞记录（两种目标类型一起），用于账号注销
func (d *LikeDAO) DeleteAllByUser(ctx context.Context, userID int64) (int64, error) {
	res := d.Db.WithContext(ctx).Where("user_id = ?", userID).Delete(&models.Like{})
	return res.RowsAffected, res.Error
}
