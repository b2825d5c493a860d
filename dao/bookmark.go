package dao

import (
	"Pulse/models"
	"Pulse/types"
	"context"

	"gorm.io/gorm"
)

type BookmarkDAO struct {
	Repo[models.Bookmark]
}

func NewBookmarkDAO(db *gorm.DB) *BookmarkDAO {
	return &BookmarkDAO{Repo: NewRepo[models.Bookmark](db)}
}

// GetByUserTarget 查询指定用户对指定目标的收藏记录，未收藏返回 nil
func (d *BookmarkDAO) GetByUserTarget(ctx context.Context, kind types.TargetKind, targetID, userID int64) (*models.Bookmark, error) {
	var item models.Bookmark
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

// CreateTx 在事务内创建收藏记录，唯一键冲突转成 gorm.ErrDuplicatedKey
func (d *BookmarkDAO) CreateTx(tx *gorm.DB, bookmark *models.Bookmark) error {
	return tx.Create(bookmark).Error
}

// DeleteByIDTx 在事务内按行 ID 删除，行不存在返回 gorm.ErrRecordNotFound
func (d *BookmarkDAO) DeleteByIDTx(tx *gorm.DB, id int64) error {
	res := tx.Where("id = ?", id).Delete(&models.Bookmark{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// CountByTarget 实时聚合单个目标的收藏数
func (d *BookmarkDAO) CountByTarget(ctx context.Context, kind types.TargetKind, targetID int64) (int64, error) {
	var count int64
	err := d.Db.WithContext(ctx).Model(&models.Bookmark{}).
		Where(targetColumn(kind)+" = ?", targetID).
		Count(&count).Error
	return count, err
}

// GroupCountByTargets 一次查询聚合一批目标的收藏数
func (d *BookmarkDAO) GroupCountByTargets(ctx context.Context, kind types.TargetKind, targetIDs []int64) (map[int64]int64, error) {
	result := make(map[int64]int64, len(targetIDs))
	if len(targetIDs) == 0 {
		return result, nil
	}

	col := targetColumn(kind)
	var rows []struct {
		TargetID int64 `gorm:"column:target_id"`
		Cnt      int64 `gorm:"column:cnt"`
	}
	err := d.Db.WithContext(ctx).Model(&models.Bookmark{}).
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

// MarkedSet 批量检查一批目标里哪些被该用户收藏过
func (d *BookmarkDAO) MarkedSet(ctx context.Context, kind types.TargetKind, targetIDs []int64, userID int64) (map[int64]bool, error) {
	result := make(map[int64]bool, len(targetIDs))
	if len(targetIDs) == 0 {
		return result, nil
	}

	col := targetColumn(kind)
	var bookmarks []*models.Bookmark
	err := d.Db.WithContext(ctx).
		Where(col+" IN ? AND user_id = ?", targetIDs, userID).
		Find(&bookmarks).Error
	if err != nil {
		return nil, err
	}

	for _, b := range bookmarks {
		if kind == types.TargetActivity && b.ActivityID != nil {
			result[*b.ActivityID] = true
		}
		if kind == types.TargetPost && b.PostID != nil {
			result[*b.PostID] = true
		}
	}
	return result, nil
}

// DeleteAllByUser 删除该用户的全部收藏记录，用于账号注销
func (d *BookmarkDAO) DeleteAllByUser(ctx context.Context, userID int64) (int64, error) {
	res := d.Db.WithContext(ctx).Where("user_id = ?", userID).Delete(&models.Bookmark{})
	return res.RowsAffected, res.Error
}
