package dao

import (
	"Pulse/models"
	"context"
	"fmt"

	"gorm.io/gorm"
)

type ActivityDAO struct {
	Repo[models.Activity]
}

func NewActivityDAO(db *gorm.DB) *ActivityDAO {
	return &ActivityDAO{Repo: NewRepo[models.Activity](db)}
}

const (
	CounterLikes     = "likes_count"
	CounterBookmarks = "bookmarks_count"
)

// IncrCounterTx 在事务内增减冗余计数，下限钳到 0
// column 只能是本文件里声明的计数列
func (d *ActivityDAO) IncrCounterTx(tx *gorm.DB, column string, activityID, delta int64) error {
	if column != CounterLikes && column != CounterBookmarks {
		return fmt.Errorf("unknown counter column: %s", column)
	}
	expr := fmt.Sprintf("CASE WHEN %s + ? < 0 THEN 0 ELSE %s + ? END", column, column)
	return tx.Model(&models.Activity{}).
		Where("id = ?", activityID).
		UpdateColumn(column, gorm.Expr(expr, delta, delta)).Error
}

// GetCounter 直接读冗余计数字段
func (d *ActivityDAO) GetCounter(ctx context.Context, column string, activityID int64) (int64, error) {
	if column != CounterLikes && column != CounterBookmarks {
		return 0, fmt.Errorf("unknown counter column: %s", column)
	}
	var count int64
	err := d.Db.WithContext(ctx).Model(&models.Activity{}).
		Select(column).
		Where("id = ?", activityID).
		Scan(&count).Error
	return count, err
}

// MapCounters 一次取一批动态的冗余计数，不存在的 ID 不在结果里
func (d *ActivityDAO) MapCounters(ctx context.Context, column string, activityIDs []int64) (map[int64]int64, error) {
	result := make(map[int64]int64, len(activityIDs))
	if len(activityIDs) == 0 {
		return result, nil
	}
	if column != CounterLikes && column != CounterBookmarks {
		return nil, fmt.Errorf("unknown counter column: %s", column)
	}

	var rows []struct {
		ID  int64 `gorm:"column:id"`
		Cnt int64 `gorm:"column:cnt"`
	}
	err := d.Db.WithContext(ctx).Model(&models.Activity{}).
		Select(fmt.Sprintf("id, %s AS cnt", column)).
		Where("id IN ?", activityIDs).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		result[row.ID] = row.Cnt
	}
	return result, nil
}

// Feed 按发布时间倒序取动态流
func (d *ActivityDAO) Feed(ctx context.Context, offset, limit int) ([]*models.Activity, error) {
	var activities []*models.Activity
	err := d.Db.WithContext(ctx).
		Where("status = 1").
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&activities).Error
	return activities, err
}
