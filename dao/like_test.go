package dao

import (
	"Pulse/models"
	"Pulse/types"
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:dao_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&models.Like{}); err != nil {
		t.Fatalf("auto migrate: %v", err)
	}
	return db
}

// 同一用户对同一目标重复创建触发唯一键冲突，统一转成 gorm.ErrDuplicatedKey
func TestLikeDAO_DuplicateKeyTranslated(t *testing.T) {
	db := newTestDB(t)
	d := NewLikeDAO(db)
	postID := int64(1)

	first := &models.Like{ID: 100, UserID: 7, PostID: &postID}
	if err := d.CreateTx(db, first); err != nil {
		t.Fatalf("first create: %v", err)
	}

	second := &models.Like{ID: 101, UserID: 7, PostID: &postID}
	err := d.CreateTx(db, second)
	if !errors.Is(err, gorm.ErrDuplicatedKey) {
		t.Fatalf("err = %v, want gorm.ErrDuplicatedKey", err)
	}
}

// 不同目标类型之间唯一键互不干扰：同一用户可以同时赞 post 和 activity
func TestLikeDAO_UniquePerTargetColumn(t *testing.T) {
	db := newTestDB(t)
	d := NewLikeDAO(db)
	postID := int64(1)
	activityID := int64(1)

	if err := d.CreateTx(db, &models.Like{ID: 100, UserID: 7, PostID: &postID}); err != nil {
		t.Fatalf("post like: %v", err)
	}
	if err := d.CreateTx(db, &models.Like{ID: 101, UserID: 7, ActivityID: &activityID}); err != nil {
		t.Fatalf("activity like: %v", err)
	}
	// 不同用户同一目标也没问题
	if err := d.CreateTx(db, &models.Like{ID: 102, UserID: 8, PostID: &postID}); err != nil {
		t.Fatalf("other user like: %v", err)
	}
}

func TestLikeDAO_DeleteMissingRow(t *testing.T) {
	db := newTestDB(t)
	d := NewLikeDAO(db)

	err := d.DeleteByIDTx(db, 424242)
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("err = %v, want gorm.ErrRecordNotFound", err)
	}
}

func TestLikeDAO_GroupCountByTargets(t *testing.T) {
	db := newTestDB(t)
	d := NewLikeDAO(db)
	ctx := context.Background()

	p1, p2 := int64(1), int64(2)
	for i := int64(0); i < 3; i++ {
		if err := d.CreateTx(db, &models.Like{ID: 100 + i, UserID: 10 + i, PostID: &p1}); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}
	if err := d.CreateTx(db, &models.Like{ID: 200, UserID: 10, PostID: &p2}); err != nil {
		t.Fatalf("seed: %v", err)
	}

	counts, err := d.GroupCountByTargets(ctx, types.TargetPost, []int64{1, 2, 3})
	if err != nil {
		t.Fatalf("group count: %v", err)
	}
	if counts[1] != 3 || counts[2] != 1 {
		t.Fatalf("counts = %v, want {1:3, 2:1}", counts)
	}
	// 没有记录的目标不在结果里，调用方按 0 处理
	if _, ok := counts[3]; ok {
		t.Fatal("p3 should be absent")
	}
}

// 游标行存在时按复合键 (created_at, id) 定位，不靠时间戳比较去重
func TestLikeDAO_ListPageByTarget(t *testing.T) {
	db := newTestDB(t)
	d := NewLikeDAO(db)
	ctx := context.Background()
	postID := int64(1)

	ts := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	earlier := ts.Add(-time.Minute)
	rows := []*models.Like{
		{ID: 101, UserID: 1, PostID: &postID, CreatedAt: earlier},
		{ID: 102, UserID: 2, PostID: &postID, CreatedAt: ts},
		{ID: 103, UserID: 3, PostID: &postID, CreatedAt: ts},
		{ID: 104, UserID: 4, PostID: &postID, CreatedAt: ts},
	}
	for _, row := range rows {
		if err := db.Create(row).Error; err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	// 第一页：时间相同靠 id 降序破平
	page, err := d.ListPageByTarget(ctx, types.TargetPost, 1, 0, 2)
	if err != nil {
		t.Fatalf("page1: %v", err)
	}
	if len(page) != 2 || page[0].ID != 104 || page[1].ID != 103 {
		t.Fatalf("page1 ids = %v, want [104, 103]", pageIDs(page))
	}

	// 从 103 之后继续：先取同时间戳里 id 更小的 102，再跨到更早的 101
	page, err = d.ListPageByTarget(ctx, types.TargetPost, 1, 103, 10)
	if err != nil {
		t.Fatalf("page2: %v", err)
	}
	if len(page) != 2 || page[0].ID != 102 || page[1].ID != 101 {
		t.Fatalf("page2 ids = %v, want [102, 101]", pageIDs(page))
	}
}

func pageIDs(rows []*models.Like) []int64 {
	ids := make([]int64, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.ID)
	}
	return ids
}
