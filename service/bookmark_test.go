package service

import (
	"Pulse/dao"
	"Pulse/models"
	"Pulse/pkg/snowflake"
	"Pulse/types"
	"context"
	"errors"
	"testing"

	"gorm.io/gorm"
)

func newBookmarkService(db *gorm.DB) *BookmarkService {
	return &BookmarkService{
		Db:          db,
		BookmarkDAO: dao.NewBookmarkDAO(db),
		PostDAO:     dao.NewPostDAO(db),
		ActivityDAO: dao.NewActivityDAO(db),
	}
}

func activityBookmarksCount(t *testing.T, db *gorm.DB, id int64) int64 {
	t.Helper()
	var activity models.Activity
	if err := db.First(&activity, id).Error; err != nil {
		t.Fatalf("load activity: %v", err)
	}
	return activity.BookmarksCount
}

// 收藏和点赞互不串表、互不串计数字段
func TestBookmarkToggle_Activity(t *testing.T) {
	db := newTestDB(t)
	s := newBookmarkService(db)
	ctx := context.Background()
	seedActivity(t, db, 1, 5)

	status, err := s.Toggle(ctx, types.TargetActivity, 1, 7)
	if err != nil {
		t.Fatalf("toggle on: %v", err)
	}
	if !status.IsLiked || status.Count != 1 {
		t.Fatalf("got {%v, %d}, want {true, 1}", status.IsLiked, status.Count)
	}
	if got := activityBookmarksCount(t, db, 1); got != 1 {
		t.Fatalf("bookmarks_count = %d, want 1", got)
	}
	// 点赞计数不受收藏影响
	if got := activityLikesCount(t, db, 1); got != 5 {
		t.Fatalf("likes_count = %d, want 5", got)
	}

	status, err = s.Toggle(ctx, types.TargetActivity, 1, 7)
	if err != nil {
		t.Fatalf("toggle off: %v", err)
	}
	if status.IsLiked || status.Count != 0 {
		t.Fatalf("got {%v, %d}, want {false, 0}", status.IsLiked, status.Count)
	}
	if got := activityBookmarksCount(t, db, 1); got != 0 {
		t.Fatalf("bookmarks_count = %d, want 0", got)
	}
}

func TestBookmarkToggle_PostComputed(t *testing.T) {
	db := newTestDB(t)
	s := newBookmarkService(db)
	ctx := context.Background()
	seedPost(t, db, 1)

	status, err := s.Toggle(ctx, types.TargetPost, 1, 7)
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if !status.IsLiked || status.Count != 1 {
		t.Fatalf("got {%v, %d}, want {true, 1}", status.IsLiked, status.Count)
	}

	var rows int64
	if err := db.Model(&models.Bookmark{}).Count(&rows).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if rows != 1 {
		t.Fatalf("bookmark rows = %d, want 1", rows)
	}
}

func TestBookmarkToggle_TargetNotFound(t *testing.T) {
	db := newTestDB(t)
	s := newBookmarkService(db)

	if _, err := s.Toggle(context.Background(), types.TargetActivity, 404, 1); !errors.Is(err, ErrTargetNotFound) {
		t.Fatalf("err = %v, want ErrTargetNotFound", err)
	}
}

// 唯一键冲突吸收为已收藏，计数不重复增加
func TestBookmarkToggleOn_DuplicateAbsorbed(t *testing.T) {
	db := newTestDB(t)
	s := newBookmarkService(db)
	ctx := context.Background()
	seedActivity(t, db, 1, 0)
	activityID := int64(1)
	row := &models.Bookmark{ID: snowflake.GenID(), UserID: 7, ActivityID: &activityID}
	if err := db.Create(row).Error; err != nil {
		t.Fatalf("seed bookmark: %v", err)
	}
	if err := db.Model(&models.Activity{}).Where("id = ?", 1).
		UpdateColumn("bookmarks_count", 1).Error; err != nil {
		t.Fatalf("set counter: %v", err)
	}

	marked, err := s.toggleOn(ctx, types.TargetActivity, 1, 7)
	if err != nil {
		t.Fatalf("toggleOn: %v", err)
	}
	if !marked {
		t.Fatal("marked = false, want true")
	}
	if got := activityBookmarksCount(t, db, 1); got != 1 {
		t.Fatalf("bookmarks_count = %d, want 1 (no double increment)", got)
	}
}

func TestBookmarkBatchStatus(t *testing.T) {
	db := newTestDB(t)
	s := newBookmarkService(db)
	ctx := context.Background()
	seedActivity(t, db, 1, 0)
	seedActivity(t, db, 2, 0)

	if _, err := s.Toggle(ctx, types.TargetActivity, 1, 7); err != nil {
		t.Fatalf("toggle: %v", err)
	}

	result, err := s.BatchStatus(ctx, types.TargetActivity, []int64{1, 2}, 7)
	if err != nil {
		t.Fatalf("batch status: %v", err)
	}
	if st := result[1]; !st.IsLiked || st.Count != 1 {
		t.Fatalf("a1 = {%v, %d}, want {true, 1}", st.IsLiked, st.Count)
	}
	if st := result[2]; st.IsLiked || st.Count != 0 {
		t.Fatalf("a2 = {%v, %d}, want {false, 0}", st.IsLiked, st.Count)
	}
}

func TestBookmarkClearAllForUser(t *testing.T) {
	db := newTestDB(t)
	s := newBookmarkService(db)
	ctx := context.Background()
	seedPost(t, db, 1)
	seedActivity(t, db, 2, 0)

	if _, err := s.Toggle(ctx, types.TargetPost, 1, 7); err != nil {
		t.Fatalf("toggle post: %v", err)
	}
	if _, err := s.Toggle(ctx, types.TargetActivity, 2, 7); err != nil {
		t.Fatalf("toggle activity: %v", err)
	}

	if err := s.ClearAllForUser(ctx, 7); err != nil {
		t.Fatalf("clear: %v", err)
	}

	var rows int64
	if err := db.Model(&models.Bookmark{}).Where("user_id = ?", 7).Count(&rows).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if rows != 0 {
		t.Fatalf("user 7 still has %d bookmark rows", rows)
	}
}
