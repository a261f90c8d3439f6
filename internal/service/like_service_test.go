package service

import (
	"context"
	"errors"
	"testing"

	"github.com/AbegundeStephen/The-Interactive-Gallery/internal/common"
	"github.com/AbegundeStephen/The-Interactive-Gallery/internal/model"

	"gorm.io/gorm"
)

// 测试内容：点赞开关对称性——首次点赞、再次取消，计数随之增减
func TestToggleLikeSymmetry(t *testing.T) {
	env := setupEnv(t, false, "pic-1")
	ctx := context.Background()
	userID := registerUser(t, env, "alice", "alice@example.com")

	status, err := env.likes.ToggleLike(ctx, "pic-1", userID, "127.0.0.1")
	if err != nil {
		t.Fatalf("首次点赞失败: %v", err)
	}
	if !status.Liked {
		t.Fatal("期望首次切换后为已点赞, 实际为未点赞")
	}
	if status.TotalLikes != 1 {
		t.Fatalf("期望点赞总数为 1, 实际为 %d", status.TotalLikes)
	}

	status, err = env.likes.ToggleLike(ctx, "pic-1", userID, "127.0.0.1")
	if err != nil {
		t.Fatalf("取消点赞失败: %v", err)
	}
	if status.Liked {
		t.Fatal("期望再次切换后为未点赞, 实际为已点赞")
	}
	if status.TotalLikes != 0 {
		t.Fatalf("期望点赞总数回到 0, 实际为 %d", status.TotalLikes)
	}
}

// 测试内容：点赞未缓存的图片时先回源物化，保证外键成立
func TestToggleLikeMaterializesImage(t *testing.T) {
	env := setupEnv(t, false, "pic-1")
	ctx := context.Background()
	userID := registerUser(t, env, "alice", "alice@example.com")

	if _, err := env.likes.ToggleLike(ctx, "pic-1", userID, "127.0.0.1"); err != nil {
		t.Fatalf("点赞失败: %v", err)
	}

	image, err := env.repos.Image.FindByID("pic-1")
	if err != nil {
		t.Fatalf("期望点赞后图片已落库, 实际查询失败: %v", err)
	}
	if image.ID != "pic-1" {
		t.Fatalf("期望落库图片 ID 为 pic-1, 实际为 %s", image.ID)
	}
	if env.fake.GetCalls() != 1 {
		t.Fatalf("期望为物化回源 1 次, 实际为 %d", env.fake.GetCalls())
	}
}

// 测试内容：点赞上游不存在的图片返回 not_found，不产生点赞记录
func TestToggleLikeUnknownImage(t *testing.T) {
	env := setupEnv(t, false)
	ctx := context.Background()
	userID := registerUser(t, env, "alice", "alice@example.com")

	_, err := env.likes.ToggleLike(ctx, "missing", userID, "127.0.0.1")
	if err == nil {
		t.Fatal("期望返回错误, 实际为 nil")
	}
	serviceErr, ok := common.AsServiceError(err)
	if !ok || serviceErr.Code != common.ErrorCodeNotFound {
		t.Fatalf("期望错误码为 not_found, 实际为 %v", err)
	}
}

// 测试内容：匿名查询点赞状态永远返回未点赞，但计数照常返回
func TestGetLikeStatusAnonymous(t *testing.T) {
	env := setupEnv(t, false, "pic-1")
	ctx := context.Background()
	userID := registerUser(t, env, "alice", "alice@example.com")
	mustToggle(t, env, ctx, "pic-1", userID)

	status, err := env.likes.GetLikeStatus("pic-1", nil)
	if err != nil {
		t.Fatalf("匿名查询点赞状态失败: %v", err)
	}
	if status.Liked {
		t.Fatal("期望匿名查询为未点赞, 实际为已点赞")
	}
	if status.TotalLikes != 1 {
		t.Fatalf("期望点赞总数为 1, 实际为 %d", status.TotalLikes)
	}

	status, err = env.likes.GetLikeStatus("pic-1", &userID)
	if err != nil {
		t.Fatalf("登录查询点赞状态失败: %v", err)
	}
	if !status.Liked {
		t.Fatal("期望登录用户查询为已点赞, 实际为未点赞")
	}
}

// 测试内容：用户点赞列表按点赞时间倒序，取消后不再出现
func TestListLikedImages(t *testing.T) {
	env := setupEnv(t, false, "pic-1", "pic-2")
	ctx := context.Background()
	userID := registerUser(t, env, "alice", "alice@example.com")

	mustToggle(t, env, ctx, "pic-1", userID)
	mustToggle(t, env, ctx, "pic-2", userID)

	images, pagination, err := env.likes.ListLikedImages(userID, 1, 10)
	if err != nil {
		t.Fatalf("获取点赞列表失败: %v", err)
	}
	if len(images) != 2 {
		t.Fatalf("期望点赞列表包含 2 张图片, 实际为 %d", len(images))
	}
	if pagination.Total != 2 {
		t.Fatalf("期望点赞总数为 2, 实际为 %d", pagination.Total)
	}

	// 取消 pic-1 后列表只剩 pic-2
	mustToggle(t, env, ctx, "pic-1", userID)
	images, _, err = env.likes.ListLikedImages(userID, 1, 10)
	if err != nil {
		t.Fatalf("再次获取点赞列表失败: %v", err)
	}
	if len(images) != 1 || images[0].ID != "pic-2" {
		t.Fatalf("期望列表只剩 pic-2, 实际为 %v", images)
	}
}

// duplicateLikeStore 模拟并发竞争：查不到记录但插入时撞唯一键
type duplicateLikeStore struct {
	count int64
}

func (s *duplicateLikeStore) FindByImageAndUser(imageID string, userID uint) (*model.Like, error) {
	return nil, gorm.ErrRecordNotFound
}

func (s *duplicateLikeStore) Create(like *model.Like) error {
	return errors.New("UNIQUE constraint failed: likes.image_id, likes.user_id, likes.ip_address")
}

func (s *duplicateLikeStore) DeleteByImageAndUser(imageID string, userID uint) (int64, error) {
	return 0, nil
}

func (s *duplicateLikeStore) CountByImage(imageID string) (int64, error) {
	return s.count, nil
}

func (s *duplicateLikeStore) HasUserLiked(imageID string, userID uint) (bool, error) {
	return true, nil
}

// 测试内容：并发插入撞唯一键时视为已点赞，不向调用方抛错
func TestToggleLikeDuplicateKeyReconciled(t *testing.T) {
	env := setupEnv(t, false, "pic-1")
	stub := &duplicateLikeStore{count: 1}
	likes := NewLikeService(stub, env.repos.Image, env.images, NewLikeCountCache(nil, "test"))

	status, err := likes.ToggleLike(context.Background(), "pic-1", 1, "127.0.0.1")
	if err != nil {
		t.Fatalf("期望唯一键冲突被吞掉, 实际返回错误: %v", err)
	}
	if !status.Liked {
		t.Fatal("期望冲突后状态为已点赞, 实际为未点赞")
	}
	if status.TotalLikes != 1 {
		t.Fatalf("期望点赞总数为 1, 实际为 %d", status.TotalLikes)
	}
}
