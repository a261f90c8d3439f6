package service

import (
	"context"
	"errors"
	"strings"

	"github.com/AbegundeStephen/The-Interactive-Gallery/internal/common"
	"github.com/AbegundeStephen/The-Interactive-Gallery/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LikeStatus 点赞状态与总数，总数始终来自 COUNT 而非增量计数
type LikeStatus struct {
	Liked      bool  `json:"liked"`
	TotalLikes int64 `json:"totalLikes"`
}

// ToggleLike 点赞开关：已点赞则取消，未点赞则新增。
// 并发插入竞争由唯一索引裁决，唯一键冲突视为"已是目标状态"回读处理，不向上抛错
func (s *LikeService) ToggleLike(ctx context.Context, imageID string, userID uint, ipAddress string) (*LikeStatus, error) {
	// 先物化图片，保证外键成立
	if _, err := s.images.EnsureImage(ctx, imageID); err != nil {
		return nil, err
	}

	liked := false
	existing, err := s.likeStore.FindByImageAndUser(imageID, userID)
	switch {
	case err == nil && existing != nil:
		if _, err := s.likeStore.DeleteByImageAndUser(imageID, userID); err != nil {
			return nil, common.NewInternalError("取消点赞失败")
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		like := &model.Like{
			ID:        uuid.NewString(),
			ImageID:   imageID,
			UserID:    &userID,
			IPAddress: ipAddress,
		}
		if err := s.likeStore.Create(like); err != nil {
			if !isDuplicateKeyError(err) {
				return nil, common.NewInternalError("点赞失败")
			}
			// 并发竞争输掉的一方：另一请求已插入同一行，当前状态即为已点赞
		}
		liked = true
	default:
		return nil, common.NewInternalError("查询点赞状态失败")
	}

	s.cache.Invalidate(imageID)

	total, err := s.countLikes(imageID)
	if err != nil {
		return nil, err
	}

	return &LikeStatus{Liked: liked, TotalLikes: total}, nil
}

// GetLikesCount 图片点赞总数
func (s *LikeService) GetLikesCount(imageID string) (int64, error) {
	return s.countLikes(imageID)
}

// GetLikeStatus 查询点赞状态；匿名调用（userID 为 nil）永远返回未点赞
func (s *LikeService) GetLikeStatus(imageID string, userID *uint) (*LikeStatus, error) {
	total, err := s.countLikes(imageID)
	if err != nil {
		return nil, err
	}

	liked := false
	if userID != nil {
		liked, err = s.likeStore.HasUserLiked(imageID, *userID)
		if err != nil {
			return nil, common.NewInternalError("查询点赞状态失败")
		}
	}

	return &LikeStatus{Liked: liked, TotalLikes: total}, nil
}

// ListLikedImages 当前用户点赞过的图片，按点赞时间倒序
func (s *LikeService) ListLikedImages(userID uint, page, limit int) ([]model.ImageWithLikes, Pagination, error) {
	page, limit = normalizePagination(page, limit)
	images, total, err := s.imageStore.ListLikedByUser(userID, (page-1)*limit, limit)
	if err != nil {
		return nil, Pagination{}, common.NewInternalError("获取点赞图片失败")
	}
	return images, newPagination(page, limit, total), nil
}

func (s *LikeService) countLikes(imageID string) (int64, error) {
	if count, ok := s.cache.Get(imageID); ok {
		return count, nil
	}

	count, err := s.likeStore.CountByImage(imageID)
	if err != nil {
		return 0, common.NewInternalError("统计点赞数失败")
	}
	s.cache.Set(imageID, count)
	return count, nil
}

// isDuplicateKeyError 判断是否为唯一键冲突。
// gorm.ErrDuplicatedKey 依赖方言的错误翻译，SQLite/MySQL/Postgres 覆盖不一，
// 故同时做一次错误文本兜底
func isDuplicateKeyError(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique") || strings.Contains(msg, "duplicate")
}
