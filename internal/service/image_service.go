package service

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"github.com/AbegundeStephen/The-Interactive-Gallery/internal/common"
	"github.com/AbegundeStephen/The-Interactive-Gallery/internal/model"
	"github.com/AbegundeStephen/The-Interactive-Gallery/internal/upstream"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ListImages 图片列表（缓存直读，未命中回源）。
//
// 带关键字时绕过缓存直接走上游搜索接口，结果不落库；
// 无关键字时优先读缓存，缓存为空才回源抓取并整批写入。
// 缓存写入是尽力而为的：写失败只记日志，不影响已取到的数据返回
func (s *ImageService) ListImages(ctx context.Context, page, limit int, query string) ([]model.Image, error) {
	page, limit = normalizePagination(page, limit)

	if query != "" {
		photos, err := s.provider.SearchPhotos(ctx, query, page, limit)
		if err != nil {
			return nil, common.NewUpstreamError("搜索图片失败，请稍后重试")
		}
		return transformPhotos(photos), nil
	}

	if !s.cacheRefresh {
		cached, err := s.imageStore.ListRecent((page-1)*limit, limit)
		if err != nil {
			return nil, common.NewInternalError("读取图片缓存失败")
		}
		if len(cached) > 0 {
			return cached, nil
		}
	}

	photos, err := s.provider.ListPhotos(ctx, page, limit)
	if err != nil {
		return nil, common.NewUpstreamError("获取图片失败，请稍后重试")
	}
	images := transformPhotos(photos)

	// 写透缓存：已存在的 ID 跳过（刷新模式下整行更新）
	if s.cacheRefresh {
		if err := s.imageStore.UpsertAll(images); err != nil {
			log.Printf("⚠️ 图片缓存刷新失败: %v", err)
		}
	} else {
		if _, err := s.imageStore.InsertMissing(images); err != nil {
			log.Printf("⚠️ 图片缓存写入失败: %v", err)
		}
	}

	return images, nil
}

// GetImage 按 ID 获取图片：缓存命中直接返回，未命中回源抓取并落库。
// 上游也没有该 ID 时返回 not_found
func (s *ImageService) GetImage(ctx context.Context, id string) (*model.Image, error) {
	cached, err := s.imageStore.FindByID(id)
	if err == nil {
		return cached, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, common.NewInternalError("读取图片缓存失败")
	}

	photo, err := s.provider.GetPhoto(ctx, id)
	if err != nil {
		if errors.Is(err, upstream.ErrPhotoNotFound) {
			return nil, common.NewNotFoundError("图片不存在")
		}
		return nil, common.NewUpstreamError("获取图片失败，请稍后重试")
	}

	image := transformPhoto(*photo)
	if _, err := s.imageStore.InsertMissing([]model.Image{image}); err != nil {
		log.Printf("⚠️ 图片缓存写入失败: %v", err)
	}

	return &image, nil
}

// EnsureImage 确保图片已入库（评论、点赞前的前置物化）。
// 本地已有直接返回，否则按 ID 回源抓取
func (s *ImageService) EnsureImage(ctx context.Context, id string) (*model.Image, error) {
	return s.GetImage(ctx, id)
}

// ListMostLiked 按本站点赞数倒序的图片榜单
func (s *ImageService) ListMostLiked(page, limit int) ([]model.ImageWithLikes, Pagination, error) {
	page, limit = normalizePagination(page, limit)
	images, total, err := s.imageStore.ListMostLiked((page-1)*limit, limit)
	if err != nil {
		return nil, Pagination{}, common.NewInternalError("获取热门图片失败")
	}
	return images, newPagination(page, limit, total), nil
}

// transformPhoto 将上游原始结构映射为本地缓存行。
// 标题回退链：description → alt_description → "Untitled"
func transformPhoto(p upstream.Photo) model.Image {
	title := p.Description
	if title == "" {
		title = p.AltDescription
	}
	if title == "" {
		title = "Untitled"
	}

	tags := make([]string, 0, len(p.Tags))
	for _, t := range p.Tags {
		if t.Title != "" {
			tags = append(tags, t.Title)
		}
	}
	tagsJSON, err := json.Marshal(tags)
	if err != nil {
		tagsJSON = []byte("[]")
	}

	createdAt := time.Now()
	if p.CreatedAt != "" {
		if parsed, err := time.Parse(time.RFC3339, p.CreatedAt); err == nil {
			createdAt = parsed
		}
	}

	return model.Image{
		ID:             p.ID,
		Title:          title,
		Description:    p.Description,
		Author:         p.User.Name,
		AuthorUsername: p.User.Username,
		URLRegular:     p.URLs.Regular,
		URLThumb:       p.URLs.Thumb,
		URLFull:        p.URLs.Full,
		Tags:           datatypes.JSON(tagsJSON),
		LikesCount:     p.Likes,
		CreatedAt:      createdAt,
		UpdatedAt:      time.Now(),
	}
}

func transformPhotos(photos []upstream.Photo) []model.Image {
	images := make([]model.Image, 0, len(photos))
	for _, p := range photos {
		images = append(images, transformPhoto(p))
	}
	return images
}
