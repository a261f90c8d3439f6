package model

import (
	"time"

	"gorm.io/datatypes"
)

// Image 缓存来自 Unsplash 的图片元数据，主键即上游图片 ID，
// 同一张图重复抓取会命中同一行，实现幂等缓存
type Image struct {
	ID             string         `json:"id" gorm:"primaryKey;size:64"`
	Title          string         `json:"title" gorm:"not null"`
	Description    string         `json:"description"`
	Author         string         `json:"author" gorm:"not null"`
	AuthorUsername string         `json:"author_username" gorm:"not null"`
	URLRegular     string         `json:"url_regular" gorm:"not null"`
	URLThumb       string         `json:"url_thumb" gorm:"not null"`
	URLFull        string         `json:"url_full" gorm:"not null"`
	Tags           datatypes.JSON `json:"tags" gorm:"type:json"`
	LikesCount     int            `json:"likes_count" gorm:"default:0"`
	CreatedAt      time.Time      `json:"created_at" gorm:"index"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

// ImageWithLikes 聚合查询的读模型：本站点赞数来自 likes 表统计，
// 与上游带来的 likes_count 字段互不影响
type ImageWithLikes struct {
	Image
	TotalLikes int64      `json:"total_likes"`
	LikedAt    *time.Time `json:"liked_at,omitempty"`
}
