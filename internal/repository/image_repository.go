package repository

import "github.com/AbegundeStephen/The-Interactive-Gallery/internal/model"

type ImageStore interface {
	FindByID(id string) (*model.Image, error)
	ListRecent(offset, limit int) ([]model.Image, error)
	// InsertMissing 批量写入，已存在的主键自动跳过，返回实际新增条数
	InsertMissing(images []model.Image) (int, error)
	// UpsertAll 批量写入，已存在的主键按上游数据整行更新
	UpsertAll(images []model.Image) error
	ListMostLiked(offset, limit int) ([]model.ImageWithLikes, int64, error)
	ListLikedByUser(userID uint, offset, limit int) ([]model.ImageWithLikes, int64, error)
	CountAll() (int64, error)
}
