package repository

import (
	"github.com/AbegundeStephen/The-Interactive-Gallery/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ImageRepository struct {
	db *gorm.DB
}

func (r *ImageRepository) FindByID(id string) (*model.Image, error) {
	var image model.Image
	if err := r.db.First(&image, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &image, nil
}

func (r *ImageRepository) ListRecent(offset, limit int) ([]model.Image, error) {
	var images []model.Image
	if err := r.db.Order("created_at desc").Offset(offset).Limit(limit).Find(&images).Error; err != nil {
		return nil, err
	}
	return images, nil
}

func (r *ImageRepository) InsertMissing(images []model.Image) (int, error) {
	if len(images) == 0 {
		return 0, nil
	}
	// ON CONFLICT DO NOTHING，重复抓取同一批图片不会产生唯一键冲突
	res := r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&images)
	if res.Error != nil {
		return 0, res.Error
	}
	return int(res.RowsAffected), nil
}

func (r *ImageRepository) UpsertAll(images []model.Image) error {
	if len(images) == 0 {
		return nil
	}
	return r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"title", "description", "author", "author_username",
			"url_regular", "url_thumb", "url_full", "tags", "likes_count", "updated_at",
		}),
	}).Create(&images).Error
}

func (r *ImageRepository) ListMostLiked(offset, limit int) ([]model.ImageWithLikes, int64, error) {
	var total int64
	if err := r.db.Model(&model.Image{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var images []model.ImageWithLikes
	err := r.db.Model(&model.Image{}).
		Select("images.*, COUNT(likes.id) AS total_likes").
		Joins("LEFT JOIN likes ON likes.image_id = images.id").
		Group("images.id").
		Order("total_likes desc").
		Offset(offset).Limit(limit).
		Scan(&images).Error
	if err != nil {
		return nil, 0, err
	}
	return images, total, nil
}

func (r *ImageRepository) ListLikedByUser(userID uint, offset, limit int) ([]model.ImageWithLikes, int64, error) {
	var total int64
	if err := r.db.Model(&model.Like{}).Where("user_id = ?", userID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var images []model.ImageWithLikes
	err := r.db.Model(&model.Like{}).
		Select("images.*, likes.created_at AS liked_at").
		Joins("JOIN images ON images.id = likes.image_id").
		Where("likes.user_id = ?", userID).
		Order("likes.created_at desc").
		Offset(offset).Limit(limit).
		Scan(&images).Error
	if err != nil {
		return nil, 0, err
	}
	return images, total, nil
}

func (r *ImageRepository) CountAll() (int64, error) {
	var count int64
	if err := r.db.Model(&model.Image{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
