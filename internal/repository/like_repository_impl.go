package repository

import (
	"github.com/AbegundeStephen/The-Interactive-Gallery/internal/model"

	"gorm.io/gorm"
)

type LikeRepository struct {
	db *gorm.DB
}

func (r *LikeRepository) FindByImageAndUser(imageID string, userID uint) (*model.Like, error) {
	var like model.Like
	if err := r.db.Where("image_id = ? AND user_id = ?", imageID, userID).First(&like).Error; err != nil {
		return nil, err
	}
	return &like, nil
}

func (r *LikeRepository) Create(like *model.Like) error {
	return r.db.Create(like).Error
}

func (r *LikeRepository) DeleteByImageAndUser(imageID string, userID uint) (int64, error) {
	res := r.db.Where("image_id = ? AND user_id = ?", imageID, userID).Delete(&model.Like{})
	return res.RowsAffected, res.Error
}

func (r *LikeRepository) CountByImage(imageID string) (int64, error) {
	var count int64
	if err := r.db.Model(&model.Like{}).Where("image_id = ?", imageID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *LikeRepository) HasUserLiked(imageID string, userID uint) (bool, error) {
	var count int64
	if err := r.db.Model(&model.Like{}).Where("image_id = ? AND user_id = ?", imageID, userID).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
