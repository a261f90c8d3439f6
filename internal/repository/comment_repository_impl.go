package repository

import (
	"github.com/AbegundeStephen/The-Interactive-Gallery/internal/model"

	"gorm.io/gorm"
)

type CommentRepository struct {
	db *gorm.DB
}

func (r *CommentRepository) Create(comment *model.Comment) error {
	return r.db.Create(comment).Error
}

func (r *CommentRepository) FindByID(id string) (*model.CommentWithAuthor, error) {
	var comment model.CommentWithAuthor
	err := r.db.Model(&model.Comment{}).
		Select("comments.*, users.username, users.email").
		Joins("LEFT JOIN users ON users.id = comments.user_id").
		Where("comments.id = ?", id).
		First(&comment).Error
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

func (r *CommentRepository) ListByImage(imageID string, offset, limit int) ([]model.CommentWithAuthor, int64, error) {
	var total int64
	if err := r.db.Model(&model.Comment{}).Where("image_id = ?", imageID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var comments []model.CommentWithAuthor
	err := r.db.Model(&model.Comment{}).
		Select("comments.*, users.username, users.email").
		Joins("LEFT JOIN users ON users.id = comments.user_id").
		Where("comments.image_id = ?", imageID).
		Order("comments.created_at desc").
		Offset(offset).Limit(limit).
		Scan(&comments).Error
	if err != nil {
		return nil, 0, err
	}
	return comments, total, nil
}

func (r *CommentRepository) ListByUser(userID uint, offset, limit int) ([]model.CommentWithImage, int64, error) {
	var total int64
	if err := r.db.Model(&model.Comment{}).Where("user_id = ?", userID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var comments []model.CommentWithImage
	err := r.db.Model(&model.Comment{}).
		Select("comments.*, images.title AS image_title, images.url_thumb AS image_thumb").
		Joins("JOIN images ON images.id = comments.image_id").
		Where("comments.user_id = ?", userID).
		Order("comments.created_at desc").
		Offset(offset).Limit(limit).
		Scan(&comments).Error
	if err != nil {
		return nil, 0, err
	}
	return comments, total, nil
}

func (r *CommentRepository) UpdateContent(id string, userID uint, content string) (int64, error) {
	res := r.db.Model(&model.Comment{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("content", content)
	return res.RowsAffected, res.Error
}

func (r *CommentRepository) DeleteOwned(id string, userID uint) (int64, error) {
	res := r.db.Where("id = ? AND user_id = ?", id, userID).Delete(&model.Comment{})
	return res.RowsAffected, res.Error
}
