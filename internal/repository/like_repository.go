package repository

import "github.com/AbegundeStephen/The-Interactive-Gallery/internal/model"

type LikeStore interface {
	FindByImageAndUser(imageID string, userID uint) (*model.Like, error)
	Create(like *model.Like) error
	DeleteByImageAndUser(imageID string, userID uint) (int64, error)
	CountByImage(imageID string) (int64, error)
	HasUserLiked(imageID string, userID uint) (bool, error)
}
