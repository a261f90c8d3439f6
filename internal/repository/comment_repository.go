package repository

import "github.com/AbegundeStephen/The-Interactive-Gallery/internal/model"

type CommentStore interface {
	Create(comment *model.Comment) error
	FindByID(id string) (*model.CommentWithAuthor, error)
	ListByImage(imageID string, offset, limit int) ([]model.CommentWithAuthor, int64, error)
	ListByUser(userID uint, offset, limit int) ([]model.CommentWithImage, int64, error)
	UpdateContent(id string, userID uint, content string) (int64, error)
	DeleteOwned(id string, userID uint) (int64, error)
}
