package repository

import (
	"gorm.io/gorm"
)

type Repositories struct {
	User    UserStore
	Image   ImageStore
	Comment CommentStore
	Like    LikeStore
}

func NewUserRepository(db *gorm.DB) UserStore {
	return &UserRepository{db: db}
}

func NewImageRepository(db *gorm.DB) ImageStore {
	return &ImageRepository{db: db}
}

func NewCommentRepository(db *gorm.DB) CommentStore {
	return &CommentRepository{db: db}
}

func NewLikeRepository(db *gorm.DB) LikeStore {
	return &LikeRepository{db: db}
}

func NewRepositories(user UserStore, image ImageStore, comment CommentStore, like LikeStore) *Repositories {
	return &Repositories{
		User:    user,
		Image:   image,
		Comment: comment,
		Like:    like,
	}
}
