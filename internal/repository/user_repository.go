package repository

import "github.com/AbegundeStephen/The-Interactive-Gallery/internal/model"

type UserStore interface {
	FindByID(id uint) (*model.User, error)
	FindByEmail(email string) (*model.User, error)
	Create(user *model.User) error
	// ExistsByEmailOrUsername 注册前的唯一性预检
	ExistsByEmailOrUsername(email, username string) (bool, error)
	CountAll() (int64, error)
}
