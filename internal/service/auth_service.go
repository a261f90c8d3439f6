package service

import (
	"errors"
	"log"
	"time"

	"github.com/AbegundeStephen/The-Interactive-Gallery/internal/common"
	"github.com/AbegundeStephen/The-Interactive-Gallery/internal/config"
	"github.com/AbegundeStephen/The-Interactive-Gallery/internal/model"
	"github.com/AbegundeStephen/The-Interactive-Gallery/internal/utils"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const bcryptCost = 12

// Register 注册新用户并签发登录令牌。
// 邮箱或用户名已存在时返回 conflict
func (s *AuthService) Register(username, email, password string) (*model.User, string, error) {
	exists, err := s.userStore.ExistsByEmailOrUsername(email, username)
	if err != nil {
		return nil, "", common.NewInternalError("注册失败，请稍后重试")
	}
	if exists {
		return nil, "", common.NewConflictError("该邮箱或用户名已被注册")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, "", common.NewInternalError("注册失败，请稍后重试")
	}

	user := &model.User{
		Username: username,
		Email:    email,
		Password: string(hashed),
	}
	if err := s.userStore.Create(user); err != nil {
		// 预检和插入之间的并发注册由唯一约束兜底
		return nil, "", common.NewConflictError("该邮箱或用户名已被注册")
	}

	token, err := s.issueToken(user)
	if err != nil {
		return nil, "", err
	}

	log.Printf("✅ 用户注册: %s", user.Email)
	return user, token, nil
}

// Login 邮箱密码登录。凭证不匹配统一返回 unauthorized，不区分账号不存在
func (s *AuthService) Login(email, password string) (*model.User, string, error) {
	user, err := s.userStore.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", common.NewUnauthorizedError("邮箱或密码错误")
		}
		return nil, "", common.NewInternalError("登录失败，请稍后重试")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, "", common.NewUnauthorizedError("邮箱或密码错误")
	}

	token, err := s.issueToken(user)
	if err != nil {
		return nil, "", err
	}

	log.Printf("✅ 用户登录: %s", user.Email)
	return user, token, nil
}

// GetUser 按 ID 获取用户（鉴权后的身份解析）
func (s *AuthService) GetUser(id uint) (*model.User, error) {
	user, err := s.userStore.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.NewNotFoundError("用户不存在")
		}
		return nil, common.NewInternalError("获取用户失败")
	}
	return user, nil
}

func (s *AuthService) issueToken(user *model.User) (string, error) {
	cfg := config.Get()
	token, err := utils.GenerateLoginToken(user.ID, user.Username, user.Email,
		time.Hour*time.Duration(cfg.JWT.ExpirationHours))
	if err != nil {
		return "", common.NewInternalError("签发令牌失败")
	}
	return token, nil
}
