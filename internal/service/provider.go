package service

import (
	repo "github.com/AbegundeStephen/The-Interactive-Gallery/internal/repository"
	"github.com/AbegundeStephen/The-Interactive-Gallery/internal/upstream"
)

type ImageService struct {
	imageStore repo.ImageStore
	provider   *upstream.Client
	// cacheRefresh 为 true 时列表查询总是回源并增量入库
	cacheRefresh bool
}

type LikeService struct {
	likeStore  repo.LikeStore
	imageStore repo.ImageStore
	images     *ImageService
	cache      *LikeCountCache
}

type CommentService struct {
	commentStore repo.CommentStore
	images       *ImageService
}

type AuthService struct {
	userStore repo.UserStore
}

func NewImageService(imageStore repo.ImageStore, provider *upstream.Client, cacheRefresh bool) *ImageService {
	return &ImageService{imageStore: imageStore, provider: provider, cacheRefresh: cacheRefresh}
}

func NewLikeService(likeStore repo.LikeStore, imageStore repo.ImageStore, images *ImageService, cache *LikeCountCache) *LikeService {
	return &LikeService{likeStore: likeStore, imageStore: imageStore, images: images, cache: cache}
}

func NewCommentService(commentStore repo.CommentStore, images *ImageService) *CommentService {
	return &CommentService{commentStore: commentStore, images: images}
}

func NewAuthService(userStore repo.UserStore) *AuthService {
	return &AuthService{userStore: userStore}
}

// AppService 聚合全部业务服务，供 handler 层注入
type AppService struct {
	Images   *ImageService
	Likes    *LikeService
	Comments *CommentService
	Auth     *AuthService
}

func NewAppService(images *ImageService, likes *LikeService, comments *CommentService, auth *AuthService) *AppService {
	return &AppService{
		Images:   images,
		Likes:    likes,
		Comments: comments,
		Auth:     auth,
	}
}
