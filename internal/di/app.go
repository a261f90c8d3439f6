package di

import (
	"github.com/AbegundeStephen/The-Interactive-Gallery/internal/config"
	"github.com/AbegundeStephen/The-Interactive-Gallery/internal/handler"
	"github.com/AbegundeStephen/The-Interactive-Gallery/internal/repository"
	"github.com/AbegundeStephen/The-Interactive-Gallery/internal/router"
	"github.com/AbegundeStephen/The-Interactive-Gallery/internal/service"
	"github.com/AbegundeStephen/The-Interactive-Gallery/internal/upstream"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Application struct {
	Router  *router.Router
	Service *service.AppService
}

// InitializeApplication 显式装配整个对象图：
// 存储 → 服务 → handler → 路由，全部构造注入，不依赖包级单例
func InitializeApplication(gormDB *gorm.DB, redisClient *redis.Client) *Application {
	cfg := config.Get()

	userRepo := repository.NewUserRepository(gormDB)
	imageRepo := repository.NewImageRepository(gormDB)
	commentRepo := repository.NewCommentRepository(gormDB)
	likeRepo := repository.NewLikeRepository(gormDB)

	provider := upstream.NewClient(cfg.Unsplash)
	likeCache := service.NewLikeCountCache(redisClient, cfg.Redis.Prefix)

	imageService := service.NewImageService(imageRepo, provider, cfg.Unsplash.CacheRefresh)
	likeService := service.NewLikeService(likeRepo, imageRepo, imageService, likeCache)
	commentService := service.NewCommentService(commentRepo, imageService)
	authService := service.NewAuthService(userRepo)

	appService := service.NewAppService(imageService, likeService, commentService, authService)
	h := handler.NewHandler(appService)

	return &Application{
		Router:  router.NewRouter(h),
		Service: appService,
	}
}
