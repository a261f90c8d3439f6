package service

import (
	"testing"

	"github.com/AbegundeStephen/The-Interactive-Gallery/internal/config"
	"github.com/AbegundeStephen/The-Interactive-Gallery/internal/repository"
	"github.com/AbegundeStephen/The-Interactive-Gallery/internal/testutils"
	"github.com/AbegundeStephen/The-Interactive-Gallery/internal/upstream"

	"gorm.io/gorm"
)

type testEnv struct {
	db       *gorm.DB
	fake     *testutils.FakeUnsplash
	repos    *repository.Repositories
	images   *ImageService
	likes    *LikeService
	comments *CommentService
	auth     *AuthService
}

func setupEnv(t *testing.T, cacheRefresh bool, knownIDs ...string) *testEnv {
	t.Helper()
	testutils.SetupConfig(t)

	gdb := testutils.SetupDB(t)
	fake := testutils.NewFakeUnsplash(t, knownIDs...)

	repos := repository.NewRepositories(
		repository.NewUserRepository(gdb),
		repository.NewImageRepository(gdb),
		repository.NewCommentRepository(gdb),
		repository.NewLikeRepository(gdb),
	)

	provider := upstream.NewClient(config.UnsplashConfig{
		BaseURL:        fake.Server.URL,
		AccessKey:      "test-key",
		TimeoutSeconds: 5,
		MaxRetries:     0,
	})

	images := NewImageService(repos.Image, provider, cacheRefresh)
	likes := NewLikeService(repos.Like, repos.Image, images, NewLikeCountCache(nil, "test"))
	comments := NewCommentService(repos.Comment, images)
	auth := NewAuthService(repos.User)

	return &testEnv{
		db:       gdb,
		fake:     fake,
		repos:    repos,
		images:   images,
		likes:    likes,
		comments: comments,
		auth:     auth,
	}
}
