package service

import (
	"context"
	"log"
	"strconv"
	"time"

	"github.com/AbegundeStephen/The-Interactive-Gallery/internal/config"

	"github.com/redis/go-redis/v9"
)

const likeCountTTL = 1 * time.Minute

// NewRedisClient 按配置建立 Redis 连接；未启用或探活失败时返回 nil，
// 上层自动降级为纯数据库模式
func NewRedisClient(cfg config.RedisConfig) *redis.Client {
	if !cfg.Enabled {
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		log.Printf("⚠️ Redis 不可用，降级为数据库直查模式: %v", err)
		return nil
	}

	log.Printf("✅ Redis 已连接: %s (db=%d)", cfg.Addr, cfg.DB)
	return client
}

// LikeCountCache 点赞总数的 Redis 缓存，client 为 nil 时全部操作为空操作
type LikeCountCache struct {
	client *redis.Client
	prefix string
}

func NewLikeCountCache(client *redis.Client, prefix string) *LikeCountCache {
	if prefix == "" {
		prefix = "gallery"
	}
	return &LikeCountCache{client: client, prefix: prefix}
}

func (c *LikeCountCache) key(imageID string) string {
	return c.prefix + ":likes:count:" + imageID
}

// Get 读取缓存的点赞总数，未命中或不可用时 ok 为 false
func (c *LikeCountCache) Get(imageID string) (int64, bool) {
	if c == nil || c.client == nil {
		return 0, false
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	val, err := c.client.Get(ctx, c.key(imageID)).Result()
	if err != nil {
		return 0, false
	}
	count, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, false
	}
	return count, true
}

func (c *LikeCountCache) Set(imageID string, count int64) {
	if c == nil || c.client == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	_ = c.client.Set(ctx, c.key(imageID), strconv.FormatInt(count, 10), likeCountTTL).Err()
}

// Invalidate 点赞状态变化后删除缓存，下次读取回数据库重建
func (c *LikeCountCache) Invalidate(imageID string) {
	if c == nil || c.client == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	_ = c.client.Del(ctx, c.key(imageID)).Err()
}
