package config

import (
	"os"
	"path/filepath"
	"testing"
)

// 测试内容：无配置文件时全部取默认值，开发模式自动填充默认 JWT 密钥
func TestInitConfigDefaults(t *testing.T) {
	InitConfig(t.TempDir())

	cfg := Get()
	if cfg.Server.Port != "8080" {
		t.Fatalf("期望默认端口为 8080, 实际为 %s", cfg.Server.Port)
	}
	if cfg.Server.Mode != "debug" {
		t.Fatalf("期望默认模式为 debug, 实际为 %s", cfg.Server.Mode)
	}
	if cfg.Database.Type != "sqlite" {
		t.Fatalf("期望默认数据库为 sqlite, 实际为 %s", cfg.Database.Type)
	}
	if cfg.JWT.Secret != "gallery_secret" {
		t.Fatalf("期望开发模式填充默认密钥, 实际为 %s", cfg.JWT.Secret)
	}
	if cfg.JWT.ExpirationHours != 168 {
		t.Fatalf("期望默认令牌有效期为 168 小时, 实际为 %d", cfg.JWT.ExpirationHours)
	}
	if cfg.Unsplash.BaseURL != "https://api.unsplash.com" {
		t.Fatalf("期望默认上游地址为 https://api.unsplash.com, 实际为 %s", cfg.Unsplash.BaseURL)
	}
	if cfg.Unsplash.CacheRefresh {
		t.Fatal("期望默认关闭强制刷新, 实际为开启")
	}
	if cfg.Redis.Enabled {
		t.Fatal("期望默认关闭 Redis, 实际为开启")
	}
	if !cfg.RateLimit.Enabled {
		t.Fatal("期望默认开启限流, 实际为关闭")
	}
}

// 测试内容：配置文件中的值覆盖默认值
func TestInitConfigFromFile(t *testing.T) {
	dir := t.TempDir()
	content := []byte(`
server:
  port: "9090"
unsplash:
  access_key: file-key
  cache_refresh: true
rate_limit:
  enabled: false
`)
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), content, 0644); err != nil {
		t.Fatalf("写入配置文件失败: %v", err)
	}

	InitConfig(dir)

	cfg := Get()
	if cfg.Server.Port != "9090" {
		t.Fatalf("期望端口为 9090, 实际为 %s", cfg.Server.Port)
	}
	if cfg.Unsplash.AccessKey != "file-key" {
		t.Fatalf("期望访问密钥为 file-key, 实际为 %s", cfg.Unsplash.AccessKey)
	}
	if !cfg.Unsplash.CacheRefresh {
		t.Fatal("期望开启强制刷新, 实际为关闭")
	}
	if cfg.RateLimit.Enabled {
		t.Fatal("期望关闭限流, 实际为开启")
	}
}

// 测试内容：GALLERY_ 前缀的环境变量覆盖配置文件与默认值
func TestInitConfigEnvOverride(t *testing.T) {
	t.Setenv("GALLERY_SERVER_PORT", "7070")
	t.Setenv("GALLERY_UNSPLASH_ACCESS_KEY", "env-key")

	InitConfig(t.TempDir())

	cfg := Get()
	if cfg.Server.Port != "7070" {
		t.Fatalf("期望环境变量覆盖端口为 7070, 实际为 %s", cfg.Server.Port)
	}
	if cfg.Unsplash.AccessKey != "env-key" {
		t.Fatalf("期望环境变量覆盖密钥为 env-key, 实际为 %s", cfg.Unsplash.AccessKey)
	}
}
