package upstream

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

func newTestClient(baseURL string, maxRetries int) *Client {
	return &Client{
		baseURL:        baseURL,
		accessKey:      "test-key",
		maxRetries:     maxRetries,
		httpClient:     &http.Client{Timeout: 5 * time.Second},
		retryBaseDelay: time.Millisecond,
	}
}

// 测试内容：列表请求携带认证参数与版本头，响应正确解析
func TestListPhotos(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("client_id") != "test-key" {
			t.Errorf("期望携带 client_id=test-key, 实际为 %s", r.URL.Query().Get("client_id"))
		}
		if r.Header.Get("Accept-Version") != "v1" {
			t.Errorf("期望携带 Accept-Version: v1, 实际为 %s", r.Header.Get("Accept-Version"))
		}
		if r.URL.Query().Get("per_page") != "5" {
			t.Errorf("期望 per_page=5, 实际为 %s", r.URL.Query().Get("per_page"))
		}
		_ = json.NewEncoder(w).Encode([]map[string]interface{}{
			{"id": "a1", "description": "first"},
			{"id": "a2", "description": "second"},
		})
	}))
	defer server.Close()

	client := newTestClient(server.URL, 0)
	photos, err := client.ListPhotos(context.Background(), 1, 5)
	if err != nil {
		t.Fatalf("获取图片列表失败: %v", err)
	}
	if len(photos) != 2 {
		t.Fatalf("期望返回 2 张图片, 实际为 %d", len(photos))
	}
	if photos[0].ID != "a1" || photos[0].Description != "first" {
		t.Fatalf("期望首张图片为 a1/first, 实际为 %s/%s", photos[0].ID, photos[0].Description)
	}
}

// 测试内容：搜索响应从外层 results 字段取图片列表
func TestSearchPhotos(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/search/photos" {
			t.Errorf("期望请求 /search/photos, 实际为 %s", r.URL.Path)
		}
		if r.URL.Query().Get("query") != "mountains" {
			t.Errorf("期望 query=mountains, 实际为 %s", r.URL.Query().Get("query"))
		}
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"total":       1,
			"total_pages": 1,
			"results":     []map[string]interface{}{{"id": "s1"}},
		})
	}))
	defer server.Close()

	client := newTestClient(server.URL, 0)
	photos, err := client.SearchPhotos(context.Background(), "mountains", 1, 10)
	if err != nil {
		t.Fatalf("搜索图片失败: %v", err)
	}
	if len(photos) != 1 || photos[0].ID != "s1" {
		t.Fatalf("期望返回 s1, 实际为 %v", photos)
	}
}

// 测试内容：5xx 与 429 指数退避重试，最终成功时不向调用方暴露失败
func TestGetRetriesOnTransientErrors(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch atomic.AddInt32(&calls, 1) {
		case 1:
			w.WriteHeader(http.StatusInternalServerError)
		case 2:
			w.WriteHeader(http.StatusTooManyRequests)
		default:
			_ = json.NewEncoder(w).Encode(map[string]interface{}{"id": "p1"})
		}
	}))
	defer server.Close()

	client := newTestClient(server.URL, 3)
	photo, err := client.GetPhoto(context.Background(), "p1")
	if err != nil {
		t.Fatalf("期望重试后成功, 实际返回错误: %v", err)
	}
	if photo.ID != "p1" {
		t.Fatalf("期望图片 ID 为 p1, 实际为 %s", photo.ID)
	}
	if atomic.LoadInt32(&calls) != 3 {
		t.Fatalf("期望共请求 3 次, 实际为 %d", atomic.LoadInt32(&calls))
	}
}

// 测试内容：重试次数耗尽后返回错误
func TestGetExhaustsRetries(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := newTestClient(server.URL, 2)
	if _, err := client.GetPhoto(context.Background(), "p1"); err == nil {
		t.Fatal("期望重试耗尽后返回错误, 实际为 nil")
	}
	if atomic.LoadInt32(&calls) != 3 {
		t.Fatalf("期望共请求 3 次（1 次 + 2 次重试）, 实际为 %d", atomic.LoadInt32(&calls))
	}
}

// 测试内容：404 不重试，直接返回 ErrPhotoNotFound
func TestGetPhotoNotFoundNoRetry(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := newTestClient(server.URL, 3)
	_, err := client.GetPhoto(context.Background(), "missing")
	if !errors.Is(err, ErrPhotoNotFound) {
		t.Fatalf("期望返回 ErrPhotoNotFound, 实际为 %v", err)
	}
	if atomic.LoadInt32(&calls) != 1 {
		t.Fatalf("期望 404 只请求 1 次, 实际为 %d", atomic.LoadInt32(&calls))
	}
}

// 测试内容：其余 4xx（如 401）不重试
func TestGetClientErrorNoRetry(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	client := newTestClient(server.URL, 3)
	if _, err := client.GetPhoto(context.Background(), "p1"); err == nil {
		t.Fatal("期望返回错误, 实际为 nil")
	}
	if atomic.LoadInt32(&calls) != 1 {
		t.Fatalf("期望 401 只请求 1 次, 实际为 %d", atomic.LoadInt32(&calls))
	}
}

// 测试内容：等待重试期间取消上下文立即返回
func TestGetContextCancellation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := newTestClient(server.URL, 3)
	client.retryBaseDelay = time.Minute

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		_, err := client.GetPhoto(ctx, "p1")
		done <- err
	}()

	time.Sleep(10 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("期望返回 context.Canceled, 实际为 %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("期望取消后立即返回, 实际超时")
	}
}
