package testutils

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"
)

// UnsplashPhoto 构造上游图片接口返回的原始 JSON 结构
func UnsplashPhoto(id string) map[string]interface{} {
	return map[string]interface{}{
		"id":              id,
		"created_at":      "2024-05-01T10:00:00Z",
		"width":           4000,
		"height":          3000,
		"description":     "photo " + id,
		"alt_description": "alt " + id,
		"likes":           7,
		"urls": map[string]interface{}{
			"raw":     "https://img.example/" + id + "/raw",
			"full":    "https://img.example/" + id + "/full",
			"regular": "https://img.example/" + id + "/regular",
			"small":   "https://img.example/" + id + "/small",
			"thumb":   "https://img.example/" + id + "/thumb",
		},
		"user": map[string]interface{}{
			"name":     "Author " + id,
			"username": "author_" + id,
		},
		"tags": []map[string]interface{}{
			{"title": "nature"},
			{"title": "city"},
		},
	}
}

// FakeUnsplash 模拟 Unsplash API 的测试服务器，记录各端点的调用次数
type FakeUnsplash struct {
	Server *httptest.Server

	mu          sync.Mutex
	listCalls   int
	getCalls    int
	searchCalls int
}

// NewFakeUnsplash 启动模拟上游。列表端点按 per_page 返回顺序编号的图片，
// 单图端点只认识 knownIDs 里的 ID，其余返回 404
func NewFakeUnsplash(t *testing.T, knownIDs ...string) *FakeUnsplash {
	t.Helper()

	known := make(map[string]bool, len(knownIDs))
	for _, id := range knownIDs {
		known[id] = true
	}

	f := &FakeUnsplash{}
	f.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		switch {
		case r.URL.Path == "/photos":
			f.mu.Lock()
			f.listCalls++
			f.mu.Unlock()

			perPage, _ := strconv.Atoi(r.URL.Query().Get("per_page"))
			if perPage <= 0 {
				perPage = 10
			}
			photos := make([]map[string]interface{}, 0, perPage)
			for i := 1; i <= perPage; i++ {
				photos = append(photos, UnsplashPhoto(fmt.Sprintf("list-%d", i)))
			}
			_ = json.NewEncoder(w).Encode(photos)

		case r.URL.Path == "/search/photos":
			f.mu.Lock()
			f.searchCalls++
			f.mu.Unlock()

			query := r.URL.Query().Get("query")
			_ = json.NewEncoder(w).Encode(map[string]interface{}{
				"total":       2,
				"total_pages": 1,
				"results": []map[string]interface{}{
					UnsplashPhoto("search-" + query + "-1"),
					UnsplashPhoto("search-" + query + "-2"),
				},
			})

		case strings.HasPrefix(r.URL.Path, "/photos/"):
			f.mu.Lock()
			f.getCalls++
			f.mu.Unlock()

			id := strings.TrimPrefix(r.URL.Path, "/photos/")
			if !known[id] {
				w.WriteHeader(http.StatusNotFound)
				_ = json.NewEncoder(w).Encode(map[string]interface{}{"errors": []string{"Couldn't find Photo"}})
				return
			}
			_ = json.NewEncoder(w).Encode(UnsplashPhoto(id))

		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))

	t.Cleanup(f.Server.Close)
	return f
}

func (f *FakeUnsplash) ListCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.listCalls
}

func (f *FakeUnsplash) GetCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.getCalls
}

func (f *FakeUnsplash) SearchCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.searchCalls
}
