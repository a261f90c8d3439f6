package upstream

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/AbegundeStephen/The-Interactive-Gallery/internal/config"
)

// ErrPhotoNotFound 上游不存在该图片
var ErrPhotoNotFound = errors.New("上游图片不存在")

// Photo 对应 Unsplash 图片接口返回的原始结构
type Photo struct {
	ID             string     `json:"id"`
	CreatedAt      string     `json:"created_at"`
	Width          int        `json:"width"`
	Height         int        `json:"height"`
	Description    string     `json:"description"`
	AltDescription string     `json:"alt_description"`
	Likes          int        `json:"likes"`
	URLs           PhotoURLs  `json:"urls"`
	User           PhotoUser  `json:"user"`
	Tags           []PhotoTag `json:"tags"`
}

type PhotoURLs struct {
	Raw     string `json:"raw"`
	Full    string `json:"full"`
	Regular string `json:"regular"`
	Small   string `json:"small"`
	Thumb   string `json:"thumb"`
}

type PhotoUser struct {
	Name     string `json:"name"`
	Username string `json:"username"`
}

type PhotoTag struct {
	Title string `json:"title"`
}

type searchResponse struct {
	Total      int     `json:"total"`
	TotalPages int     `json:"total_pages"`
	Results    []Photo `json:"results"`
}

// Client Unsplash API 客户端。
// GET 请求带指数退避重试：网络错误、5xx、429 会重试，其余 4xx 不重试
type Client struct {
	baseURL    string
	accessKey  string
	maxRetries int
	httpClient *http.Client

	// retryBaseDelay 首次重试前的等待时间，之后逐次翻倍；测试中可调小
	retryBaseDelay time.Duration
}

func NewClient(cfg config.UnsplashConfig) *Client {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	maxRetries := cfg.MaxRetries
	if maxRetries < 0 {
		maxRetries = 0
	}
	return &Client{
		baseURL:        cfg.BaseURL,
		accessKey:      cfg.AccessKey,
		maxRetries:     maxRetries,
		httpClient:     &http.Client{Timeout: timeout},
		retryBaseDelay: 300 * time.Millisecond,
	}
}

// ListPhotos 拉取最新图片列表（/photos）
func (c *Client) ListPhotos(ctx context.Context, page, perPage int) ([]Photo, error) {
	params := url.Values{}
	params.Set("page", strconv.Itoa(page))
	params.Set("per_page", strconv.Itoa(perPage))
	params.Set("order_by", "latest")

	body, err := c.get(ctx, "/photos", params)
	if err != nil {
		return nil, err
	}

	var photos []Photo
	if err := json.Unmarshal(body, &photos); err != nil {
		return nil, fmt.Errorf("解析上游响应失败: %w", err)
	}
	return photos, nil
}

// SearchPhotos 按关键字搜索图片（/search/photos）
func (c *Client) SearchPhotos(ctx context.Context, query string, page, perPage int) ([]Photo, error) {
	params := url.Values{}
	params.Set("query", query)
	params.Set("page", strconv.Itoa(page))
	params.Set("per_page", strconv.Itoa(perPage))
	params.Set("order_by", "latest")

	body, err := c.get(ctx, "/search/photos", params)
	if err != nil {
		return nil, err
	}

	var resp searchResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("解析上游响应失败: %w", err)
	}
	return resp.Results, nil
}

// GetPhoto 按 ID 获取单张图片（/photos/:id）
func (c *Client) GetPhoto(ctx context.Context, id string) (*Photo, error) {
	body, err := c.get(ctx, "/photos/"+url.PathEscape(id), url.Values{})
	if err != nil {
		return nil, err
	}

	var photo Photo
	if err := json.Unmarshal(body, &photo); err != nil {
		return nil, fmt.Errorf("解析上游响应失败: %w", err)
	}
	return &photo, nil
}

func (c *Client) get(ctx context.Context, path string, params url.Values) ([]byte, error) {
	params.Set("client_id", c.accessKey)
	fullURL := c.baseURL + path + "?" + params.Encode()

	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if attempt > 0 {
			// 指数退避：300ms, 600ms, 1.2s ...
			delay := c.retryBaseDelay << (attempt - 1)
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		body, retryable, err := c.doOnce(ctx, fullURL)
		if err == nil {
			return body, nil
		}
		if !retryable {
			return nil, err
		}
		lastErr = err
	}

	return nil, fmt.Errorf("上游请求失败（已重试 %d 次）: %w", c.maxRetries, lastErr)
}

// doOnce 执行单次请求，第二个返回值标识该失败是否可重试
func (c *Client) doOnce(ctx context.Context, fullURL string) ([]byte, bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, false, err
	}
	req.Header.Set("Accept-Version", "v1")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// 网络级错误可重试
		return nil, true, err
	}
	defer func() { _ = resp.Body.Close() }()

	switch {
	case resp.StatusCode == http.StatusOK:
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, true, err
		}
		return body, false, nil
	case resp.StatusCode == http.StatusNotFound:
		return nil, false, ErrPhotoNotFound
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, true, fmt.Errorf("上游限流 (429)")
	case resp.StatusCode >= 500:
		return nil, true, fmt.Errorf("上游服务错误 (%d)", resp.StatusCode)
	default:
		// 其余 4xx 重试无意义
		return nil, false, fmt.Errorf("上游请求被拒绝 (%d)", resp.StatusCode)
	}
}
