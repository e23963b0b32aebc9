// Package remote 封装对外部协作服务的 HTTP 调用（随机文章、微信登录）。
// 上游返回业务失败时统一以 ErrUpstream 包装，错误消息透传给调用方。
package remote

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"net/url"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"blogapi/internal/metrics"
)

// ErrUpstream 外部服务调用失败或返回非成功结果
var ErrUpstream = errors.New("upstream error")

func newHTTPClient() *retryablehttp.Client {
	c := retryablehttp.NewClient()
	c.RetryMax = 2
	c.HTTPClient.Timeout = 10 * time.Second
	c.Logger = nil
	return c
}

// StoryClient 随机文章接口客户端
type StoryClient struct {
	http      *retryablehttp.Client
	baseURL   string
	appID     string
	appSecret string
}

func NewStoryClient(baseURL, appID, appSecret string) *StoryClient {
	return &StoryClient{
		http:      newHTTPClient(),
		baseURL:   baseURL,
		appID:     appID,
		appSecret: appSecret,
	}
}

type storyListResponse struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
	Data []struct {
		StoryID string `json:"storyId"`
	} `json:"data"`
}

type storyDetailResponse struct {
	Code int             `json:"code"`
	Msg  string          `json:"msg"`
	Data json.RawMessage `json:"data"`
}

func (c *StoryClient) get(ctx context.Context, path string, params url.Values, out interface{}) error {
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		metrics.IncRemote("story", "error")
		return fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		metrics.IncRemote("story", "error")
		return fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	if resp.StatusCode != http.StatusOK {
		metrics.IncRemote("story", "error")
		return fmt.Errorf("%w: status %d", ErrUpstream, resp.StatusCode)
	}
	metrics.IncRemote("story", "ok")
	return json.Unmarshal(body, out)
}

// RandomArticles 先取随机分类的故事列表，再逐条取详情。
// 分类 id 1~11，其中 4 和 10 两类内容质量差，固定替换为 7。
func (c *StoryClient) RandomArticles(ctx context.Context) ([]json.RawMessage, error) {
	typeID := rand.Intn(11) + 1
	if typeID == 4 || typeID == 10 {
		typeID = 7
	}

	params := url.Values{}
	params.Set("type_id", fmt.Sprintf("%d", typeID))
	params.Set("page", "1")
	params.Set("app_id", c.appID)
	params.Set("app_secret", c.appSecret)

	var list storyListResponse
	if err := c.get(ctx, "/list", params, &list); err != nil {
		return nil, err
	}
	if list.Code != 1 {
		return nil, fmt.Errorf("%w: %s", ErrUpstream, list.Msg)
	}

	out := make([]json.RawMessage, 0, len(list.Data))
	for _, item := range list.Data {
		detailParams := url.Values{}
		detailParams.Set("story_id", item.StoryID)
		detailParams.Set("app_id", c.appID)
		detailParams.Set("app_secret", c.appSecret)

		var detail storyDetailResponse
		if err := c.get(ctx, "/details", detailParams, &detail); err != nil {
			return nil, err
		}
		if detail.Code != 1 {
			return nil, fmt.Errorf("%w: %s", ErrUpstream, detail.Msg)
		}
		out = append(out, detail.Data)
	}
	return out, nil
}
