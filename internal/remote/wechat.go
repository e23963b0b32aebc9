package remote

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/hashicorp/go-retryablehttp"

	"blogapi/internal/metrics"
)

// WechatClient 微信 jscode2session 客户端
type WechatClient struct {
	http      *retryablehttp.Client
	baseURL   string
	appID     string
	appSecret string
}

func NewWechatClient(baseURL, appID, appSecret string) *WechatClient {
	return &WechatClient{
		http:      newHTTPClient(),
		baseURL:   baseURL,
		appID:     appID,
		appSecret: appSecret,
	}
}

// WechatSession 微信登录换取的用户凭证
type WechatSession struct {
	OpenID     string `json:"openid"`
	SessionKey string `json:"session_key"`
	UnionID    string `json:"unionid,omitempty"`
	ErrCode    int    `json:"errcode,omitempty"`
	ErrMsg     string `json:"errmsg,omitempty"`
}

// ExchangeCode 用前端传来的 code 换取会话凭证
func (c *WechatClient) ExchangeCode(ctx context.Context, code string) (*WechatSession, error) {
	params := url.Values{}
	params.Set("appid", c.appID)
	params.Set("secret", c.appSecret)
	params.Set("js_code", code)
	params.Set("grant_type", "authorization_code")

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		metrics.IncRemote("wechat", "error")
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		metrics.IncRemote("wechat", "error")
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	var session WechatSession
	if err := json.Unmarshal(body, &session); err != nil {
		metrics.IncRemote("wechat", "error")
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	if session.ErrCode != 0 {
		metrics.IncRemote("wechat", "error")
		return nil, fmt.Errorf("%w: %s", ErrUpstream, session.ErrMsg)
	}
	metrics.IncRemote("wechat", "ok")
	return &session, nil
}
