// Package response 统一响应格式：HTTP 状态码同时复制到响应体的 code 字段。
// 请求的 Content-Type 含 application/json 时按 JSON 返回，否则按序列化后的
// 纯文本返回。这是对客户端可见的传输细节，保持不变。
package response

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// Body 是 {code, msg?, data?, hasMore?} 响应体。
type Body struct {
	Code    int         `json:"code"`
	Msg     string      `json:"msg,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	HasMore *bool       `json:"hasMore,omitempty"`
}

func wantsJSON(c *gin.Context) bool {
	return strings.Contains(c.GetHeader("Content-Type"), "application/json")
}

func send(c *gin.Context, code int, body Body) {
	body.Code = code
	if wantsJSON(c) {
		c.JSON(code, body)
		return
	}
	raw, err := json.Marshal(body)
	if err != nil {
		c.String(http.StatusInternalServerError, "serialize response failed")
		return
	}
	c.String(code, string(raw))
}

// Extra 在标准包络外附加顶层字段（例如登录响应的 token）。
func Extra(c *gin.Context, code int, msg string, data interface{}, extra map[string]interface{}) {
	body := map[string]interface{}{"code": code}
	if msg != "" {
		body["msg"] = msg
	}
	if data != nil {
		body["data"] = data
	}
	for k, v := range extra {
		body[k] = v
	}
	if wantsJSON(c) {
		c.JSON(code, body)
		return
	}
	raw, err := json.Marshal(body)
	if err != nil {
		c.String(http.StatusInternalServerError, "serialize response failed")
		return
	}
	c.String(code, string(raw))
}

// Msg 只带提示信息的响应
func Msg(c *gin.Context, code int, msg string) {
	send(c, code, Body{Msg: msg})
}

// Data 带数据体的响应
func Data(c *gin.Context, code int, msg string, data interface{}) {
	send(c, code, Body{Msg: msg, Data: data})
}

// List 列表响应，附带 hasMore 分页标记
func List(c *gin.Context, code int, msg string, hasMore bool, data interface{}) {
	send(c, code, Body{Msg: msg, Data: data, HasMore: &hasMore})
}
