package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func doRequest(t *testing.T, contentType string, handler gin.HandlerFunc) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/t", handler)
	req := httptest.NewRequest(http.MethodPost, "/t", strings.NewReader("{}"))
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCodeDuplicatedInBody(t *testing.T) {
	w := doRequest(t, "application/json", func(c *gin.Context) {
		Msg(c, http.StatusBadRequest, "参数错误")
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.EqualValues(t, http.StatusBadRequest, body["code"])
	assert.Equal(t, "参数错误", body["msg"])
}

// Content-Type 含 application/json 时返回 JSON，否则返回序列化后的纯文本
func TestContentTypeToggle(t *testing.T) {
	w := doRequest(t, "application/json", func(c *gin.Context) {
		Data(c, http.StatusOK, "ok", gin.H{"k": "v"})
	})
	assert.Contains(t, w.Header().Get("Content-Type"), "application/json")

	w = doRequest(t, "application/x-www-form-urlencoded", func(c *gin.Context) {
		Data(c, http.StatusOK, "ok", gin.H{"k": "v"})
	})
	assert.NotContains(t, w.Header().Get("Content-Type"), "application/json")
	// 纯文本模式下内容仍是同一份序列化结果
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["msg"])
}

func TestListCarriesHasMore(t *testing.T) {
	w := doRequest(t, "application/json", func(c *gin.Context) {
		List(c, http.StatusOK, "文章获取成功", true, []string{"a"})
	})
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, true, body["hasMore"])
}

func TestExtraMergesTopLevelFields(t *testing.T) {
	w := doRequest(t, "application/json", func(c *gin.Context) {
		Extra(c, http.StatusOK, "用户登录成功", gin.H{"id": "u1"}, map[string]interface{}{
			"token": "abc",
		})
	})
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "abc", body["token"])
	assert.EqualValues(t, http.StatusOK, body["code"])
	assert.NotNil(t, body["data"])
}
