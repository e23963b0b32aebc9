package remote

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandomArticlesFetchesListThenDetails(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/list":
			assert.Equal(t, "app", r.URL.Query().Get("app_id"))
			fmt.Fprint(w, `{"code":1,"msg":"ok","data":[{"storyId":"s1"},{"storyId":"s2"}]}`)
		case "/details":
			id := r.URL.Query().Get("story_id")
			fmt.Fprintf(w, `{"code":1,"msg":"ok","data":{"storyId":"%s","title":"标题"}}`, id)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	client := NewStoryClient(srv.URL, "app", "secret")
	stories, err := client.RandomArticles(context.Background())
	require.NoError(t, err)
	assert.Len(t, stories, 2)
	assert.Contains(t, string(stories[0]), "s1")
}

func TestRandomArticlesUpstreamBusinessError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"code":0,"msg":"密钥无效","data":null}`)
	}))
	defer srv.Close()

	client := NewStoryClient(srv.URL, "app", "secret")
	_, err := client.RandomArticles(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUpstream)
	assert.Contains(t, err.Error(), "密钥无效")
}

func TestWechatExchangeCode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "the-code", r.URL.Query().Get("js_code"))
		fmt.Fprint(w, `{"openid":"o1","session_key":"sk"}`)
	}))
	defer srv.Close()

	client := NewWechatClient(srv.URL, "app", "secret")
	session, err := client.ExchangeCode(context.Background(), "the-code")
	require.NoError(t, err)
	assert.Equal(t, "o1", session.OpenID)
}

func TestWechatExchangeCodeUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"errcode":40029,"errmsg":"invalid code"}`)
	}))
	defer srv.Close()

	client := NewWechatClient(srv.URL, "app", "secret")
	_, err := client.ExchangeCode(context.Background(), "bad")
	assert.ErrorIs(t, err, ErrUpstream)
}
