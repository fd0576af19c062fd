package api

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/eidolon3/newsletter-aggregator/internal/aggregator"
	"github.com/eidolon3/newsletter-aggregator/internal/bookmark"
	"github.com/eidolon3/newsletter-aggregator/internal/cache"
	"github.com/eidolon3/newsletter-aggregator/internal/collector"
	"github.com/gin-gonic/gin"
)

type stubFetcher struct {
	name  string
	items []collector.Item
}

func (s *stubFetcher) Name() string { return s.name }

func (s *stubFetcher) Fetch() ([]collector.Item, error) { return s.items, nil }

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	engine := aggregator.New([]collector.Fetcher{
		&stubFetcher{
			name:  collector.SourceHackerNews,
			items: []collector.Item{{Title: "Story", URL: "https://example.com/story"}},
		},
	})
	newsCache, err := cache.New(engine, "@every 24h")
	if err != nil {
		t.Fatalf("init cache: %v", err)
	}
	bookmarks := bookmark.Open(filepath.Join(t.TempDir(), "bookmarks.json"))

	r := gin.New()
	NewServer(newsCache, bookmarks).RegisterRoutes(r)
	return r
}

func doRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestGetNewsReturnsAggregate(t *testing.T) {
	r := newTestRouter(t)

	w := doRequest(r, http.MethodGet, "/api/v1/news", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	body := w.Body.String()
	if !strings.Contains(body, `"Hacker News"`) || !strings.Contains(body, "https://example.com/story") {
		t.Fatalf("unexpected body: %s", body)
	}
}

func TestRefreshExposesLastRefresh(t *testing.T) {
	r := newTestRouter(t)

	w := doRequest(r, http.MethodPost, "/api/v1/news/refresh", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "lastRefresh") {
		t.Fatalf("refresh response should expose lastRefresh: %s", w.Body.String())
	}
}

func TestBookmarkEndpoints(t *testing.T) {
	r := newTestRouter(t)

	// 缺 url 的请求在进存储层之前就被拒绝
	w := doRequest(r, http.MethodPost, "/api/v1/bookmarks", `{"title":"T"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("missing url: status = %d", w.Code)
	}

	w = doRequest(r, http.MethodPost, "/api/v1/bookmarks", `{"title":"T","url":"https://example.com/u","source":"S"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("add: status = %d, body = %s", w.Code, w.Body.String())
	}

	// 同一 URL 重复收藏
	w = doRequest(r, http.MethodPost, "/api/v1/bookmarks", `{"title":"T2","url":"https://example.com/u"}`)
	if w.Code != http.StatusConflict {
		t.Fatalf("duplicate: status = %d", w.Code)
	}

	w = doRequest(r, http.MethodGet, "/api/v1/bookmarks", "")
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "https://example.com/u") {
		t.Fatalf("list: status = %d, body = %s", w.Code, w.Body.String())
	}

	w = doRequest(r, http.MethodDelete, "/api/v1/bookmarks", "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("delete without url: status = %d", w.Code)
	}

	w = doRequest(r, http.MethodDelete, "/api/v1/bookmarks?url=https%3A%2F%2Fexample.com%2Fu", "")
	if w.Code != http.StatusOK {
		t.Fatalf("delete: status = %d, body = %s", w.Code, w.Body.String())
	}

	// 删除不存在的收藏也成功
	w = doRequest(r, http.MethodDelete, "/api/v1/bookmarks?url=https%3A%2F%2Fexample.com%2Fu", "")
	if w.Code != http.StatusOK {
		t.Fatalf("repeated delete: status = %d", w.Code)
	}

	w = doRequest(r, http.MethodGet, "/api/v1/bookmarks", "")
	if strings.Contains(w.Body.String(), "https://example.com/u") {
		t.Fatalf("bookmark should be gone: %s", w.Body.String())
	}
}
