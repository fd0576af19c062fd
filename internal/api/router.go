package api

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/eidolon3/newsletter-aggregator/internal/bookmark"
	"github.com/eidolon3/newsletter-aggregator/internal/cache"
	"github.com/gin-gonic/gin"
)

type Server struct {
	cache     *cache.Cache
	bookmarks *bookmark.Store
}

func NewServer(c *cache.Cache, b *bookmark.Store) *Server {
	return &Server{cache: c, bookmarks: b}
}

func (s *Server) RegisterRoutes(r *gin.Engine) {
	r.GET("/health", s.health)

	v1 := r.Group("/api/v1")
	{
		v1.GET("/news", s.getNews)
		v1.POST("/news/refresh", s.refreshNews)

		v1.GET("/bookmarks", s.listBookmarks)
		v1.POST("/bookmarks", s.addBookmark)
		v1.DELETE("/bookmarks", s.removeBookmark)
	}
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) getNews(c *gin.Context) {
	agg := s.cache.Current()

	resp := gin.H{
		"code":    "ok",
		"message": "success",
		"data":    agg,
	}
	if t, ok := s.cache.LastRefresh(); ok {
		resp["lastRefresh"] = t.Format(time.RFC3339)
	}
	c.JSON(http.StatusOK, resp)
}

func (s *Server) refreshNews(c *gin.Context) {
	if err := s.cache.Refresh(); err != nil {
		c.JSON(http.StatusBadGateway, gin.H{
			"code":    "refresh_failed",
			"message": err.Error(),
		})
		return
	}

	t, _ := s.cache.LastRefresh()
	c.JSON(http.StatusOK, gin.H{
		"code":    "ok",
		"message": "success",
		"data":    gin.H{"lastRefresh": t.Format(time.RFC3339)},
	})
}

func (s *Server) listBookmarks(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"code":    "ok",
		"message": "success",
		"data":    s.bookmarks.List(),
	})
}

type addBookmarkRequest struct {
	Title  string `json:"title"`
	URL    string `json:"url"`
	Source string `json:"source"`
}

func (s *Server) addBookmark(c *gin.Context) {
	var req addBookmarkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"code":    "invalid_request",
			"message": "invalid json body",
		})
		return
	}
	// 缺字段在这里就拒绝，不进存储层
	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.URL) == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"code":    "invalid_request",
			"message": "title and url are required",
		})
		return
	}

	b, err := s.bookmarks.Add(req.Title, req.URL, req.Source)
	if errors.Is(err, bookmark.ErrAlreadyExists) {
		c.JSON(http.StatusConflict, gin.H{
			"code":    "already_exists",
			"message": "bookmark already exists",
		})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"code":    "internal_error",
			"message": "internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"code":    "ok",
		"message": "success",
		"data":    b,
	})
}

func (s *Server) removeBookmark(c *gin.Context) {
	url := c.Query("url")
	if url == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"code":    "invalid_request",
			"message": "url is required",
		})
		return
	}

	if err := s.bookmarks.Remove(url); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"code":    "internal_error",
			"message": "internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"code":    "ok",
		"message": "success",
	})
}
