package main

import (
	"log"

	"github.com/eidolon3/newsletter-aggregator/internal/aggregator"
	"github.com/eidolon3/newsletter-aggregator/internal/api"
	"github.com/eidolon3/newsletter-aggregator/internal/bookmark"
	"github.com/eidolon3/newsletter-aggregator/internal/cache"
	"github.com/eidolon3/newsletter-aggregator/internal/collector"
	"github.com/eidolon3/newsletter-aggregator/internal/config"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.Load()

	bookmarks := bookmark.Open(cfg.BookmarksPath)

	engine := aggregator.New(collector.DefaultFetchers())
	newsCache, err := cache.New(engine, cfg.CronSpec)
	if err != nil {
		log.Fatalf("init cache failed: %v", err)
	}

	// 先同步完成首轮采集再开始对外服务
	newsCache.Start()
	defer newsCache.Stop()

	r := gin.Default()
	apiServer := api.NewServer(newsCache, bookmarks)
	apiServer.RegisterRoutes(r)

	addr := ":" + cfg.AppPort
	log.Printf("starting api server at %s ...", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("server exit: %v", err)
	}
}
