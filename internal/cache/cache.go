package cache

import (
	"log"
	"sync"
	"time"

	"github.com/eidolon3/newsletter-aggregator/internal/aggregator"
	"github.com/robfig/cron/v3"
)

// Cache 持有最近一轮采集的快照并负责定时刷新。
// 快照整体替换，读侧不会看到半成品的聚合结果
type Cache struct {
	engine *aggregator.Engine
	cron   *cron.Cron

	mu          sync.RWMutex
	snapshot    aggregator.Aggregate
	lastRefresh time.Time
	populated   bool
}

// New 创建缓存并注册定时刷新任务，spec 用 cron 表达式（如 "@every 24h"）
func New(engine *aggregator.Engine, spec string) (*Cache, error) {
	c := &Cache{
		engine: engine,
		cron:   cron.New(),
	}

	_, err := c.cron.AddFunc(spec, func() {
		// 定时刷新失败只记录日志，旧快照继续服务
		if err := c.runCycle(); err != nil {
			log.Printf("scheduled refresh error: %v", err)
		}
	})
	if err != nil {
		return nil, err
	}

	return c, nil
}

// Start 先同步跑一轮采集，保证首个读请求不用等网络，然后启动定时任务
func (c *Cache) Start() {
	if err := c.runCycle(); err != nil {
		log.Printf("initial collect error: %v", err)
	}
	c.cron.Start()
}

// Stop 停止定时任务，不打断已经在跑的那一轮
func (c *Cache) Stop() {
	c.cron.Stop()
}

// Refresh 手动触发一轮采集，与定时任务的时钟互不影响。
// 采集整体失败时旧快照原样保留并返回错误
func (c *Cache) Refresh() error {
	return c.runCycle()
}

func (c *Cache) runCycle() error {
	agg, err := c.engine.Run()

	c.mu.Lock()
	defer c.mu.Unlock()

	if err != nil {
		// 从未成功过时把（可能全空的）结果先存下来，读侧不至于拿到 nil
		if !c.populated {
			c.snapshot = agg
		}
		return err
	}

	c.snapshot = agg
	c.populated = true
	c.lastRefresh = time.Now()
	return nil
}

// Current 返回当前快照。只有缓存从未成功填充时才会同步跑一轮采集兜底，
// 其余情况都不阻塞在网络 IO 上
func (c *Cache) Current() aggregator.Aggregate {
	c.mu.RLock()
	populated := c.populated
	c.mu.RUnlock()

	if !populated {
		if err := c.runCycle(); err != nil {
			log.Printf("on-demand collect error: %v", err)
		}
	}

	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.snapshot
}

// LastRefresh 最近一次成功刷新的完成时间；从未成功过时 ok 为 false
func (c *Cache) LastRefresh() (time.Time, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.lastRefresh, c.populated
}
