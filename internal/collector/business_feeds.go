package collector

import (
	"log"
	"net/http"
	"time"
)

const (
	// 商业类内容更新慢，窗口放宽到三天
	businessWindow   = 3 * 24 * time.Hour
	businessMaxItems = 20
)

// BusinessFeed 一个商业资讯订阅源，Label 会作为标题前缀展示
type BusinessFeed struct {
	URL   string
	Label string
}

var businessFeeds = []BusinessFeed{
	{URL: "https://diff.substack.com/feed", Label: "The Diff"},
	{URL: "https://stratechery.com/feed/", Label: "Stratechery"},
	{URL: "https://semianalysis.substack.com/feed", Label: "SemiAnalysis"},
}

// BusinessFetcher 拉取几个商业/投资订阅源，窗口过滤后合并降序。
// 与 SubstackFetcher 不同：没有发布时间的条目不丢弃，按当前时间参与排序
type BusinessFetcher struct {
	Feeds    []BusinessFeed
	Window   time.Duration
	MaxItems int
	Client   *http.Client
}

func (b *BusinessFetcher) Name() string {
	return SourceBusiness
}

func (b *BusinessFetcher) Fetch() ([]Item, error) {
	feeds := b.Feeds
	if feeds == nil {
		feeds = businessFeeds
	}
	window := b.Window
	if window <= 0 {
		window = businessWindow
	}
	max := b.MaxItems
	if max <= 0 {
		max = businessMaxItems
	}

	log.Printf("fetch %d business feeds...", len(feeds))

	now := time.Now()
	cutoff := now.Add(-window)

	var posts []feedPost
	for _, f := range feeds {
		feed, err := newFeedParser(b.Client).ParseURL(f.URL)
		if err != nil {
			log.Printf("business: fetch feed %s: %v", f.URL, err)
			continue
		}

		for _, entry := range feed.Items {
			if entry.Title == "" || entry.Link == "" {
				continue
			}

			pub, ok := publishedTime(entry)
			if ok {
				if pub.Before(cutoff) {
					continue
				}
			} else {
				// 兜底：发布时间解析不出来时按"现在"处理，跳过窗口检查
				pub = now
			}

			posts = append(posts, feedPost{
				title:     "[" + f.Label + "] " + entry.Title,
				url:       entry.Link,
				published: pub,
			})
		}
	}

	return projectFeedPosts(posts, max), nil
}
