package collector

import (
	"net/http"
	"sort"
	"time"

	"github.com/mmcdole/gofeed"
)

// feedPost 订阅源条目的中间形态，带发布时间用于窗口过滤与排序
type feedPost struct {
	title     string
	url       string
	published time.Time
}

func newFeedParser(client *http.Client) *gofeed.Parser {
	fp := gofeed.NewParser()
	fp.Client = orDefaultClient(client)
	return fp
}

// publishedTime 取条目的发布时间，没有 published 时退回 updated
func publishedTime(item *gofeed.Item) (time.Time, bool) {
	if item.PublishedParsed != nil {
		return *item.PublishedParsed, true
	}
	if item.UpdatedParsed != nil {
		return *item.UpdatedParsed, true
	}
	return time.Time{}, false
}

// projectFeedPosts 按发布时间降序排序、截断后投影为输出条目
func projectFeedPosts(posts []feedPost, max int) []Item {
	sort.SliceStable(posts, func(i, j int) bool { return posts[i].published.After(posts[j].published) })

	if len(posts) > max {
		posts = posts[:max]
	}
	results := make([]Item, 0, len(posts))
	for _, p := range posts {
		results = append(results, Item{Title: p.title, URL: p.url})
	}
	return results
}

// fetchFeedHead 解析单个订阅源，按源内原始顺序取前 max 条
func fetchFeedHead(client *http.Client, feedURL string, max int) ([]Item, error) {
	feed, err := newFeedParser(client).ParseURL(feedURL)
	if err != nil {
		return nil, err
	}

	entries := feed.Items
	if len(entries) > max {
		entries = entries[:max]
	}

	results := make([]Item, 0, len(entries))
	for _, entry := range entries {
		if entry.Title == "" || entry.Link == "" {
			continue
		}
		results = append(results, Item{Title: entry.Title, URL: entry.Link})
	}
	return results, nil
}
