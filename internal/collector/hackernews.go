package collector

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"sort"
	"sync"
	"time"
)

const (
	hnBaseURL           = "https://hacker-news.firebaseio.com/v0"
	hnMaxStories        = 20
	hnMaxResponseBytes  = 1 << 20 // 1MB
	hnConcurrency       = 10
	hnClientTimeout     = 10 * time.Second
	hnItemClientTimeout = 5 * time.Second
)

// HackerNewsFetcher 通过官方 Firebase API 抓取 Hacker News 热门故事：
// 先取榜单 ID，再逐条拉取详情，最后按分数降序
type HackerNewsFetcher struct {
	BaseURL    string
	MaxStories int
	Client     *http.Client
}

func (h *HackerNewsFetcher) Name() string {
	return SourceHackerNews
}

type hnStory struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
	URL   string `json:"url"`
	Score int    `json:"score"`
}

func (h *HackerNewsFetcher) Fetch() ([]Item, error) {
	log.Println("fetch Hacker News top stories...")

	base := h.BaseURL
	if base == "" {
		base = hnBaseURL
	}
	max := h.MaxStories
	if max <= 0 {
		max = hnMaxStories
	}
	client := h.Client
	if client == nil {
		client = &http.Client{Timeout: hnClientTimeout}
	}

	resp, err := client.Get(base + "/topstories.json")
	if err != nil {
		return nil, fmt.Errorf("hackernews: fetch top stories: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("hackernews: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, hnMaxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("hackernews: read top stories: %w", err)
	}

	var ids []int
	if err := json.Unmarshal(body, &ids); err != nil {
		return nil, fmt.Errorf("hackernews: unmarshal top stories: %w", err)
	}

	if len(ids) > max {
		ids = ids[:max]
	}

	type indexedStory struct {
		idx   int
		story hnStory
	}

	var (
		mu      sync.Mutex
		wg      sync.WaitGroup
		sem     = make(chan struct{}, hnConcurrency)
		stories = make([]indexedStory, 0, len(ids))
	)

	itemClient := h.Client
	if itemClient == nil {
		itemClient = &http.Client{Timeout: hnItemClientTimeout}
	}

	for i, id := range ids {
		wg.Add(1)
		sem <- struct{}{}
		go func(idx, id int) {
			defer wg.Done()
			defer func() { <-sem }()

			st, err := fetchHNStory(itemClient, base, id)
			if err != nil {
				log.Printf("hackernews: fetch item %d: %v", id, err)
				return
			}
			// 只保留标题和外链都有的故事
			if st.Title == "" || st.URL == "" {
				return
			}

			mu.Lock()
			stories = append(stories, indexedStory{idx: idx, story: st})
			mu.Unlock()
		}(i, id)
	}
	wg.Wait()

	// 先恢复榜单顺序，再按分数稳定降序：同分的故事维持榜单先后
	sort.Slice(stories, func(i, j int) bool { return stories[i].idx < stories[j].idx })
	sort.SliceStable(stories, func(i, j int) bool { return stories[i].story.Score > stories[j].story.Score })

	results := make([]Item, 0, len(stories))
	for _, is := range stories {
		results = append(results, Item{Title: is.story.Title, URL: is.story.URL})
	}

	if len(results) == 0 {
		log.Println("hackernews: no stories fetched")
	}

	return results, nil
}

func fetchHNStory(client *http.Client, base string, id int) (hnStory, error) {
	url := fmt.Sprintf("%s/item/%d.json", base, id)
	resp, err := client.Get(url)
	if err != nil {
		return hnStory{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return hnStory{}, fmt.Errorf("status %d", resp.StatusCode)
	}

	var st hnStory
	if err := json.NewDecoder(io.LimitReader(resp.Body, hnMaxResponseBytes)).Decode(&st); err != nil {
		return hnStory{}, err
	}
	return st, nil
}
