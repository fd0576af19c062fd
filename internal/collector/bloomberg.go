package collector

import (
	"fmt"
	"log"
	"net/http"
)

const (
	bloombergFeedURL  = "https://feeds.bloomberg.com/markets/news.rss"
	bloombergMaxItems = 15
)

// BloombergFetcher 取 Bloomberg Markets RSS 的最新条目，保持源内顺序
type BloombergFetcher struct {
	FeedURL  string
	MaxItems int
	Client   *http.Client
}

func (b *BloombergFetcher) Name() string {
	return SourceBloomberg
}

func (b *BloombergFetcher) Fetch() ([]Item, error) {
	log.Println("fetch Bloomberg markets feed...")

	feedURL := b.FeedURL
	if feedURL == "" {
		feedURL = bloombergFeedURL
	}
	max := b.MaxItems
	if max <= 0 {
		max = bloombergMaxItems
	}

	results, err := fetchFeedHead(b.Client, feedURL, max)
	if err != nil {
		return nil, fmt.Errorf("bloomberg: %w", err)
	}
	return results, nil
}
