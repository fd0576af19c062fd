package collector

import (
	"fmt"
	"log"
	"net/http"
)

const (
	natureNeuroFeedURL  = "http://feeds.nature.com/neuro/rss/current"
	natureNeuroMaxItems = 10
)

// NatureNeuroFetcher 取 Nature Neuroscience 当期 RSS 的最新条目，保持源内顺序
type NatureNeuroFetcher struct {
	FeedURL  string
	MaxItems int
	Client   *http.Client
}

func (n *NatureNeuroFetcher) Name() string {
	return SourceNatureNeuro
}

func (n *NatureNeuroFetcher) Fetch() ([]Item, error) {
	log.Println("fetch Nature Neuroscience feed...")

	feedURL := n.FeedURL
	if feedURL == "" {
		feedURL = natureNeuroFeedURL
	}
	max := n.MaxItems
	if max <= 0 {
		max = natureNeuroMaxItems
	}

	results, err := fetchFeedHead(n.Client, feedURL, max)
	if err != nil {
		return nil, fmt.Errorf("nature neuro: %w", err)
	}
	return results, nil
}
