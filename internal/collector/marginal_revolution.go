package collector

import (
	"fmt"
	"log"
	"net/url"
	"strings"
	"time"

	"github.com/gocolly/colly/v2"
)

const (
	mrBaseURL  = "https://marginalrevolution.com"
	mrMaxItems = 10
)

// MarginalRevolutionFetcher 抓取 Marginal Revolution 首页最新文章标题
type MarginalRevolutionFetcher struct {
	BaseURL  string
	MaxItems int
}

func (m *MarginalRevolutionFetcher) Name() string {
	return SourceMarginalRevolution
}

func (m *MarginalRevolutionFetcher) Fetch() ([]Item, error) {
	log.Println("fetch Marginal Revolution...")

	base := m.BaseURL
	if base == "" {
		base = mrBaseURL
	}
	max := m.MaxItems
	if max <= 0 {
		max = mrMaxItems
	}

	u, err := url.Parse(base)
	if err != nil {
		return nil, fmt.Errorf("marginalrevolution: parse base url: %w", err)
	}

	c := colly.NewCollector(
		// 同时放行带端口与不带端口的写法
		colly.AllowedDomains(u.Host, u.Hostname()),
		colly.UserAgent("newsletter-aggregator/1.0"),
	)
	c.SetRequestTimeout(5 * time.Second)

	results := make([]Item, 0, max)

	// 首页的文章标题在 h2.entry-title 里，只取前 max 个
	c.OnHTML("h2.entry-title", func(e *colly.HTMLElement) {
		if len(results) >= max {
			return
		}
		title := strings.TrimSpace(e.ChildText("a"))
		href := e.ChildAttr("a", "href")
		if title == "" || href == "" {
			return
		}
		results = append(results, Item{Title: title, URL: href})
	})

	if err := c.Visit(base); err != nil {
		log.Printf("fetch Marginal Revolution failed: %v", err)
		return nil, fmt.Errorf("marginalrevolution: visit: %w", err)
	}

	if len(results) == 0 {
		log.Printf("fetch Marginal Revolution got 0 items")
	}

	return results, nil
}
