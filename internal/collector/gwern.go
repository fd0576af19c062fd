package collector

import (
	"fmt"
	"log"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/gocolly/colly/v2"
)

const gwernBaseURL = "https://gwern.net"

// 只扫描页面开头的若干候选链接，再按标题长度等启发式过滤
const (
	gwernMaxLinks      = 15
	gwernMaxItems      = 10
	gwernMinTitleRunes = 10
)

// GwernFetcher 抓取 Gwern.net 首页，从正文链接里挑出像文章的条目。
// 过滤规则是启发式的：标题要足够长，且跳过页内锚点链接
type GwernFetcher struct {
	BaseURL  string
	MaxItems int
}

func (g *GwernFetcher) Name() string {
	return SourceGwern
}

func (g *GwernFetcher) Fetch() ([]Item, error) {
	log.Println("fetch Gwern.net...")

	base := g.BaseURL
	if base == "" {
		base = gwernBaseURL
	}
	max := g.MaxItems
	if max <= 0 {
		max = gwernMaxItems
	}

	u, err := url.Parse(base)
	if err != nil {
		return nil, fmt.Errorf("gwern: parse base url: %w", err)
	}

	c := colly.NewCollector(
		// 同时放行带端口与不带端口的写法
		colly.AllowedDomains(u.Host, u.Hostname()),
		colly.UserAgent("Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"),
	)
	c.SetRequestTimeout(10 * time.Second)

	results := make([]Item, 0, max)

	c.OnHTML("html", func(e *colly.HTMLElement) {
		scanned := 0
		e.DOM.Find("a[href]").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
			if scanned >= gwernMaxLinks {
				return false
			}
			scanned++

			href, _ := sel.Attr("href")
			title := strings.TrimSpace(sel.Text())

			if href == "" || strings.HasPrefix(href, "#") {
				return true
			}
			if utf8.RuneCountInString(title) <= gwernMinTitleRunes {
				return true
			}

			// 相对链接补全为站内绝对地址
			abs := e.Request.AbsoluteURL(href)
			if abs == "" {
				return true
			}
			results = append(results, Item{Title: title, URL: abs})
			return true
		})
	})

	if err := c.Visit(base); err != nil {
		log.Printf("fetch Gwern.net failed: %v", err)
		return nil, fmt.Errorf("gwern: visit: %w", err)
	}

	if len(results) > max {
		results = results[:max]
	}
	if len(results) == 0 {
		log.Printf("fetch Gwern.net got 0 items")
	}

	return results, nil
}
