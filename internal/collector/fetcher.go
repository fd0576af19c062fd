package collector

import (
	"net/http"
	"time"
)

// Item 统一采集后的输出条目：只保留标题与链接
type Item struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// Fetcher 抽象每一个数据源
type Fetcher interface {
	Name() string
	Fetch() ([]Item, error)
}

// 各数据源的展示名，作为聚合结果里的 key
const (
	SourceLessWrong          = "LessWrong"
	SourceEAForum            = "EA Forum"
	SourceSubstack           = "Substack (Last 24h)"
	SourceBusiness           = "Business"
	SourceHackerNews         = "Hacker News"
	SourceMarginalRevolution = "Marginal Revolution"
	SourceBloomberg          = "Bloomberg"
	SourceNatureNeuro        = "Nature Neuroscience"
	SourceGwern              = "Gwern.net"
)

// SourceNames 固定的数据源顺序，聚合结果与页面展示都按这个顺序输出
var SourceNames = []string{
	SourceLessWrong,
	SourceEAForum,
	SourceSubstack,
	SourceBusiness,
	SourceHackerNews,
	SourceMarginalRevolution,
	SourceBloomberg,
	SourceNatureNeuro,
	SourceGwern,
}

// DefaultFetchers 按 SourceNames 的顺序返回全部采集器
func DefaultFetchers() []Fetcher {
	return []Fetcher{
		&LessWrongFetcher{},
		&EAForumFetcher{},
		&SubstackFetcher{},
		&BusinessFetcher{},
		&HackerNewsFetcher{},
		&MarginalRevolutionFetcher{},
		&BloombergFetcher{},
		&NatureNeuroFetcher{},
		&GwernFetcher{},
	}
}

const defaultClientTimeout = 10 * time.Second

// orDefaultClient 采集器未注入 http.Client 时返回带超时的默认客户端
func orDefaultClient(c *http.Client) *http.Client {
	if c != nil {
		return c
	}
	return &http.Client{Timeout: defaultClientTimeout}
}
