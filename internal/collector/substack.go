package collector

import (
	"log"
	"net/http"
	"sync"
	"time"
)

const (
	substackWindow      = 24 * time.Hour
	substackMaxItems    = 20
	substackConcurrency = 8
)

// substackFeedURLs 固定跟踪的 Substack 订阅列表
var substackFeedURLs = []string{
	"https://benthams.substack.com/feed",
	"https://humaninvariant.substack.com/feed",
	"https://a16zgrowth.substack.com/feed",
	"https://adelesscience.substack.com/feed",
	"https://antonhowes.substack.com/feed",
	"https://press.asimov.com/feed",
	"https://astralcodexten.substack.com/feed",
	"https://bossbeautysaas.substack.com/feed",
	"https://constructionphysics.substack.com/feed",
	"https://corememory.substack.com/feed",
	"https://danielgreco.substack.com/feed",
	"https://dwarkeshpatel.substack.com/feed",
	"https://blog.eladgil.com/feed",
	"https://extropicthoughts.substack.com/feed",
	"https://fabricatedknowledge.substack.com/feed",
	"https://generalist.substack.com/feed",
	"https://glasshalftrue.substack.com/feed",
	"https://interconnects.substack.com/feed",
	"https://jackhanlon.substack.com/feed",
	"https://jacobrobinson.substack.com/feed",
	"https://katechon99.substack.com/feed",
	"https://newsletter.lennyrachitsky.com/feed",
	"https://loganthrashercollins.substack.com/feed",
	"https://mrsmithsbookshelf.substack.com/feed",
	"https://neurobiology.substack.com/feed",
	"https://neurotechfutures.substack.com/feed",
	"https://newcomer.substack.com/feed",
	"https://noetik.substack.com/feed",
	"https://notboring.substack.com/feed",
	"https://on.substack.com/feed",
	"https://owlposting.substack.com/feed",
	"https://planetocracy.substack.com/feed",
	"https://davidgamejournal.substack.com/feed",
	"https://richardhanania.substack.com/feed",
	"https://robkhenderson.substack.com/feed",
	"https://roon.substack.com/feed",
	"https://roughdiamonds.substack.com/feed",
	"https://secondperson.substack.com/feed",
	"https://semianalysis.substack.com/feed",
	"https://socraticpsychiatrist.substack.com/feed",
	"https://splittinginfinity.substack.com/feed",
	"https://statecraft.substack.com/feed",
	"https://tbpn.substack.com/feed",
	"https://technotheoria.substack.com/feed",
	"https://rashmee.substack.com/feed",
}

// SubstackFetcher 拉取一批 Substack 订阅源，只保留最近一天内发布的文章，
// 全部合并后按发布时间降序。单个源失败只影响它自己
type SubstackFetcher struct {
	FeedURLs []string
	Window   time.Duration
	MaxItems int
	Client   *http.Client
}

func (s *SubstackFetcher) Name() string {
	return SourceSubstack
}

func (s *SubstackFetcher) Fetch() ([]Item, error) {
	feeds := s.FeedURLs
	if feeds == nil {
		feeds = substackFeedURLs
	}
	window := s.Window
	if window <= 0 {
		window = substackWindow
	}
	max := s.MaxItems
	if max <= 0 {
		max = substackMaxItems
	}

	log.Printf("fetch %d substack feeds...", len(feeds))

	cutoff := time.Now().Add(-window)

	var (
		mu    sync.Mutex
		wg    sync.WaitGroup
		sem   = make(chan struct{}, substackConcurrency)
		posts []feedPost
	)

	for _, feedURL := range feeds {
		wg.Add(1)
		sem <- struct{}{}
		go func(feedURL string) {
			defer wg.Done()
			defer func() { <-sem }()

			feed, err := newFeedParser(s.Client).ParseURL(feedURL)
			if err != nil {
				log.Printf("substack: fetch feed %s: %v", feedURL, err)
				return
			}

			var kept []feedPost
			for _, entry := range feed.Items {
				// 没有可解析发布时间的条目直接丢弃
				pub, ok := publishedTime(entry)
				if !ok || pub.Before(cutoff) {
					continue
				}
				if entry.Title == "" || entry.Link == "" {
					continue
				}
				kept = append(kept, feedPost{title: entry.Title, url: entry.Link, published: pub})
			}
			if len(kept) == 0 {
				return
			}

			mu.Lock()
			posts = append(posts, kept...)
			mu.Unlock()
		}(feedURL)
	}
	wg.Wait()

	return projectFeedPosts(posts, max), nil
}
