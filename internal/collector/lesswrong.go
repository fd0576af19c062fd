package collector

import (
	"fmt"
	"log"
	"net/http"
)

const (
	lwEndpoint  = "https://www.lesswrong.com/graphql"
	lwPostsBase = "https://www.lesswrong.com/posts"
	lwPostLimit = 20
)

const lwQueryTmpl = `{
  posts(input: {terms: {view: "frontpage", limit: %d}}) {
    results {
      title
      slug
      baseScore
    }
  }
}`

// LessWrongFetcher 通过 GraphQL 接口抓取 LessWrong 首页帖子，按分数降序
type LessWrongFetcher struct {
	Endpoint  string
	PostLimit int
	Client    *http.Client
}

func (l *LessWrongFetcher) Name() string {
	return SourceLessWrong
}

func (l *LessWrongFetcher) Fetch() ([]Item, error) {
	log.Println("fetch LessWrong frontpage...")

	endpoint := l.Endpoint
	if endpoint == "" {
		endpoint = lwEndpoint
	}
	limit := l.PostLimit
	if limit <= 0 {
		limit = lwPostLimit
	}

	posts, err := fetchForumPosts(orDefaultClient(l.Client), endpoint, fmt.Sprintf(lwQueryTmpl, limit))
	if err != nil {
		return nil, fmt.Errorf("lesswrong: %w", err)
	}

	scored := make([]scoredItem, 0, len(posts))
	for _, p := range posts {
		if p.Title == "" || p.Slug == "" {
			continue
		}
		scored = append(scored, scoredItem{
			item:  Item{Title: p.Title, URL: lwPostsBase + "/" + p.Slug},
			score: p.BaseScore,
		})
	}

	return projectScored(scored), nil
}
