package collector

import (
	"fmt"
	"log"
	"net/http"
)

const (
	eaEndpoint  = "https://forum.effectivealtruism.org/graphql"
	eaPostsBase = "https://forum.effectivealtruism.org/posts"
	eaPostLimit = 20
)

const eaQueryTmpl = `{
  posts(input: {terms: {view: "new", limit: %d}}) {
    results {
      title
      slug
      _id
      baseScore
    }
  }
}`

// EAForumFetcher 通过 GraphQL 接口抓取 EA Forum 最新帖子，按分数降序
type EAForumFetcher struct {
	Endpoint  string
	PostLimit int
	Client    *http.Client
}

func (e *EAForumFetcher) Name() string {
	return SourceEAForum
}

func (e *EAForumFetcher) Fetch() ([]Item, error) {
	log.Println("fetch EA Forum new posts...")

	endpoint := e.Endpoint
	if endpoint == "" {
		endpoint = eaEndpoint
	}
	limit := e.PostLimit
	if limit <= 0 {
		limit = eaPostLimit
	}

	posts, err := fetchForumPosts(orDefaultClient(e.Client), endpoint, fmt.Sprintf(eaQueryTmpl, limit))
	if err != nil {
		return nil, fmt.Errorf("eaforum: %w", err)
	}

	scored := make([]scoredItem, 0, len(posts))
	for _, p := range posts {
		if p.Title == "" {
			continue
		}
		// 链接优先用 /posts/{id}/{slug}，比纯 slug 更稳定
		var url string
		switch {
		case p.ID != "":
			url = fmt.Sprintf("%s/%s/%s", eaPostsBase, p.ID, p.Slug)
		case p.Slug != "":
			url = eaPostsBase + "/" + p.Slug
		default:
			continue
		}
		scored = append(scored, scoredItem{
			item:  Item{Title: p.Title, URL: url},
			score: p.BaseScore,
		})
	}

	return projectScored(scored), nil
}
