package collector

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"
)

const forumMaxResponseBytes = 1 << 20 // 1MB

// forumPost 两个论坛的 GraphQL 接口返回的单条帖子
type forumPost struct {
	Title     string  `json:"title"`
	Slug      string  `json:"slug"`
	ID        string  `json:"_id"`
	BaseScore float64 `json:"baseScore"`
}

// fetchForumPosts 向论坛的 GraphQL 接口 POST 固定查询并解出帖子列表
func fetchForumPosts(client *http.Client, endpoint, query string) ([]forumPost, error) {
	payload, err := json.Marshal(map[string]string{"query": query})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequest(http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	var reply struct {
		Data struct {
			Posts struct {
				Results []forumPost `json:"results"`
			} `json:"posts"`
		} `json:"data"`
	}
	if err := json.NewDecoder(io.LimitReader(resp.Body, forumMaxResponseBytes)).Decode(&reply); err != nil {
		return nil, err
	}
	return reply.Data.Posts.Results, nil
}

// scoredItem 带分数的中间形态，排序后投影为 Item
type scoredItem struct {
	item  Item
	score float64
}

// projectScored 按分数稳定降序（同分维持原顺序）后丢掉分数
func projectScored(scored []scoredItem) []Item {
	sort.SliceStable(scored, func(i, j int) bool { return scored[i].score > scored[j].score })

	results := make([]Item, 0, len(scored))
	for _, s := range scored {
		results = append(results, s.item)
	}
	return results
}
