package collector

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
)

func newHNServer(t *testing.T, ids string, stories map[string]string) (*httptest.Server, *sync.Map) {
	t.Helper()

	var requested sync.Map
	mux := http.NewServeMux()
	mux.HandleFunc("/topstories.json", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, ids)
	})
	mux.HandleFunc("/item/", func(w http.ResponseWriter, r *http.Request) {
		requested.Store(r.URL.Path, true)
		body, ok := stories[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		fmt.Fprint(w, body)
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv, &requested
}

func TestHackerNewsFetcherSortsByScoreAndFiltersMissingURL(t *testing.T) {
	srv, _ := newHNServer(t, "[1,4,2,3]", map[string]string{
		"/item/1.json": `{"id":1,"title":"A","url":"https://example.com/a","score":5}`,
		"/item/4.json": `{"id":4,"title":"D","url":"https://example.com/d","score":5}`,
		"/item/2.json": `{"id":2,"title":"B","url":"https://example.com/b","score":9}`,
		"/item/3.json": `{"id":3,"title":"C","score":100}`, // 没有外链，应被过滤
	})

	f := &HackerNewsFetcher{BaseURL: srv.URL, Client: srv.Client()}
	items, err := f.Fetch()
	if err != nil {
		t.Fatalf("Fetch error: %v", err)
	}

	if len(items) != 3 {
		t.Fatalf("expected 3 items, got %d: %+v", len(items), items)
	}
	// 分数降序，同分（A 和 D）保持榜单先后
	wantTitles := []string{"B", "A", "D"}
	for i, want := range wantTitles {
		if items[i].Title != want {
			t.Fatalf("items[%d].Title = %q, want %q (all: %+v)", i, items[i].Title, want, items)
		}
	}
	for _, it := range items {
		if it.Title == "" || it.URL == "" {
			t.Fatalf("item with empty title or url: %+v", it)
		}
	}
}

func TestHackerNewsFetcherHonorsStoryLimit(t *testing.T) {
	srv, requested := newHNServer(t, "[1,2,3]", map[string]string{
		"/item/1.json": `{"id":1,"title":"A","url":"https://example.com/a","score":1}`,
		"/item/2.json": `{"id":2,"title":"B","url":"https://example.com/b","score":2}`,
		"/item/3.json": `{"id":3,"title":"C","url":"https://example.com/c","score":3}`,
	})

	f := &HackerNewsFetcher{BaseURL: srv.URL, MaxStories: 2, Client: srv.Client()}
	items, err := f.Fetch()
	if err != nil {
		t.Fatalf("Fetch error: %v", err)
	}

	if len(items) > 2 {
		t.Fatalf("expected at most 2 items, got %d", len(items))
	}
	if _, ok := requested.Load("/item/3.json"); ok {
		t.Fatalf("item beyond the story limit should not be fetched")
	}
}
