package collector

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestGwernFetcherHeuristics(t *testing.T) {
	var page strings.Builder
	page.WriteString("<html><body>")
	// 1: 页内锚点，跳过
	page.WriteString(`<a href="#toc">This is a long enough title</a>`)
	// 2: 相对链接，应补全为站内绝对地址
	page.WriteString(`<a href="/doc/one">First proper article title</a>`)
	// 3: 标题太短，跳过
	page.WriteString(`<a href="/short">short</a>`)
	// 4..15: 合法的绝对链接
	for i := 0; i < 12; i++ {
		fmt.Fprintf(&page, `<a href="https://example.com/p%d">Interesting article number %d</a>`, i, i)
	}
	// 第 16 个候选链接超出扫描范围，即使合法也不该出现
	page.WriteString(`<a href="https://example.com/late">Late article beyond the scan limit</a>`)
	page.WriteString("</body></html>")

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, page.String())
	}))
	defer srv.Close()

	f := &GwernFetcher{BaseURL: srv.URL}
	items, err := f.Fetch()
	if err != nil {
		t.Fatalf("Fetch error: %v", err)
	}

	// 前 15 个候选里留下 13 个，再截断到 10
	if len(items) != 10 {
		t.Fatalf("expected 10 items, got %d: %+v", len(items), items)
	}
	if items[0].URL != srv.URL+"/doc/one" {
		t.Fatalf("relative link should resolve against base, got %q", items[0].URL)
	}
	for _, it := range items {
		if strings.Contains(it.URL, "late") {
			t.Fatalf("link beyond the scan limit leaked in: %+v", it)
		}
		if strings.HasPrefix(it.URL, "#") || it.Title == "short" {
			t.Fatalf("filtered link leaked in: %+v", it)
		}
	}
}
