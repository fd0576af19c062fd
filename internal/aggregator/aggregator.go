package aggregator

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"sort"
	"sync"

	"github.com/eidolon3/newsletter-aggregator/internal/collector"
)

// Aggregate 一轮采集的完整结果：数据源名 -> 条目列表。
// 每个数据源的 key 一定存在，采集失败时对应空列表
type Aggregate map[string][]collector.Item

// MarshalJSON 按 SourceNames 的固定顺序输出 key，保证展示顺序稳定。
// map 默认的序列化是按字母序，这里不适用
func (a Aggregate) MarshalJSON() ([]byte, error) {
	known := make(map[string]bool, len(collector.SourceNames))
	names := make([]string, 0, len(a))
	for _, name := range collector.SourceNames {
		known[name] = true
		if _, ok := a[name]; ok {
			names = append(names, name)
		}
	}
	// 不在固定列表里的 key（例如测试桩）排在最后，按字母序
	var extra []string
	for name := range a {
		if !known[name] {
			extra = append(extra, name)
		}
	}
	sort.Strings(extra)
	names = append(names, extra...)

	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, name := range names {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(name)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(a[name])
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Result 单个数据源一轮抓取的结果
type Result struct {
	Source string
	Items  []collector.Item
	Err    error
}

// Engine 对固定的一组采集器做扇出采集
type Engine struct {
	fetchers []collector.Fetcher
}

func New(fetchers []collector.Fetcher) *Engine {
	return &Engine{fetchers: fetchers}
}

// RunResults 并发执行全部采集器，返回与采集器同序的逐源结果。
// 各采集器相互独立，单个失败不影响其它源
func (e *Engine) RunResults() []Result {
	results := make([]Result, len(e.fetchers))

	var wg sync.WaitGroup
	for i, f := range e.fetchers {
		wg.Add(1)
		go func(i int, f collector.Fetcher) {
			defer wg.Done()
			name := f.Name()
			items, err := f.Fetch()
			if err != nil {
				log.Printf("fetch %s error: %v", name, err)
			} else {
				log.Printf("%s done, fetched=%d items", name, len(items))
			}
			results[i] = Result{Source: name, Items: items, Err: err}
		}(i, f)
	}
	wg.Wait()

	return results
}

// Run 执行一轮采集并组装聚合结果。
// 只有所有数据源都失败时才返回错误，失败的源在结果里表现为空列表
func (e *Engine) Run() (Aggregate, error) {
	results := e.RunResults()

	agg := make(Aggregate, len(results))
	failed := 0
	for _, r := range results {
		items := r.Items
		if r.Err != nil || items == nil {
			items = []collector.Item{}
		}
		agg[r.Source] = items
		if r.Err != nil {
			failed++
		}
	}

	if len(results) > 0 && failed == len(results) {
		return agg, fmt.Errorf("aggregator: all %d sources failed", failed)
	}
	return agg, nil
}
